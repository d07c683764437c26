// Package ebitenio adapts Ebitengine's input and window state to the
// camera controller's Input and Screen interfaces.
package ebitenio

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Faultbox/rtscam/internal/engine/input"
)

var namedKeys = map[string]ebiten.Key{
	"up":       ebiten.KeyArrowUp,
	"down":     ebiten.KeyArrowDown,
	"left":     ebiten.KeyArrowLeft,
	"right":    ebiten.KeyArrowRight,
	"home":     ebiten.KeyHome,
	"end":      ebiten.KeyEnd,
	"pageup":   ebiten.KeyPageUp,
	"pagedown": ebiten.KeyPageDown,
	"insert":   ebiten.KeyInsert,
	"delete":   ebiten.KeyDelete,
	"space":    ebiten.KeySpace,
	"tab":      ebiten.KeyTab,
	"shift":    ebiten.KeyShiftLeft,
	"ctrl":     ebiten.KeyControlLeft,
	"alt":      ebiten.KeyAltLeft,
}

// Key maps a canonical key name to an Ebitengine key.
func Key(name string) (ebiten.Key, bool) {
	name = input.NormalizeKey(name)
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	if len(name) != 1 {
		return 0, false
	}
	switch c := name[0]; {
	case c >= 'a' && c <= 'z':
		return ebiten.KeyA + ebiten.Key(c-'a'), true
	case c >= '0' && c <= '9':
		return ebiten.KeyDigit0 + ebiten.Key(c-'0'), true
	}
	return 0, false
}

// Input answers the controller's queries straight from Ebitengine. It is
// only valid inside Game.Update.
type Input struct {
	keys   map[input.Action]ebiten.Key
	screen *Screen
}

// NewInput resolves bindings to Ebitengine keys. The pointer Y is flipped
// against screen's height so it grows upward.
func NewInput(b input.Bindings, screen *Screen) (*Input, error) {
	keys := make(map[input.Action]ebiten.Key, len(input.Actions))
	for _, a := range input.Actions {
		k, ok := Key(b.Key(a))
		if !ok {
			return nil, fmt.Errorf("no ebiten key for %s key %q", a, b[a])
		}
		keys[a] = k
	}
	return &Input{keys: keys, screen: screen}, nil
}

// Held reports whether the action's key is down.
func (in *Input) Held(a input.Action) bool {
	return ebiten.IsKeyPressed(in.keys[a])
}

// Pressed reports whether the action's key went down this tick.
func (in *Input) Pressed(a input.Action) bool {
	return inpututil.IsKeyJustPressed(in.keys[a])
}

// Released reports whether the action's key went up this tick.
func (in *Input) Released(a input.Action) bool {
	return inpututil.IsKeyJustReleased(in.keys[a])
}

// Pointer returns the cursor in layout pixels, Y growing upward.
func (in *Input) Pointer() (float32, float32) {
	x, y := ebiten.CursorPosition()
	_, h := in.screen.Size()
	return float32(x), flipY(y, h)
}

// flipY converts a top-down pixel row to one counted up from the bottom
// row, which becomes 0.
func flipY(y, h int) float32 {
	return float32(h - 1 - y)
}

// Screen tracks the logical screen size Ebitengine reports to Layout.
type Screen struct {
	w, h int
}

// NewScreen creates a screen with an initial size.
func NewScreen(w, h int) *Screen {
	return &Screen{w: w, h: h}
}

// SetSize records the size from Game.Layout.
func (s *Screen) SetSize(w, h int) {
	s.w, s.h = w, h
}

// Size returns the last recorded size.
func (s *Screen) Size() (int, int) {
	return s.w, s.h
}
