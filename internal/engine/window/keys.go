package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/rtscam/internal/engine/input"
)

// keymap resolves each camera action to an SDL scancode.
type keymap map[input.Action]sdl.Scancode

var namedScancodes = map[string]sdl.Scancode{
	"up":       sdl.SCANCODE_UP,
	"down":     sdl.SCANCODE_DOWN,
	"left":     sdl.SCANCODE_LEFT,
	"right":    sdl.SCANCODE_RIGHT,
	"home":     sdl.SCANCODE_HOME,
	"end":      sdl.SCANCODE_END,
	"pageup":   sdl.SCANCODE_PAGEUP,
	"pagedown": sdl.SCANCODE_PAGEDOWN,
	"insert":   sdl.SCANCODE_INSERT,
	"delete":   sdl.SCANCODE_DELETE,
	"space":    sdl.SCANCODE_SPACE,
	"tab":      sdl.SCANCODE_TAB,
	"shift":    sdl.SCANCODE_LSHIFT,
	"ctrl":     sdl.SCANCODE_LCTRL,
	"alt":      sdl.SCANCODE_LALT,
}

// scancode maps a canonical key name to an SDL scancode.
func scancode(name string) (sdl.Scancode, bool) {
	name = input.NormalizeKey(name)
	if sc, ok := namedScancodes[name]; ok {
		return sc, true
	}
	if len(name) != 1 {
		return 0, false
	}
	switch c := name[0]; {
	case c >= 'a' && c <= 'z':
		return sdl.SCANCODE_A + sdl.Scancode(c-'a'), true
	case c == '0':
		return sdl.SCANCODE_0, true
	case c >= '1' && c <= '9':
		// SDL orders the number row 1..9 then 0.
		return sdl.SCANCODE_1 + sdl.Scancode(c-'1'), true
	}
	return 0, false
}

func newKeymap(b input.Bindings) (keymap, error) {
	km := make(keymap, len(input.Actions))
	for _, a := range input.Actions {
		sc, ok := scancode(b.Key(a))
		if !ok {
			return nil, fmt.Errorf("no SDL scancode for %s key %q", a, b[a])
		}
		km[a] = sc
	}
	return km, nil
}
