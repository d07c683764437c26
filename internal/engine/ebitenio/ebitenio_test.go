package ebitenio

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Faultbox/rtscam/internal/engine/input"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"end", ebiten.KeyEnd},
		{"PAGEDOWN", ebiten.KeyPageDown},
		{"q", ebiten.KeyQ},
		{"7", ebiten.KeyDigit7},
	}
	for _, tt := range tests {
		got, ok := Key(tt.name)
		if !ok || got != tt.want {
			t.Errorf("Key(%q) = (%v, %v), want (%v, true)", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := Key("hyper"); ok {
		t.Error("Key(hyper) resolved")
	}
}

func TestKnownKeysResolve(t *testing.T) {
	for _, name := range input.KeyNames {
		if _, ok := Key(name); !ok {
			t.Errorf("known key %q has no ebiten key", name)
		}
	}
}

func TestNewInput(t *testing.T) {
	in, err := NewInput(input.DefaultBindings(), NewScreen(640, 480))
	if err != nil {
		t.Fatalf("NewInput: %v", err)
	}
	if in.keys[input.Zoom] != ebiten.KeyEnd {
		t.Errorf("zoom bound to %v, want End", in.keys[input.Zoom])
	}

	b := input.DefaultBindings()
	b[input.Zoom] = "hyper"
	if _, err := NewInput(b, NewScreen(640, 480)); err == nil {
		t.Error("expected error for unresolvable key")
	}
}

func TestScreen(t *testing.T) {
	s := NewScreen(640, 480)
	s.SetSize(1024, 768)
	if w, h := s.Size(); w != 1024 || h != 768 {
		t.Errorf("Size() = %dx%d, want 1024x768", w, h)
	}
}

func TestFlipY(t *testing.T) {
	tests := []struct {
		y, h int
		want float32
	}{
		{599, 600, 0},
		{0, 600, 599},
		{300, 600, 299},
	}
	for _, tt := range tests {
		if got := flipY(tt.y, tt.h); got != tt.want {
			t.Errorf("flipY(%d, %d) = %v, want %v", tt.y, tt.h, got, tt.want)
		}
	}
}
