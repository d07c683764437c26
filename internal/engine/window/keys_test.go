package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/rtscam/internal/engine/input"
)

func TestScancode(t *testing.T) {
	tests := []struct {
		name string
		want sdl.Scancode
	}{
		{"end", sdl.SCANCODE_END},
		{"PageUp", sdl.SCANCODE_PAGEUP},
		{"a", sdl.SCANCODE_A},
		{"z", sdl.SCANCODE_Z},
		{"1", sdl.SCANCODE_1},
		{"9", sdl.SCANCODE_9},
		{"0", sdl.SCANCODE_0},
	}
	for _, tt := range tests {
		got, ok := scancode(tt.name)
		if !ok || got != tt.want {
			t.Errorf("scancode(%q) = (%v, %v), want (%v, true)", tt.name, got, ok, tt.want)
		}
	}
	if _, ok := scancode("hyper"); ok {
		t.Error("scancode(hyper) resolved")
	}
}

func TestKeymapCoversKnownKeys(t *testing.T) {
	for _, name := range input.KeyNames {
		if _, ok := scancode(name); !ok {
			t.Errorf("known key %q has no SDL scancode", name)
		}
	}

	km, err := newKeymap(input.DefaultBindings())
	if err != nil {
		t.Fatalf("newKeymap: %v", err)
	}
	if km[input.RotateRight] != sdl.SCANCODE_PAGEDOWN {
		t.Errorf("rotate right bound to %v, want PageDown", km[input.RotateRight])
	}
}

func TestFlipY(t *testing.T) {
	tests := []struct {
		y    int32
		h    int
		want float32
	}{
		{719, 720, 0},
		{0, 720, 719},
		{360, 720, 359},
	}
	for _, tt := range tests {
		if got := flipY(tt.y, tt.h); got != tt.want {
			t.Errorf("flipY(%d, %d) = %v, want %v", tt.y, tt.h, got, tt.want)
		}
	}
}
