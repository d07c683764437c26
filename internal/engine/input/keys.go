package input

import (
	"fmt"
	"sort"
	"strings"
)

// KeyNames are the canonical physical key names bindings may refer to.
// Backends translate these to their own key codes.
var KeyNames = []string{
	"up", "down", "left", "right",
	"home", "end", "pageup", "pagedown", "insert", "delete",
	"space", "tab", "shift", "ctrl", "alt",
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
}

var knownKeys = func() map[string]bool {
	m := make(map[string]bool, len(KeyNames))
	for _, k := range KeyNames {
		m[k] = true
	}
	return m
}()

// NormalizeKey lowercases and trims a key name.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// KnownKey reports whether name is a canonical key name.
func KnownKey(name string) bool {
	return knownKeys[NormalizeKey(name)]
}

// Bindings maps each action to a canonical key name.
type Bindings map[Action]string

// DefaultBindings returns arrows for panning, End for zoom, PageUp and
// PageDown for rotating left and right.
func DefaultBindings() Bindings {
	return Bindings{
		PanUp:       "up",
		PanDown:     "down",
		PanLeft:     "left",
		PanRight:    "right",
		Zoom:        "end",
		RotateLeft:  "pageup",
		RotateRight: "pagedown",
	}
}

// Key returns the normalized key name bound to a.
func (b Bindings) Key(a Action) string {
	return NormalizeKey(b[a])
}

// Validate checks every action has a known key. Unknown names are
// reported together, sorted.
func (b Bindings) Validate() error {
	var bad []string
	for _, a := range Actions {
		name, ok := b[a]
		if !ok || name == "" {
			bad = append(bad, fmt.Sprintf("%s: unbound", a))
			continue
		}
		if !KnownKey(name) {
			bad = append(bad, fmt.Sprintf("%s: %q", a, name))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("invalid key bindings: %s", strings.Join(bad, ", "))
}
