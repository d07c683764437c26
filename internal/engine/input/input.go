// Package input turns raw per-frame key and pointer samples into the
// held, pressed, and released queries the camera controller polls.
package input

// Action is a logical camera control, bound to a physical key by Bindings.
type Action int

const (
	PanUp Action = iota
	PanDown
	PanLeft
	PanRight
	Zoom
	RotateLeft
	RotateRight

	actionCount
)

// Actions lists every action in declaration order.
var Actions = []Action{PanUp, PanDown, PanLeft, PanRight, Zoom, RotateLeft, RotateRight}

var actionNames = [actionCount]string{
	PanUp:       "pan_up",
	PanDown:     "pan_down",
	PanLeft:     "pan_left",
	PanRight:    "pan_right",
	Zoom:        "zoom",
	RotateLeft:  "rotate_left",
	RotateRight: "rotate_right",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// State holds one frame's input snapshot plus the previous frame's key
// levels for edge detection. The zero value is ready to use.
type State struct {
	held     [actionCount]bool
	prevHeld [actionCount]bool

	PointerX float32
	PointerY float32
}

// Update samples a new frame. held reports whether the key bound to an
// action is down right now; x and y are the pointer in window coordinates
// with Y growing upward from the bottom edge.
func (s *State) Update(held func(Action) bool, x, y float32) {
	s.prevHeld = s.held
	for _, a := range Actions {
		s.held[a] = held(a)
	}
	s.PointerX = x
	s.PointerY = y
}

// Held reports whether the action's key is down this frame.
func (s *State) Held(a Action) bool {
	return s.held[a]
}

// Pressed reports whether the action's key went down this frame.
func (s *State) Pressed(a Action) bool {
	return s.held[a] && !s.prevHeld[a]
}

// Released reports whether the action's key went up this frame.
func (s *State) Released(a Action) bool {
	return !s.held[a] && s.prevHeld[a]
}

// Pointer returns the pointer position sampled by the last Update.
func (s *State) Pointer() (x, y float32) {
	return s.PointerX, s.PointerY
}
