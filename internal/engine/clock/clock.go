// Package clock provides frame time sources for the camera controller.
package clock

import "time"

// MaxDelta caps a single frame's delta time. A window drag or a debugger
// pause would otherwise move the camera by seconds of input at once.
const MaxDelta = 250 * time.Millisecond

// Frame measures wall-clock time between rendered frames.
type Frame struct {
	start time.Time
	last  time.Time
	delta time.Duration
}

// NewFrame creates a frame clock whose time zero is start.
func NewFrame(start time.Time) *Frame {
	return &Frame{start: start, last: start}
}

// Advance marks the beginning of a new frame at now.
func (f *Frame) Advance(now time.Time) {
	d := now.Sub(f.last)
	if d < 0 {
		d = 0
	}
	if d > MaxDelta {
		d = MaxDelta
	}
	f.delta = d
	f.last = now
}

// Now returns seconds between the clock's start and the current frame.
func (f *Frame) Now() float64 {
	return f.last.Sub(f.start).Seconds()
}

// DeltaTime returns the current frame's duration in seconds.
func (f *Frame) DeltaTime() float32 {
	return float32(f.delta.Seconds())
}

// Manual is a clock stepped explicitly, for headless runs and tests.
type Manual struct {
	now   float64
	delta float32
}

// Step advances the clock by dt seconds and makes dt the frame delta.
func (m *Manual) Step(dt float32) {
	m.now += float64(dt)
	m.delta = dt
}

// Set jumps to an absolute time with the given frame delta.
func (m *Manual) Set(now float64, dt float32) {
	m.now = now
	m.delta = dt
}

// Now returns the current time in seconds.
func (m *Manual) Now() float64 { return m.now }

// DeltaTime returns the last step in seconds.
func (m *Manual) DeltaTime() float32 { return m.delta }
