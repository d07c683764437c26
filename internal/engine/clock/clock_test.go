package clock

import (
	"testing"
	"time"
)

func TestFrameAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFrame(start)

	if f.Now() != 0 || f.DeltaTime() != 0 {
		t.Fatalf("fresh clock: now=%v dt=%v, want 0/0", f.Now(), f.DeltaTime())
	}

	f.Advance(start.Add(16 * time.Millisecond))
	if got := f.DeltaTime(); got < 0.0159 || got > 0.0161 {
		t.Errorf("DeltaTime() = %v, want ~0.016", got)
	}
	if got := f.Now(); got < 0.0159 || got > 0.0161 {
		t.Errorf("Now() = %v, want ~0.016", got)
	}
}

func TestFrameClampsLongFrames(t *testing.T) {
	start := time.Now()
	f := NewFrame(start)
	f.Advance(start.Add(3 * time.Second))

	if got, want := f.DeltaTime(), float32(MaxDelta.Seconds()); got != want {
		t.Errorf("DeltaTime() = %v, want clamp %v", got, want)
	}
	// Absolute time is not clamped; blend timers measure real elapsed time.
	if got := f.Now(); got != 3 {
		t.Errorf("Now() = %v, want 3", got)
	}
}

func TestFrameIgnoresBackwardsTime(t *testing.T) {
	start := time.Now()
	f := NewFrame(start)
	f.Advance(start.Add(time.Second))
	f.Advance(start.Add(500 * time.Millisecond))
	if got := f.DeltaTime(); got != 0 {
		t.Errorf("DeltaTime() = %v, want 0", got)
	}
}

func TestManual(t *testing.T) {
	var m Manual
	m.Step(0.5)
	m.Step(0.25)
	if m.Now() != 0.75 {
		t.Errorf("Now() = %v, want 0.75", m.Now())
	}
	if m.DeltaTime() != 0.25 {
		t.Errorf("DeltaTime() = %v, want 0.25", m.DeltaTime())
	}
	m.Set(10, 0)
	if m.Now() != 10 || m.DeltaTime() != 0 {
		t.Errorf("after Set: now=%v dt=%v", m.Now(), m.DeltaTime())
	}
}
