// Package math provides the float32 vector types shared by the camera rig,
// its controller, and the backends.
package math

import "math"

// Vec2 is a 2D vector. The camera controller uses it for the screen-space
// pan vector before it is lifted onto the XZ ground plane.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// XZ lifts v onto the ground plane: X stays X, Y becomes Z, height is zero.
func (v Vec2) XZ() Vec3 {
	return Vec3{X: v.X, Y: 0, Z: v.Y}
}
