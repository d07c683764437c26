// Package rig provides the camera rig the controller drives: a world-space
// target transform and a camera that follows it at an offset.
package rig

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/rtscam/internal/config"
	"github.com/Faultbox/rtscam/pkg/math"
)

// Transform is a world-space position the camera tracks.
type Transform struct {
	position math.Vec3
}

// NewTransform creates a transform at pos.
func NewTransform(pos math.Vec3) *Transform {
	return &Transform{position: pos}
}

// Position returns the world position.
func (t *Transform) Position() math.Vec3 {
	return t.position
}

// SetPosition moves the transform.
func (t *Transform) SetPosition(pos math.Vec3) {
	t.position = pos
}

// Follower is the follow-offset component of a rig camera.
type Follower interface {
	FollowOffset() math.Vec3
	SetFollowOffset(math.Vec3)
}

// Follow keeps the camera at a fixed offset from its target.
type Follow struct {
	offset math.Vec3
}

// NewFollow creates a follow component with the given offset.
func NewFollow(offset math.Vec3) *Follow {
	return &Follow{offset: offset}
}

// FollowOffset returns the offset from target to camera.
func (f *Follow) FollowOffset() math.Vec3 {
	return f.offset
}

// SetFollowOffset replaces the offset.
func (f *Follow) SetFollowOffset(offset math.Vec3) {
	f.offset = offset
}

// Camera is a rig camera looking at a target, optionally through a follow
// component. Without one it sits on the target.
type Camera struct {
	Target *Transform
	follow *Follow

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32
}

// NewCamera creates a camera tracking target. follow may be nil.
func NewCamera(target *Transform, follow *Follow) *Camera {
	return &Camera{
		Target: target,
		follow: follow,
		FOV:    60,
		Near:   0.1,
		Far:    1000,
	}
}

// FromConfig builds the target and camera described by cfg.
func FromConfig(cfg config.RigConfig) (*Camera, *Transform) {
	target := NewTransform(cfg.Target.Vec())

	var follow *Follow
	if cfg.Follow {
		follow = NewFollow(cfg.FollowOffset.Vec())
	}

	cam := NewCamera(target, follow)
	cam.FOV = cfg.FOV
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	return cam, target
}

// Follow returns the follow component, if the camera has one.
func (c *Camera) Follow() (Follower, bool) {
	if c.follow == nil {
		return nil, false
	}
	return c.follow, true
}

// SetFollow attaches or, with nil, removes the follow component.
func (c *Camera) SetFollow(f *Follow) {
	c.follow = f
}

// Offset returns the follow offset, or zero without a follow component.
func (c *Camera) Offset() math.Vec3 {
	if c.follow == nil {
		return math.Vec3{}
	}
	return c.follow.offset
}

// Position returns the camera's world position.
func (c *Camera) Position() math.Vec3 {
	return c.Target.Position().Add(c.Offset())
}

// ViewMatrix returns the view matrix looking from the camera at its target.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := mgl32.Vec3(c.Position().Array())
	center := mgl32.Vec3(c.Target.Position().Array())
	if eye.ApproxEqual(center) {
		// No follow offset: look straight down.
		eye = center.Add(mgl32.Vec3{0, 1, 0})
		return mgl32.LookAtV(eye, center, mgl32.Vec3{0, 0, -1})
	}
	up := mgl32.Vec3{0, 1, 0}
	if dir := center.Sub(eye).Normalize(); mgl32.Abs(dir.Dot(up)) > 0.999 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return mgl32.LookAtV(eye, center, up)
}

// Projection returns a perspective projection for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}
