package camera

import (
	"github.com/Faultbox/rtscam/internal/engine/input"
	"github.com/Faultbox/rtscam/pkg/math"
)

// blendFactor maps time since a blend started to [0, 1].
func blendFactor(speed float32, now, start float64) float32 {
	return math.Clamp01(speed * float32(now-start))
}

// zoom eases the offset height toward MinZoomDistance while the zoom key is
// held and back to the starting height otherwise. Both the press and the
// release restart the ease.
func (c *RigController) zoom(now float64, in Input) {
	if in.Pressed(input.Zoom) || in.Released(input.Zoom) {
		c.zoomStart = now
	}
	t := blendFactor(c.cfg.ZoomSpeed, now, c.zoomStart)

	cur := c.follow.FollowOffset()
	target := math.Vec3{X: cur.X, Y: c.startingOffset.Y, Z: cur.Z}
	if in.Held(input.Zoom) {
		target.Y = c.cfg.MinZoomDistance
	}

	c.follow.SetFollowOffset(math.Slerp(cur, target, t))
}

// rotate swings the offset to +maxRotation on X while rotate-right is held,
// to -maxRotation while rotate-left is held, and back to the starting X/Z
// otherwise. Any press or release of either key restarts the ease. Height
// is left to zoom.
func (c *RigController) rotate(now float64, in Input) {
	if in.Pressed(input.RotateLeft) || in.Pressed(input.RotateRight) ||
		in.Released(input.RotateLeft) || in.Released(input.RotateRight) {
		c.rotationStart = now
	}
	t := blendFactor(c.cfg.RotationSpeed, now, c.rotationStart)

	cur := c.follow.FollowOffset()
	var target math.Vec3
	switch {
	case in.Held(input.RotateRight):
		target = math.Vec3{X: c.maxRotation, Y: cur.Y, Z: 0}
	case in.Held(input.RotateLeft):
		target = math.Vec3{X: -c.maxRotation, Y: cur.Y, Z: 0}
	default:
		target = math.Vec3{X: c.startingOffset.X, Y: cur.Y, Z: c.startingOffset.Z}
	}

	c.follow.SetFollowOffset(math.Slerp(cur, target, t))
}
