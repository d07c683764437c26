package camera

import (
	"github.com/Faultbox/rtscam/internal/engine/input"
	"github.com/Faultbox/rtscam/pkg/math"
)

// pan moves the target across the XZ plane.
func (c *RigController) pan(dt float32, in Input) {
	move := c.keyboardMove(in).Add(c.pointerMove(in))
	if move.IsZero() || dt == 0 {
		return
	}
	c.target.SetPosition(c.target.Position().Add(move.Scale(dt).XZ()))
}

// keyboardMove sums one speed step per held pan key. Opposite keys cancel
// and diagonals are not normalized.
func (c *RigController) keyboardMove(in Input) math.Vec2 {
	var move math.Vec2
	speed := c.cfg.KeyboardPanSpeed
	if in.Held(input.PanUp) {
		move.Y += speed
	}
	if in.Held(input.PanLeft) {
		move.X -= speed
	}
	if in.Held(input.PanDown) {
		move.Y -= speed
	}
	if in.Held(input.PanRight) {
		move.X += speed
	}
	return move
}

// pointerMove pans while the pointer rests within EdgePanSize of a screen
// border. Left wins over right and the far (large Y) edge over the near one.
func (c *RigController) pointerMove(in Input) math.Vec2 {
	var move math.Vec2
	if !c.cfg.EnableEdgePan || c.screen == nil {
		return move
	}

	x, y := in.Pointer()
	w, h := c.screen.Size()
	edge := c.cfg.EdgePanSize
	speed := c.cfg.MousePanSpeed

	if x <= edge {
		move.X -= speed
	} else if x >= float32(w)-edge {
		move.X += speed
	}
	if y >= float32(h)-edge {
		move.Y += speed
	} else if y <= edge {
		move.Y -= speed
	}
	return move
}
