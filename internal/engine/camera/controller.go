// Package camera implements the RTS camera rig controller. It pans the rig
// target and eases the follow offset for zoom and rotation.
package camera

import (
	"go.uber.org/zap"

	"github.com/Faultbox/rtscam/internal/config"
	"github.com/Faultbox/rtscam/internal/engine/input"
	"github.com/Faultbox/rtscam/internal/engine/rig"
	"github.com/Faultbox/rtscam/pkg/math"
)

// Input is the per-frame input snapshot the controller polls.
type Input interface {
	Held(input.Action) bool
	Pressed(input.Action) bool
	Released(input.Action) bool
	// Pointer returns the pointer in window pixels, Y growing upward.
	Pointer() (x, y float32)
}

// Clock supplies frame timing in seconds.
type Clock interface {
	Now() float64
	DeltaTime() float32
}

// Screen reports the window size in pixels.
type Screen interface {
	Size() (w, h int)
}

// FixedScreen is a Screen of constant size.
type FixedScreen struct {
	W, H int
}

// Size returns the fixed size.
func (s FixedScreen) Size() (int, int) { return s.W, s.H }

// Rig is a camera that may carry a follow-offset component.
type Rig interface {
	Follow() (rig.Follower, bool)
}

// Target is the world-space transform panning moves.
type Target interface {
	Position() math.Vec3
	SetPosition(math.Vec3)
}

// RigController drives an RTS camera rig from keyboard and pointer input.
// Panning moves the target; zoom and rotation reshape the follow offset.
type RigController struct {
	cfg    config.CameraConfig
	target Target
	screen Screen
	log    *zap.Logger

	follow   rig.Follower
	canBlend bool

	startingOffset math.Vec3
	maxRotation    float32

	zoomStart     float64
	rotationStart float64
}

// New creates a controller for cam and target.
//
// The starting follow offset and the rotation radius are read from cam once,
// here. If cam has no follow component an error is logged and the controller
// only pans.
func New(cfg config.CameraConfig, cam Rig, target Target, screen Screen, log *zap.Logger) *RigController {
	if log == nil {
		log = zap.NewNop()
	}
	c := &RigController{
		cfg:    cfg,
		target: target,
		screen: screen,
		log:    log,
	}

	follow, ok := cam.Follow()
	if !ok {
		log.Error("camera rig has no follow component; zoom and rotation disabled")
		return c
	}

	c.follow = follow
	c.canBlend = true
	c.startingOffset = follow.FollowOffset()
	c.maxRotation = math.Abs(c.startingOffset.Z)

	log.Debug("camera controller ready",
		zap.Float32("offset_x", c.startingOffset.X),
		zap.Float32("offset_y", c.startingOffset.Y),
		zap.Float32("offset_z", c.startingOffset.Z),
		zap.Float32("max_rotation", c.maxRotation),
	)
	return c
}

// CanBlend reports whether zoom and rotation can act on a follow offset.
func (c *RigController) CanBlend() bool {
	return c.canBlend
}

// StartingOffset returns the follow offset captured at construction.
func (c *RigController) StartingOffset() math.Vec3 {
	return c.startingOffset
}

// MaxRotation returns how far to either side rotation swings the offset.
func (c *RigController) MaxRotation() float32 {
	return c.maxRotation
}

// Config returns the tuning in use.
func (c *RigController) Config() config.CameraConfig {
	return c.cfg
}

// SetConfig installs new tuning. Call it between ticks. The starting offset
// and rotation radius are kept; blends in flight continue on their timers.
func (c *RigController) SetConfig(cfg config.CameraConfig) {
	c.cfg = cfg
	c.log.Info("camera config updated",
		zap.Bool("edge_pan", cfg.EnableEdgePan),
		zap.Bool("zoom", cfg.EnableZoom),
		zap.Bool("rotation", cfg.EnableRotation),
	)
}

// Tick advances the rig by one frame. Call it exactly once per rendered
// frame.
func (c *RigController) Tick(clk Clock, in Input) {
	now := clk.Now()

	c.pan(clk.DeltaTime(), in)

	if !c.canBlend {
		return
	}
	if c.cfg.EnableZoom {
		c.zoom(now, in)
	}
	if c.cfg.EnableRotation {
		c.rotate(now, in)
	}
}
