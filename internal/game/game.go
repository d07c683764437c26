// Package game ties a camera rig, its controller, and config hot reload into
// the per-frame update both viewers run.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/rtscam/internal/config"
	"github.com/Faultbox/rtscam/internal/engine/camera"
	"github.com/Faultbox/rtscam/internal/engine/rig"
)

// Game is one camera rig session.
type Game struct {
	Controller *camera.RigController
	Camera     *rig.Camera
	Target     *rig.Transform

	cfg     config.Config
	log     *zap.Logger
	watcher *config.Watcher
	updates <-chan *config.Config
	errs    <-chan error
	frames  uint64
}

// New builds the rig described by cfg and a controller for it.
func New(cfg *config.Config, screen camera.Screen, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	cam, target := rig.FromConfig(cfg.Rig)
	g := &Game{
		Camera: cam,
		Target: target,
		cfg:    *cfg,
		log:    log,
	}
	g.Controller = camera.New(cfg.Camera, cam, target, screen, log.Named("camera"))
	return g
}

// WatchConfig reloads camera tuning from path whenever it changes. Changes
// to other sections are logged and take effect on the next start.
func (g *Game) WatchConfig(path string) error {
	w, err := config.Watch(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	g.Attach(w.Updates, w.Errors)
	g.watcher = w
	g.log.Info("watching config for changes", zap.String("path", w.Path()))
	return nil
}

// Attach feeds config reloads from the given channels into the session.
func (g *Game) Attach(updates <-chan *config.Config, errs <-chan error) {
	g.updates = updates
	g.errs = errs
}

// Update runs one frame: apply a pending reload, then tick the controller.
func (g *Game) Update(clk camera.Clock, in camera.Input) {
	g.applyReload()
	g.Controller.Tick(clk, in)
	g.frames++
}

// Frames returns how many frames have run.
func (g *Game) Frames() uint64 {
	return g.frames
}

func (g *Game) applyReload() {
	select {
	case cfg, ok := <-g.updates:
		if !ok {
			g.updates = nil
			return
		}
		g.Controller.SetConfig(cfg.Camera)
		g.cfg.Camera = cfg.Camera
		if pending := g.restartSections(cfg); len(pending) > 0 {
			g.log.Warn("config sections changed on disk apply after restart",
				zap.Strings("sections", pending))
		}
	case err, ok := <-g.errs:
		if !ok {
			g.errs = nil
			return
		}
		g.log.Warn("config reload failed; keeping previous settings", zap.Error(err))
	default:
	}
}

// restartSections lists the sections of cfg that differ from the running
// session. Only camera tuning is applied live.
func (g *Game) restartSections(cfg *config.Config) []string {
	var pending []string
	if cfg.Graphics != g.cfg.Graphics {
		pending = append(pending, "graphics")
	}
	if cfg.Rig != g.cfg.Rig {
		pending = append(pending, "rig")
	}
	if cfg.Bindings != g.cfg.Bindings {
		pending = append(pending, "bindings")
	}
	if cfg.Logging != g.cfg.Logging {
		pending = append(pending, "logging")
	}
	return pending
}

// Status describes the rig in one line.
func (g *Game) Status() string {
	p := g.Target.Position()
	o := g.Camera.Offset()
	return fmt.Sprintf("target (%.2f, %.2f, %.2f)  offset (%.2f, %.2f, %.2f)",
		p.X, p.Y, p.Z, o.X, o.Y, o.Z)
}

// LogStatus writes the rig state at debug level.
func (g *Game) LogStatus() {
	p := g.Target.Position()
	o := g.Camera.Offset()
	g.log.Debug("rig",
		zap.Uint64("frame", g.frames),
		zap.Float32("target_x", p.X),
		zap.Float32("target_z", p.Z),
		zap.Float32("offset_x", o.X),
		zap.Float32("offset_y", o.Y),
		zap.Float32("offset_z", o.Z),
	)
}

// Close stops the config watcher, if any.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("closing config watcher", zap.Error(err))
		}
		g.watcher = nil
	}
}
