// Package main is the SDL2 camera rig viewer.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/rtscam/internal/config"
	"github.com/Faultbox/rtscam/internal/engine/clock"
	"github.com/Faultbox/rtscam/internal/engine/input"
	"github.com/Faultbox/rtscam/internal/engine/window"
	"github.com/Faultbox/rtscam/internal/game"
	"github.com/Faultbox/rtscam/internal/logger"
)

const windowTitle = "RTS Camera Rig"

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, cfgPath, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== RTS Camera Rig (SDL2) ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg, cfgPath); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func run(cfg *config.Config, cfgPath string) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	}, cfg.Bindings.Bindings(), logger.Named("window"))
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	g := game.New(cfg, win, logger.Named("game"))
	defer g.Close()

	if cfgPath != "" {
		if err := g.WatchConfig(cfgPath); err != nil {
			logger.Warn("config hot reload unavailable", zap.Error(err))
		}
	}

	clk := clock.NewFrame(time.Now())
	var in input.State
	lastReport := time.Now()

	for win.PollEvents() {
		now := time.Now()
		clk.Advance(now)
		win.Sample(&in)
		g.Update(clk, &in)

		win.Clear(0.1, 0.1, 0.15)
		win.SwapBuffers()

		if now.Sub(lastReport) >= time.Second {
			g.LogStatus()
			win.SetTitle(windowTitle + " - " + g.Status())
			lastReport = now
		}
	}

	return nil
}
