// Package main is the Ebitengine camera rig viewer.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/Faultbox/rtscam/internal/config"
	"github.com/Faultbox/rtscam/internal/engine/clock"
	"github.com/Faultbox/rtscam/internal/engine/ebitenio"
	"github.com/Faultbox/rtscam/internal/game"
	"github.com/Faultbox/rtscam/internal/logger"
)

var background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x26, A: 0xff}

type viewer struct {
	game   *game.Game
	input  *ebitenio.Input
	screen *ebitenio.Screen
	clock  clock.Manual
}

// Update steps the clock by one Ebitengine tick, so blend timing follows
// the fixed update rate rather than the wall clock.
func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	v.clock.Step(1 / float32(ebiten.TPS()))
	v.game.Update(&v.clock, v.input)
	if v.game.Frames()%uint64(ebiten.TPS()) == 0 {
		v.game.LogStatus()
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s\nTPS %.0f", v.game.Status(), ebiten.ActualTPS()))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	v.screen.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
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

	logger.Info("=== RTS Camera Rig (Ebitengine) ===")

	screen := ebitenio.NewScreen(cfg.Graphics.Width, cfg.Graphics.Height)
	in, err := ebitenio.NewInput(cfg.Bindings.Bindings(), screen)
	if err != nil {
		logger.Error("failed to resolve key bindings", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	g := game.New(cfg, screen, logger.Named("game"))
	defer g.Close()
	if cfgPath != "" {
		if err := g.WatchConfig(cfgPath); err != nil {
			logger.Warn("config hot reload unavailable", zap.Error(err))
		}
	}

	ebiten.SetWindowTitle("RTS Camera Rig")
	ebiten.SetWindowSize(cfg.Graphics.Width, cfg.Graphics.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Graphics.Fullscreen)
	ebiten.SetVsyncEnabled(cfg.Graphics.VSync)

	if err := ebiten.RunGame(&viewer{game: g, input: in, screen: screen}); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
