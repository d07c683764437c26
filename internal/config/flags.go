package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagRevision   = flag.String("revision", "", "Camera feature preset: pan, zoom, rotate, full")
	flagNoEdgePan  = flag.Bool("no-edge-pan", false, "Disable panning at the screen edges")
	flagNoFollow   = flag.Bool("no-follow", false, "Build the rig without a follow component (pan only)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagRevision != "" {
		if err := cfg.Camera.ApplyRevision(*flagRevision); err != nil {
			return err
		}
	}
	if *flagNoEdgePan {
		cfg.Camera.EnableEdgePan = false
	}
	if *flagNoFollow {
		cfg.Rig.Follow = false
	}
	return nil
}
