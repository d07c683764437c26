// Package config handles camera rig configuration loading and management.
package config

import (
	"github.com/Faultbox/rtscam/internal/engine/input"
	"github.com/Faultbox/rtscam/pkg/math"
)

// Config holds all settings for a camera rig session.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Rig      RigConfig      `yaml:"rig"`
	Bindings BindingsConfig `yaml:"bindings"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the controller tuning. Speeds are in world units per
// second; EdgePanSize is in pixels.
type CameraConfig struct {
	KeyboardPanSpeed float32 `yaml:"keyboard_pan_speed"`
	MousePanSpeed    float32 `yaml:"mouse_pan_speed"`
	EdgePanSize      float32 `yaml:"edge_pan_size"`
	EnableEdgePan    bool    `yaml:"enable_edge_pan"`

	EnableZoom      bool    `yaml:"enable_zoom"`
	ZoomSpeed       float32 `yaml:"zoom_speed"`
	MinZoomDistance float32 `yaml:"min_zoom_distance"`

	EnableRotation bool    `yaml:"enable_rotation"`
	RotationSpeed  float32 `yaml:"rotation_speed"`
}

// RigConfig describes the camera rig built at startup.
type RigConfig struct {
	Target Vec3 `yaml:"target"`
	// Follow controls whether the rig camera gets a follow component.
	// Without one the controller can only pan.
	Follow       bool    `yaml:"follow"`
	FollowOffset Vec3    `yaml:"follow_offset"`
	FOV          float32 `yaml:"fov"` // degrees
	Near         float32 `yaml:"near"`
	Far          float32 `yaml:"far"`
}

// Vec3 is a YAML-friendly vector: {x: 0, y: 10, z: -10}.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Vec converts to a math vector.
func (v Vec3) Vec() math.Vec3 {
	return math.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// BindingsConfig holds the key name for each camera action.
type BindingsConfig struct {
	PanUp       string `yaml:"pan_up"`
	PanDown     string `yaml:"pan_down"`
	PanLeft     string `yaml:"pan_left"`
	PanRight    string `yaml:"pan_right"`
	Zoom        string `yaml:"zoom"`
	RotateLeft  string `yaml:"rotate_left"`
	RotateRight string `yaml:"rotate_right"`
}

// Bindings converts to the input package's action map.
func (b BindingsConfig) Bindings() input.Bindings {
	return input.Bindings{
		input.PanUp:       b.PanUp,
		input.PanDown:     b.PanDown,
		input.PanLeft:     b.PanLeft,
		input.PanRight:    b.PanRight,
		input.Zoom:        b.Zoom,
		input.RotateLeft:  b.RotateLeft,
		input.RotateRight: b.RotateRight,
	}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultCamera returns the controller tuning used when nothing overrides it.
func DefaultCamera() CameraConfig {
	return CameraConfig{
		KeyboardPanSpeed: 5,
		MousePanSpeed:    5,
		EdgePanSize:      50,
		EnableEdgePan:    true,
		EnableZoom:       true,
		ZoomSpeed:        1,
		MinZoomDistance:  7.5,
		EnableRotation:   true,
		RotationSpeed:    1,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	b := input.DefaultBindings()
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: DefaultCamera(),
		Rig: RigConfig{
			Follow:       true,
			FollowOffset: Vec3{X: 0, Y: 20, Z: -10},
			FOV:          60,
			Near:         0.1,
			Far:          1000,
		},
		Bindings: BindingsConfig{
			PanUp:       b[input.PanUp],
			PanDown:     b[input.PanDown],
			PanLeft:     b[input.PanLeft],
			PanRight:    b[input.PanRight],
			Zoom:        b[input.Zoom],
			RotateLeft:  b[input.RotateLeft],
			RotateRight: b[input.RotateRight],
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
