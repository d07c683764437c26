package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks values the controller cannot work with.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Camera.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Bindings.Bindings().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if c.Graphics.Width < 0 || c.Graphics.Height < 0 {
		errs = append(errs, fmt.Errorf("%w: graphics size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height))
	}
	if c.Rig.FOV <= 0 || c.Rig.FOV >= 180 {
		errs = append(errs, fmt.Errorf("%w: rig fov %v out of (0, 180)", ErrInvalid, c.Rig.FOV))
	}
	if c.Rig.Near <= 0 || c.Rig.Far <= c.Rig.Near {
		errs = append(errs, fmt.Errorf("%w: rig clip planes near=%v far=%v", ErrInvalid, c.Rig.Near, c.Rig.Far))
	}

	return errors.Join(errs...)
}

// Validate checks the controller tuning.
func (c CameraConfig) Validate() error {
	var errs []error
	nonNegative := []struct {
		name  string
		value float32
	}{
		{"keyboard_pan_speed", c.KeyboardPanSpeed},
		{"mouse_pan_speed", c.MousePanSpeed},
		{"edge_pan_size", c.EdgePanSize},
		{"zoom_speed", c.ZoomSpeed},
		{"rotation_speed", c.RotationSpeed},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			errs = append(errs, fmt.Errorf("%w: camera %s is negative (%v)", ErrInvalid, f.name, f.value))
		}
	}
	if c.MinZoomDistance <= 0 {
		errs = append(errs, fmt.Errorf("%w: camera min_zoom_distance must be positive (%v)", ErrInvalid, c.MinZoomDistance))
	}
	return errors.Join(errs...)
}
