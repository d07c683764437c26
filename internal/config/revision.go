package config

import (
	"errors"
	"fmt"
)

// ErrUnknownRevision is returned for a revision name with no preset.
var ErrUnknownRevision = errors.New("unknown camera revision")

// Revisions lists the feature presets, smallest first.
var Revisions = []string{"pan", "zoom", "rotate", "full"}

// ApplyRevision switches the controller features on or off to match a
// preset. Tuning values are left alone.
//
//	pan     panning only
//	zoom    panning and zoom
//	rotate  panning, zoom and rotation
//	full    same as rotate
func (c *CameraConfig) ApplyRevision(name string) error {
	switch name {
	case "pan":
		c.EnableZoom = false
		c.EnableRotation = false
	case "zoom":
		c.EnableZoom = true
		c.EnableRotation = false
	case "rotate", "full":
		c.EnableZoom = true
		c.EnableRotation = true
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRevision, name)
	}
	return nil
}
