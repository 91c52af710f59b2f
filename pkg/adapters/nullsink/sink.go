// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/storeshot/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveGeometryJSON does nothing.
func (s *Sink) SaveGeometryJSON(data []byte) error {
	return nil
}

// SaveComposedSurface does nothing.
func (s *Sink) SaveComposedSurface(img image.Image) error {
	return nil
}

// SaveFramedSurface does nothing.
func (s *Sink) SaveFramedSurface(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
