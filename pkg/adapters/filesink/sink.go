// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/storeshot/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new FileSink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveGeometryJSON saves the resolved geometry as JSON.
func (s *Sink) SaveGeometryJSON(data []byte) error {
	path := filepath.Join(s.baseDir, "geometry.json")
	return s.fs.WriteFile(path, data)
}

// SaveComposedSurface saves the target-sized surface before framing.
func (s *Sink) SaveComposedSurface(img image.Image) error {
	return s.savePNG("composed.png", img)
}

// SaveFramedSurface saves the enlarged surface after framing.
func (s *Sink) SaveFramedSurface(img image.Image) error {
	return s.savePNG("framed.png", img)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
