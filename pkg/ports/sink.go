package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveGeometryJSON saves the resolved geometry as JSON.
	SaveGeometryJSON(data []byte) error

	// SaveComposedSurface saves the target-sized surface after background
	// painting and drawing, before any device frame is applied.
	SaveComposedSurface(img image.Image) error

	// SaveFramedSurface saves the enlarged surface after the device frame
	// has been composited.
	SaveFramedSurface(img image.Image) error
}
