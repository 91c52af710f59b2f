// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/storeshot/pkg/pipeline"
	"github.com/user/storeshot/pkg/ports"
)

// Stage serializes the final surface to an encoded byte blob.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes the surface. Quality is clamped to [40, 95] for lossy
// formats and ignored for PNG.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	if input.Image == nil {
		return pipeline.EncodeResult{}, fmt.Errorf("%w: no surface to encode", pipeline.ErrEncodeFailed)
	}

	quality := pipeline.ClampQuality(input.Quality)

	data, err := s.renderer.EncodeImage(input.Image, input.Format.ImageFormat(), quality)
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("encode %s: %w", input.Format, err)
	}

	s.logger.Debug("Encoded %s at quality %d: %d bytes", input.Format, quality, len(data))

	return pipeline.EncodeResult{
		Data:     data,
		Format:   input.Format,
		FileSize: int64(len(data)),
	}, nil
}
