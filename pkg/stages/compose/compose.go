// Package compose implements the background painting and drawing stage.
package compose

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/user/storeshot/pkg/pipeline"
	"github.com/user/storeshot/pkg/ports"
)

// Stage paints the target surface: the letterbox background first (fit
// mode only), then the source image according to the resolved geometry.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("compose"),
	}
}

// Execute paints the target-sized surface.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	canvas, err := s.renderer.CreateCanvas(input.TargetWidth, input.TargetHeight, color.Transparent)
	if err != nil {
		return pipeline.ComposeResult{}, fmt.Errorf("create target surface: %w", err)
	}

	if input.Geometry.Mode == pipeline.ModeFit {
		s.paintBackground(canvas, input)
		s.drawFit(canvas, input)
	} else {
		s.drawFill(canvas, input)
	}

	return pipeline.ComposeResult{Image: canvas.ToImage()}, nil
}

// paintBackground fills the surface before the image is drawn so the image
// composites on top.
func (s *Stage) paintBackground(canvas ports.Canvas, input pipeline.ComposeInput) {
	switch input.Background {
	case pipeline.BackgroundSolid:
		c := input.BackgroundColor
		if c == nil {
			c = color.Black
		}
		canvas.DrawRect(0, 0, input.TargetWidth, input.TargetHeight, c)
		s.logger.Debug("Painted solid background")
	case pipeline.BackgroundGradient:
		top, bottom := input.GradientTop, input.GradientBottom
		if top == nil {
			top = color.Black
		}
		if bottom == nil {
			bottom = color.Black
		}
		canvas.FillVerticalGradient(0, 0, input.TargetWidth, input.TargetHeight, top, bottom)
		s.logger.Debug("Painted gradient background")
	default:
		// Transparent: re-clear immediately before drawing so no residual
		// paint from a reused surface survives into this export.
		canvas.Clear(color.Transparent)
		s.logger.Debug("Cleared background to transparent")
	}
}

// drawFit scales the whole source uniformly into the destination rectangle.
// With zoom above 100% the rectangle extends past the surface and the
// overflow is clipped by the canvas bounds.
func (s *Stage) drawFit(canvas ports.Canvas, input pipeline.ComposeInput) {
	dest := input.Geometry.Dest
	resized := s.renderer.ResizeImage(input.Source, dest.Width, dest.Height)
	canvas.DrawImage(resized, dest.X, dest.Y)
	s.logger.Debug("Drew source at %d,%d (%dx%d)", dest.X, dest.Y, dest.Width, dest.Height)
}

// drawFill crops the resolved source rectangle and stretches it to exactly
// fill the target surface.
func (s *Stage) drawFill(canvas ports.Canvas, input pipeline.ComposeInput) {
	crop := input.Geometry.SourceCrop
	region := extractRegion(input.Source, crop.X, crop.Y, crop.Width, crop.Height)
	if region == nil {
		return
	}
	resized := s.renderer.ResizeImage(region, input.TargetWidth, input.TargetHeight)
	canvas.DrawImage(resized, 0, 0)
	s.logger.Debug("Drew crop %d,%d (%dx%d) stretched to %dx%d", crop.X, crop.Y, crop.Width, crop.Height, input.TargetWidth, input.TargetHeight)
}

// extractRegion copies a portion of an image.
// IMPORTANT: Returns an image with bounds starting at (0,0) for
// compatibility with drawing libraries like gg that may not handle
// non-zero bounds correctly.
func extractRegion(img image.Image, x, y, width, height int) image.Image {
	bounds := img.Bounds()

	srcX := bounds.Min.X + x
	srcY := bounds.Min.Y + y

	if srcX < bounds.Min.X {
		srcX = bounds.Min.X
	}
	if srcY < bounds.Min.Y {
		srcY = bounds.Min.Y
	}
	if srcX+width > bounds.Max.X {
		width = bounds.Max.X - srcX
	}
	if srcY+height > bounds.Max.Y {
		height = bounds.Max.Y - srcY
	}

	if width <= 0 || height <= 0 {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, width, height))
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			result.Set(dx, dy, img.At(srcX+dx, srcY+dy))
		}
	}
	return result
}
