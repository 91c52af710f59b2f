// Package deviceframe implements the device bezel compositing stage.
package deviceframe

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/user/storeshot/pkg/pipeline"
	"github.com/user/storeshot/pkg/ports"
)

// Notch constants for the iPhone frame. The pill is centered at the top of
// the interior region and bleeds upward into the bezel.
const (
	notchMaxWidth   = 120
	notchWidthRatio = 0.35
	notchHeight     = 28
	notchBleed      = 12
)

// Stage composites a device bezel around the target-sized surface,
// replacing it with an enlarged surface.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new device frame stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("deviceframe"),
	}
}

// Execute overlays the selected bezel. FrameNone passes the surface
// through unchanged.
func (s *Stage) Execute(ctx context.Context, input pipeline.FrameInput) (pipeline.FrameResult, error) {
	if input.Frame == pipeline.FrameNone {
		return pipeline.FrameResult{Image: input.Image}, nil
	}

	pad := pipeline.PaddingFor(input.Frame)
	width := input.TargetWidth + pad.Left + pad.Right
	height := input.TargetHeight + pad.Top + pad.Bottom

	bezel := input.BezelColor
	if bezel == nil {
		bezel = color.Black
	}

	canvas, err := s.renderer.CreateCanvas(width, height, bezel)
	if err != nil {
		return pipeline.FrameResult{}, fmt.Errorf("create framed surface: %w", err)
	}

	// Draw the composited image into the interior, clipped to the rounded
	// screen opening.
	radius := pipeline.CornerRadiusFor(input.Frame)
	canvas.ClipRoundedRect(pad.Left, pad.Top, input.TargetWidth, input.TargetHeight, radius)
	canvas.DrawImage(input.Image, pad.Left, pad.Top)
	canvas.ResetClip()

	if input.Frame == pipeline.FrameIPhone {
		s.drawNotch(canvas, pad, input.TargetWidth, bezel)
	}

	s.logger.Debug("Framed %dx%d surface as %s (%dx%d)", input.TargetWidth, input.TargetHeight, input.Frame, width, height)

	return pipeline.FrameResult{Image: canvas.ToImage()}, nil
}

// drawNotch paints the opaque pill at the top edge of the interior region.
// The pill starts above the interior edge so it appears to cut into the
// bezel.
func (s *Stage) drawNotch(canvas ports.Canvas, pad pipeline.FramePadding, targetWidth int, bezel color.Color) {
	width := int(math.Round(notchWidthRatio * float64(targetWidth)))
	if width > notchMaxWidth {
		width = notchMaxWidth
	}
	x := pad.Left + (targetWidth-width)/2
	y := pad.Top - notchBleed
	canvas.DrawRoundedRect(x, y, width, notchHeight+notchBleed, notchHeight/2, bezel)
}
