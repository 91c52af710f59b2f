// Package geometry implements the draw rectangle resolution stage.
package geometry

import (
	"context"
	"fmt"
	"math"

	"github.com/user/storeshot/pkg/pipeline"
)

// Stage resolves the draw rectangles for an export.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new geometry stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute resolves the geometry based on the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.GeometryInput) (pipeline.GeometryResult, error) {
	if input.SourceWidth <= 0 || input.SourceHeight <= 0 {
		return pipeline.GeometryResult{}, fmt.Errorf("source dimensions must be positive, got %dx%d", input.SourceWidth, input.SourceHeight)
	}
	if input.TargetWidth <= 0 || input.TargetHeight <= 0 {
		return pipeline.GeometryResult{}, fmt.Errorf("target dimensions must be positive, got %dx%d", input.TargetWidth, input.TargetHeight)
	}
	return ResolveGeometry(input), nil
}

// ResolveGeometry computes the draw rectangles for the given dimensions,
// fit mode and zoom. This is exposed as a standalone function for testing
// and reuse.
//
// Every value is rounded to an integer exactly once, at the point it
// becomes a drawing coordinate or size, so planning and drawing cannot
// drift apart.
func ResolveGeometry(input pipeline.GeometryInput) pipeline.GeometryResult {
	zoom := pipeline.ClampZoom(input.ZoomPercent)

	if input.Mode == pipeline.ModeFit {
		return pipeline.GeometryResult{
			Mode: pipeline.ModeFit,
			Dest: fitRect(input, zoom),
		}
	}
	return pipeline.GeometryResult{
		Mode:       pipeline.ModeFill,
		SourceCrop: fillCrop(input, zoom),
	}
}

// fitRect computes the destination rectangle for fit mode: the largest
// source-aspect rectangle inside the target, scaled by zoom and re-centered.
// Zoom above 100% deliberately pushes the rectangle outside the target
// bounds; the overflow is clipped by the surface during drawing. Zoom below
// 100% shrinks inward and reveals background.
func fitRect(input pipeline.GeometryInput, zoom float64) pipeline.Rectangle {
	srcAspect := float64(input.SourceWidth) / float64(input.SourceHeight)
	dstAspect := float64(input.TargetWidth) / float64(input.TargetHeight)

	var drawW, drawH float64
	if srcAspect > dstAspect {
		// Width-constrained.
		drawW = float64(input.TargetWidth)
		drawH = drawW / srcAspect
	} else {
		// Height-constrained.
		drawH = float64(input.TargetHeight)
		drawW = drawH * srcAspect
	}

	width := atLeastOne(math.Round(drawW * zoom))
	height := atLeastOne(math.Round(drawH * zoom))

	return pipeline.Rectangle{
		X:      int(math.Round(float64(input.TargetWidth-width) / 2)),
		Y:      int(math.Round(float64(input.TargetHeight-height) / 2)),
		Width:  width,
		Height: height,
	}
}

// fillCrop computes the source crop rectangle for fill mode: the largest
// target-aspect rectangle inside the source, divided by zoom and centered.
// Dividing (rather than multiplying) means zoom above 100% crops in tighter
// and zoom below 100% shows more of the source, matching fill mode's
// "viewport zoom" semantics.
func fillCrop(input pipeline.GeometryInput, zoom float64) pipeline.Rectangle {
	srcAspect := float64(input.SourceWidth) / float64(input.SourceHeight)
	dstAspect := float64(input.TargetWidth) / float64(input.TargetHeight)

	var baseSW, baseSH float64
	if srcAspect > dstAspect {
		// Height-constrained: crop full source height.
		baseSH = float64(input.SourceHeight)
		baseSW = baseSH * dstAspect
	} else {
		// Width-constrained: crop full source width.
		baseSW = float64(input.SourceWidth)
		baseSH = baseSW / dstAspect
	}

	cropW := baseSW / zoom
	cropH := baseSH / zoom
	if cropW > float64(input.SourceWidth) {
		cropW = float64(input.SourceWidth)
	}
	if cropH > float64(input.SourceHeight) {
		cropH = float64(input.SourceHeight)
	}

	width := atLeastOne(math.Round(cropW))
	height := atLeastOne(math.Round(cropH))

	return pipeline.Rectangle{
		X:      clampOffset(int(math.Round(float64(input.SourceWidth-width)/2)), input.SourceWidth-width),
		Y:      clampOffset(int(math.Round(float64(input.SourceHeight-height)/2)), input.SourceHeight-height),
		Width:  width,
		Height: height,
	}
}

// clampOffset keeps a crop offset within [0, max].
func clampOffset(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// atLeastOne converts a rounded value to int while guarding against
// degenerate zero-sized rectangles.
func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}
