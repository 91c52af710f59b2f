package geometry

import (
	"context"
	"math"
	"testing"

	"github.com/user/storeshot/pkg/pipeline"
)

// TestResolveGeometry_FillStoreCanvas pins the crop for a landscape photo
// exported to a 6.9" store canvas: the crop is height-constrained and
// centered horizontally.
func TestResolveGeometry_FillStoreCanvas(t *testing.T) {
	result := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth:  3000,
		SourceHeight: 2000,
		TargetWidth:  1290,
		TargetHeight: 2796,
		Mode:         pipeline.ModeFill,
		ZoomPercent:  100,
	})

	if result.Mode != pipeline.ModeFill {
		t.Fatalf("mode: expected fill, got %s", result.Mode)
	}

	// sW = round(2000 * 1290/2796) = round(922.75) = 923, full source height.
	expected := pipeline.Rectangle{X: 1039, Y: 0, Width: 923, Height: 2000}
	if result.SourceCrop != expected {
		t.Errorf("crop: expected %+v, got %+v", expected, result.SourceCrop)
	}
}

// TestResolveGeometry_FitLetterbox pins the destination for a square image
// letterboxed into a portrait canvas: 1080x1080 centered vertically with
// 420px bars above and below.
func TestResolveGeometry_FitLetterbox(t *testing.T) {
	result := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth:  800,
		SourceHeight: 800,
		TargetWidth:  1080,
		TargetHeight: 1920,
		Mode:         pipeline.ModeFit,
		ZoomPercent:  100,
	})

	expected := pipeline.Rectangle{X: 0, Y: 420, Width: 1080, Height: 1080}
	if result.Dest != expected {
		t.Errorf("dest: expected %+v, got %+v", expected, result.Dest)
	}
}

// TestResolveGeometry_FillCropAspect checks that at 100% zoom the crop
// aspect matches the target aspect within one pixel of rounding.
func TestResolveGeometry_FillCropAspect(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
	}{
		{"landscape to portrait", 4032, 3024, 1290, 2796},
		{"portrait to landscape", 1080, 2340, 2048, 1536},
		{"same aspect", 2160, 3840, 1080, 1920},
		{"very wide source", 10000, 200, 1080, 1920},
		{"very tall source", 200, 10000, 1920, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveGeometry(pipeline.GeometryInput{
				SourceWidth:  tt.srcW,
				SourceHeight: tt.srcH,
				TargetWidth:  tt.dstW,
				TargetHeight: tt.dstH,
				Mode:         pipeline.ModeFill,
				ZoomPercent:  100,
			})

			crop := result.SourceCrop
			dstAspect := float64(tt.dstW) / float64(tt.dstH)

			// Reconstruct the unrounded partner dimension and require the
			// rounded value to be within one pixel.
			wantW := float64(crop.Height) * dstAspect
			wantH := float64(crop.Width) / dstAspect
			if math.Abs(float64(crop.Width)-wantW) > 1 && math.Abs(float64(crop.Height)-wantH) > 1 {
				t.Errorf("crop %+v does not match target aspect %.4f", crop, dstAspect)
			}

			// Crop must stay inside source bounds.
			if crop.X < 0 || crop.Y < 0 || crop.X+crop.Width > tt.srcW || crop.Y+crop.Height > tt.srcH {
				t.Errorf("crop %+v exceeds source bounds %dx%d", crop, tt.srcW, tt.srcH)
			}
		})
	}
}

// TestResolveGeometry_FitTouchesEdges checks that at 100% zoom the drawn
// rectangle fits inside the target and touches one full pair of opposite
// edges.
func TestResolveGeometry_FitTouchesEdges(t *testing.T) {
	tests := []struct {
		name                   string
		srcW, srcH, dstW, dstH int
	}{
		{"wide into portrait", 3000, 2000, 1290, 2796},
		{"tall into landscape", 1080, 2340, 2048, 1536},
		{"square into portrait", 800, 800, 1080, 1920},
		{"identical aspect", 640, 480, 1280, 960},
		{"thin strip", 5000, 100, 1080, 1920},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResolveGeometry(pipeline.GeometryInput{
				SourceWidth:  tt.srcW,
				SourceHeight: tt.srcH,
				TargetWidth:  tt.dstW,
				TargetHeight: tt.dstH,
				Mode:         pipeline.ModeFit,
				ZoomPercent:  100,
			})

			dest := result.Dest
			if dest.X < 0 || dest.Y < 0 || dest.X+dest.Width > tt.dstW || dest.Y+dest.Height > tt.dstH {
				t.Errorf("dest %+v exceeds target bounds %dx%d", dest, tt.dstW, tt.dstH)
			}

			touchesWidth := dest.Width == tt.dstW
			touchesHeight := dest.Height == tt.dstH
			if !touchesWidth && !touchesHeight {
				t.Errorf("dest %+v touches neither edge pair of %dx%d", dest, tt.dstW, tt.dstH)
			}
		})
	}
}

// TestResolveGeometry_IdenticalAspect checks that matching aspect ratios
// reduce to a zero-offset direct scale (fit) and full-source crop (fill).
func TestResolveGeometry_IdenticalAspect(t *testing.T) {
	fit := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth: 540, SourceHeight: 960,
		TargetWidth: 1080, TargetHeight: 1920,
		Mode: pipeline.ModeFit, ZoomPercent: 100,
	})
	if fit.Dest != (pipeline.Rectangle{X: 0, Y: 0, Width: 1080, Height: 1920}) {
		t.Errorf("fit dest: expected full target, got %+v", fit.Dest)
	}

	fill := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth: 540, SourceHeight: 960,
		TargetWidth: 1080, TargetHeight: 1920,
		Mode: pipeline.ModeFill, ZoomPercent: 100,
	})
	if fill.SourceCrop != (pipeline.Rectangle{X: 0, Y: 0, Width: 540, Height: 960}) {
		t.Errorf("fill crop: expected full source, got %+v", fill.SourceCrop)
	}
}

// TestResolveGeometry_FitZoom checks the fit-mode zoom direction: the drawn
// rectangle scales with the zoom factor and stays centered.
func TestResolveGeometry_FitZoom(t *testing.T) {
	base := pipeline.GeometryInput{
		SourceWidth: 800, SourceHeight: 800,
		TargetWidth: 1080, TargetHeight: 1920,
		Mode: pipeline.ModeFit,
	}

	base.ZoomPercent = 120
	in := ResolveGeometry(base)
	// 1080 * 1.2 = 1296, centered: x = round((1080-1296)/2) = -108
	expected := pipeline.Rectangle{X: -108, Y: 312, Width: 1296, Height: 1296}
	if in.Dest != expected {
		t.Errorf("zoom in: expected %+v, got %+v", expected, in.Dest)
	}

	base.ZoomPercent = 80
	out := ResolveGeometry(base)
	// 1080 * 0.8 = 864, centered: x = 108, y = 528
	expected = pipeline.Rectangle{X: 108, Y: 528, Width: 864, Height: 864}
	if out.Dest != expected {
		t.Errorf("zoom out: expected %+v, got %+v", expected, out.Dest)
	}
}

// TestResolveGeometry_FillZoom checks the fill-mode zoom direction: zoom
// divides the crop, so zooming in crops tighter and zooming out shows more
// of the source.
func TestResolveGeometry_FillZoom(t *testing.T) {
	base := pipeline.GeometryInput{
		SourceWidth: 2000, SourceHeight: 2000,
		TargetWidth: 1000, TargetHeight: 1000,
		Mode: pipeline.ModeFill,
	}

	base.ZoomPercent = 200
	tight := ResolveGeometry(base)
	expected := pipeline.Rectangle{X: 500, Y: 500, Width: 1000, Height: 1000}
	if tight.SourceCrop != expected {
		t.Errorf("zoom in: expected %+v, got %+v", expected, tight.SourceCrop)
	}

	base.ZoomPercent = 50
	wide := ResolveGeometry(base)
	// 2000 / 0.5 = 4000, clamped to the full source dimension.
	expected = pipeline.Rectangle{X: 0, Y: 0, Width: 2000, Height: 2000}
	if wide.SourceCrop != expected {
		t.Errorf("zoom out: expected %+v, got %+v", expected, wide.SourceCrop)
	}
}

// TestResolveGeometry_ZoomClamped checks that out-of-range zoom values are
// clamped to [50, 200] before use.
func TestResolveGeometry_ZoomClamped(t *testing.T) {
	extreme := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth: 1000, SourceHeight: 1000,
		TargetWidth: 1000, TargetHeight: 1000,
		Mode: pipeline.ModeFit, ZoomPercent: 10000,
	})
	capped := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth: 1000, SourceHeight: 1000,
		TargetWidth: 1000, TargetHeight: 1000,
		Mode: pipeline.ModeFit, ZoomPercent: 200,
	})
	if extreme.Dest != capped.Dest {
		t.Errorf("zoom 10000%% should clamp to 200%%: got %+v, want %+v", extreme.Dest, capped.Dest)
	}

	zero := ResolveGeometry(pipeline.GeometryInput{
		SourceWidth: 1000, SourceHeight: 1000,
		TargetWidth: 1000, TargetHeight: 1000,
		Mode: pipeline.ModeFit, ZoomPercent: 0,
	})
	if zero.Dest.Width <= 0 || zero.Dest.Height <= 0 {
		t.Errorf("zoom 0%% must not produce a degenerate rectangle: got %+v", zero.Dest)
	}
}

// TestResolveGeometry_ThinAspects checks that extreme aspect ratios go
// through the same branches without special-casing or degenerate output.
func TestResolveGeometry_ThinAspects(t *testing.T) {
	for _, mode := range []pipeline.FitMode{pipeline.ModeFit, pipeline.ModeFill} {
		result := ResolveGeometry(pipeline.GeometryInput{
			SourceWidth: 10000, SourceHeight: 10,
			TargetWidth: 10, TargetHeight: 10000,
			Mode: mode, ZoomPercent: 100,
		})
		rect := result.Dest
		if mode == pipeline.ModeFill {
			rect = result.SourceCrop
		}
		if rect.Width < 1 || rect.Height < 1 {
			t.Errorf("%s: degenerate rectangle %+v", mode, rect)
		}
	}
}

func TestStage_Execute_RejectsInvalidDimensions(t *testing.T) {
	stage := NewStage()

	_, err := stage.Execute(context.Background(), pipeline.GeometryInput{
		SourceWidth: 0, SourceHeight: 100,
		TargetWidth: 100, TargetHeight: 100,
		Mode: pipeline.ModeFill, ZoomPercent: 100,
	})
	if err == nil {
		t.Error("expected error for zero source width")
	}

	_, err = stage.Execute(context.Background(), pipeline.GeometryInput{
		SourceWidth: 100, SourceHeight: 100,
		TargetWidth: 100, TargetHeight: -5,
		Mode: pipeline.ModeFill, ZoomPercent: 100,
	})
	if err == nil {
		t.Error("expected error for negative target height")
	}
}
