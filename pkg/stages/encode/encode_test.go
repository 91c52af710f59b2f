package encode

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/user/storeshot/pkg/adapters/ggrenderer"
	"github.com/user/storeshot/pkg/adapters/logger"
	"github.com/user/storeshot/pkg/pipeline"
)

func newStage() *Stage {
	return NewStage(ggrenderer.New(), logger.NewNoop())
}

// gradientImage returns a test image with enough detail for lossy
// encoders to show quality differences.
func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(x * 7 % 256),
				G: uint8(y * 13 % 256),
				B: uint8((x + y) % 256),
				A: 255,
			})
		}
	}
	return img
}

// TestStage_PNGRoundTrip checks that a PNG output decodes back to the
// exact requested dimensions.
func TestStage_PNGRoundTrip(t *testing.T) {
	stage := newStage()

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Image:   gradientImage(321, 641),
		Format:  pipeline.FormatPNG,
		Quality: 80,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Format != pipeline.FormatPNG {
		t.Errorf("format: expected png, got %s", result.Format)
	}
	if result.FileSize != int64(len(result.Data)) {
		t.Errorf("file size %d does not match data length %d", result.FileSize, len(result.Data))
	}

	decoded, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decode round-trip failed: %v", err)
	}
	if decoded.Bounds().Dx() != 321 || decoded.Bounds().Dy() != 641 {
		t.Errorf("expected 321x641, got %dx%d", decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}

// TestStage_PNGIgnoresQuality checks that the quality knob has no effect
// on PNG output.
func TestStage_PNGIgnoresQuality(t *testing.T) {
	stage := newStage()
	img := gradientImage(100, 100)

	low, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatPNG, Quality: 0})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	high, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatPNG, Quality: 100})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Equal(low.Data, high.Data) {
		t.Error("png output must not depend on quality")
	}
}

// TestStage_QualityClamped checks that nominal qualities outside [40, 95]
// collapse onto the clamp bounds.
func TestStage_QualityClamped(t *testing.T) {
	stage := newStage()
	img := gradientImage(100, 100)

	floor, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatJPEG, Quality: 5})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	atMin, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatJPEG, Quality: 40})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Equal(floor.Data, atMin.Data) {
		t.Error("quality 5 should clamp to 40")
	}

	ceil, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatJPEG, Quality: 100})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	atMax, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatJPEG, Quality: 95})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !bytes.Equal(ceil.Data, atMax.Data) {
		t.Error("quality 100 should clamp to 95")
	}
}

// TestStage_JPEGQualityTrend checks the soft property that a much higher
// quality does not produce a smaller file on detailed content.
func TestStage_JPEGQualityTrend(t *testing.T) {
	stage := newStage()
	img := gradientImage(400, 400)

	low, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatJPEG, Quality: 40})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	high, err := stage.Execute(context.Background(), pipeline.EncodeInput{Image: img, Format: pipeline.FormatJPEG, Quality: 95})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if high.FileSize < low.FileSize {
		t.Errorf("quality 95 output (%d bytes) smaller than quality 40 (%d bytes)", high.FileSize, low.FileSize)
	}
}

// TestStage_WebPOutput checks that WebP encoding produces a tagged,
// non-empty blob.
func TestStage_WebPOutput(t *testing.T) {
	stage := newStage()

	result, err := stage.Execute(context.Background(), pipeline.EncodeInput{
		Image:   gradientImage(64, 64),
		Format:  pipeline.FormatWebP,
		Quality: 80,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Data) == 0 {
		t.Fatal("expected non-empty webp data")
	}
	// RIFF....WEBP container header.
	if !bytes.HasPrefix(result.Data, []byte("RIFF")) || !bytes.Equal(result.Data[8:12], []byte("WEBP")) {
		t.Error("output does not look like a WebP container")
	}
}

func TestStage_NilImage(t *testing.T) {
	_, err := newStage().Execute(context.Background(), pipeline.EncodeInput{Format: pipeline.FormatPNG})
	if err == nil {
		t.Fatal("expected error for nil surface")
	}
}
