package storeshot

import (
	"image/color"
	"testing"

	"github.com/user/storeshot/pkg/pipeline"
)

func TestNewConfigBuilderFor_Presets(t *testing.T) {
	tests := []struct {
		preset     StorePreset
		wantWidth  int
		wantHeight int
	}{
		{PresetIPhone69, 1290, 2796},
		{PresetIPad13, 2064, 2752},
		{PresetAndroid, 1080, 1920},
		{StorePreset("bogus"), 1290, 2796},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := NewConfigBuilderFor(tt.preset).Build()
			if cfg.TargetWidth != tt.wantWidth || cfg.TargetHeight != tt.wantHeight {
				t.Errorf("expected %dx%d, got %dx%d", tt.wantWidth, tt.wantHeight, cfg.TargetWidth, cfg.TargetHeight)
			}
		})
	}
}

func TestConfigBuilder_ZoomClamping(t *testing.T) {
	tests := []struct {
		name string
		zoom int
		want int
	}{
		{"below dial minimum", 50, 80},
		{"above dial maximum", 300, 120},
		{"within range", 110, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfigBuilder().WithZoom(tt.zoom).Build()
			if cfg.ZoomPercent != tt.want {
				t.Errorf("zoom %d: expected %d, got %d", tt.zoom, tt.want, cfg.ZoomPercent)
			}
		})
	}
}

func TestConfigBuilder_Fluent(t *testing.T) {
	cfg := NewConfigBuilderFor(PresetAndroid).
		WithMode(pipeline.ModeFit).
		WithFormat(pipeline.FormatWebP).
		WithQuality(70).
		WithBackground(pipeline.BackgroundGradient).
		WithGradient(color.White, color.Black).
		WithFrame(pipeline.FrameAndroid).
		WithBezelColor(color.RGBA{R: 30, G: 30, B: 30, A: 255}).
		Build()

	if cfg.Mode != pipeline.ModeFit {
		t.Errorf("mode: expected fit, got %s", cfg.Mode)
	}
	if cfg.Format != pipeline.FormatWebP || cfg.Quality != 70 {
		t.Errorf("encoding: expected webp/70, got %s/%d", cfg.Format, cfg.Quality)
	}
	if cfg.Frame != pipeline.FrameAndroid {
		t.Errorf("frame: expected android, got %s", cfg.Frame)
	}

	params := cfg.ToExportParameters()
	if err := params.Validate(); err != nil {
		t.Errorf("built config must produce valid parameters: %v", err)
	}
	if params.Background != pipeline.BackgroundGradient {
		t.Errorf("background: expected gradient, got %s", params.Background)
	}
}

func TestOutputFileName(t *testing.T) {
	params := pipeline.DefaultExportParameters()
	params.TargetWidth = 1080
	params.TargetHeight = 1920

	tests := []struct {
		name   string
		source string
		format pipeline.OutputFormat
		want   string
	}{
		{"png", "shots/home.png", pipeline.FormatPNG, "home_1080x1920.png"},
		{"jpeg uses jpg extension", "home.webp", pipeline.FormatJPEG, "home_1080x1920.jpg"},
		{"webp", "/abs/path/settings screen.jpeg", pipeline.FormatWebP, "settings screen_1080x1920.webp"},
		{"no extension", "raw", pipeline.FormatPNG, "raw_1080x1920.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := params
			p.Format = tt.format
			if got := OutputFileName(tt.source, p); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
