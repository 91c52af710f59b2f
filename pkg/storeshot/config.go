// Package storeshot provides a high-level API for preparing app store
// screenshots.
package storeshot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/user/storeshot/pkg/pipeline"
)

// StorePreset represents a store listing slot preset name.
type StorePreset string

const (
	PresetIPhone69 StorePreset = "iphone-6.9"
	PresetIPad13   StorePreset = "ipad-13"
	PresetAndroid  StorePreset = "android-phone"
)

// UI zoom bounds. The adjustment dial exposed to callers is narrower than
// the hard pipeline range.
const (
	UIZoomMin = 80
	UIZoomMax = 120
)

// Config represents the configuration for a screenshot export.
type Config struct {
	// Target surface
	TargetWidth  int // Store slot width in pixels
	TargetHeight int // Store slot height in pixels

	// Mapping
	Mode        pipeline.FitMode // fill crops, fit letterboxes
	ZoomPercent int              // 100 = no zoom

	// Encoding
	Format  pipeline.OutputFormat
	Quality int // Lossy quality (ignored for PNG)

	// Background (fit mode letterbox)
	Background      pipeline.BackgroundStyle
	BackgroundColor color.Color
	GradientTop     color.Color
	GradientBottom  color.Color

	// Device frame
	Frame      pipeline.DeviceFrame
	BezelColor color.Color
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
	preset StorePreset
}

// NewConfigBuilder creates a new ConfigBuilder with iPhone 6.9" preset
// defaults.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: iphoneDefaults(),
		preset: PresetIPhone69,
	}
}

// NewConfigBuilderFor creates a new ConfigBuilder with the given preset's
// defaults. Unknown presets fall back to the iPhone 6.9" preset.
func NewConfigBuilderFor(preset StorePreset) *ConfigBuilder {
	b := &ConfigBuilder{preset: preset}
	switch preset {
	case PresetIPad13:
		b.config = ipadDefaults()
	case PresetAndroid:
		b.config = androidDefaults()
	default:
		b.config = iphoneDefaults()
		b.preset = PresetIPhone69
	}
	return b
}

// iphoneDefaults returns the iPhone 6.9" portrait preset configuration.
func iphoneDefaults() Config {
	return Config{
		TargetWidth:  1290,
		TargetHeight: 2796,

		Mode:        pipeline.ModeFill,
		ZoomPercent: 100,

		Format:  pipeline.FormatPNG,
		Quality: 85,

		Background:      pipeline.BackgroundTransparent,
		BackgroundColor: color.Black,
		GradientTop:     color.RGBA{R: 99, G: 102, B: 241, A: 255},  // #6366f1
		GradientBottom:  color.RGBA{R: 14, G: 165, B: 233, A: 255},  // #0ea5e9

		Frame:      pipeline.FrameNone,
		BezelColor: color.Black,
	}
}

// ipadDefaults returns the iPad 13" portrait preset configuration.
func ipadDefaults() Config {
	cfg := iphoneDefaults()
	cfg.TargetWidth = 2064
	cfg.TargetHeight = 2752
	return cfg
}

// androidDefaults returns the Android phone portrait preset configuration.
func androidDefaults() Config {
	cfg := iphoneDefaults()
	cfg.TargetWidth = 1080
	cfg.TargetHeight = 1920
	return cfg
}

// Preset returns the preset name this builder started from.
func (b *ConfigBuilder) Preset() StorePreset {
	return b.preset
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	// Enforce the UI zoom dial range
	if cfg.ZoomPercent < UIZoomMin {
		cfg.ZoomPercent = UIZoomMin
	}
	if cfg.ZoomPercent > UIZoomMax {
		cfg.ZoomPercent = UIZoomMax
	}

	// Enforce positive target dimensions
	if cfg.TargetWidth < 1 {
		cfg.TargetWidth = 1
	}
	if cfg.TargetHeight < 1 {
		cfg.TargetHeight = 1
	}

	return cfg
}

// WithTargetSize sets the target surface dimensions.
func (b *ConfigBuilder) WithTargetSize(width, height int) *ConfigBuilder {
	b.config.TargetWidth = width
	b.config.TargetHeight = height
	return b
}

// WithMode sets the fit mode.
func (b *ConfigBuilder) WithMode(mode pipeline.FitMode) *ConfigBuilder {
	b.config.Mode = mode
	return b
}

// WithZoom sets the zoom percentage.
// Values outside 80-120 will be clamped at Build time.
func (b *ConfigBuilder) WithZoom(percent int) *ConfigBuilder {
	b.config.ZoomPercent = percent
	return b
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format pipeline.OutputFormat) *ConfigBuilder {
	b.config.Format = format
	return b
}

// WithQuality sets the lossy encoding quality.
func (b *ConfigBuilder) WithQuality(quality int) *ConfigBuilder {
	b.config.Quality = quality
	return b
}

// WithBackground sets the letterbox background style.
func (b *ConfigBuilder) WithBackground(style pipeline.BackgroundStyle) *ConfigBuilder {
	b.config.Background = style
	return b
}

// WithBackgroundColor sets the solid letterbox color.
func (b *ConfigBuilder) WithBackgroundColor(c color.Color) *ConfigBuilder {
	b.config.BackgroundColor = c
	return b
}

// WithGradient sets the letterbox gradient endpoint colors.
func (b *ConfigBuilder) WithGradient(top, bottom color.Color) *ConfigBuilder {
	b.config.GradientTop = top
	b.config.GradientBottom = bottom
	return b
}

// WithFrame sets the device frame.
func (b *ConfigBuilder) WithFrame(frame pipeline.DeviceFrame) *ConfigBuilder {
	b.config.Frame = frame
	return b
}

// WithBezelColor sets the device frame bezel color.
func (b *ConfigBuilder) WithBezelColor(c color.Color) *ConfigBuilder {
	b.config.BezelColor = c
	return b
}

// ToExportParameters converts Config to pipeline.ExportParameters.
func (c Config) ToExportParameters() pipeline.ExportParameters {
	return pipeline.ExportParameters{
		TargetWidth:  c.TargetWidth,
		TargetHeight: c.TargetHeight,

		Mode: c.Mode,

		Format:  c.Format,
		Quality: c.Quality,

		Background:      c.Background,
		BackgroundColor: c.BackgroundColor,
		GradientTop:     c.GradientTop,
		GradientBottom:  c.GradientBottom,

		Frame:      c.Frame,
		BezelColor: c.BezelColor,

		ZoomPercent: c.ZoomPercent,
	}
}

// OutputFileName derives the output file name for a source file:
// the source base name, the target dimensions, and the format extension.
func OutputFileName(sourcePath string, params pipeline.ExportParameters) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%dx%d.%s", base, params.TargetWidth, params.TargetHeight, params.Format.Extension())
}
