// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"github.com/user/storeshot/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for storeshot.
type Config struct {
	// Target surface
	TargetWidth  int `yaml:"target_width"`
	TargetHeight int `yaml:"target_height"`

	// Mapping
	Mode        string `yaml:"mode"`
	ZoomPercent int    `yaml:"zoom"`

	// Encoding
	Format  string `yaml:"format"`
	Quality int    `yaml:"quality"`

	// Background (fit mode letterbox)
	Background      string `yaml:"background"`
	BackgroundColor string `yaml:"background_color"`
	GradientTop     string `yaml:"gradient_top"`
	GradientBottom  string `yaml:"gradient_bottom"`

	// Device frame
	Frame      string `yaml:"frame"`
	BezelColor string `yaml:"bezel_color"`

	// Output
	OutputDir string `yaml:"output_dir"`
	Zip       bool   `yaml:"zip"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		// Target surface (iPhone 6.9" portrait)
		TargetWidth:  1290,
		TargetHeight: 2796,

		// Mapping
		Mode:        "fill",
		ZoomPercent: 100,

		// Encoding
		Format:  "png",
		Quality: 85,

		// Background
		Background:      "transparent",
		BackgroundColor: "#000000",
		GradientTop:     "#6366f1",
		GradientBottom:  "#0ea5e9",

		// Device frame
		Frame:      "none",
		BezelColor: "#000000",

		// Output
		OutputDir: "./screenshots",

		// Debug
		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color. Accepts #RRGGBB and
// #RRGGBBAA; anything else falls back to opaque black.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 && len(hex) != 8 {
		return color.Black
	}

	var r, g, b uint8
	a := uint8(255)
	for i, c := range []byte{hex[0], hex[1]} {
		v := hexValue(c)
		if i == 0 {
			r = v << 4
		} else {
			r |= v
		}
	}
	for i, c := range []byte{hex[2], hex[3]} {
		v := hexValue(c)
		if i == 0 {
			g = v << 4
		} else {
			g |= v
		}
	}
	for i, c := range []byte{hex[4], hex[5]} {
		v := hexValue(c)
		if i == 0 {
			b = v << 4
		} else {
			b |= v
		}
	}
	if len(hex) == 8 {
		a = 0
		for i, c := range []byte{hex[6], hex[7]} {
			v := hexValue(c)
			if i == 0 {
				a = v << 4
			} else {
				a |= v
			}
		}
	}

	return color.RGBA{R: r, G: g, B: b, A: a}
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToExportParameters converts Config to pipeline.ExportParameters.
func (c Config) ToExportParameters() pipeline.ExportParameters {
	return pipeline.ExportParameters{
		TargetWidth:  c.TargetWidth,
		TargetHeight: c.TargetHeight,

		Mode: pipeline.FitMode(c.Mode),

		Format:  pipeline.OutputFormat(c.Format),
		Quality: c.Quality,

		Background:      pipeline.BackgroundStyle(c.Background),
		BackgroundColor: ParseColor(c.BackgroundColor),
		GradientTop:     ParseColor(c.GradientTop),
		GradientBottom:  ParseColor(c.GradientBottom),

		Frame:      pipeline.DeviceFrame(c.Frame),
		BezelColor: ParseColor(c.BezelColor),

		ZoomPercent: c.ZoomPercent,
	}
}
