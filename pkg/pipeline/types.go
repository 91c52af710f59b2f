package pipeline

import (
	"fmt"
	"image"
	"image/color"

	"github.com/user/storeshot/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height.
type Dimension struct {
	Width  int
	Height int
}

// Rectangle represents a rectangular area.
type Rectangle struct {
	X      int
	Y      int
	Width  int
	Height int
}

// FitMode selects how the source image is mapped to the target canvas.
type FitMode string

const (
	// ModeFill crops the source to the target aspect ratio and stretches
	// the crop to exactly fill the target. Guarantees exact dimensions,
	// drops excess content.
	ModeFill FitMode = "fill"
	// ModeFit scales the whole source uniformly into the target and pads
	// the remainder with a background. Guarantees no cropping.
	ModeFit FitMode = "fit"
)

// OutputFormat selects the encoding of the final surface.
type OutputFormat string

const (
	FormatWebP OutputFormat = "webp"
	FormatJPEG OutputFormat = "jpeg"
	FormatPNG  OutputFormat = "png"
)

// Extension returns the file extension for the format, without the dot.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	case FormatWebP:
		return "webp"
	default:
		return "png"
	}
}

// MimeType returns the mime type for the format.
func (f OutputFormat) MimeType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return "image/png"
	}
}

// ImageFormat maps the output format to the renderer codec identifier.
func (f OutputFormat) ImageFormat() ports.ImageFormat {
	switch f {
	case FormatJPEG:
		return ports.FormatJPEG
	case FormatWebP:
		return ports.FormatWebP
	default:
		return ports.FormatPNG
	}
}

// BackgroundStyle selects the letterbox background treatment (fit mode only).
type BackgroundStyle string

const (
	BackgroundTransparent BackgroundStyle = "transparent"
	BackgroundSolid       BackgroundStyle = "solid"
	BackgroundGradient    BackgroundStyle = "gradient"
)

// DeviceFrame selects the decorative bezel drawn around the export.
type DeviceFrame string

const (
	FrameNone    DeviceFrame = "none"
	FrameIPhone  DeviceFrame = "iphone"
	FrameIPad    DeviceFrame = "ipad"
	FrameAndroid DeviceFrame = "android"
)

// FramePadding holds the fixed pixel insets a device frame adds around the
// target surface.
type FramePadding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// framePaddings is the static bezel inset table, keyed by frame type.
var framePaddings = map[DeviceFrame]FramePadding{
	FrameNone:    {},
	FrameIPhone:  {Top: 52, Right: 40, Bottom: 48, Left: 40},
	FrameIPad:    {Top: 44, Right: 44, Bottom: 44, Left: 44},
	FrameAndroid: {Top: 36, Right: 28, Bottom: 44, Left: 28},
}

// frameCornerRadii holds the per-device interior corner radius.
var frameCornerRadii = map[DeviceFrame]int{
	FrameIPhone:  36,
	FrameIPad:    32,
	FrameAndroid: 28,
}

// PaddingFor returns the bezel insets for a device frame.
// Unknown frames behave like FrameNone.
func PaddingFor(frame DeviceFrame) FramePadding {
	return framePaddings[frame]
}

// CornerRadiusFor returns the interior corner radius for a device frame.
func CornerRadiusFor(frame DeviceFrame) int {
	return frameCornerRadii[frame]
}

// =============================================================================
// Export Parameters
// =============================================================================

// Zoom bounds. The UI offers 80-120%; values are clamped to the hard range
// before any rectangle math to avoid degenerate draw rectangles.
const (
	ZoomMinPercent = 50
	ZoomMaxPercent = 200
)

// ExportParameters is the immutable value bundle describing one export.
type ExportParameters struct {
	TargetWidth  int
	TargetHeight int

	Mode FitMode

	Format  OutputFormat
	Quality int // 0-100 nominal; ignored for PNG

	Background      BackgroundStyle
	BackgroundColor color.Color // solid fill color
	GradientTop     color.Color
	GradientBottom  color.Color

	Frame      DeviceFrame
	BezelColor color.Color // nil means black

	ZoomPercent int
}

// DefaultExportParameters returns ExportParameters with default values.
func DefaultExportParameters() ExportParameters {
	return ExportParameters{
		TargetWidth:     1290,
		TargetHeight:    2796,
		Mode:            ModeFill,
		Format:          FormatPNG,
		Quality:         85,
		Background:      BackgroundTransparent,
		BackgroundColor: color.Black,
		GradientTop:     color.RGBA{R: 99, G: 102, B: 241, A: 255},
		GradientBottom:  color.RGBA{R: 14, G: 165, B: 233, A: 255},
		Frame:           FrameNone,
		ZoomPercent:     100,
	}
}

// Validate checks the parameter bundle for values the pipeline cannot
// work with.
func (p ExportParameters) Validate() error {
	if p.TargetWidth <= 0 || p.TargetHeight <= 0 {
		return fmt.Errorf("target dimensions must be positive, got %dx%d", p.TargetWidth, p.TargetHeight)
	}
	switch p.Mode {
	case ModeFill, ModeFit:
	default:
		return fmt.Errorf("unknown fit mode %q", p.Mode)
	}
	switch p.Format {
	case FormatPNG, FormatJPEG, FormatWebP:
	default:
		return fmt.Errorf("unknown output format %q", p.Format)
	}
	switch p.Background {
	case BackgroundTransparent, BackgroundSolid, BackgroundGradient:
	default:
		return fmt.Errorf("unknown background style %q", p.Background)
	}
	switch p.Frame {
	case FrameNone, FrameIPhone, FrameIPad, FrameAndroid:
	default:
		return fmt.Errorf("unknown device frame %q", p.Frame)
	}
	return nil
}

// ZoomFactor returns the zoom as a scale factor, clamped to [0.5, 2.0].
func (p ExportParameters) ZoomFactor() float64 {
	return ClampZoom(p.ZoomPercent)
}

// ClampZoom clamps a zoom percentage to the hard range and returns it as a
// scale factor.
func ClampZoom(percent int) float64 {
	if percent < ZoomMinPercent {
		percent = ZoomMinPercent
	}
	if percent > ZoomMaxPercent {
		percent = ZoomMaxPercent
	}
	return float64(percent) / 100.0
}

// =============================================================================
// Geometry Stage Types
// =============================================================================

// GeometryInput contains the dimensions and policy for rectangle resolution.
type GeometryInput struct {
	SourceWidth  int
	SourceHeight int
	TargetWidth  int
	TargetHeight int
	Mode         FitMode
	ZoomPercent  int
}

// GeometryResult contains the resolved draw rectangles.
//
// For ModeFit, Dest is the rectangle inside the target surface at which the
// entire source is drawn uniformly scaled; with zoom above 100% it may
// extend outside the target bounds and is clipped during drawing.
//
// For ModeFill, SourceCrop is the rectangle cropped from the source, drawn
// stretched to exactly fill the target surface.
type GeometryResult struct {
	Mode       FitMode
	Dest       Rectangle
	SourceCrop Rectangle
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput contains everything needed to paint the target surface.
type ComposeInput struct {
	Source       image.Image
	Geometry     GeometryResult
	TargetWidth  int
	TargetHeight int

	Background      BackgroundStyle
	BackgroundColor color.Color
	GradientTop     color.Color
	GradientBottom  color.Color
}

// ComposeResult contains the painted target-sized surface.
type ComposeResult struct {
	Image image.Image
}

// =============================================================================
// Device Frame Stage Types
// =============================================================================

// FrameInput contains the composited surface and the frame selection.
type FrameInput struct {
	Image        image.Image
	Frame        DeviceFrame
	TargetWidth  int
	TargetHeight int
	BezelColor   color.Color // nil means black
}

// FrameResult contains the final surface. When Frame is FrameNone the input
// image is passed through unchanged.
type FrameResult struct {
	Image image.Image
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// Quality bounds applied to lossy encodes regardless of the nominal 0-100
// range, to avoid pathologically low quality or near-lossless huge outputs.
const (
	QualityMin = 40
	QualityMax = 95
)

// EncodeInput contains the final surface and encoding parameters.
type EncodeInput struct {
	Image   image.Image
	Format  OutputFormat
	Quality int
}

// EncodeResult contains the encoded byte blob and its declared format.
type EncodeResult struct {
	Data     []byte
	Format   OutputFormat
	FileSize int64
}

// ClampQuality clamps a nominal quality value to the encoder's hard range.
func ClampQuality(quality int) int {
	if quality < QualityMin {
		return QualityMin
	}
	if quality > QualityMax {
		return QualityMax
	}
	return quality
}
