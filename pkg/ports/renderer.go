package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts raster surface creation and image codec operations.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas with the specified dimensions
	// and background color. Pass color.Transparent for a fully transparent
	// surface. Returns an error when the surface cannot be created, e.g. for
	// non-positive or excessive dimensions.
	CreateCanvas(width, height int, bg color.Color) (Canvas, error)

	// DecodeImage decodes image data into an image.Image.
	// FormatAuto sniffs the format from the data.
	DecodeImage(data []byte, format ImageFormat) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality applies to lossy formats and is ignored for PNG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions with
	// high-quality resampling.
	ResizeImage(img image.Image, width, height int) image.Image
}

// Canvas provides drawing operations for compositing screenshots.
type Canvas interface {
	// DrawImage draws an image at the specified position. Portions outside
	// the canvas bounds are clipped.
	DrawImage(img image.Image, x, y int)

	// DrawImageScaled draws an image scaled to the specified dimensions.
	DrawImageScaled(img image.Image, x, y, width, height int)

	// DrawRect draws a filled rectangle.
	DrawRect(x, y, w, h int, c color.Color)

	// DrawRoundedRect draws a filled rounded rectangle.
	DrawRoundedRect(x, y, w, h, radius int, c color.Color)

	// FillVerticalGradient fills a rectangle with a linear top-to-bottom
	// gradient between two colors.
	FillVerticalGradient(x, y, w, h int, top, bottom color.Color)

	// Clear overwrites every pixel of the canvas with the given color,
	// discarding any previous content. Clearing with color.Transparent
	// produces a fully transparent surface.
	Clear(c color.Color)

	// ClipRoundedRect restricts subsequent drawing to a rounded rectangle.
	ClipRoundedRect(x, y, w, h, radius int)

	// ResetClip removes the current clipping region.
	ResetClip()

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// ImageFormat specifies an image codec.
type ImageFormat int

const (
	// FormatAuto detects the format from the encoded data (decode only).
	FormatAuto ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatWebP
)

// String returns the canonical format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatWebP:
		return "webp"
	default:
		return "auto"
	}
}
