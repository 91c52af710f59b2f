// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	stddraw "image/draw"
	"image/jpeg"
	"image/png"

	"github.com/chai2010/webp"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	xwebp "golang.org/x/image/webp"

	"github.com/user/storeshot/pkg/pipeline"
	"github.com/user/storeshot/pkg/ports"
)

// maxSurfaceDim is the largest side length a drawing surface may have.
// Matches the common raster limit; anything larger signals a broken
// parameter bundle rather than a real export.
const maxSurfaceDim = 16384

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) (ports.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pipeline.ErrSurfaceUnsupported, width, height)
	}
	if width > maxSurfaceDim || height > maxSurfaceDim {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d px limit", pipeline.ErrSurfaceUnsupported, width, height, maxSurfaceDim)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}, nil
}

// DecodeImage decodes image data into an image.Image.
func (r *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	reader := bytes.NewReader(data)

	var img image.Image
	var err error
	switch format {
	case ports.FormatJPEG:
		img, err = jpeg.Decode(reader)
	case ports.FormatPNG:
		img, err = png.Decode(reader)
	case ports.FormatWebP:
		img, err = xwebp.Decode(reader)
	default:
		// Sniff the format from the data.
		img, _, err = image.Decode(reader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pipeline.ErrDecodeFailed, err)
	}
	return img, nil
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		// JPEG has no alpha channel; flatten onto white first.
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, flattenAlpha(img), opts); err != nil {
			return nil, fmt.Errorf("%w: jpeg: %s", pipeline.ErrEncodeFailed, err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: png: %s", pipeline.ErrEncodeFailed, err)
		}
	case ports.FormatWebP:
		opts := &webp.Options{Quality: float32(quality)}
		if err := webp.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("%w: webp: %s", pipeline.ErrEncodeFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", pipeline.ErrEncodeFailed, format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// flattenAlpha composites an image over white, for encoders without an
// alpha channel.
func flattenAlpha(img image.Image) image.Image {
	bounds := img.Bounds()
	flat := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	stddraw.Draw(flat, flat.Bounds(), image.White, image.Point{}, stddraw.Src)
	stddraw.Draw(flat, flat.Bounds(), img, bounds.Min, stddraw.Over)
	return flat
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image at the specified position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageScaled draws an image scaled to the specified dimensions.
func (c *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	c.dc.Push()
	defer c.dc.Pop()

	bounds := img.Bounds()
	scaleX := float64(width) / float64(bounds.Dx())
	scaleY := float64(height) / float64(bounds.Dy())

	c.dc.Translate(float64(x), float64(y))
	c.dc.Scale(scaleX, scaleY)
	c.dc.DrawImage(img, 0, 0)
}

// DrawRect draws a filled rectangle.
func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawRoundedRect draws a filled rounded rectangle.
func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.dc.Fill()
}

// FillVerticalGradient fills a rectangle with a top-to-bottom linear
// gradient.
func (c *Canvas) FillVerticalGradient(x, y, w, h int, top, bottom color.Color) {
	grad := gg.NewLinearGradient(float64(x), float64(y), float64(x), float64(y+h))
	grad.AddColorStop(0, top)
	grad.AddColorStop(1, bottom)

	c.dc.Push()
	defer c.dc.Pop()
	c.dc.SetFillStyle(grad)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// Clear overwrites the whole canvas with the given color.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// ClipRoundedRect restricts subsequent drawing to a rounded rectangle.
func (c *Canvas) ClipRoundedRect(x, y, w, h, radius int) {
	c.dc.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(radius))
	c.dc.Clip()
}

// ResetClip removes the current clipping region.
func (c *Canvas) ResetClip() {
	c.dc.ResetClip()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
