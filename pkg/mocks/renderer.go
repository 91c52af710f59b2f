// Package mocks provides mock implementations of the ports interfaces for
// testing.
package mocks

import (
	"image"
	"image/color"

	"github.com/user/storeshot/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) (ports.Canvas, error)
	DecodeImageFunc  func(data []byte, format ports.ImageFormat) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) (ports.Canvas, error) {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return &Canvas{Width: width, Height: height}, nil
}

func (m *Renderer) DecodeImage(data []byte, format ports.ImageFormat) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data, format)
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas that records calls.
type Canvas struct {
	Width  int
	Height int

	DrawImageCalls    []DrawImageCall
	DrawRectCalls     []DrawRectCall
	GradientCalls     int
	ClearCalls        int
	ClipCalls         int
	ResetClipCalls    int
}

// DrawImageCall records one DrawImage or DrawImageScaled invocation.
type DrawImageCall struct {
	X, Y          int
	Width, Height int
	Scaled        bool
}

// DrawRectCall records one filled rectangle invocation.
type DrawRectCall struct {
	X, Y, W, H int
	Radius     int
	Color      color.Color
}

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.DrawImageCalls = append(c.DrawImageCalls, DrawImageCall{X: x, Y: y})
}

func (c *Canvas) DrawImageScaled(img image.Image, x, y, width, height int) {
	c.DrawImageCalls = append(c.DrawImageCalls, DrawImageCall{X: x, Y: y, Width: width, Height: height, Scaled: true})
}

func (c *Canvas) DrawRect(x, y, w, h int, col color.Color) {
	c.DrawRectCalls = append(c.DrawRectCalls, DrawRectCall{X: x, Y: y, W: w, H: h, Color: col})
}

func (c *Canvas) DrawRoundedRect(x, y, w, h, radius int, col color.Color) {
	c.DrawRectCalls = append(c.DrawRectCalls, DrawRectCall{X: x, Y: y, W: w, H: h, Radius: radius, Color: col})
}

func (c *Canvas) FillVerticalGradient(x, y, w, h int, top, bottom color.Color) {
	c.GradientCalls++
}

func (c *Canvas) Clear(col color.Color) {
	c.ClearCalls++
}

func (c *Canvas) ClipRoundedRect(x, y, w, h, radius int) {
	c.ClipCalls++
}

func (c *Canvas) ResetClip() {
	c.ResetClipCalls++
}

func (c *Canvas) ToImage() image.Image {
	return image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)
