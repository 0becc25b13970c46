package mocks

import (
	"image"
	"image/color"

	"github.com/user/bannerforge/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	CropScaleFunc    func(img image.Image, src ports.Rect, width, height int) image.Image
	RenderTextFunc   func(text string, style ports.TextStyle, width, height int) *image.RGBA
	MeasureTextFunc  func(text string, style ports.TextStyle) (float64, float64)
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return nil
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) CropScale(img image.Image, src ports.Rect, width, height int) image.Image {
	if m.CropScaleFunc != nil {
		return m.CropScaleFunc(img, src, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) RenderText(text string, style ports.TextStyle, width, height int) *image.RGBA {
	if m.RenderTextFunc != nil {
		return m.RenderTextFunc(text, style, width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

func (m *Renderer) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	if m.MeasureTextFunc != nil {
		return m.MeasureTextFunc(text, style)
	}
	return 0, 0
}

var _ ports.Renderer = (*Renderer)(nil)
