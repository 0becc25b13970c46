package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts raster operations: canvas creation, image codecs,
// sampling and text layer rendering.
type Renderer interface {
	// CreateCanvas creates a new drawing canvas filled with the background color.
	// A nil background leaves the canvas fully transparent.
	CreateCanvas(width, height int, bg color.Color) Canvas

	// DecodeImage decodes encoded image data, auto-detecting the format.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	// Quality is only meaningful for JPEG.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// CropScale samples the src rectangle of img and scales it to
	// width x height with high-quality resampling.
	CropScale(img image.Image, src Rect, width, height int) image.Image

	// RenderText draws a single line of text into a transparent
	// width x height layer, centered on both axes, in the style's color.
	RenderText(text string, style TextStyle, width, height int) *image.RGBA

	// MeasureText returns the width and height of the text.
	MeasureText(text string, style TextStyle) (width, height float64)
}

// Canvas provides drawing operations for compositing the banner.
type Canvas interface {
	// DrawImage draws an image at the specified position, honoring the
	// current clip region.
	DrawImage(img image.Image, x, y int)

	// DrawImageAlpha draws an image modulated by a uniform alpha in [0, 1].
	DrawImageAlpha(img image.Image, x, y int, alpha float64)

	// FillRoundedRect fills a rounded rectangle.
	FillRoundedRect(r Rect, radius float64, c color.Color)

	// StrokeRoundedRect strokes the outline of a rounded rectangle.
	StrokeRoundedRect(r Rect, radius, lineWidth float64, c color.Color)

	// FillRoundedRectGradient fills a rounded rectangle with a linear
	// gradient running from (x0, y0) to (x1, y1) in canvas coordinates.
	// A radius of 0 fills a plain rectangle.
	FillRoundedRectGradient(r Rect, radius float64, x0, y0, x1, y1 float64, stops []GradientStop)

	// PushRoundedClip restricts subsequent drawing to a rounded
	// rectangle. Clips do not nest: one PushRoundedClip is always
	// paired with one PopClip before the next.
	PushRoundedClip(r Rect, radius float64)

	// PopClip clears the clip installed by PushRoundedClip.
	PopClip()

	// Snapshot copies a region of the current canvas state into a new
	// RGBA image. The region is clamped to the canvas bounds and the
	// returned image has its origin at (0, 0).
	Snapshot(r Rect) *image.RGBA

	// Size returns the canvas dimensions.
	Size() (width, height int)

	// ToImage returns the canvas as an image.Image.
	ToImage() image.Image
}

// GradientStop is one color stop of a linear gradient.
type GradientStop struct {
	Offset float64 // 0..1 along the gradient axis
	Color  color.Color
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	FontSize float64
	FontPath string
	Family   string
	Weight   string
	Color    color.Color
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)
