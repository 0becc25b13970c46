// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/user/bannerforge/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas. A nil background leaves the
// canvas fully transparent.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	if bg != nil {
		dc.SetColor(bg)
		dc.Clear()
	}
	return &Canvas{dc: dc}
}

// DecodeImage decodes image data, auto-detecting the format.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// CropScale samples the src rectangle of img and scales it to the
// requested size with Catmull-Rom resampling.
func (r *Renderer) CropScale(img image.Image, src ports.Rect, width, height int) image.Image {
	bounds := img.Bounds()
	srcRect := image.Rect(
		bounds.Min.X+int(src.X+0.5),
		bounds.Min.Y+int(src.Y+0.5),
		bounds.Min.X+int(src.X+src.Width+0.5),
		bounds.Min.Y+int(src.Y+src.Height+0.5),
	).Intersect(bounds)

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, srcRect, draw.Src, nil)
	return dst
}

// RenderText draws a single line of text centered in a transparent layer.
func (r *Renderer) RenderText(text string, style ports.TextStyle, width, height int) *image.RGBA {
	dc := gg.NewContext(width, height)
	applyFont(dc, style)
	dc.SetColor(style.Color)
	dc.DrawStringAnchored(text, float64(width)/2, float64(height)/2, 0.5, 0.5)
	return dc.Image().(*image.RGBA)
}

// MeasureText returns the width and height of the text. The height is
// the nominal font size, not the measured glyph extent.
func (r *Renderer) MeasureText(text string, style ports.TextStyle) (float64, float64) {
	dc := gg.NewContext(1, 1)
	applyFont(dc, style)
	w, _ := dc.MeasureString(text)
	return w, style.FontSize
}

func applyFont(dc *gg.Context, style ports.TextStyle) {
	if style.FontPath == "" {
		return
	}
	if err := dc.LoadFontFace(style.FontPath, style.FontSize); err != nil {
		// Fall back to the default face
	}
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawImage draws an image at the specified position, honoring the
// current clip region.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	c.dc.DrawImage(img, x, y)
}

// DrawImageAlpha draws an image modulated by a uniform alpha. The alpha
// is folded into a copy of the image so the current clip region still
// applies.
func (c *Canvas) DrawImageAlpha(img image.Image, x, y int, alpha float64) {
	if alpha <= 0 {
		return
	}
	if alpha >= 1 {
		c.dc.DrawImage(img, x, y)
		return
	}
	c.dc.DrawImage(fadeAlpha(img, alpha), x, y)
}

// FillRoundedRect draws a filled rounded rectangle.
func (c *Canvas) FillRoundedRect(r ports.Rect, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, radius)
	c.dc.Fill()
}

// StrokeRoundedRect strokes the outline of a rounded rectangle.
func (c *Canvas) StrokeRoundedRect(r ports.Rect, radius, lineWidth float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(lineWidth)
	c.dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, radius)
	c.dc.Stroke()
}

// FillRoundedRectGradient fills a rounded rectangle with a linear gradient.
func (c *Canvas) FillRoundedRectGradient(r ports.Rect, radius float64, x0, y0, x1, y1 float64, stops []ports.GradientStop) {
	grad := gg.NewLinearGradient(x0, y0, x1, y1)
	for _, s := range stops {
		grad.AddColorStop(s.Offset, s.Color)
	}
	c.dc.SetFillStyle(grad)
	if radius > 0 {
		c.dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, radius)
	} else {
		c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	}
	c.dc.Fill()
}

// PushRoundedClip restricts subsequent drawing to a rounded rectangle.
// Clips do not nest; PopClip clears the clip region entirely.
func (c *Canvas) PushRoundedClip(r ports.Rect, radius float64) {
	c.dc.DrawRoundedRectangle(r.X, r.Y, r.Width, r.Height, radius)
	c.dc.Clip()
}

// PopClip clears the clip installed by PushRoundedClip. gg's Push/Pop
// state stack carries the clip mask across Pop, so the mask must be
// reset explicitly.
func (c *Canvas) PopClip() {
	c.dc.ResetClip()
}

// Snapshot copies a region of the canvas into a new RGBA image.
// The region is clamped to the canvas bounds and the returned image has
// its origin at (0, 0), which drawing back through gg requires.
func (c *Canvas) Snapshot(r ports.Rect) *image.RGBA {
	src := c.dc.Image().(*image.RGBA)
	bounds := src.Bounds()

	x0 := clampInt(int(r.X+0.5), bounds.Min.X, bounds.Max.X)
	y0 := clampInt(int(r.Y+0.5), bounds.Min.Y, bounds.Max.Y)
	x1 := clampInt(int(r.X+r.Width+0.5), bounds.Min.X, bounds.Max.X)
	y1 := clampInt(int(r.Y+r.Height+0.5), bounds.Min.Y, bounds.Max.Y)

	dst := image.NewRGBA(image.Rect(0, 0, x1-x0, y1-y0))
	draw.Draw(dst, dst.Bounds(), src, image.Point{X: x0, Y: y0}, draw.Src)
	return dst
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// ToImage returns the canvas as an image.Image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

// Ensure Canvas implements ports.Canvas
var _ ports.Canvas = (*Canvas)(nil)

// fadeAlpha returns a copy of img with every alpha value scaled.
func fadeAlpha(img image.Image, alpha float64) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			px := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			px.A = uint8(float64(px.A)*alpha + 0.5)
			out.SetNRGBA(x, y, px)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
