// Package card implements the glass-card rendering stage.
package card

import (
	"context"
	"image/color"
	"math"

	"github.com/user/bannerforge/pkg/imagefx"
	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// Fixed design constants, expressed in on-screen pixels and multiplied
// by the scale factor at draw time. The backdrop blur radius is a
// constant rather than a style read because backdrop blur is not
// reliably introspectable from computed style.
const (
	backdropBlurBase = 12.0
	saturationBoost  = 1.8
	highlightBase    = 12.0
	highlightAlpha   = 0.12
	borderAlpha      = 0.06
	noiseOpacity     = 0.15
)

// shadowLayer describes one of the stacked drop shadows.
type shadowLayer struct {
	blur    float64
	offsetY float64
	alpha   float64
}

var shadowLayers = []shadowLayer{
	{blur: 4, offsetY: 2, alpha: 0.10},
	{blur: 16, offsetY: 8, alpha: 0.20},
	{blur: 48, offsetY: 16, alpha: 0.30},
}

var shadowBase = color.NRGBA{R: 10, G: 10, B: 10, A: 255}

// defaultTint is used when the card background yields no extractable
// color pair: a lighter translucent stop fading to a less translucent one.
var defaultTint = []ports.GradientStop{
	{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 64}},
	{Offset: 1, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 38}},
}

// Stage renders the translucent rounded card with its backdrop blur,
// shadows, tint, highlights and noise texture.
type Stage struct {
	renderer ports.Renderer
	noise    ports.NoiseSource
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new card stage.
func NewStage(renderer ports.Renderer, noise ports.NoiseSource, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		noise:    noise,
		sink:     sink,
		logger:   logger.WithComponent("card"),
	}
}

// Execute composes the card onto the canvas. The step order is
// load-bearing: each step reads the raster state the previous one left.
func (s *Stage) Execute(ctx context.Context, input pipeline.CardInput) (pipeline.CardResult, error) {
	canvas := input.Canvas
	spec := input.Card

	s.logger.Debug("Rendering card at (%.0f,%.0f) %.0fx%.0f radius %.1f",
		spec.Rect.X, spec.Rect.Y, spec.Rect.Width, spec.Rect.Height, spec.Radius)

	s.compositeBackdrop(canvas, spec, input.Scale)
	s.drawShadows(canvas, spec, input.Scale)
	s.drawTint(canvas, spec)
	s.drawBorder(canvas, spec)
	s.drawHighlight(canvas, spec, input.Scale)
	s.drawNoise(canvas, spec)

	if s.sink.Enabled() {
		s.sink.SaveCardCanvas(canvas.ToImage())
	}

	return pipeline.CardResult{Canvas: canvas}, nil
}

// compositeBackdrop samples the background behind the card, blurs and
// saturates it, and composites it back clipped to the rounded rectangle.
func (s *Stage) compositeBackdrop(canvas ports.Canvas, spec pipeline.CardSpec, scale float64) {
	blurRadius := backdropBlurBase * scale

	// Sample a padded region so the blur kernel has real pixels to pull
	// from at the card edges. The padding must be at least twice the
	// blur radius.
	pad := blurRadius * 2
	region := clampRect(ports.Rect{
		X:      spec.Rect.X - pad,
		Y:      spec.Rect.Y - pad,
		Width:  spec.Rect.Width + pad*2,
		Height: spec.Rect.Height + pad*2,
	}, canvas)

	backdrop := canvas.Snapshot(region)
	if s.sink.Enabled() {
		s.sink.SaveBackdrop(backdrop)
	}

	blurred := imagefx.Blur(backdrop, blurRadius)
	imagefx.Saturate(blurred, saturationBoost)
	if s.sink.Enabled() {
		s.sink.SaveProcessedBackdrop(blurred)
	}

	canvas.PushRoundedClip(spec.Rect, spec.Radius)
	canvas.DrawImage(blurred, round(region.X), round(region.Y))
	canvas.PopClip()
}

// drawShadows layers three blurred, offset fills of the card silhouette.
// They are drawn unclipped so the shadow falls outside the card edges.
func (s *Stage) drawShadows(canvas ports.Canvas, spec pipeline.CardSpec, scale float64) {
	for _, layer := range shadowLayers {
		blur := layer.blur * scale
		offsetY := layer.offsetY * scale
		margin := int(math.Ceil(blur * 2))

		w := round(spec.Rect.Width) + margin*2
		h := round(spec.Rect.Height) + margin*2

		silhouette := s.renderer.CreateCanvas(w, h, nil)
		silhouette.FillRoundedRect(ports.Rect{
			X:      float64(margin),
			Y:      float64(margin),
			Width:  spec.Rect.Width,
			Height: spec.Rect.Height,
		}, spec.Radius, shadowBase)

		soft := imagefx.Blur(silhouette.ToImage(), blur)
		canvas.DrawImageAlpha(soft,
			round(spec.Rect.X)-margin,
			round(spec.Rect.Y+offsetY)-margin,
			layer.alpha)
	}
}

// drawTint fills a translucent linear gradient across the card diagonal.
func (s *Stage) drawTint(canvas ports.Canvas, spec pipeline.CardSpec) {
	stops := spec.TintStops
	if stops == nil {
		stops = defaultTint
	}
	canvas.FillRoundedRectGradient(spec.Rect, spec.Radius,
		spec.Rect.X, spec.Rect.Y,
		spec.Rect.X+spec.Rect.Width, spec.Rect.Y+spec.Rect.Height,
		stops)
}

// drawBorder strokes a one-pixel near-white outline, inset by half a
// pixel so it anti-aliases cleanly.
func (s *Stage) drawBorder(canvas ports.Canvas, spec pipeline.CardSpec) {
	inset := ports.Rect{
		X:      spec.Rect.X + 0.5,
		Y:      spec.Rect.Y + 0.5,
		Width:  spec.Rect.Width - 1,
		Height: spec.Rect.Height - 1,
	}
	radius := spec.Radius - 0.5
	if radius < 0 {
		radius = 0
	}
	canvas.StrokeRoundedRect(inset, radius, 1,
		color.NRGBA{R: 255, G: 255, B: 255, A: alphaByte(borderAlpha)})
}

// drawHighlight fills a specular light catch across the top of the card.
func (s *Stage) drawHighlight(canvas ports.Canvas, spec pipeline.CardSpec, scale float64) {
	bandHeight := highlightBase * scale
	band := ports.Rect{
		X:      spec.Rect.X,
		Y:      spec.Rect.Y,
		Width:  spec.Rect.Width,
		Height: bandHeight,
	}

	canvas.PushRoundedClip(spec.Rect, spec.Radius)
	canvas.FillRoundedRectGradient(band, 0,
		band.X, band.Y, band.X, band.Y+bandHeight,
		[]ports.GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: alphaByte(highlightAlpha)}},
			{Offset: 1, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
		})
	canvas.PopClip()
}

// drawNoise overlays a per-pixel grain texture inside the card.
func (s *Stage) drawNoise(canvas ports.Canvas, spec pipeline.CardSpec) {
	w := round(spec.Rect.Width)
	h := round(spec.Rect.Height)
	if w <= 0 || h <= 0 {
		return
	}

	grain := imagefx.Noise(w, h, s.noise.Next)
	region := canvas.Snapshot(spec.Rect)
	imagefx.BlendOverlay(region, grain, noiseOpacity)

	canvas.PushRoundedClip(spec.Rect, spec.Radius)
	canvas.DrawImage(region, round(spec.Rect.X), round(spec.Rect.Y))
	canvas.PopClip()
}

// clampRect clamps r to the canvas bounds.
func clampRect(r ports.Rect, canvas ports.Canvas) ports.Rect {
	w, h := canvas.Size()
	x0 := math.Max(r.X, 0)
	y0 := math.Max(r.Y, 0)
	x1 := math.Min(r.X+r.Width, float64(w))
	y1 := math.Min(r.Y+r.Height, float64(h))
	return ports.Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func round(v float64) int {
	return int(math.Round(v))
}

// alphaByte converts a [0, 1] opacity to an 8-bit alpha value.
func alphaByte(opacity float64) uint8 {
	return uint8(opacity*255 + 0.5)
}
