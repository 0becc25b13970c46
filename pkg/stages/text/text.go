// Package text implements the card label rendering stage.
package text

import (
	"context"
	"image/color"
	"math"

	"github.com/user/bannerforge/pkg/imagefx"
	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// shadowPass is one accumulating shadow layer drawn under the main fill.
// A nil color means the text's own fill color.
type shadowPass struct {
	color   color.Color
	blur    float64 // on-screen px, scaled at draw time
	offsetY float64
	alpha   float64
}

var shadowPasses = []shadowPass{
	// Top glow in the text color itself.
	{color: nil, blur: 5, offsetY: -2, alpha: 0.25},
	// Fine near-black outline.
	{color: color.NRGBA{A: 36}, blur: 0.5, offsetY: -1, alpha: 0.20},
	// Bottom highlight catch.
	{color: color.NRGBA{R: 255, G: 255, B: 255, A: 204}, blur: 2, offsetY: 1, alpha: 1.0},
}

// fillOpacity is the opacity of the main multiply-blended fill pass.
const fillOpacity = 0.80

// Stage draws the multi-layer shadowed label centered in the card.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new text stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("text"),
	}
}

// Execute draws the label as four accumulating passes at the same
// centered position, all clipped to the card's rounded rectangle.
// Vertical centering is geometric middle centering; the single line is
// never wrapped, overflow is silently clipped.
func (s *Stage) Execute(ctx context.Context, input pipeline.TextInput) (pipeline.TextResult, error) {
	canvas := input.Canvas
	if input.Text.Content == "" {
		return pipeline.TextResult{Canvas: canvas}, nil
	}

	card := input.Card
	w := round(card.Rect.Width)
	h := round(card.Rect.Height)
	if w <= 0 || h <= 0 {
		return pipeline.TextResult{Canvas: canvas}, nil
	}

	if textWidth, _ := s.renderer.MeasureText(input.Text.Content, input.Text.Style); textWidth > card.Rect.Width {
		s.logger.Debug("Label wider than card (%.0f > %.0f), clipping", textWidth, card.Rect.Width)
	}

	for _, pass := range shadowPasses {
		s.drawShadowPass(canvas, input, pass, w, h)
	}
	s.drawFill(canvas, input, w, h)

	return pipeline.TextResult{Canvas: canvas}, nil
}

// drawShadowPass renders the label silhouette in the pass color, blurs
// it and composites it at the pass offset.
func (s *Stage) drawShadowPass(canvas ports.Canvas, input pipeline.TextInput, pass shadowPass, w, h int) {
	style := input.Text.Style
	if pass.color != nil {
		style.Color = pass.color
	}

	layer := s.renderer.RenderText(input.Text.Content, style, w, h)
	soft := imagefx.Blur(layer, pass.blur*input.Scale)

	card := input.Card
	canvas.PushRoundedClip(card.Rect, card.Radius)
	canvas.DrawImageAlpha(soft,
		round(card.Rect.X),
		round(card.Rect.Y+pass.offsetY*input.Scale),
		pass.alpha)
	canvas.PopClip()
}

// drawFill composites the main solid fill with a multiply blend.
func (s *Stage) drawFill(canvas ports.Canvas, input pipeline.TextInput, w, h int) {
	card := input.Card
	layer := s.renderer.RenderText(input.Text.Content, input.Text.Style, w, h)

	region := canvas.Snapshot(card.Rect)
	imagefx.BlendMultiply(region, layer, fillOpacity)

	canvas.PushRoundedClip(card.Rect, card.Radius)
	canvas.DrawImage(region, round(card.Rect.X), round(card.Rect.Y))
	canvas.PopClip()
}

func round(v float64) int {
	return int(math.Round(v))
}
