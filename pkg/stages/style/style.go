// Package style implements the scale-derived style mapping stage.
package style

import (
	"context"

	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// fallbackFontSize is used when the text element carries no usable
// font-size, expressed in on-screen pixels.
const fallbackFontSize = 16.0

// Stage maps on-screen element rectangles and resolved style values into
// target-raster coordinates and magnitudes.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new style mapping stage.
func NewStage(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("style"),
	}
}

// Execute derives the scale factor and converts the card and text
// elements into raster space. Every length-valued property is multiplied
// by the scale factor exactly once, here; later stages never re-derive it.
func (s *Stage) Execute(ctx context.Context, input pipeline.StyleInput) (pipeline.StyleResult, error) {
	scale := float64(input.Target.Width) / input.Preview.Width

	card := s.mapCard(input, scale)
	text := s.mapText(input, scale)

	s.logger.Debug("Mapped styles: scale=%.3f card=%.0fx%.0f radius=%.1f font=%.1f",
		scale, card.Rect.Width, card.Rect.Height, card.Radius, text.Style.FontSize)

	return pipeline.StyleResult{Scale: scale, Card: card, Text: text}, nil
}

// mapCard converts the card's screen rectangle into the target raster
// proportionally: raster = (screen_offset / preview_size) * target_size.
func (s *Stage) mapCard(input pipeline.StyleInput, scale float64) pipeline.CardSpec {
	screen := input.Card.Rect()
	preview := input.Preview
	targetW := float64(input.Target.Width)
	targetH := float64(input.Target.Height)

	rect := ports.Rect{
		X:      (screen.X - preview.X) / preview.Width * targetW,
		Y:      (screen.Y - preview.Y) / preview.Height * targetH,
		Width:  screen.Width / preview.Width * targetW,
		Height: screen.Height / preview.Height * targetH,
	}

	spec := pipeline.CardSpec{
		Rect:   rect,
		Radius: ParseLength(input.Card.Style("border-radius")) * scale,
	}

	if stops := ExtractTintStops(input.Card.Style("background")); stops != nil {
		spec.TintStops = []ports.GradientStop{
			{Offset: 0, Color: stops[0]},
			{Offset: 1, Color: stops[1]},
		}
	}

	return spec
}

func (s *Stage) mapText(input pipeline.StyleInput, scale float64) pipeline.TextSpec {
	fontSize := ParseLength(input.Text.Style("font-size"))
	if fontSize == 0 {
		fontSize = fallbackFontSize
	}

	return pipeline.TextSpec{
		Content: input.Text.Text(),
		Style: ports.TextStyle{
			FontSize: fontSize * scale,
			FontPath: input.FontPath,
			Family:   input.Text.Style("font-family"),
			Weight:   input.Text.Style("font-weight"),
			Color:    ParseColor(input.Text.Style("color")),
		},
	}
}
