// Package background implements the background compositing stage.
package background

import (
	"context"
	"image/color"

	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// Stage draws the source image onto a fresh canvas at target resolution.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new background stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("background"),
	}
}

// Execute blits the (possibly cropped) source image into a new canvas,
// filling it entirely with no letterboxing.
func (s *Stage) Execute(ctx context.Context, input pipeline.BackgroundInput) (pipeline.BackgroundResult, error) {
	canvas := s.renderer.CreateCanvas(input.Target.Width, input.Target.Height, color.Black)

	src := input.Target.Crop
	if src == nil {
		bounds := input.Source.Bounds()
		src = &ports.Rect{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}
	}

	s.logger.Debug("Compositing background: src %.0fx%.0f at (%.0f,%.0f) -> %dx%d",
		src.Width, src.Height, src.X, src.Y, input.Target.Width, input.Target.Height)

	scaled := s.renderer.CropScale(input.Source, *src, input.Target.Width, input.Target.Height)
	canvas.DrawImage(scaled, 0, 0)

	return pipeline.BackgroundResult{Canvas: canvas}, nil
}
