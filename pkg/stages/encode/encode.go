// Package encode implements the banner serialization stage.
package encode

import (
	"context"
	"fmt"
	"time"

	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// Stage serializes the finished raster to PNG and names the file.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes the raster. Encoding failure yields an EncodeError and
// no partial output.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	data, err := s.renderer.EncodeImage(input.Image, ports.FormatPNG, 0)
	if err != nil {
		return pipeline.EncodeResult{}, &pipeline.EncodeError{Err: err}
	}

	bounds := input.Image.Bounds()
	name := Filename(bounds.Dx(), bounds.Dy(), input.Timestamp)
	s.logger.Debug("Encoded %s: %d bytes", name, len(data))

	return pipeline.EncodeResult{Data: data, Filename: name}, nil
}

// Filename builds the banner filename for the given dimensions and date.
func Filename(width, height int, t time.Time) string {
	return fmt.Sprintf("banner_%dx%d_%s.png", width, height, t.Format("2006-01-02"))
}
