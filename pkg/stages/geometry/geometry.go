// Package geometry implements the target resolution stage.
package geometry

import (
	"context"
	"fmt"
	"math"

	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

// Stage resolves the raster output dimensions and source crop.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new geometry stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute resolves the export target from the input parameters.
func (s *Stage) Execute(ctx context.Context, input pipeline.GeometryInput) (pipeline.ExportTarget, error) {
	return ComputeTarget(input)
}

// ComputeTarget resolves target dimensions and source crop, in priority order:
//
//  1. Both dimensions fixed: target is exactly that size, the source is
//     center-cropped on its longer axis to match the target aspect ratio.
//  2. Exactly one dimension fixed: target keeps the natural image
//     resolution on one axis and derives the other from the preview's
//     aspect ratio. The full image is used; the output frame is
//     re-shaped to match the preview framing.
//  3. Neither fixed: target is the natural image size, no crop.
//
// Exposed as a standalone function for testing and reuse.
func ComputeTarget(input pipeline.GeometryInput) (pipeline.ExportTarget, error) {
	if input.Preview.Empty() {
		return pipeline.ExportTarget{}, &pipeline.ConfigurationError{
			Reason: fmt.Sprintf("preview frame must have positive dimensions, got %.0fx%.0f",
				input.Preview.Width, input.Preview.Height),
		}
	}
	if input.NaturalWidth <= 0 || input.NaturalHeight <= 0 {
		return pipeline.ExportTarget{}, &pipeline.ConfigurationError{
			Reason: fmt.Sprintf("source image must have positive dimensions, got %dx%d",
				input.NaturalWidth, input.NaturalHeight),
		}
	}

	previewAspect := input.Preview.Width / input.Preview.Height
	imageAspect := float64(input.NaturalWidth) / float64(input.NaturalHeight)

	switch {
	case input.FixedWidth > 0 && input.FixedHeight > 0:
		target := pipeline.ExportTarget{Width: input.FixedWidth, Height: input.FixedHeight}
		target.Crop = centerCrop(input.NaturalWidth, input.NaturalHeight,
			float64(input.FixedWidth)/float64(input.FixedHeight))
		return target, nil

	case input.FixedWidth > 0 || input.FixedHeight > 0:
		// Keep the natural resolution on the dominant axis and re-frame
		// the other to the preview's aspect ratio. The full image is
		// scaled to fill, no crop rectangle.
		if previewAspect > imageAspect {
			return pipeline.ExportTarget{
				Width:  input.NaturalWidth,
				Height: roundPositive(float64(input.NaturalWidth) / previewAspect),
			}, nil
		}
		return pipeline.ExportTarget{
			Width:  roundPositive(float64(input.NaturalHeight) * previewAspect),
			Height: input.NaturalHeight,
		}, nil

	default:
		return pipeline.ExportTarget{Width: input.NaturalWidth, Height: input.NaturalHeight}, nil
	}
}

// centerCrop returns the centered source rectangle matching the target
// aspect ratio, cropping the longer source axis. Returns nil when the
// aspect ratios already match.
func centerCrop(naturalWidth, naturalHeight int, targetAspect float64) *ports.Rect {
	w := float64(naturalWidth)
	h := float64(naturalHeight)
	imageAspect := w / h

	switch {
	case imageAspect > targetAspect:
		cropWidth := h * targetAspect
		return &ports.Rect{X: (w - cropWidth) / 2, Y: 0, Width: cropWidth, Height: h}
	case imageAspect < targetAspect:
		cropHeight := w / targetAspect
		return &ports.Rect{X: 0, Y: (h - cropHeight) / 2, Width: w, Height: cropHeight}
	default:
		return nil
	}
}

// roundPositive rounds to the nearest integer, never below 1.
func roundPositive(v float64) int {
	n := int(math.Round(v))
	if n < 1 {
		n = 1
	}
	return n
}
