package card

import (
	"context"
	"image/color"
	"testing"

	"github.com/user/bannerforge/pkg/adapters/ggrenderer"
	"github.com/user/bannerforge/pkg/adapters/logger"
	"github.com/user/bannerforge/pkg/adapters/nullsink"
	"github.com/user/bannerforge/pkg/mocks"
	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

func newTestStage(sink ports.DebugSink) *Stage {
	return NewStage(
		ggrenderer.New(),
		&mocks.NoiseSource{Sequence: []uint8{128}},
		sink,
		logger.NewNoop(),
	)
}

func pixel(c ports.Canvas, x, y int) (uint8, uint8, uint8, uint8) {
	r, g, b, a := c.ToImage().At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)
}

func TestExecute_ChangesCardRegionOnly(t *testing.T) {
	renderer := ggrenderer.New()
	canvas := renderer.CreateCanvas(400, 400, color.NRGBA{R: 60, G: 90, B: 120, A: 255})

	stage := newTestStage(nullsink.New())
	result, err := stage.Execute(context.Background(), pipeline.CardInput{
		Canvas: canvas,
		Card: pipeline.CardSpec{
			Rect:   ports.Rect{X: 150, Y: 150, Width: 100, Height: 60},
			Radius: 8,
		},
		Scale: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Inside the card the tint lightens the backdrop.
	r, _, _, _ := pixel(result.Canvas, 200, 180)
	if r <= 60 {
		t.Errorf("expected card interior lightened above the base red 60, got %d", r)
	}

	// Far corner is beyond the reach of the widest shadow.
	fr, fg, fb, fa := pixel(result.Canvas, 2, 2)
	if fr != 60 || fg != 90 || fb != 120 || fa != 255 {
		t.Errorf("expected far corner untouched, got (%d,%d,%d,%d)", fr, fg, fb, fa)
	}
}

func TestExecute_ShadowFallsBelowCard(t *testing.T) {
	renderer := ggrenderer.New()
	canvas := renderer.CreateCanvas(400, 400, color.NRGBA{R: 200, G: 200, B: 200, A: 255})

	stage := newTestStage(nullsink.New())
	result, err := stage.Execute(context.Background(), pipeline.CardInput{
		Canvas: canvas,
		Card: pipeline.CardSpec{
			Rect:   ports.Rect{X: 150, Y: 100, Width: 100, Height: 60},
			Radius: 8,
		},
		Scale: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A few pixels under the bottom edge the stacked shadows darken the
	// light background.
	r, _, _, _ := pixel(result.Canvas, 200, 175)
	if r >= 200 {
		t.Errorf("expected shadow to darken below the card, got %d", r)
	}

	// The widest layer also spills past the side edges; the backdrop
	// clip must not swallow it.
	sr, _, _, _ := pixel(result.Canvas, 262, 130)
	if sr >= 200 {
		t.Errorf("expected shadow to spill past the right edge, got %d", sr)
	}
}

func TestExecute_UsesProvidedTintStops(t *testing.T) {
	renderer := ggrenderer.New()

	run := func(stops []ports.GradientStop) uint8 {
		canvas := renderer.CreateCanvas(300, 300, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
		stage := newTestStage(nullsink.New())
		_, err := stage.Execute(context.Background(), pipeline.CardInput{
			Canvas: canvas,
			Card: pipeline.CardSpec{
				Rect:      ports.Rect{X: 100, Y: 100, Width: 100, Height: 60},
				Radius:    4,
				TintStops: stops,
			},
			Scale: 1,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r, _, _, _ := pixel(canvas, 150, 130)
		return r
	}

	strong := run([]ports.GradientStop{
		{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 220}},
		{Offset: 1, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 220}},
	})
	subtle := run(nil) // falls back to the default translucent tint

	if strong <= subtle {
		t.Errorf("expected the strong tint to read brighter: %d vs %d", strong, subtle)
	}
}

func TestAlphaByte(t *testing.T) {
	cases := []struct {
		opacity  float64
		expected uint8
	}{
		{0, 0},
		{borderAlpha, 15},
		{highlightAlpha, 31},
		{noiseOpacity, 38},
		{1, 255},
	}

	for _, tc := range cases {
		if got := alphaByte(tc.opacity); got != tc.expected {
			t.Errorf("alphaByte(%v): expected %d, got %d", tc.opacity, tc.expected, got)
		}
	}
}

func TestExecute_SavesDebugArtifacts(t *testing.T) {
	renderer := ggrenderer.New()
	canvas := renderer.CreateCanvas(200, 200, color.NRGBA{R: 90, G: 90, B: 90, A: 255})

	sink := &mocks.Sink{EnabledValue: true}
	stage := newTestStage(sink)
	_, err := stage.Execute(context.Background(), pipeline.CardInput{
		Canvas: canvas,
		Card: pipeline.CardSpec{
			Rect:   ports.Rect{X: 60, Y: 60, Width: 80, Height: 50},
			Radius: 6,
		},
		Scale: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.Backdrops) != 1 {
		t.Errorf("expected 1 backdrop save, got %d", len(sink.Backdrops))
	}
	if len(sink.ProcessedBackdrop) != 1 {
		t.Errorf("expected 1 processed backdrop save, got %d", len(sink.ProcessedBackdrop))
	}
	if len(sink.CardCanvases) != 1 {
		t.Errorf("expected 1 card canvas save, got %d", len(sink.CardCanvases))
	}
}
