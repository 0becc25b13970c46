package text

import (
	"context"
	"image/color"
	"testing"

	"github.com/user/bannerforge/pkg/adapters/ggrenderer"
	"github.com/user/bannerforge/pkg/adapters/logger"
	"github.com/user/bannerforge/pkg/pipeline"
	"github.com/user/bannerforge/pkg/ports"
)

func snapshotPixels(c ports.Canvas) []uint8 {
	img := c.ToImage()
	bounds := img.Bounds()
	out := make([]uint8, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			out = append(out, uint8(r>>8))
		}
	}
	return out
}

func TestExecute_DrawsInsideCardOnly(t *testing.T) {
	renderer := ggrenderer.New()
	canvas := renderer.CreateCanvas(200, 100, color.NRGBA{R: 230, G: 230, B: 230, A: 255})
	before := snapshotPixels(canvas)

	stage := NewStage(renderer, logger.NewNoop())
	card := pipeline.CardSpec{
		Rect:   ports.Rect{X: 20, Y: 10, Width: 160, Height: 80},
		Radius: 6,
	}

	_, err := stage.Execute(context.Background(), pipeline.TextInput{
		Canvas: canvas,
		Card:   card,
		Text: pipeline.TextSpec{
			Content: "Hello",
			Style: ports.TextStyle{
				FontSize: 13,
				Color:    color.NRGBA{R: 20, G: 20, B: 20, A: 255},
			},
		},
		Scale: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := snapshotPixels(canvas)

	changedInside := 0
	changedOutside := 0
	for i := range before {
		if before[i] == after[i] {
			continue
		}
		x := i % 200
		y := i / 200
		if float64(x) >= card.Rect.X && float64(x) < card.Rect.X+card.Rect.Width &&
			float64(y) >= card.Rect.Y && float64(y) < card.Rect.Y+card.Rect.Height {
			changedInside++
		} else {
			changedOutside++
		}
	}

	if changedInside == 0 {
		t.Error("expected the label to change pixels inside the card")
	}
	if changedOutside != 0 {
		t.Errorf("expected no changes outside the card, got %d", changedOutside)
	}
}

func TestExecute_EmptyContentIsNoop(t *testing.T) {
	renderer := ggrenderer.New()
	canvas := renderer.CreateCanvas(100, 50, color.NRGBA{R: 230, G: 230, B: 230, A: 255})
	before := snapshotPixels(canvas)

	stage := NewStage(renderer, logger.NewNoop())
	result, err := stage.Execute(context.Background(), pipeline.TextInput{
		Canvas: canvas,
		Card: pipeline.CardSpec{
			Rect: ports.Rect{X: 10, Y: 10, Width: 80, Height: 30},
		},
		Text:  pipeline.TextSpec{},
		Scale: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := snapshotPixels(result.Canvas)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("expected canvas untouched for empty content")
		}
	}
}

func TestExecute_ZeroCardIsNoop(t *testing.T) {
	renderer := ggrenderer.New()
	canvas := renderer.CreateCanvas(100, 50, color.NRGBA{R: 230, G: 230, B: 230, A: 255})
	before := snapshotPixels(canvas)

	stage := NewStage(renderer, logger.NewNoop())
	_, err := stage.Execute(context.Background(), pipeline.TextInput{
		Canvas: canvas,
		Card:   pipeline.CardSpec{},
		Text: pipeline.TextSpec{
			Content: "Hello",
			Style:   ports.TextStyle{FontSize: 13, Color: color.Black},
		},
		Scale: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after := snapshotPixels(canvas)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("expected canvas untouched for a zero-sized card")
		}
	}
}
