package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/bannerforge/pkg/ports"
)

func rgbaAt(img image.Image, x, y int) color.RGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestCreateCanvas_Background(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(10, 8, color.NRGBA{R: 255, A: 255})
	w, h := canvas.Size()
	if w != 10 || h != 8 {
		t.Errorf("expected 10x8, got %dx%d", w, h)
	}
	if got := rgbaAt(canvas.ToImage(), 5, 4); got.R != 255 || got.A != 255 {
		t.Errorf("expected opaque red fill, got %+v", got)
	}

	transparent := r.CreateCanvas(4, 4, nil)
	if got := rgbaAt(transparent.ToImage(), 2, 2); got.A != 0 {
		t.Errorf("expected transparent canvas, got alpha %d", got.A)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(6, 6, color.NRGBA{G: 200, A: 255})
	data, err := r.EncodeImage(canvas.ToImage(), ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty PNG data")
	}

	decoded, err := r.DecodeImage(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 6 || decoded.Bounds().Dy() != 6 {
		t.Errorf("expected 6x6, got %v", decoded.Bounds())
	}
	if got := rgbaAt(decoded, 3, 3); got.G != 200 {
		t.Errorf("expected green to survive the round trip, got %+v", got)
	}
}

func TestEncodeImage_JPEG(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(4, 4, color.White)
	data, err := r.EncodeImage(canvas.ToImage(), ports.FormatJPEG, 80)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := r.DecodeImage(data); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func TestCropScale(t *testing.T) {
	r := New()

	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{B: 255, A: 255})
		}
	}

	out := r.CropScale(src, ports.Rect{X: 0, Y: 0, Width: 4, Height: 4}, 2, 2)
	if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 2 {
		t.Fatalf("expected 2x2, got %v", out.Bounds())
	}
	if got := rgbaAt(out, 1, 1); got.B != 255 || got.A != 255 {
		t.Errorf("expected solid blue, got %+v", got)
	}
}

func TestRoundedClip_RestrictsDrawing(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(20, 20, color.Black)
	white := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			white.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	canvas.PushRoundedClip(ports.Rect{X: 5, Y: 5, Width: 10, Height: 10}, 2)
	canvas.DrawImage(white, 0, 0)
	canvas.PopClip()

	if got := rgbaAt(canvas.ToImage(), 10, 10); got.R != 255 {
		t.Errorf("expected center inside clip painted, got %+v", got)
	}
	if got := rgbaAt(canvas.ToImage(), 1, 1); got.R != 0 {
		t.Errorf("expected corner outside clip untouched, got %+v", got)
	}

	// After PopClip the full canvas is writable again.
	canvas.DrawImage(white, 0, 0)
	if got := rgbaAt(canvas.ToImage(), 1, 1); got.R != 255 {
		t.Errorf("expected corner painted after PopClip, got %+v", got)
	}
}

func TestRoundedClip_SequentialClips(t *testing.T) {
	// Two clip/unclip rounds against different regions, the pattern the
	// compositing stages run. The second clip must not inherit the
	// first region.
	r := New()

	canvas := r.CreateCanvas(20, 20, color.Black)
	white := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			white.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	canvas.PushRoundedClip(ports.Rect{X: 2, Y: 2, Width: 4, Height: 4}, 0)
	canvas.PopClip()

	canvas.PushRoundedClip(ports.Rect{X: 12, Y: 12, Width: 6, Height: 6}, 0)
	canvas.DrawImage(white, 0, 0)
	canvas.PopClip()

	if got := rgbaAt(canvas.ToImage(), 15, 15); got.R != 255 {
		t.Errorf("expected second clip region painted, got %+v", got)
	}
	if got := rgbaAt(canvas.ToImage(), 4, 4); got.R != 0 {
		t.Errorf("expected first (released) clip region untouched, got %+v", got)
	}
}

func TestDrawImageAlpha(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(4, 4, color.Black)
	white := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			white.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	canvas.DrawImageAlpha(white, 0, 0, 0.5)

	got := rgbaAt(canvas.ToImage(), 2, 2)
	if got.R < 100 || got.R > 160 {
		t.Errorf("expected roughly half-faded white over black, got %+v", got)
	}

	// Zero alpha is a no-op.
	canvas2 := r.CreateCanvas(4, 4, color.Black)
	canvas2.DrawImageAlpha(white, 0, 0, 0)
	if got := rgbaAt(canvas2.ToImage(), 2, 2); got.R != 0 {
		t.Errorf("expected untouched black, got %+v", got)
	}
}

func TestFillRoundedRectGradient(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(10, 10, color.Black)
	canvas.FillRoundedRectGradient(ports.Rect{Width: 10, Height: 10}, 0,
		0, 0, 0, 10,
		[]ports.GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
			{Offset: 1, Color: color.NRGBA{A: 255}},
		})

	top := rgbaAt(canvas.ToImage(), 5, 0)
	bottom := rgbaAt(canvas.ToImage(), 5, 9)
	if top.R <= bottom.R {
		t.Errorf("expected gradient to fade downward, top %d bottom %d", top.R, bottom.R)
	}
}

func TestSnapshot_ClampsAndRebases(t *testing.T) {
	r := New()

	canvas := r.CreateCanvas(10, 10, color.NRGBA{R: 50, G: 60, B: 70, A: 255})

	snap := canvas.Snapshot(ports.Rect{X: -5, Y: -5, Width: 20, Height: 20})
	if snap.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("expected clamped 10x10 snapshot at origin, got %v", snap.Bounds())
	}
	if got := snap.RGBAAt(5, 5); got.R != 50 {
		t.Errorf("expected canvas pixels copied, got %+v", got)
	}

	// Mutating the snapshot must not write through to the canvas.
	snap.SetRGBA(5, 5, color.RGBA{A: 255})
	if got := rgbaAt(canvas.ToImage(), 5, 5); got.R != 50 {
		t.Error("expected snapshot to be an independent copy")
	}
}

func TestRenderText(t *testing.T) {
	r := New()

	layer := r.RenderText("Hello", ports.TextStyle{
		FontSize: 13,
		Color:    color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}, 80, 30)

	if layer.Bounds().Dx() != 80 || layer.Bounds().Dy() != 30 {
		t.Fatalf("expected 80x30 layer, got %v", layer.Bounds())
	}

	painted := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 80; x++ {
			if layer.RGBAAt(x, y).A > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Error("expected some painted pixels")
	}
}

func TestMeasureText(t *testing.T) {
	r := New()

	w, h := r.MeasureText("Hello", ports.TextStyle{FontSize: 13})
	if w <= 0 {
		t.Errorf("expected positive width, got %f", w)
	}
	if h != 13 {
		t.Errorf("expected height equal to font size, got %f", h)
	}

	wider, _ := r.MeasureText("Hello, world", ports.TextStyle{FontSize: 13})
	if wider <= w {
		t.Errorf("expected longer text to measure wider: %f vs %f", wider, w)
	}
}
