package yamlscene

import (
	"bytes"
	"context"
	"testing"

	"github.com/user/bannerforge/pkg/mocks"
	"github.com/user/bannerforge/pkg/ports"
)

const sceneYAML = `preview:
  x: 40
  y: 30
  width: 400
  height: 200
image:
  path: testdata/photo.png
card:
  rect:
    x: 140
    y: 80
    width: 200
    height: 100
  styles:
    border-radius: 24px
    background: "linear-gradient(135deg, rgba(255,255,255,0.25), rgba(255,255,255,0.15))"
text:
  rect:
    x: 160
    y: 110
    width: 160
    height: 40
  styles:
    font-size: 32px
    color: "rgb(51, 51, 51)"
  content: Weekend Escape
output:
  width: 1200
  height: 630
  font: /fonts/inter.ttf
`

func loadTestScene(t *testing.T) (*Scene, *mocks.FileSystem) {
	t.Helper()
	fs := &mocks.FileSystem{}
	if err := fs.WriteFile("scene.yaml", []byte(sceneYAML)); err != nil {
		t.Fatal(err)
	}
	if err := fs.WriteFile("testdata/photo.png", []byte{0x89, 0x50, 0x4e, 0x47}); err != nil {
		t.Fatal(err)
	}

	scene, err := Load("scene.yaml", fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return scene, fs
}

func TestLoad(t *testing.T) {
	scene, _ := loadTestScene(t)

	expected := ports.Rect{X: 40, Y: 30, Width: 400, Height: 200}
	if scene.Preview() != expected {
		t.Errorf("expected preview %+v, got %+v", expected, scene.Preview())
	}
	if scene.FixedWidth() != 1200 || scene.FixedHeight() != 630 {
		t.Errorf("expected 1200x630, got %dx%d", scene.FixedWidth(), scene.FixedHeight())
	}
	if scene.FontPath() != "/fonts/inter.ttf" {
		t.Errorf("unexpected font path %q", scene.FontPath())
	}
}

func TestScene_Elements(t *testing.T) {
	scene, _ := loadTestScene(t)

	card := scene.Card()
	if card.Rect().Width != 200 {
		t.Errorf("expected card width 200, got %f", card.Rect().Width)
	}
	if card.Style("border-radius") != "24px" {
		t.Errorf("unexpected border-radius %q", card.Style("border-radius"))
	}
	if card.Style("missing") != "" {
		t.Errorf("expected empty string for missing style, got %q", card.Style("missing"))
	}

	text := scene.Text()
	if text.Text() != "Weekend Escape" {
		t.Errorf("unexpected text content %q", text.Text())
	}
	if text.Style("font-size") != "32px" {
		t.Errorf("unexpected font-size %q", text.Style("font-size"))
	}
}

func TestScene_ImageFetch(t *testing.T) {
	scene, _ := loadTestScene(t)

	data, err := scene.Image().Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(data, []byte{0x89, 0x50, 0x4e, 0x47}) {
		t.Errorf("unexpected image bytes %v", data)
	}
}

func TestLoad_MissingImagePath(t *testing.T) {
	fs := &mocks.FileSystem{}
	if err := fs.WriteFile("scene.yaml", []byte("preview:\n  width: 100\n  height: 50\n")); err != nil {
		t.Fatal(err)
	}

	if _, err := Load("scene.yaml", fs); err == nil {
		t.Fatal("expected an error for a scene without image.path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	fs := &mocks.FileSystem{}
	if err := fs.WriteFile("scene.yaml", []byte("{not: [valid")); err != nil {
		t.Fatal(err)
	}

	if _, err := Load("scene.yaml", fs); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("nope.yaml", &mocks.FileSystem{}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
