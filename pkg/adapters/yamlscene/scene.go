// Package yamlscene implements the element and image contracts from a
// YAML scene description, so exports can run without a live host UI.
package yamlscene

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/user/bannerforge/pkg/ports"
)

// rectConfig is an on-screen rectangle in the scene file.
type rectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r rectConfig) rect() ports.Rect {
	return ports.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// elementConfig is one styled element in the scene file.
type elementConfig struct {
	Rect    rectConfig        `yaml:"rect"`
	Styles  map[string]string `yaml:"styles"`
	Content string            `yaml:"content"`
}

// sceneFile is the on-disk scene description.
type sceneFile struct {
	Preview rectConfig `yaml:"preview"`
	Image   struct {
		Path string `yaml:"path"`
	} `yaml:"image"`
	Card   elementConfig `yaml:"card"`
	Text   elementConfig `yaml:"text"`
	Output struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Font   string `yaml:"font"`
	} `yaml:"output"`
}

// Scene is a loaded scene description.
type Scene struct {
	file sceneFile
	fs   ports.FileSystem
}

// Load reads and parses a scene file.
func Load(path string, fs ports.FileSystem) (*Scene, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if file.Image.Path == "" {
		return nil, fmt.Errorf("scene is missing image.path")
	}

	return &Scene{file: file, fs: fs}, nil
}

// Preview returns the on-screen banner container rectangle.
func (s *Scene) Preview() ports.Rect {
	return s.file.Preview.rect()
}

// Card returns the card element.
func (s *Scene) Card() ports.Element {
	return &element{cfg: s.file.Card}
}

// Text returns the text element.
func (s *Scene) Text() ports.Element {
	return &element{cfg: s.file.Text}
}

// Image returns the source image reference.
func (s *Scene) Image() ports.ImageRef {
	return &fileImage{path: s.file.Image.Path, fs: s.fs}
}

// FixedWidth returns the requested output width, 0 when unset.
func (s *Scene) FixedWidth() int {
	return s.file.Output.Width
}

// FixedHeight returns the requested output height, 0 when unset.
func (s *Scene) FixedHeight() int {
	return s.file.Output.Height
}

// FontPath returns the font file configured for text rendering.
func (s *Scene) FontPath() string {
	return s.file.Output.Font
}

// element adapts an elementConfig to ports.Element.
type element struct {
	cfg elementConfig
}

func (e *element) Rect() ports.Rect {
	return e.cfg.Rect.rect()
}

func (e *element) Style(prop string) string {
	return e.cfg.Styles[prop]
}

func (e *element) Text() string {
	return e.cfg.Content
}

// fileImage adapts a file path to ports.ImageRef.
type fileImage struct {
	path string
	fs   ports.FileSystem
}

func (f *fileImage) Fetch(ctx context.Context) ([]byte, error) {
	return f.fs.ReadFile(f.path)
}

var (
	_ ports.Element  = (*element)(nil)
	_ ports.ImageRef = (*fileImage)(nil)
)
