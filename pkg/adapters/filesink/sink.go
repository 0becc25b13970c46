// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/bannerforge/pkg/ports"
)

// Sink saves intermediate pipeline rasters to files for inspection.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new file sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveTargetJSON saves the resolved export target as JSON.
func (s *Sink) SaveTargetJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "target.json"), data)
}

// SaveBackdrop saves the raw backdrop sample behind the card.
func (s *Sink) SaveBackdrop(img image.Image) error {
	return s.savePNG("backdrop.png", img)
}

// SaveProcessedBackdrop saves the backdrop after blur and saturation.
func (s *Sink) SaveProcessedBackdrop(img image.Image) error {
	return s.savePNG("backdrop-processed.png", img)
}

// SaveCardCanvas saves the canvas after the glass card is composed.
func (s *Sink) SaveCardCanvas(img image.Image) error {
	return s.savePNG("card.png", img)
}

// SaveFinal saves the finished banner raster.
func (s *Sink) SaveFinal(img image.Image) error {
	return s.savePNG("final.png", img)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
