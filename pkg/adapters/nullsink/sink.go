// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/bannerforge/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveTargetJSON does nothing.
func (s *Sink) SaveTargetJSON(data []byte) error {
	return nil
}

// SaveBackdrop does nothing.
func (s *Sink) SaveBackdrop(img image.Image) error {
	return nil
}

// SaveProcessedBackdrop does nothing.
func (s *Sink) SaveProcessedBackdrop(img image.Image) error {
	return nil
}

// SaveCardCanvas does nothing.
func (s *Sink) SaveCardCanvas(img image.Image) error {
	return nil
}

// SaveFinal does nothing.
func (s *Sink) SaveFinal(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
