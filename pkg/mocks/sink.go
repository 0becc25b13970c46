package mocks

import (
	"image"
)

// Sink is a mock implementation of ports.DebugSink that records what was
// saved.
type Sink struct {
	EnabledValue bool

	TargetJSON        [][]byte
	Backdrops         []image.Image
	ProcessedBackdrop []image.Image
	CardCanvases      []image.Image
	Finals            []image.Image
}

func (m *Sink) Enabled() bool {
	return m.EnabledValue
}

func (m *Sink) SaveTargetJSON(data []byte) error {
	m.TargetJSON = append(m.TargetJSON, data)
	return nil
}

func (m *Sink) SaveBackdrop(img image.Image) error {
	m.Backdrops = append(m.Backdrops, img)
	return nil
}

func (m *Sink) SaveProcessedBackdrop(img image.Image) error {
	m.ProcessedBackdrop = append(m.ProcessedBackdrop, img)
	return nil
}

func (m *Sink) SaveCardCanvas(img image.Image) error {
	m.CardCanvases = append(m.CardCanvases, img)
	return nil
}

func (m *Sink) SaveFinal(img image.Image) error {
	m.Finals = append(m.Finals, img)
	return nil
}
