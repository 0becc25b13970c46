// Package noisegen provides the production noise source for the card
// grain texture.
package noisegen

import (
	"math/rand"

	"github.com/user/bannerforge/pkg/ports"
)

// Source yields uniformly distributed grayscale values. It is
// intentionally unseeded; grain output differs between exports.
type Source struct{}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// Next returns a uniformly distributed value in [0, 255].
func (s *Source) Next() uint8 {
	return uint8(rand.Intn(256))
}

// Ensure Source implements ports.NoiseSource
var _ ports.NoiseSource = (*Source)(nil)
