package ports

import "image"

// DebugSink abstracts debug output for intermediate pipeline results.
// Each save corresponds to one point in the compositing order.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveTargetJSON saves the resolved export target as JSON.
	SaveTargetJSON(data []byte) error

	// SaveBackdrop saves the raw backdrop sample behind the card.
	SaveBackdrop(img image.Image) error

	// SaveProcessedBackdrop saves the backdrop after blur and saturation.
	SaveProcessedBackdrop(img image.Image) error

	// SaveCardCanvas saves the canvas after the glass card is composed.
	SaveCardCanvas(img image.Image) error

	// SaveFinal saves the finished banner raster.
	SaveFinal(img image.Image) error
}
