package pipeline

import (
	"image"
	"time"

	"github.com/user/bannerforge/pkg/ports"
)

// =============================================================================
// Geometry Stage Types
// =============================================================================

// GeometryInput contains parameters for target resolution.
type GeometryInput struct {
	Preview       ports.Rect // on-screen banner container rectangle
	NaturalWidth  int        // source image natural width in pixels
	NaturalHeight int        // source image natural height in pixels
	FixedWidth    int        // requested output width, 0 = not fixed
	FixedHeight   int        // requested output height, 0 = not fixed
}

// ExportTarget is the resolved raster size and optional source crop.
type ExportTarget struct {
	Width  int
	Height int

	// Crop is the source-image rectangle to sample, nil when the full
	// image is used.
	Crop *ports.Rect
}

// =============================================================================
// Style Stage Types
// =============================================================================

// StyleInput contains the on-screen elements to map into raster space.
type StyleInput struct {
	Preview  ports.Rect
	Target   ExportTarget
	Card     ports.Element
	Text     ports.Element
	FontPath string // font file used for raster text rendering
}

// StyleResult carries the scale factor and the raster-space card and
// text descriptions. Every length in it is pre-multiplied by Scale.
type StyleResult struct {
	// Scale is the single scalar ExportTarget.Width / Preview.Width.
	// Every on-screen length maps to raster space by multiplying by it
	// exactly once.
	Scale float64

	Card CardSpec
	Text TextSpec
}

// CardSpec is the raster-space geometry and tint of the glass card.
type CardSpec struct {
	Rect   ports.Rect
	Radius float64

	// TintStops holds the two gradient stops extracted from the card's
	// declared background, or nil when the defaults apply.
	TintStops []ports.GradientStop
}

// TextSpec is the raster-space text label.
type TextSpec struct {
	Content string
	Style   ports.TextStyle
}

// =============================================================================
// Background Stage Types
// =============================================================================

// BackgroundInput contains the decoded source image and the target.
type BackgroundInput struct {
	Source image.Image
	Target ExportTarget
}

// BackgroundResult carries the canvas with the background composited.
type BackgroundResult struct {
	Canvas ports.Canvas
}

// =============================================================================
// Card Stage Types
// =============================================================================

// CardInput contains the canvas to draw the glass card onto.
type CardInput struct {
	Canvas ports.Canvas
	Card   CardSpec
	Scale  float64
}

// CardResult carries the canvas after card composition.
type CardResult struct {
	Canvas ports.Canvas
}

// =============================================================================
// Text Stage Types
// =============================================================================

// TextInput contains the canvas and the label to center inside the card.
type TextInput struct {
	Canvas ports.Canvas
	Card   CardSpec
	Text   TextSpec
	Scale  float64
}

// TextResult carries the canvas after text composition.
type TextResult struct {
	Canvas ports.Canvas
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the finished raster to serialize.
type EncodeInput struct {
	Image image.Image

	// Timestamp is embedded in the generated filename.
	Timestamp time.Time
}

// EncodeResult contains the encoded banner and its filename.
type EncodeResult struct {
	Data     []byte
	Filename string
}
