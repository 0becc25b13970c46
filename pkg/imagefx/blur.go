// Package imagefx implements the per-pixel effect kernels used by the
// card and text renderers: Gaussian blur, saturation push, blend modes
// and noise.
package imagefx

import (
	"image"

	"github.com/disintegration/imaging"
)

// Blur applies a Gaussian blur of the given radius in pixels.
// Radius follows the CSS/canvas blur convention; the Gaussian sigma is
// radius/2. A non-positive radius returns an unblurred copy.
func Blur(img image.Image, radius float64) *image.NRGBA {
	if radius <= 0 {
		return imaging.Clone(img)
	}
	return imaging.Blur(img, radius*0.5)
}
