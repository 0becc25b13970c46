package imagefx

import (
	"image"
)

// Rec.601 luma weights.
const (
	lumaR = 0.2989
	lumaG = 0.5870
	lumaB = 0.1140
)

// Saturate pushes each channel outward from the pixel's luma by the
// given multiplier, in place:
//
//	out = clamp(luma + multiplier*(channel-luma), 0, 255)
//
// A multiplier of 1.0 leaves the image unchanged.
func Saturate(img *image.NRGBA, multiplier float64) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[(y-bounds.Min.Y)*img.Stride:]
		for x := 0; x < bounds.Dx(); x++ {
			i := x * 4
			r := float64(row[i])
			g := float64(row[i+1])
			b := float64(row[i+2])

			luma := lumaR*r + lumaG*g + lumaB*b
			row[i] = clampByte(luma + multiplier*(r-luma))
			row[i+1] = clampByte(luma + multiplier*(g-luma))
			row[i+2] = clampByte(luma + multiplier*(b-luma))
		}
	}
}

// clampByte clamps a float to the [0, 255] byte range, rounding to nearest.
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
