package imagefx

import (
	"image"
)

// Noise builds a width x height opaque grayscale image where each pixel
// takes an independent value from next (R = G = B per pixel). The value
// source is injected so deterministic sequences can be substituted in
// tests.
func Noise(width, height int, next func() uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			v := next()
			i := x * 4
			row[i] = v
			row[i+1] = v
			row[i+2] = v
			row[i+3] = 255
		}
	}
	return img
}
