package imagefx

import (
	"image"
	"image/color"
)

// BlendMultiply composites src over dst in place using the multiply
// blend mode:
//
//	blended = dst * src / 255
//
// The source alpha and the uniform opacity both modulate how far each
// destination pixel moves toward the blended value. Images are aligned
// at their respective origins; pixels outside the overlap are untouched.
func BlendMultiply(dst *image.RGBA, src image.Image, opacity float64) {
	blend(dst, src, opacity, func(d, s uint8) uint8 {
		return uint8(uint16(d) * uint16(s) / 255)
	})
}

// BlendOverlay composites src over dst in place using the overlay blend
// mode:
//
//	blended = 2*dst*src/255                      if dst < 128
//	blended = 255 - 2*(255-dst)*(255-src)/255    otherwise
func BlendOverlay(dst *image.RGBA, src image.Image, opacity float64) {
	blend(dst, src, opacity, func(d, s uint8) uint8 {
		if d < 128 {
			return uint8(2 * uint16(d) * uint16(s) / 255)
		}
		return uint8(255 - 2*uint16(255-d)*uint16(255-s)/255)
	})
}

func blend(dst *image.RGBA, src image.Image, opacity float64, mode func(d, s uint8) uint8) {
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	db := dst.Bounds()
	sb := src.Bounds()
	width := min(db.Dx(), sb.Dx())
	height := min(db.Dy(), sb.Dy())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s := color.NRGBAModel.Convert(src.At(sb.Min.X+x, sb.Min.Y+y)).(color.NRGBA)
			a := opacity * float64(s.A) / 255
			if a == 0 {
				continue
			}

			d := dst.RGBAAt(db.Min.X+x, db.Min.Y+y)
			out := color.RGBA{
				R: lerpByte(d.R, mode(d.R, s.R), a),
				G: lerpByte(d.G, mode(d.G, s.G), a),
				B: lerpByte(d.B, mode(d.B, s.B), a),
				A: d.A,
			}
			dst.SetRGBA(db.Min.X+x, db.Min.Y+y, out)
		}
	}
}

// lerpByte mixes from a toward b by t in [0, 1].
func lerpByte(a, b uint8, t float64) uint8 {
	return clampByte(float64(a) + t*(float64(b)-float64(a)))
}
