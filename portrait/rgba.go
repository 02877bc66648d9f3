package portrait

import (
	"image"
	"image/color"
	"math"
)

// ToRGBA packs a rendered Image into an 8-bit *image.RGBA for display
// or encoding by a downstream collaborator.
//
// Channels are clamped to [0,1] before quantization. NaN channels
// clamp to 0, so a degenerate pixel (zero-modulus sample under a
// log-modulus ramp) comes out black — the documented sentinel for
// per-pixel degradation.
//
// Complexity: O(m·n) time and memory.
func ToRGBA(img Image) *image.RGBA {
	rows := len(img)
	cols := 0
	if rows > 0 {
		cols = len(img[0])
	}

	out := image.NewRGBA(image.Rect(0, 0, cols, rows))
	for y, row := range img {
		for x, c := range row {
			out.SetRGBA(x, y, color.RGBA{
				R: quantize(c.R),
				G: quantize(c.G),
				B: quantize(c.B),
				A: 0xff,
			})
		}
	}

	return out
}

// quantize clamps ch to [0,1] (NaN → 0) and scales to 8 bits.
func quantize(ch float64) uint8 {
	if !(ch > 0) { // catches NaN, -Inf and negatives in one test
		return 0
	}
	if ch > 1 {
		ch = 1
	}

	return uint8(math.Round(ch * 255))
}
