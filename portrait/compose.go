package portrait

import "github.com/lucasb-eyer/go-colorful"

// compose writes the final image from a frame and a colormap.
//
// Input row 0 carries the lowest imaginary part, but images put row 0
// at the top, so row i of the frame lands on output row rows-1-i.
// Every pixel is assigned exactly once into a fresh buffer; nothing
// aliases the frame or the colormap.
//
// Complexity: O(m·n) time and memory.
func compose(f frame, cmap []colorful.Color) Image {
	out := make(Image, f.rows)
	for i := 0; i < f.rows; i++ {
		dst := make([]colorful.Color, f.cols)
		for j := 0; j < f.cols; j++ {
			c := cmap[f.index[i*f.cols+j]-1]
			if f.mask != nil {
				b := f.mask[i*f.cols+j]
				c = colorful.Color{R: c.R * b, G: c.G * b, B: c.B * b}
			}
			dst[j] = c
		}
		out[f.rows-1-i] = dst
	}

	return out
}
