package colormap

import (
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Build constructs the colormap for the given layout.
//
// Standard: StandardSize hues linearly spaced over 0°..360° inclusive,
// each converted from HSL (saturation 1.0, lightness 0.5) to RGB. The
// inclusive span makes the first and last entries identical, so index
// arithmetic may wrap freely.
//
// Reference: ReferenceSize uniform hues, then re-indexed through a
// fixed partition of the wheel (n = ReferenceSize):
//
//	positions        1 ..   n/6   kept dense
//	positions  n/6+1 ..   n/2     every second index
//	positions  n/2+1 ..  2n/3     kept dense
//	positions 2n/3+1 ..   n       every second index
//
// The boundaries are integer expressions on n and must stay exactly as
// written; they replicate an external reference color scheme, and the
// resulting length (600 for n=900) is shorter than the dense wheel.
//
// Build is pure and deterministic. Returns ErrUnknownLayout for a
// selector outside the declared set.
//
// Complexity: O(n) time and memory.
func Build(layout Layout) ([]colorful.Color, error) {
	switch layout {
	case Standard:
		return wheel(StandardSize), nil
	case Reference:
		return reindex(wheel(ReferenceSize)), nil
	default:
		return nil, ErrUnknownLayout
	}
}

// wheel returns n hue-wheel colors spanning 0°..360° inclusive at
// saturation 1.0 and lightness 0.5.
func wheel(n int) []colorful.Color {
	hues := make([]float64, n)
	floats.Span(hues, 0, 360)

	colors := make([]colorful.Color, n)
	for i, h := range hues {
		colors[i] = colorful.Hsl(h, 1.0, 0.5)
	}

	return colors
}

// reindex applies the Reference partition to a dense wheel.
// len(dense) must be divisible by 6 so the boundaries land exactly.
func reindex(dense []colorful.Color) []colorful.Color {
	n := len(dense)
	out := make([]colorful.Color, 0, n)

	for i := 0; i < n/6; i++ {
		out = append(out, dense[i])
	}
	for i := n / 6; i < n/2; i += 2 {
		out = append(out, dense[i])
	}
	for i := n / 2; i < 2*n/3; i++ {
		out = append(out, dense[i])
	}
	for i := 2 * n / 3; i < n; i += 2 {
		out = append(out, dense[i])
	}

	return out
}
