// Package colormap defines the layout selector, size constants and
// sentinel errors for colormap construction.
package colormap

import "errors"

// ErrUnknownLayout indicates a layout selector outside the declared set.
var ErrUnknownLayout = errors.New("colormap: unknown layout")

// Layout selects how hue samples are distributed around the wheel.
type Layout int

const (
	// Standard is the uniform layout: StandardSize equally spaced hues.
	Standard Layout = iota

	// Reference is the perceptually re-indexed layout: ReferenceSize
	// uniform hues subsampled through a fixed partition. See Build.
	Reference
)

// String returns the layout name for diagnostics.
func (l Layout) String() string {
	switch l {
	case Standard:
		return "Standard"
	case Reference:
		return "Reference"
	default:
		return "Layout(unknown)"
	}
}

// Colormap sizes. Both are even and divisible by 6, which the
// Reference partition boundaries (sixths and thirds) rely on.
const (
	// StandardSize is the uniform hue-wheel length.
	StandardSize = 600

	// ReferenceSize is the dense sample count before re-indexing.
	ReferenceSize = 900
)
