package portrait

import "github.com/katalvlaran/phaseport/colormap"

// Render produces the phase portrait of grid in the given variant.
//
// Pipeline: validate inputs → build colormap → encode phase index and
// brightness mask → compose the flipped image.
//
// Contract:
//   - grid must be non-empty and rectangular; it is read, never
//     mutated, and the returned Image shares no storage with it.
//   - The output has exactly the grid's shape, with input row 0 at the
//     bottom of the image (see the package comment).
//   - Identical inputs yield identical images; there is no hidden
//     state and the colormap is rebuilt per call.
//   - Degenerate samples (zero modulus, non-finite values) taint only
//     their own pixel, with NaN channels; Render still succeeds.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrUnknownVariant,
// ErrBadResolution, colormap.ErrUnknownLayout.
//
// Complexity: O(m·n + N) time, O(m·n + N) memory (N = colormap size).
func Render(grid [][]complex128, v Variant, opts Options) (Image, error) {
	if err := validate(grid, v, opts); err != nil {
		return nil, err
	}

	cmap, err := colormap.Build(opts.Layout)
	if err != nil {
		return nil, err
	}

	return compose(encode(grid, v, opts, len(cmap)), cmap), nil
}

// validate checks the grid shape and option/variant selectors before
// any allocation proportional to the grid happens.
//
// Complexity: O(m) time.
func validate(grid [][]complex128, v Variant, opts Options) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ErrEmptyGrid
	}
	cols := len(grid[0])
	for _, row := range grid {
		if len(row) != cols {
			return ErrNonRectangular
		}
	}
	switch v {
	case Proper, ConformalGrid, SteppedModulus, SteppedPhase:
	default:
		return ErrUnknownVariant
	}
	if opts.Resolution < 1 {
		return ErrBadResolution
	}

	return nil
}
