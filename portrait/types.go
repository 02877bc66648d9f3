// Package portrait defines variants, options, sentinel errors and the
// image type for phase-portrait rendering.
package portrait

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/phaseport/colormap"
)

// Sentinel errors for portrait rendering.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("portrait: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("portrait: all grid rows must have the same length")
	// ErrUnknownVariant indicates a variant selector outside the declared set.
	ErrUnknownVariant = errors.New("portrait: unknown portrait variant")
	// ErrBadResolution indicates Options.Resolution < 1.
	ErrBadResolution = errors.New("portrait: phase resolution must be a positive integer")
)

// Variant selects the portrait style.
//
//   - Proper         — smooth phase coloring, no brightness mask.
//   - ConformalGrid  — two brightness ramps (phase-driven and
//     log-modulus-driven) multiplied together form a grid-like
//     contour overlay.
//   - SteppedModulus — banded brightness over log-modulus only.
//   - SteppedPhase   — banded brightness over phase only.
type Variant int

const (
	// Proper renders smooth phase coloring with no brightness mask.
	Proper Variant = iota
	// ConformalGrid overlays multiplied phase and modulus contour ramps.
	ConformalGrid
	// SteppedModulus shades bands of constant log-modulus.
	SteppedModulus
	// SteppedPhase shades bands of constant phase.
	SteppedPhase
)

// String returns the variant name for diagnostics.
func (v Variant) String() string {
	switch v {
	case Proper:
		return "Proper"
	case ConformalGrid:
		return "ConformalGrid"
	case SteppedModulus:
		return "SteppedModulus"
	case SteppedPhase:
		return "SteppedPhase"
	default:
		return "Variant(unknown)"
	}
}

// Defaults for Options. All of them may be overridden per call; there
// is no process-wide state.
const (
	// DefaultResolution is the number of brightness bands per period.
	DefaultResolution = 20
	// DefaultBrighten is the floor lift for the conformal-grid ramps.
	DefaultBrighten = 0.1
)

// steppedLo is the lower brightness bound of the stepped variants.
const steppedLo = 0.75

// Options configures a render.
//
// Fields:
//   - Layout     — colormap layout (colormap.Standard or colormap.Reference).
//   - Resolution — bands per period for the stepped/grid variants.
//     Must be ≥ 1; Render fails fast with ErrBadResolution otherwise.
//   - Brighten   — floor lift in [0,1] for the conformal-grid ramps;
//     the effective lower bound is sqrt(0.75²·(1−Brighten)+Brighten).
//
// Example:
//
//	opts := portrait.DefaultOptions()
//	opts.Layout = colormap.Reference
//	opts.Resolution = 12
//
//	img, err := portrait.Render(grid, portrait.ConformalGrid, opts)
type Options struct {
	Layout     colormap.Layout
	Resolution int
	Brighten   float64
}

// DefaultOptions returns the standard configuration:
// Standard layout, Resolution=20, Brighten=0.1.
func DefaultOptions() Options {
	return Options{
		Layout:     colormap.Standard,
		Resolution: DefaultResolution,
		Brighten:   DefaultBrighten,
	}
}

// Image is the rendered portrait: row-major pixels with float64 RGB
// channels in [0,1] (NaN where a degenerate sample tainted its pixel).
// Row 0 is the top of the image; see the package comment for the flip
// convention relative to the input grid.
type Image [][]colorful.Color
