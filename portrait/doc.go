// Package portrait turns a 2D grid of complex samples into a phase
// portrait: an image whose hue encodes each sample's argument and,
// for some variants, whose brightness encodes its modulus.
//
// What:
//
//   - Render — the single entry point: validate, encode, compose.
//   - Four variants: Proper (smooth phase coloring), ConformalGrid
//     (phase × modulus contour overlay), SteppedModulus and
//     SteppedPhase (banded brightness over one quantity).
//   - ToRGBA — packs the float image into *image.RGBA for display.
//
// Why:
//
//   - Visualizing complex-valued functions: zeros, poles, branch cuts
//     and winding all become directly visible as color structure.
//   - The conformal-grid overlay approximates the image of a
//     coordinate grid under the mapped function.
//
// Conventions:
//
//   - The normalized phase is (arg(-z)+π)/2π: the argument origin is
//     rotated by 180° so positive reals map to the wheel's seam. This
//     matches the reference color scheme and is deliberate.
//   - Row 0 of the input grid is the bottom row of the output image
//     (increasing row index = increasing imaginary part; images put
//     row 0 at the top).
//   - Degenerate samples (zero modulus under log) taint their own
//     pixel with NaN; the render itself never fails on them.
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownVariant: selector outside the declared set.
//   - ErrBadResolution: Options.Resolution < 1.
//
// Complexity: O(m·n) time and memory per render, plus the O(N)
// colormap build.
package portrait
