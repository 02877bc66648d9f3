// Package colormap builds the cyclic hue colormaps used to color
// phase portraits.
//
// What:
//
//   - Build(Standard) — 600 colors uniformly spaced around the hue
//     wheel (0°..360° inclusive), saturation 1.0, lightness 0.5.
//   - Build(Reference) — 900 uniform hue samples re-indexed through a
//     fixed partition (dense / every-second / dense / every-second)
//     that compresses color transitions unevenly around the wheel,
//     approximating an external reference color scheme. The result is
//     600 entries long.
//
// Why:
//
//   - Phase is an angle; a cyclic colormap makes the wraparound at
//     ±180° invisible (first and last entries are the same color).
//   - The re-indexed layout widens the perceptually narrow yellow and
//     cyan bands so equal phase steps read as equal color steps.
//
// Colors are colorful.Color values: RGB triples with float64 channels
// in [0,1], produced by HSL conversion. Build is pure and
// deterministic; the map is rebuilt on every call (no caching).
//
// Errors:
//
//   - ErrUnknownLayout: the layout selector is not Standard/Reference.
//
// Complexity: O(N) time and memory, N = 600 or 900.
package colormap
