// Package periodic provides the two periodic mappers the portrait
// pipeline is built on: cyclic bucketing and sawtooth ramps.
//
// What:
//
//   - StepIndex quantizes a real value into one of `buckets` discrete
//     bins per period, returning a 1-based index in [1, buckets].
//   - Sawtooth maps a real value onto [lo, hi) via a linear ramp that
//     resets at every period boundary.
//
// Why:
//
//   - Phase coloring: a normalized phase in [0,1) picks a colormap entry.
//   - Contour shading: ramps over phase and log-modulus produce the
//     grid-like brightness overlays of the stepped portrait variants.
//
// Both functions are pure, stateless and elementwise-applicable; both
// reduce their argument to a fractional part first, so inputs far from
// the origin behave under standard IEEE floor semantics.
//
// Preconditions (documented, not validated):
//
//   - period must be nonzero.
//   - StepIndex requires buckets ≥ 1.
//
// Complexity: O(1) per call, no allocations.
package periodic
