package periodic

import "math"

// StepIndex maps x to a 1-based bucket index in [1, buckets], treating
// the real line as a cycle of length period. The fractional position of
// x within its period window is computed floor-based, so negative
// inputs wrap correctly (StepIndex(-0.25, 1, 4) == 4, not 1).
//
// The result is clamped to [1, buckets] so that floating rounding at
// the upper period boundary can never produce an out-of-range index.
//
// Precondition: period != 0, buckets >= 1.
// Complexity: O(1).
func StepIndex(x, period float64, buckets int) int {
	t := x / period
	frac := t - math.Floor(t)
	idx := int(float64(buckets)*frac) + 1
	if idx < 1 {
		return 1
	}
	if idx > buckets {
		return buckets
	}

	return idx
}

// Sawtooth maps x onto the interval [lo, hi) via a periodic linear
// ramp: within each period window the value rises from lo toward hi,
// then resets. The fractional part is taken floor-based, so the ramp
// is continuous across negative inputs.
//
// A non-finite x (±Inf, NaN) yields NaN; callers that feed log-modulus
// through Sawtooth inherit this per-sample, by contract.
//
// Precondition: period != 0.
// Complexity: O(1).
func Sawtooth(x, period, lo, hi float64) float64 {
	t := x / period

	return lo + (hi-lo)*(t-math.Floor(t))
}
