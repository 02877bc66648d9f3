package portrait

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/phaseport/periodic"
)

// frame is the encoder's output: flat row-major buffers, one entry per
// grid sample. index holds 1-based colormap buckets; mask is nil for
// the Proper variant.
type frame struct {
	rows, cols int
	index      []int
	mask       []float64
}

// encode computes the per-sample phase index and, variant-dependent,
// the brightness mask. The variant is already validated by Render.
//
// The normalized phase is farg = (arg(-z)+π)/2π per sample. Negating z
// before taking the argument rotates the phase origin by 180°; this
// replicates the reference color scheme and must not be "fixed".
//
// A zero-modulus sample sends -Inf through the log-modulus ramp and
// yields a NaN mask entry for that pixel alone.
//
// Complexity: O(m·n) time and memory.
func encode(grid [][]complex128, v Variant, opts Options, buckets int) frame {
	rows, cols := len(grid), len(grid[0])
	f := frame{rows: rows, cols: cols, index: make([]int, rows*cols)}

	// Normalized phase per sample, reused by three of the variants.
	farg := make([]float64, rows*cols)
	for i, row := range grid {
		for j, z := range row {
			farg[i*cols+j] = (cmplx.Phase(-z) + math.Pi) / (2 * math.Pi)
		}
	}
	for k, p := range farg {
		f.index[k] = periodic.StepIndex(p, 1, buckets)
	}

	res := float64(opts.Resolution)
	phasePeriod := 1 / res
	modPeriod := 2 * math.Pi / res

	switch v {
	case Proper:
		// Smooth coloring: no mask.
	case ConformalGrid:
		lo := math.Sqrt(steppedLo*steppedLo*(1-opts.Brighten) + opts.Brighten)
		f.mask = make([]float64, rows*cols)
		for k, p := range farg {
			f.mask[k] = periodic.Sawtooth(p, phasePeriod, lo, 1)
		}
		modRamp := make([]float64, rows*cols)
		for i, row := range grid {
			for j, z := range row {
				modRamp[i*cols+j] = periodic.Sawtooth(math.Log(cmplx.Abs(z)), modPeriod, lo, 1)
			}
		}
		floats.Mul(f.mask, modRamp)
	case SteppedModulus:
		f.mask = make([]float64, rows*cols)
		for i, row := range grid {
			for j, z := range row {
				f.mask[i*cols+j] = periodic.Sawtooth(math.Log(cmplx.Abs(z)), modPeriod, steppedLo, 1)
			}
		}
	case SteppedPhase:
		f.mask = make([]float64, rows*cols)
		for k, p := range farg {
			f.mask[k] = periodic.Sawtooth(p, phasePeriod, steppedLo, 1)
		}
	}

	return f
}
