package bench

import (
	"math"

	"github.com/cwbudde/algo-vecbench/kernel"
	"github.com/cwbudde/algo-vecmath"
)

// DefaultTolerance is the accepted checksum error relative to the magnitude
// of the summed terms.
const DefaultTolerance = 1e-3

// Validation compares a checksum against a float64 recomputation.
type Validation struct {
	// Reference is the float64 checksum for the same configuration.
	Reference float64

	// AbsErr is |Checksum - Reference|.
	AbsErr float64

	// Scale is the sum of absolute terms behind Reference.
	Scale float64

	// RelErr is AbsErr / max(1, Scale).
	RelErr float64

	Tolerance float64
	OK        bool
}

// Validate recomputes cfg in float64 from the same seeded inputs and checks
// res.Checksum against it. SAXPY repeats the compounding update Iterations
// times; the dot product is computed once (zero iterations give 0).
func Validate(cfg Config, res Result, tol float64) Validation {
	n := max(cfg.N, 0)
	iters := max(cfg.Iterations, 0)
	x, y := Inputs(n)
	x64, y64 := widen(x), widen(y)

	v := Validation{Tolerance: tol}
	switch cfg.Kernel {
	case kernel.SAXPY:
		if n > 0 {
			ax := make([]float64, n)
			vecmath.ScaleBlock(ax, x64, float64(Alpha))
			for range iters {
				vecmath.AddBlockInPlace(y64, ax)
			}
		}
		v.Reference, v.Scale = sumAbs(y64)
	case kernel.Dot:
		if n > 0 && iters > 0 {
			prod := make([]float64, n)
			vecmath.MulBlock(prod, x64, y64)
			v.Reference, v.Scale = sumAbs(prod)
		}
	}

	v.AbsErr = math.Abs(float64(res.Checksum) - v.Reference)
	v.RelErr = v.AbsErr / math.Max(1, v.Scale)
	v.OK = v.RelErr <= tol
	return v
}

func widen(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func sumAbs(s []float64) (sum, abs float64) {
	for _, v := range s {
		sum += v
		abs += math.Abs(v)
	}
	return sum, abs
}
