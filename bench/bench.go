// Package bench drives one timed benchmark run: it generates deterministic
// inputs, invokes the selected kernel and variant a fixed number of times,
// and derives throughput and a checksum.
//
// Runs are single-threaded and take one wall-clock measurement around the
// whole iteration loop. There is no warm-up and no repetition.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-vecbench/kernel"
	"github.com/grailbio/base/log"
)

const (
	// Seed initializes the input generator of every run.
	Seed = 42

	// Alpha is the SAXPY scalar a.
	Alpha float32 = 1.25
)

// ErrInternal is returned when a kernel or variant value has no dispatch
// arm. Values obtained from kernel.ParseKind and kernel.ParseVariant never
// trigger it.
var ErrInternal = errors.New("bench: internal inconsistency")

// Config describes one run.
type Config struct {
	Kernel  kernel.Kind
	Variant kernel.Variant

	// N is the number of elements in each input buffer.
	N int

	// Iterations is the number of kernel invocations timed together.
	Iterations int

	// Unroll is the manual-variant unroll factor. Values outside
	// {1, 2, 4, 8} run as kernel.DefaultUnroll.
	Unroll int
}

// DefaultConfig returns a SAXPY/auto run over 1Mi elements, 10 iterations.
func DefaultConfig() Config {
	return Config{
		Kernel:     kernel.SAXPY,
		Variant:    kernel.Auto,
		N:          1 << 20,
		Iterations: 10,
		Unroll:     kernel.DefaultUnroll,
	}
}

// Result is the outcome of a run.
type Result struct {
	// Seconds is the wall-clock time of all iterations together.
	Seconds float64

	// GFLOPS is 2*N*Iterations / (Seconds*1e9). A zero duration gives +Inf.
	GFLOPS float64

	// Checksum is the sum of y after the last SAXPY iteration, or the dot
	// product of the last iteration.
	Checksum float32

	// Impl names the implementation behind the manual variant ("sse2",
	// "neon", "generic"). Empty for the scalar and auto variants.
	Impl string
}

// step runs one kernel invocation and returns its scalar result (0 for
// SAXPY).
type step func(x, y []float32, a float32) float32

// resolve maps (kind, variant) to a kernel invocation. The manual
// implementation is looked up here, outside the timed loop.
func resolve(kind kernel.Kind, variant kernel.Variant, unroll int) (step, error) {
	switch kind {
	case kernel.SAXPY:
		switch variant {
		case kernel.Scalar:
			return func(x, y []float32, a float32) float32 {
				kernel.SaxpyScalar(y, x, a)
				return 0
			}, nil
		case kernel.Auto:
			return func(x, y []float32, a float32) float32 {
				kernel.SaxpyAuto(y, x, a)
				return 0
			}, nil
		case kernel.Manual:
			saxpy := kernel.ManualSaxpy()
			return func(x, y []float32, a float32) float32 {
				saxpy(y, x, a, unroll)
				return 0
			}, nil
		}
	case kernel.Dot:
		switch variant {
		case kernel.Scalar:
			return func(x, y []float32, _ float32) float32 { return kernel.DotScalar(x, y) }, nil
		case kernel.Auto:
			return func(x, y []float32, _ float32) float32 { return kernel.DotAuto(x, y) }, nil
		case kernel.Manual:
			dot := kernel.ManualDot()
			return func(x, y []float32, _ float32) float32 { return dot(x, y) }, nil
		}
	default:
		return nil, fmt.Errorf("%w: unknown kernel %v", ErrInternal, kind)
	}
	return nil, fmt.Errorf("%w: unknown variant %v", ErrInternal, variant)
}

// Run executes cfg. Negative N or Iterations count as zero.
//
// SAXPY iterations are not independent: every iteration updates the y left
// by the previous one and y is never reset. The checksum therefore grows with
// the iteration count and the timing covers that compounding workload rather
// than repeated identical calls.
func Run(cfg Config) (Result, error) {
	fn, err := resolve(cfg.Kernel, cfg.Variant, cfg.Unroll)
	if err != nil {
		return Result{}, err
	}
	x, y := Inputs(max(cfg.N, 0))
	return execute(cfg, fn, Alpha, x, y), nil
}

// execute times Iterations calls of fn on x and y.
func execute(cfg Config, fn step, a float32, x, y []float32) Result {
	iters := max(cfg.Iterations, 0)

	var res Result
	if cfg.Variant == kernel.Manual {
		res.Impl = kernel.Implementation()
	}
	log.Debug.Printf("bench: %v/%v n=%d iterations=%d unroll=%d impl=%q",
		cfg.Kernel, cfg.Variant, len(y), iters, kernel.NormalizeUnroll(cfg.Unroll), res.Impl)

	var last float32
	start := time.Now()
	for range iters {
		last = fn(x, y, a)
	}
	res.Seconds = time.Since(start).Seconds()

	res.GFLOPS = GFLOPS(len(y), iters, res.Seconds)
	if cfg.Kernel == kernel.SAXPY {
		res.Checksum = Checksum(y)
	} else {
		res.Checksum = last
	}
	return res
}
