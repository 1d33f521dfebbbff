//go:build arm64 && !purego

package neon

import "github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"

type saxpyKernel func(y, x []float32, a float32)

// saxpyKernels is indexed by normalized unroll factor. Each kernel handles a
// length that is a multiple of its step.
var saxpyKernels = [...]saxpyKernel{
	1: saxpy1NEON,
	2: saxpy2NEON,
	4: saxpy4NEON,
	8: saxpy8NEON,
}

// Saxpy computes y[i] = a*x[i] + y[i] in place, unroll vectors per loop
// body, and finishes the last len(y) mod (unroll*4) elements in Go.
// Factors outside {1, 2, 4, 8} use the factor-2 kernel.
// Slices must have equal length. Panics if lengths differ.
func Saxpy(y, x []float32, a float32, unroll int) {
	if len(x) != len(y) {
		panic("kernel: slice length mismatch")
	}
	unroll = registry.NormalizeUnroll(unroll)
	limit := registry.VectorLimit(len(y), registry.Step(unroll))
	if limit > 0 {
		saxpyKernels[unroll](y[:limit], x[:limit], a)
	}
	for i := limit; i < len(y); i++ {
		y[i] = float32(a*x[i]) + y[i]
	}
}

// Assembly function declarations (implemented in saxpy_arm64.s)

//go:noescape
func saxpy1NEON(y, x []float32, a float32)

//go:noescape
func saxpy2NEON(y, x []float32, a float32)

//go:noescape
func saxpy4NEON(y, x []float32, a float32)

//go:noescape
func saxpy8NEON(y, x []float32, a float32)
