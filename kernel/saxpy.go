package kernel

import "github.com/cwbudde/algo-vecbench/kernel/internal/arch/generic"

// SaxpyScalar computes y[i] = a*x[i] + y[i] one element at a time without
// fusing the multiply and the add. Panics if len(x) != len(y).
func SaxpyScalar(y, x []float32, a float32) {
	generic.Saxpy(y, x, a)
}

// SaxpyAuto computes y[i] = a*x[i] + y[i]. The loop is shaped so the
// compiler can drop bounds checks and contract a*x+y into an FMA where the
// target has one. Panics if len(x) != len(y).
func SaxpyAuto(y, x []float32, a float32) {
	if len(x) != len(y) {
		panic("kernel: slice length mismatch")
	}
	x = x[:len(y)]
	for i, v := range x {
		y[i] += a * v
	}
}

// SaxpyManual computes y[i] = a*x[i] + y[i] with the vector implementation
// selected for this CPU, processing unroll*Lanes elements per loop body.
// Unroll factors outside {1, 2, 4, 8} behave like DefaultUnroll.
// Panics if len(x) != len(y).
func SaxpyManual(y, x []float32, a float32, unroll int) {
	manual().Saxpy(y, x, a, unroll)
}
