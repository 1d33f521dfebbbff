package generic

// Saxpy computes y[i] = a*x[i] + y[i] in place.
// Slices must have equal length. Panics if lengths differ.
//
// The product is rounded to float32 before the add, which keeps the compiler
// from contracting the two operations into an FMA: the result is the same on
// every architecture and bit-identical across runs.
func Saxpy(y, x []float32, a float32) {
	if len(x) != len(y) {
		panic("kernel: slice length mismatch")
	}
	for i := 0; i < len(y); i++ {
		y[i] = float32(a*x[i]) + y[i]
	}
}

// saxpyManual adapts Saxpy to the registry signature; there are no vector
// registers to unroll over.
func saxpyManual(y, x []float32, a float32, _ int) {
	Saxpy(y, x, a)
}
