package kernel

import "github.com/cwbudde/algo-vecbench/kernel/internal/arch/generic"

// DotScalar returns sum(x[i] * y[i]) accumulated strictly in order.
// Only the minimum length of the two slices is used.
func DotScalar(x, y []float32) float32 {
	return generic.Dot(x, y)
}

// DotAuto returns sum(x[i] * y[i]) from a loop shaped for the optimizer.
// Only the minimum length of the two slices is used.
func DotAuto(x, y []float32) float32 {
	n := min(len(x), len(y))
	x, y = x[:n], y[:n]

	var sum float32
	for i, v := range x {
		sum += v * y[i]
	}
	return sum
}

// DotManual returns sum(x[i] * y[i]) computed by the vector implementation
// selected for this CPU. Only the minimum length of the two slices is used.
func DotManual(x, y []float32) float32 {
	return manual().Dot(x, y)
}
