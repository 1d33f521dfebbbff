//go:build amd64 && !purego

package sse2

import "github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"

// Dot returns sum(x[i] * y[i]) using one 4-lane accumulator, the reduction
// (l0+l2)+(l1+l3) and a scalar loop for the last n mod 4 elements.
// Only the minimum length of the two slices is used.
func Dot(x, y []float32) float32 {
	n := min(len(x), len(y))
	limit := registry.VectorLimit(n, registry.Lanes)

	var sum float32
	if limit > 0 {
		sum = dotSSE2(x[:limit], y[:limit])
	}
	for i := limit; i < n; i++ {
		sum += float32(x[i] * y[i])
	}
	return sum
}

//go:noescape
func dotSSE2(x, y []float32) float32
