//go:build goexperiment.simd && amd64

package avx

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// Dot returns sum(x[i] * y[i]) using one 4-lane accumulator, a horizontal
// reduction and a scalar loop for the last n mod 4 elements.
// Only the minimum length of the two slices is used.
func Dot(x, y []float32) float32 {
	n := min(len(x), len(y))
	acc := archsimd.BroadcastFloat32x4(0)
	limit := registry.VectorLimit(n, registry.Lanes)

	i := 0
	for ; i < limit; i += registry.Lanes {
		xv := archsimd.LoadFloat32x4Slice(x[i:])
		yv := archsimd.LoadFloat32x4Slice(y[i:])
		acc = acc.Add(xv.Mul(yv))
	}

	// low half + high half, then the remaining pair
	sum := (acc.GetElem(0) + acc.GetElem(2)) + (acc.GetElem(1) + acc.GetElem(3))

	for ; i < n; i++ {
		sum += float32(x[i] * y[i])
	}
	return sum
}
