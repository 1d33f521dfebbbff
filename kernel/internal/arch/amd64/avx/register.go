//go:build goexperiment.simd && amd64

package avx

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// Priority: 20 (preferred over sse2 whenever AVX is present)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx",
		SIMDLevel: cpu.SIMDAVX,
		Priority:  20,

		Saxpy: Saxpy,
		Dot:   Dot,
	})
}
