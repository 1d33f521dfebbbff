//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// init registers the SSE2 kernels.
//
// SSE2 is part of the x86-64 baseline, so this entry replaces generic on
// every amd64 CPU unless generic is forced.
//
// Priority: 10 (preferred over generic, below the archsimd AVX entry)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		Saxpy: Saxpy,
		Dot:   Dot,
	})
}
