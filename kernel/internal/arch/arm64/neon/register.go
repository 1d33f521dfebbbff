//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// init registers the NEON kernels.
//
// NEON is mandatory on ARMv8, so the entry is available on all arm64 CPUs.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		Saxpy: Saxpy,
		Dot:   Dot,
	})
}
