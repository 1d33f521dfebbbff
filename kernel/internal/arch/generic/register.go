package generic

import (
	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// init registers the scalar kernels as the manual implementation used when
// no vector instruction set is available (or ForceGeneric is set).
//
// Priority: 0
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Saxpy: saxpyManual,
		Dot:   Dot,
	})
}
