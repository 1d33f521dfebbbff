package kernel

import (
	"sync"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

var (
	manualEntry    *registry.OpEntry
	manualInitOnce sync.Once
)

func initManual() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernel: no manual implementation registered")
	}
	if entry.Saxpy == nil || entry.Dot == nil {
		panic("kernel: implementation " + entry.Name + " is missing an operation")
	}
	manualEntry = entry
}

func manual() *registry.OpEntry {
	manualInitOnce.Do(initManual)
	return manualEntry
}

// Refresh drops the cached manual implementation so the next kernel call
// selects again from the current CPU features. Call it after
// cpu.SetForcedFeatures or cpu.ResetDetection; it must not race with kernel
// calls.
func Refresh() {
	manualInitOnce = sync.Once{}
	manualEntry = nil
}

// ManualSaxpy returns the SAXPY function behind SaxpyManual, resolved for
// the current CPU. Callers timing a loop resolve it once up front so the
// loop body is only the kernel.
func ManualSaxpy() func(y, x []float32, a float32, unroll int) {
	return manual().Saxpy
}

// ManualDot returns the dot-product function behind DotManual.
func ManualDot() func(x, y []float32) float32 {
	return manual().Dot
}

// Implementation returns the name of the implementation behind the Manual
// variant, e.g. "sse2", "neon" or "generic".
func Implementation() string {
	return manual().Name
}

// ImplementationInfo describes one registered manual implementation.
type ImplementationInfo struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int
	Supported bool
	Selected  bool
}

// Implementations lists every registered manual implementation in priority
// order, marking which ones the current CPU supports and which is in use.
func Implementations() []ImplementationInfo {
	features := cpu.DetectFeatures()
	selected := Implementation()

	entries := registry.Global.ListEntries()
	out := make([]ImplementationInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, ImplementationInfo{
			Name:      e.Name,
			SIMDLevel: e.SIMDLevel,
			Priority:  e.Priority,
			Supported: cpu.Supports(features, e.SIMDLevel),
			Selected:  e.Name == selected,
		})
	}
	return out
}

// Features returns the CPU features the selection is based on.
func Features() cpu.Features {
	return cpu.DetectFeatures()
}
