// Package registry holds the manual-variant kernel implementations and
// selects the best one for the running CPU.
//
// Architecture packages register an OpEntry from init(). The kernel package
// asks for the highest-priority entry whose SIMD level the CPU supports; the
// generic entry (SIMDNone) is always compatible, so a lookup only fails when
// nothing was registered at all.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecbench/internal/cpu"
)

// Lanes is the number of float32 elements in one vector register.
const Lanes = 4

// DefaultUnroll is used for every unroll factor outside {1, 2, 4, 8}.
const DefaultUnroll = 2

// SaxpyFn computes y[i] = a*x[i] + y[i] in place, processing unroll vectors
// per loop body. Implementations without vector support ignore unroll.
type SaxpyFn func(y, x []float32, a float32, unroll int)

// DotFn returns sum(x[i] * y[i]).
type DotFn func(x, y []float32) float32

// OpEntry is one registered implementation.
type OpEntry struct {
	// Name identifies the implementation in reports ("generic", "sse2").
	Name string

	// SIMDLevel is the instruction set the entry needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries; higher wins.
	//   - generic: 0
	//   - sse2: 10
	//   - neon: 15
	//   - avx (archsimd): 20
	Priority int

	Saxpy SaxpyFn
	Dot   DotFn
}

// OpRegistry is a priority-ordered set of entries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the registry the kernel package selects from.
var Global = &OpRegistry{}

// Register adds entry. Registrations should finish before the first Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry compatible with features, or
// nil if none is.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}
	return nil
}

// sortByPriority orders entries by descending priority, keeping
// registration order among equals. Caller holds the write lock.
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
