//go:build amd64 && !purego

package kernel

// Blank imports run the init functions that register implementations.
// The avx package is empty unless built with GOEXPERIMENT=simd.

import (
	_ "github.com/cwbudde/algo-vecbench/kernel/internal/arch/amd64/avx"
	_ "github.com/cwbudde/algo-vecbench/kernel/internal/arch/amd64/sse2"
	_ "github.com/cwbudde/algo-vecbench/kernel/internal/arch/generic"
)
