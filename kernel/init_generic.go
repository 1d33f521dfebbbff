//go:build purego || !(amd64 || arm64)

package kernel

// Only the scalar fallback exists for this target.

import (
	_ "github.com/cwbudde/algo-vecbench/kernel/internal/arch/generic"
)
