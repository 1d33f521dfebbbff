// Package kernel implements the two benchmarked numeric kernels, SAXPY
// (y = a*x + y) and dot product, in three variants each:
//
//   - Scalar: a sequential, unfused loop; the reference result.
//   - Auto: the same loop written for the optimizer (bounds checks hoisted,
//     multiply-add contraction allowed).
//   - Manual: explicit 4-lane vector code with a selectable unroll factor,
//     chosen at runtime from the CPU's capabilities. Without a usable vector
//     instruction set it falls back to the Scalar code.
//
// All kernels operate on float32 slices, never allocate and keep no state.
// Inputs are not validated: NaN and Inf propagate as IEEE-754 dictates.
package kernel

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

// ErrUnrecognized is returned when a kernel or variant name is unknown.
var ErrUnrecognized = errors.New("kernel: unrecognized identifier")

const (
	// Lanes is the float32 vector width of the manual kernels.
	Lanes = registry.Lanes

	// DefaultUnroll replaces unroll factors outside {1, 2, 4, 8}.
	DefaultUnroll = registry.DefaultUnroll
)

// Kind selects the kernel.
type Kind int

const (
	// SAXPY updates y in place: y[i] = a*x[i] + y[i].
	SAXPY Kind = iota
	// Dot returns sum(x[i] * y[i]).
	Dot
)

var kindNames = map[Kind]string{
	SAXPY: "saxpy",
	Dot:   "dot",
}

// String returns the command-line name of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind translates "saxpy" or "dot".
func ParseKind(name string) (Kind, error) {
	for k, s := range kindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: kernel %q", ErrUnrecognized, name)
}

// Variant selects the execution strategy.
type Variant int

const (
	// Scalar is the non-vectorized baseline.
	Scalar Variant = iota
	// Auto leaves optimization to the compiler.
	Auto
	// Manual uses explicit vector operations.
	Manual
)

var variantNames = map[Variant]string{
	Scalar: "scalar",
	Auto:   "auto",
	Manual: "manual",
}

// String returns the command-line name of v.
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant translates "scalar", "auto" or "manual".
func ParseVariant(name string) (Variant, error) {
	for v, s := range variantNames {
		if s == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: variant %q", ErrUnrecognized, name)
}

// Kinds returns every kernel kind in declaration order.
func Kinds() []Kind { return []Kind{SAXPY, Dot} }

// Variants returns every variant in declaration order.
func Variants() []Variant { return []Variant{Scalar, Auto, Manual} }

// NormalizeUnroll returns factor if it is one of 1, 2, 4 or 8, and
// DefaultUnroll otherwise.
func NormalizeUnroll(factor int) int {
	return registry.NormalizeUnroll(factor)
}
