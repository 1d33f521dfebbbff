//go:build goexperiment.simd && amd64

package avx

import (
	"simd/archsimd"

	"github.com/cwbudde/algo-vecbench/kernel/internal/arch/registry"
)

type saxpyKernel func(y, x []float32, a float32)

// saxpyKernels holds one specialized loop per supported unroll factor.
var saxpyKernels = map[int]saxpyKernel{
	1: saxpyUnroll1,
	2: saxpyUnroll2,
	4: saxpyUnroll4,
	8: saxpyUnroll8,
}

// Saxpy computes y[i] = a*x[i] + y[i] in place using 4-lane vectors,
// unroll vectors per loop body. Factors outside {1, 2, 4, 8} use the
// factor-2 loop. Slices must have equal length. Panics if lengths differ.
func Saxpy(y, x []float32, a float32, unroll int) {
	if len(x) != len(y) {
		panic("kernel: slice length mismatch")
	}
	k, ok := saxpyKernels[unroll]
	if !ok {
		k = saxpyKernels[registry.DefaultUnroll]
	}
	k(y, x, a)
}

// mla stores a*x + y into the first four elements of y. Multiply and add
// stay separate instructions so results match the scalar loop bit for bit.
func mla(y, x []float32, av archsimd.Float32x4) {
	xv := archsimd.LoadFloat32x4Slice(x)
	yv := archsimd.LoadFloat32x4Slice(y)
	yv.Add(xv.Mul(av)).StoreSlice(y)
}

// saxpyTail finishes elements [from, len(y)) with scalar code.
func saxpyTail(y, x []float32, a float32, from int) {
	for i := from; i < len(y); i++ {
		y[i] = float32(a*x[i]) + y[i]
	}
}

func saxpyUnroll1(y, x []float32, a float32) {
	av := archsimd.BroadcastFloat32x4(a)
	limit := registry.VectorLimit(len(y), registry.Step(1))

	i := 0
	for ; i < limit; i += registry.Step(1) {
		mla(y[i:], x[i:], av)
	}
	saxpyTail(y, x, a, i)
}

func saxpyUnroll2(y, x []float32, a float32) {
	av := archsimd.BroadcastFloat32x4(a)
	limit := registry.VectorLimit(len(y), registry.Step(2))

	i := 0
	for ; i < limit; i += registry.Step(2) {
		mla(y[i:], x[i:], av)
		mla(y[i+4:], x[i+4:], av)
	}
	saxpyTail(y, x, a, i)
}

func saxpyUnroll4(y, x []float32, a float32) {
	av := archsimd.BroadcastFloat32x4(a)
	limit := registry.VectorLimit(len(y), registry.Step(4))

	i := 0
	for ; i < limit; i += registry.Step(4) {
		mla(y[i:], x[i:], av)
		mla(y[i+4:], x[i+4:], av)
		mla(y[i+8:], x[i+8:], av)
		mla(y[i+12:], x[i+12:], av)
	}
	saxpyTail(y, x, a, i)
}

func saxpyUnroll8(y, x []float32, a float32) {
	av := archsimd.BroadcastFloat32x4(a)
	limit := registry.VectorLimit(len(y), registry.Step(8))

	i := 0
	for ; i < limit; i += registry.Step(8) {
		mla(y[i:], x[i:], av)
		mla(y[i+4:], x[i+4:], av)
		mla(y[i+8:], x[i+8:], av)
		mla(y[i+12:], x[i+12:], av)
		mla(y[i+16:], x[i+16:], av)
		mla(y[i+20:], x[i+20:], av)
		mla(y[i+24:], x[i+24:], av)
		mla(y[i+28:], x[i+28:], av)
	}
	saxpyTail(y, x, a, i)
}
