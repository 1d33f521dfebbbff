// Package sse2 implements the manual-variant kernels in amd64 assembly
// with 128-bit SSE2 instructions, four float32 lanes per register.
//
// SSE2 is part of the x86-64 baseline, so this entry is available on every
// amd64 CPU. Multiply and add are separate instructions; SAXPY results are
// bit-identical to the scalar loop.
package sse2
