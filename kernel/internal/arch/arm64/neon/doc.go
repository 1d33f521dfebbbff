// Package neon implements the manual-variant kernels in arm64 assembly
// with ARM Advanced SIMD, four float32 lanes per register.
//
// The multiply and the add are issued as FMUL and FADD rather than FMLA so
// SAXPY results are bit-identical to the scalar loop.
package neon
