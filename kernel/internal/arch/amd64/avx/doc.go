// Package avx implements the manual-variant kernels with explicit 4-lane
// float32 vector operations from simd/archsimd.
//
// The package only has code when built with GOEXPERIMENT=simd on amd64.
// Its init registers an entry at cpu.SIMDAVX, which the registry picks when
// the CPU reports AVX (the 128-bit archsimd operations are VEX encoded).
package avx
