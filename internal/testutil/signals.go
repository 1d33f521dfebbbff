package testutil

import "math/rand"

// DeterministicNoise returns n values uniform in [-amplitude, amplitude)
// drawn from a fixed seed.
func DeterministicNoise(seed int64, amplitude float32, n int) []float32 {
	out := make([]float32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Const returns a slice of length n filled with value.
func Const(value float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.
func Ones(n int) []float32 {
	return Const(1, n)
}

// Clone returns a copy of s.
func Clone(s []float32) []float32 {
	return append([]float32(nil), s...)
}
