package bench

import "math/rand"

// Inputs returns two buffers of n values uniform in [-1, 1), generated from
// Seed. Values are drawn alternately for x and y, so equal n always yields
// identical buffers regardless of kernel or variant.
func Inputs(n int) (x, y []float32) {
	x = make([]float32, n)
	y = make([]float32, n)

	rng := rand.New(rand.NewSource(Seed))
	for i := range n {
		x[i] = uniform(rng)
		y[i] = uniform(rng)
	}
	return x, y
}

func uniform(rng *rand.Rand) float32 {
	return rng.Float32()*2 - 1
}
