package bench

// FlopsPerElement counts the multiply and the add each element costs in
// both kernels.
const FlopsPerElement = 2

// GFLOPS returns FlopsPerElement*n*iterations / (seconds*1e9).
// seconds == 0 yields +Inf, or NaN when no work was done.
func GFLOPS(n, iterations int, seconds float64) float64 {
	ops := FlopsPerElement * float64(n) * float64(iterations)
	return ops / (seconds * 1e9)
}

// Checksum returns the sequential float32 sum of y.
func Checksum(y []float32) float32 {
	var sum float32
	for _, v := range y {
		sum += v
	}
	return sum
}
