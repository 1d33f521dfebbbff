package generic

// Dot returns sum(x[i] * y[i]) accumulated sequentially.
// Only the minimum length of the two slices is used; empty input yields 0.
func Dot(x, y []float32) float32 {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}

	var sum float32
	for i := 0; i < n; i++ {
		sum += float32(x[i] * y[i])
	}
	return sum
}
