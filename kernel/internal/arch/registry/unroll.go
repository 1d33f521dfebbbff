package registry

// NormalizeUnroll maps an unroll factor onto the supported set {1, 2, 4, 8}.
// Anything else becomes DefaultUnroll; it is never an error.
func NormalizeUnroll(factor int) int {
	switch factor {
	case 1, 2, 4, 8:
		return factor
	default:
		return DefaultUnroll
	}
}

// Step returns the number of elements one unrolled loop body consumes.
func Step(unroll int) int {
	return NormalizeUnroll(unroll) * Lanes
}

// VectorLimit returns the largest multiple of step that is <= n. Elements
// from the limit up to n are left for the scalar cleanup loop.
func VectorLimit(n, step int) int {
	if n <= 0 || step <= 0 {
		return 0
	}
	return n - n%step
}
