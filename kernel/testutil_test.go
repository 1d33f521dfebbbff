package kernel

import "strconv"

// Sizes that leave every possible remainder for step sizes 4 to 32.
var remainderSizes = []int{0, 1, 3, 4, 5, 16, 17, 1023, 1024, 1025}

var unrollFactors = []int{1, 2, 4, 8}

// relTol is the cross-variant tolerance relative to the magnitude of the
// accumulated terms.
const relTol = 1e-4

func sizeStr(n int) string {
	return "n=" + strconv.Itoa(n)
}

func unrollStr(u int) string {
	return "unroll=" + strconv.Itoa(u)
}
