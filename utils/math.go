package utils

func AbsInt(n int) int {
	if n < 0 {
		return -1 * n
	}
	return n
}

func MaxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ClampInt restricts n to the interval [lower, upper].
func ClampInt(n, lower, upper int) int {
	return MinInt(MaxInt(n, lower), upper)
}
