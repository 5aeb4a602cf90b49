package frac32

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n.
// The signs of m and n are ignored, GCD(0, n) is |n|, and GCD(0, 0) is 0.
func GCD(m, n int64) int64 {
	// inputs are at most 2^31 in magnitude (or the 3-digit quantization of
	// such), so plain Euclid is plenty fast
	if m < 0 {
		m = -m
	}
	if n < 0 {
		n = -n
	}
	for n != 0 {
		m, n = n, m%n
	}
	return m
}
