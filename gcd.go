package ratkey

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n; GCD(0, n) == n.
func GCD(m, n uint64) uint64 {
	// per Donald Knuth, TAOCP Vol 1 (3e), p 2, Algorithm E without the
	// Bézout coefficients, which nothing here needs
	for n != 0 {
		m, n = n, m%n
	}
	return m
}
