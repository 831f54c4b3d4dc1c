package analysis

import "strconv"

// gcd computes the greatest common divisor by Euclid's algorithm.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm computes the least common multiple. lcm(0, n) is 0 by convention;
// it cannot occur here since periods are at least 1.
func lcm(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
