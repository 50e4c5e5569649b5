package network

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM folds the least common multiple over values. It returns 1 for no
// values and 0 if any value is 0.
func LCM[T constraints.Integer](values ...T) T {
	result := T(1)
	for _, v := range values {
		if v == 0 {
			return 0
		}
		result = result / GCD(result, v) * v
	}
	if result < 0 {
		return -result
	}
	return result
}
