package series

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b, always non-negative.
//
// GCD(0, 0) == 0. The result for the most negative value of T cannot be
// represented as a positive number and is returned unchanged.
// Complexity: O(log min(|a|, |b|)).
func GCD[T constraints.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

// Euclid returns the quotient sequence of numerator/denominator produced by
// the Euclidean algorithm: push n/d, continue with (d, n mod d) until the
// remainder is zero.
//
// Division truncates toward zero, so a negative rational yields negative
// terms (-7/3 → [-2 -3]); the sequence still folds back to the same value.
// Returns ErrZeroDenominator when denominator == 0.
// Complexity: O(log min(|n|, |d|)).
func Euclid(numerator, denominator int64) ([]int64, error) {
	if denominator == 0 {
		return nil, ErrZeroDenominator
	}

	var terms []int64
	n, d := numerator, denominator
	for d != 0 {
		terms = append(terms, n/d)
		n, d = d, n%d
	}

	return terms, nil
}
