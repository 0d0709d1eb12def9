package series

import "math/big"

// Isqrt returns ⌊√n⌋ for n >= 0, computed exactly.
func Isqrt(n int64) int64 {
	return new(big.Int).Sqrt(big.NewInt(n)).Int64()
}

// Sqrt expands √n with the periodic square-root recurrence
//
//	m₀ = 0, d₀ = 1, a₀ = ⌊√n⌋
//	mₖ₊₁ = dₖ·aₖ − mₖ
//	dₖ₊₁ = (n − mₖ₊₁²) / dₖ
//	aₖ₊₁ = ⌊(a₀ + mₖ₊₁) / dₖ₊₁⌋
//
// Terms after a₀ are collected until one equals 2·a₀ (the last term of the
// period) or maxTerms terms have been generated.
//
// For a perfect square exact is true and period is nil. For maxTerms < 1 the
// period is empty.
// Returns ErrNegativeRadicand when n < 0.
func Sqrt(n int64, maxTerms int) (root int64, period []int64, exact bool, err error) {
	if n < 0 {
		return 0, nil, false, ErrNegativeRadicand
	}

	a0 := Isqrt(n)
	if a0*a0 == n {
		return a0, nil, true, nil
	}

	var m, d, a int64 = 0, 1, a0
	for i := 0; i < maxTerms; i++ {
		m = d*a - m
		d = (n - m*m) / d
		a = (a0 + m) / d
		period = append(period, a)
		if a == 2*a0 {
			break
		}
	}

	return a0, period, false, nil
}

// E returns the first maxTerms terms of Euler's number,
//
//	[2; 1, 2, 1, 1, 4, 1, 1, 6, …]
//
// where the term at position i >= 1 is 2·(i+1)/3 when i mod 3 == 2 and 1
// otherwise. The leading 2 is always present, so E(0) == [2].
func E(maxTerms int) []int64 {
	terms := []int64{2}
	for i := 1; i < maxTerms; i++ {
		if i%3 == 2 {
			terms = append(terms, int64(2*((i+1)/3)))
		} else {
			terms = append(terms, 1)
		}
	}

	return terms
}
