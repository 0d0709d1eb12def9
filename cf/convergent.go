package cf

import (
	"fmt"

	"github.com/katalvlaran/contfrac/series"
)

// Convergent returns the n-th convergent pₙ/qₙ of c.
//
// For a finite value n must lie in [0, Size()); otherwise the error matches
// ErrOutOfRange. A periodic value accepts any n >= 0: the term at index i is
// Terms()[i % Size()], so √2 stored as [1; (2)] reads 1, 2, 1, 2, … and
// yields 1/1, 3/2, 4/3, 11/8, …. Use Expand for the repeated period alone.
//
// The fraction is not reduced and overflow is not detected.
// Complexity: O(n).
func (c *ContinuedFraction) Convergent(n int) (p, q int64, err error) {
	if n < 0 || (c.IsFinite() && n >= c.Size()) {
		return 0, 0, fmt.Errorf("%w: convergent %d of a fraction with %d terms", ErrOutOfRange, n, c.Size())
	}
	p, q = series.ConvergentFunc(n, c.at)

	return p, q, nil
}

// Convergents returns the convergents with indices 0 … n-1, reading terms
// the same way as Convergent. For a finite value n is capped at Size().
func (c *ContinuedFraction) Convergents(n int) []series.Ratio {
	if c.IsFinite() {
		n = min(n, c.Size())
	}
	if n <= 0 {
		return nil
	}

	terms := make([]int64, n)
	for i := range terms {
		terms[i] = c.at(i)
	}

	return series.Convergents(terms)
}
