package cf

import (
	"fmt"

	"github.com/katalvlaran/contfrac/series"
)

// piLiteral is the decimal approximation Pi expands; its float64 rounding
// bounds the accuracy of the result.
const piLiteral = 3.14159265358979323846

// Sqrt returns √n as a periodic continued fraction [a0; (a1, …, 2·a0)].
//
// A perfect square yields the exact integer root. The period ends at the
// first generated term equal to 2·a0 or after maxTerms terms, whichever comes
// first. A negative n yields an error matching ErrInvalidArgument and
// series.ErrNegativeRadicand.
func Sqrt(n int64, maxTerms int) (*ContinuedFraction, error) {
	root, period, exact, err := series.Sqrt(n, maxTerms)
	if err != nil {
		return nil, fmt.Errorf("%w: sqrt(%d): %w", ErrInvalidArgument, n, err)
	}
	if exact {
		return FromInt(root), nil
	}

	return NewPeriodic([]int64{root}, period), nil
}

// E returns the canonical form of the first maxTerms terms of
// e = [2; 1, 2, 1, 1, 4, 1, 1, 6, …].
//
// The generated pattern is full of interior ones, which normalization merges
// into their neighbours; use series.E for the unmerged terms.
func E(maxTerms int) *ContinuedFraction {
	return New(series.E(maxTerms)...)
}

// Pi returns FromFloat of a fixed decimal approximation of π.
func Pi(maxTerms int) (*ContinuedFraction, error) {
	return FromFloat(piLiteral, maxTerms)
}
