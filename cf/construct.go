package cf

import (
	"fmt"

	"github.com/katalvlaran/contfrac/series"
)

// New returns the canonical fraction built from terms. With no terms the
// result is [0].
//
// Example:
//
//	cf.New(3, 7, 16) // [3; 7; 16]
//	cf.New(1, 1, 2)  // [3]: the interior 1 merges its neighbours
func New(terms ...int64) *ContinuedFraction {
	return new(ContinuedFraction).SetTerms(terms...)
}

// FromInt returns the single-term fraction [v].
func FromInt(v int64) *ContinuedFraction {
	return &ContinuedFraction{prefix: []int64{v}, value: float64(v)}
}

// NewPeriodic returns the fraction whose terms are nonPeriodic followed by
// periodic repeated forever. The periodic marker goes on periodic[0]; with an
// empty periodic part the result is finite.
//
// Example:
//
//	cf.NewPeriodic([]int64{1}, []int64{2})  // √2 = [1; (2)]
func NewPeriodic(nonPeriodic, periodic []int64) *ContinuedFraction {
	c := new(ContinuedFraction)
	c.assign(nonPeriodic, periodic)

	return c
}

// FromRational expands numerator/denominator with the Euclidean algorithm.
//
// Division truncates toward zero, so negative rationals produce negative
// terms. A zero denominator yields an error matching both ErrInvalidArgument
// and series.ErrZeroDenominator.
func FromRational(numerator, denominator int64) (*ContinuedFraction, error) {
	terms, err := series.Euclid(numerator, denominator)
	if err != nil {
		return nil, fmt.Errorf("%w: %d/%d: %w", ErrInvalidArgument, numerator, denominator, err)
	}

	return New(terms...), nil
}

// FromFloat expands x greedily into at most maxTerms terms, stopping early
// once the fractional remainder drops below series.StabilityThreshold.
//
// NaN, ±Inf, |x| >= 2⁶³ and maxTerms < 1 are rejected with ErrInvalidArgument.
func FromFloat(x float64, maxTerms int) (*ContinuedFraction, error) {
	terms, err := series.FromFloat(x, maxTerms)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return New(terms...), nil
}
