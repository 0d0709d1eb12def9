package series

import "math"

// StabilityThreshold is the fractional remainder below which FromFloat
// treats the input as exhausted.
const StabilityThreshold = 1e-12

// termBound is 2⁶³; finite inputs must lie in [-termBound, termBound).
const termBound = 1 << 63

// Fold evaluates terms by back-substitution, from the last term to the first:
//
//	v = a_last
//	v = a_k + 1/v   for k = last-1 … 0
//
// An empty sequence folds to 0. A zero intermediate yields ±Inf at the next
// step, following IEEE-754 division.
// Complexity: O(len(terms)).
func Fold(terms []int64) float64 {
	if len(terms) == 0 {
		return 0
	}

	v := float64(terms[len(terms)-1])
	for k := len(terms) - 2; k >= 0; k-- {
		v = float64(terms[k]) + 1/v
	}

	return v
}

// FromFloat expands x greedily: take ⌊x⌋ as the next term, keep the
// fractional remainder, stop when |remainder| < StabilityThreshold, otherwise
// continue with its reciprocal. At most maxTerms terms are produced.
//
// Errors:
//   - ErrNonFinite    — x is NaN or ±Inf.
//   - ErrTermOverflow — ⌊x⌋ is outside the int64 range.
//   - ErrTermLimit    — maxTerms < 1.
//
// Later terms are reciprocals of remainders of at least StabilityThreshold,
// so only the first one can overflow.
func FromFloat(x float64, maxTerms int) ([]int64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, ErrNonFinite
	}
	if x >= termBound || x < -termBound {
		return nil, ErrTermOverflow
	}
	if maxTerms < 1 {
		return nil, ErrTermLimit
	}

	terms := make([]int64, 0, maxTerms)
	for i := 0; i < maxTerms; i++ {
		whole := int64(math.Floor(x))
		terms = append(terms, whole)

		frac := x - float64(whole)
		if math.Abs(frac) < StabilityThreshold {
			break
		}
		x = 1 / frac
	}

	return terms, nil
}
