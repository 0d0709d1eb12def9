package series

// Ratio is a numerator/denominator pair as produced by the convergent
// recurrence. It is not reduced and its sign is not normalized.
type Ratio struct {
	Num int64
	Den int64
}

// Float64 returns Num/Den as a float64.
func (r Ratio) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// ConvergentFunc runs the convergent recurrence up to index n, reading the
// i-th term through at:
//
//	p₋₁ = 1, p₀ = a₀, pᵢ = aᵢ·pᵢ₋₁ + pᵢ₋₂
//	q₋₁ = 0, q₀ = 1,  qᵢ = aᵢ·qᵢ₋₁ + qᵢ₋₂
//
// at is called exactly once for every i in [0, n]. n must be >= 0.
// Overflow of p or q is not detected.
func ConvergentFunc(n int, at func(i int) int64) (p, q int64) {
	pPrev, qPrev := int64(1), int64(0)
	p, q = at(0), 1
	for i := 1; i <= n; i++ {
		a := at(i)
		p, pPrev = a*p+pPrev, p
		q, qPrev = a*q+qPrev, q
	}

	return p, q
}

// Convergent returns the n-th convergent pₙ/qₙ of terms.
//
// Errors:
//   - ErrNoTerms         — terms is empty.
//   - ErrIndexOutOfRange — n < 0 or n >= len(terms).
//
// Complexity: O(n).
func Convergent(terms []int64, n int) (p, q int64, err error) {
	if len(terms) == 0 {
		return 0, 0, ErrNoTerms
	}
	if n < 0 || n >= len(terms) {
		return 0, 0, ErrIndexOutOfRange
	}
	p, q = ConvergentFunc(n, func(i int) int64 { return terms[i] })

	return p, q, nil
}

// Convergents returns every convergent of terms, in order, in one pass.
// The result is nil for an empty sequence.
func Convergents(terms []int64) []Ratio {
	if len(terms) == 0 {
		return nil
	}

	out := make([]Ratio, 0, len(terms))
	pPrev, qPrev := int64(1), int64(0)
	p, q := terms[0], int64(1)
	out = append(out, Ratio{Num: p, Den: q})
	for _, a := range terms[1:] {
		p, pPrev = a*p+pPrev, p
		q, qPrev = a*q+qPrev, q
		out = append(out, Ratio{Num: p, Den: q})
	}

	return out
}
