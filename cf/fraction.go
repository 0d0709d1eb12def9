package cf

import "slices"

// DefaultMaxTerms is the term limit used by the arithmetic operators and the
// usual default for the float and constant constructors.
const DefaultMaxTerms = 20

// ContinuedFraction is a simple continued fraction [a0; a1, a2, …].
//
// The sequence is stored as a finite prefix plus an optional periodic tail;
// the tail, when present, repeats forever and its first term carries the
// periodic marker. The zero value is the fraction [0].
//
// Every mutator replaces the backing slices instead of editing them, so a
// plain struct copy or Clone is independent of the original. The numeric
// value is computed whenever the sequence changes; read-only methods may be
// called concurrently, mutators need external synchronization.
type ContinuedFraction struct {
	prefix []int64 // a0 … up to the periodic tail
	period []int64 // repeating tail; nil for finite values
	value  float64 // Fold of prefix ++ period
}

// Terms returns the signed coefficients, prefix first, then the stored
// period once. The result is a fresh slice.
func (c *ContinuedFraction) Terms() []int64 {
	if len(c.prefix) == 0 && len(c.period) == 0 {
		return []int64{0}
	}

	return slices.Concat(c.prefix, c.period)
}

// Prefix returns a copy of the non-periodic part.
// For a purely periodic value the result is empty.
func (c *ContinuedFraction) Prefix() []int64 {
	if len(c.prefix) == 0 && len(c.period) == 0 {
		return []int64{0}
	}

	return slices.Clone(c.prefix)
}

// Period returns a copy of the repeating tail, or nil for a finite value.
func (c *ContinuedFraction) Period() []int64 {
	return slices.Clone(c.period)
}

// Coefficients returns every term as a Coefficient record. The first term of
// the periodic tail, if any, has Periodic set.
func (c *ContinuedFraction) Coefficients() []Coefficient {
	terms := c.Terms()
	out := make([]Coefficient, len(terms))
	for i, v := range terms {
		out[i] = NewCoefficient(v, len(c.period) > 0 && i == len(c.prefix))
	}

	return out
}

// Size returns the number of stored terms (at least 1).
func (c *ContinuedFraction) Size() int {
	if n := len(c.prefix) + len(c.period); n > 0 {
		return n
	}

	return 1
}

// IsPeriodic reports whether the value has a repeating tail.
func (c *ContinuedFraction) IsPeriodic() bool { return len(c.period) > 0 }

// IsFinite reports whether the value has no repeating tail.
func (c *ContinuedFraction) IsFinite() bool { return len(c.period) == 0 }

// IsInteger reports whether exactly one term is stored.
// A purely periodic single-term value such as [(5)] counts as well.
func (c *ContinuedFraction) IsInteger() bool { return c.Size() == 1 }

// Float64 returns the value folded from the stored terms. A periodic tail is
// folded once, not iterated to its limit.
func (c *ContinuedFraction) Float64() float64 { return c.value }

// SetTerms replaces the sequence with a finite one built from terms and
// returns c. An empty list yields [0].
func (c *ContinuedFraction) SetTerms(terms ...int64) *ContinuedFraction {
	c.assign(terms, nil)

	return c
}

// AddTerm appends v after the last stored term and returns c. For a periodic
// value the term joins the repeating tail.
func (c *ContinuedFraction) AddTerm(v int64) *ContinuedFraction {
	if len(c.period) > 0 {
		c.assign(c.prefix, append(slices.Clone(c.period), v))
	} else {
		c.assign(append(c.Prefix(), v), nil)
	}

	return c
}

// Simplify re-runs normalization. On a value built by this package it is a
// no-op, since every constructor already normalizes.
func (c *ContinuedFraction) Simplify() *ContinuedFraction {
	c.assign(c.prefix, c.period)

	return c
}

// Clear resets c to [0].
func (c *ContinuedFraction) Clear() *ContinuedFraction {
	c.assign([]int64{0}, nil)

	return c
}

// Set copies x into c and returns c.
func (c *ContinuedFraction) Set(x *ContinuedFraction) *ContinuedFraction {
	if c != x {
		c.prefix = slices.Clone(x.prefix)
		c.period = slices.Clone(x.period)
		c.value = x.value
	}

	return c
}

// Clone returns an independent copy of c.
func (c *ContinuedFraction) Clone() *ContinuedFraction {
	return new(ContinuedFraction).Set(c)
}

// at returns the i-th stored term, wrapping modulo the stored length.
func (c *ContinuedFraction) at(i int) int64 {
	n := len(c.prefix) + len(c.period)
	if n == 0 {
		return 0 // zero value: [0]
	}
	if i %= n; i < len(c.prefix) {
		return c.prefix[i]
	}

	return c.period[i-len(c.prefix)]
}

// unrolled returns the i-th term of the infinite sequence, repeating the
// period past the stored length.
func (c *ContinuedFraction) unrolled(i int) int64 {
	if i < len(c.prefix) || len(c.period) == 0 {
		return c.at(i)
	}

	return c.period[(i-len(c.prefix))%len(c.period)]
}

// Expand returns the first n terms with the periodic tail unrolled as often
// as needed, so √2 = [1; (2)] expands to 1, 2, 2, 2, …. For a finite value at
// most Size() terms are returned.
//
// Unlike Convergent, which wraps over all stored terms, Expand repeats only
// the period; series.Convergents(c.Expand(n)) gives the convergents of the
// infinite sequence.
func (c *ContinuedFraction) Expand(n int) []int64 {
	if c.IsFinite() {
		n = min(n, c.Size())
	}
	if n <= 0 {
		return nil
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = c.unrolled(i)
	}

	return out
}
