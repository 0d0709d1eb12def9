package cf

import "github.com/katalvlaran/contfrac/series"

// canonical returns the normalized form of the tagged sequence
// prefix ++ period, where the periodic tail starts at period[0].
//
// Steps:
//  1. Drop every zero term at flattened index > 0. Index 0 is exempt, so
//     [0] survives. The periodic marker sits on period[0], so dropping that
//     zero removes the marker: the rest of the tail joins the prefix and the
//     value becomes finite. A tail that loses all its terms is finite too.
//  2. Inside each segment, while position i+1 holds 1 and i+2 exists in the
//     same segment, replace term i with term(i) + term(i+2), remove the two
//     consumed terms and look at position i again.
//  3. Repeat 1 and 2 while the sequence keeps shrinking, since a merge can
//     produce a new zero ([5; 3, 1, -3] → [5; 0] → [5]).
//  4. An empty result becomes [0].
//
// The segments are merged independently, so the start of the tail is never
// consumed and never folded into a prefix term. A trailing 1 stays.
// The inputs are not modified and the result is a fixed point of canonical.
// Complexity: O(n²) in the worst case because of the in-place removals.
func canonical(prefix, period []int64) ([]int64, []int64) {
	head, tail := dropZeros(prefix, period)
	for {
		n := len(head) + len(tail)
		head, tail = dropZeros(mergeOnes(head), mergeOnes(tail))
		if len(head)+len(tail) == n {
			break
		}
	}

	if len(head) == 0 && len(tail) == 0 {
		head = []int64{0}
	}

	return head, tail
}

// dropZeros copies prefix and period without the zero terms at flattened
// index > 0. An emptied tail is returned as nil. When period[0] is a dropped
// zero the remaining tail terms are appended to the prefix.
func dropZeros(prefix, period []int64) ([]int64, []int64) {
	head := make([]int64, 0, len(prefix)+len(period))
	for i, v := range prefix {
		if i == 0 || v != 0 {
			head = append(head, v)
		}
	}
	markerDropped := len(period) > 0 && period[0] == 0 && len(head) > 0

	var tail []int64
	for i, v := range period {
		if v != 0 || (i == 0 && len(head) == 0) {
			tail = append(tail, v)
		}
	}
	if markerDropped {
		return append(head, tail...), nil
	}

	return head, tail
}

// mergeOnes applies the [a, 1, b] → [a+b] rule left to right within s,
// reusing its backing array.
func mergeOnes(s []int64) []int64 {
	for i := 0; i+2 < len(s); {
		if s[i+1] != 1 {
			i++
			continue
		}
		s[i] += s[i+2]
		s = append(s[:i+1], s[i+3:]...)
	}

	return s
}

// assign stores the canonical form of prefix/period in c and refreshes the
// cached value. It is the single funnel every constructor and mutator uses.
func (c *ContinuedFraction) assign(prefix, period []int64) {
	c.prefix, c.period = canonical(prefix, period)
	c.value = series.Fold(c.Terms())
}
