// Package series implements the raw integer-term algorithms behind simple
// continued fractions, with no canonicalization applied to their results.
//
// 🚀 What lives here?
//
//	A continued fraction [a0; a1, a2, …] stands for
//
//	    a0 + 1/(a1 + 1/(a2 + …))
//
//	and almost every question about it reduces to a small loop over the
//	terms aᵢ. This package keeps those loops in one place:
//	  • Euclid      — quotient sequence of p/q (exact expansion of a rational)
//	  • Convergent  — pₙ/qₙ by the two-term recurrence
//	  • Fold        — back-substitution from the last term to a float64
//	  • FromFloat   — greedy floor/reciprocal expansion of a float64
//	  • Sqrt        — periodic expansion of √n by the (m, d, a) recurrence
//	  • E           — the closed-form pattern of Euler's number
//	  • GCD         — Euclidean greatest common divisor
//
// ✨ Why a separate package?
//
//   - Terms are plain []int64, so results are exactly what the algorithm
//     produced. Package cf layers normalization, caching and the textual
//     notation on top of these helpers.
//   - Every function is pure and deterministic: no globals, no locks.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/contfrac/series"
//
//	terms, _ := series.Euclid(355, 113) // [3 7 16]
//	p, q, _ := series.Convergent(terms, len(terms)-1)
//	fmt.Println(p, q)                   // 355 113
//
// Limitations:
//
//	Terms, numerators and denominators are int64. Large convergents overflow
//	silently; callers that need more should keep the number of terms small.
package series
