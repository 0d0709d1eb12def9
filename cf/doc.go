// Package cf provides ContinuedFraction, a value type for simple continued
// fractions with finite and periodic forms.
//
// 🚀 What is a continued fraction?
//
//	An integer sequence [a0; a1, a2, …] standing for
//
//	    a0 + 1/(a1 + 1/(a2 + …))
//
//	A periodic fraction repeats a tail forever; √2 = [1; (2)] is the
//	classic example. Here the repeating tail is stored once, and the
//	text form marks it with parentheses.
//
// ✨ Key features:
//   - construction from integers, term lists, text, rationals (Euclid),
//     float64 values (greedy floor/reciprocal) and explicit periodic parts
//   - generators for √n, e and π
//   - convergents pₙ/qₙ, wrapping over the stored terms of periodic values
//   - exact structural equality (Equal) and float ordering (Cmp, Less)
//   - arithmetic through a float64 round trip (Add, Sub, Mul, Quo)
//   - text notation (String, Parse, Read, Write) and a YAML codec
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/contfrac/cf"
//
//	x, _ := cf.FromRational(415, 93) // [4; 2; 6; 7]
//	p, q, _ := x.Convergent(1)       // 9, 2
//	root, _ := cf.Sqrt(2, cf.DefaultMaxTerms)
//	fmt.Println(root)                // [1; (2)]
//
// Canonical form:
//
//	Every constructor and mutator normalizes the term sequence: zero terms
//	after a0 are dropped, and an interior 1 merges its two neighbours into
//	their sum ([a; 1, b] → [a + b]). The merge never crosses the start of
//	the periodic tail. The numeric value is computed from the canonical
//	sequence each time it changes, so Float64 and the comparisons only read.
//
// Approximations that are part of the contract:
//
//   - Float64 folds the stored terms once; a periodic tail is not unrolled.
//   - Arithmetic converts both operands to float64 and expands the result
//     again, so precision loss across repeated operations is expected.
//   - Equal compares terms exactly while Cmp compares float64 values, so two
//     different sequences may tie under Cmp.
//   - Parse does not understand the parenthesized periodic notation written
//     by String; use the YAML codec to round-trip periodic values.
//
// Limitations:
//
//	Terms are int64 and convergent overflow is not detected.
package cf
