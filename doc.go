// Package contfrac is a small toolkit for simple continued fractions:
// finite ones such as 355/113 = [3; 7; 16] and periodic ones such as
// √2 = [1; (2)].
//
// 🚀 What is inside?
//
//	series/        — raw term algorithms: Euclid, convergents, folding,
//	                 float expansion, √n and e generators, GCD
//	cf/            — ContinuedFraction value type: canonical form, text and
//	                 YAML codecs, convergents, comparison, arithmetic
//	cmd/cfrac/     — command-line tool over cf, configured with TOML
//
// ✨ Why contfrac?
//
//   - Explicit errors – every failure matches a sentinel through errors.Is
//   - Plain values – eager evaluation, no hidden caches or locks
//   - Pure Go – no cgo
//
// Quick example:
//
//	c, _ := cf.FromRational(415, 93)
//	fmt.Println(c)             // [4; 2; 6; 7]
//	p, q, _ := c.Convergent(1) // 9, 2
//
// Install the tool with:
//
//	go install github.com/katalvlaran/contfrac/cmd/cfrac@latest
package contfrac
