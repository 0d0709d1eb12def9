package series

import "errors"

// Sentinel errors returned by series functions. Match them with errors.Is.
var (
	// ErrZeroDenominator indicates a rational with denominator 0.
	ErrZeroDenominator = errors.New("series: zero denominator")

	// ErrNegativeRadicand indicates a square root of a negative integer.
	ErrNegativeRadicand = errors.New("series: negative radicand")

	// ErrIndexOutOfRange indicates a convergent index outside [0, len(terms)).
	ErrIndexOutOfRange = errors.New("series: convergent index out of range")

	// ErrNoTerms indicates an empty term sequence where at least one is required.
	ErrNoTerms = errors.New("series: empty term sequence")

	// ErrNonFinite indicates a NaN or ±Inf input to FromFloat.
	ErrNonFinite = errors.New("series: value is NaN or Inf")

	// ErrTermOverflow indicates a FromFloat input whose integer part does not
	// fit in an int64 term.
	ErrTermOverflow = errors.New("series: term exceeds int64 range")

	// ErrTermLimit indicates a maximum term count below 1.
	ErrTermLimit = errors.New("series: term limit must be >= 1")
)
