package cf

import "errors"

// Error kinds. Every error returned by this package matches exactly one of
// them under errors.Is; errors coming from package series are wrapped so the
// original sentinel still matches as well.
var (
	// ErrInvalidFormat indicates malformed text: missing bracket wrap or an
	// unreadable leading coefficient.
	ErrInvalidFormat = errors.New("cf: invalid format")

	// ErrInvalidArgument indicates an argument outside the domain of the
	// operation: zero denominator, negative radicand, NaN/Inf input, or a
	// term limit below 1.
	ErrInvalidArgument = errors.New("cf: invalid argument")

	// ErrOutOfRange indicates a convergent index beyond a finite fraction.
	ErrOutOfRange = errors.New("cf: index out of range")

	// ErrDivisionByZero indicates a divisor whose value is below
	// DivisionEpsilon in magnitude.
	ErrDivisionByZero = errors.New("cf: division by zero")
)
