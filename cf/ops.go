package cf

import (
	"fmt"
	"math"
	"slices"
)

const (
	// DivisionEpsilon is the divisor magnitude below which Quo fails.
	DivisionEpsilon = 1e-15

	// DefaultEpsilon is the usual tolerance for ApproxEqual.
	DefaultEpsilon = 1e-12
)

// Add sets z to x + y and returns z.
//
// Both operands are converted with Float64 and the float64 sum is expanded
// again with FromFloat(·, DefaultMaxTerms), so the result is an
// approximation. z may alias x or y (z.Add(z, y) is the compound form).
//
// A result that is NaN, ±Inf or whose integer part does not fit in an int64
// fails with ErrInvalidArgument. On error z is left unchanged.
func (z *ContinuedFraction) Add(x, y *ContinuedFraction) (*ContinuedFraction, error) {
	return z.setFloat(x.Float64() + y.Float64())
}

// Sub sets z to x − y and returns z. See Add for the approximation rules.
func (z *ContinuedFraction) Sub(x, y *ContinuedFraction) (*ContinuedFraction, error) {
	return z.setFloat(x.Float64() - y.Float64())
}

// Mul sets z to x · y and returns z. See Add for the approximation rules.
func (z *ContinuedFraction) Mul(x, y *ContinuedFraction) (*ContinuedFraction, error) {
	return z.setFloat(x.Float64() * y.Float64())
}

// Quo sets z to x / y and returns z. See Add for the approximation rules.
// A divisor with |y| < DivisionEpsilon yields ErrDivisionByZero.
func (z *ContinuedFraction) Quo(x, y *ContinuedFraction) (*ContinuedFraction, error) {
	d := y.Float64()
	if math.Abs(d) < DivisionEpsilon {
		return z, fmt.Errorf("%w: divisor %s ≈ %g", ErrDivisionByZero, y, d)
	}

	return z.setFloat(x.Float64() / d)
}

// setFloat stores the expansion of v in z.
func (z *ContinuedFraction) setFloat(v float64) (*ContinuedFraction, error) {
	r, err := FromFloat(v, DefaultMaxTerms)
	if err != nil {
		return z, err
	}

	return z.Set(r), nil
}

// Equal reports whether c and o have exactly the same terms and the same
// periodic tail. It never consults the float64 value.
func (c *ContinuedFraction) Equal(o *ContinuedFraction) bool {
	return slices.Equal(c.Prefix(), o.Prefix()) && slices.Equal(c.period, o.period)
}

// Cmp compares the float64 values of c and o and returns -1, 0 or +1.
//
// Cmp(o) == 0 does not imply Equal(o): canonically different sequences can
// fold to the same float64.
func (c *ContinuedFraction) Cmp(o *ContinuedFraction) int {
	a, b := c.Float64(), o.Float64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether c.Float64() < o.Float64().
func (c *ContinuedFraction) Less(o *ContinuedFraction) bool {
	return c.Float64() < o.Float64()
}

// ApproxEqual reports whether the float64 values of a and b differ by less
// than epsilon.
func ApproxEqual(a, b *ContinuedFraction, epsilon float64) bool {
	return math.Abs(a.Float64()-b.Float64()) < epsilon
}
