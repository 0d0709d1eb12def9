package cf

// Coefficient is one term of a continued fraction as seen by inspection:
// magnitude, sign, and whether the periodic tail starts at it.
type Coefficient struct {
	Magnitude uint64
	Negative  bool
	Periodic  bool
}

// NewCoefficient splits v into magnitude and sign.
func NewCoefficient(v int64, periodic bool) Coefficient {
	if v < 0 {
		return Coefficient{Magnitude: uint64(-v), Negative: true, Periodic: periodic}
	}

	return Coefficient{Magnitude: uint64(v), Periodic: periodic}
}

// Value returns the signed value of the coefficient.
func (c Coefficient) Value() int64 {
	if c.Negative {
		return -int64(c.Magnitude)
	}

	return int64(c.Magnitude)
}

// Equal reports whether c and o have the same signed value and periodic flag.
// A negative zero equals a positive zero.
func (c Coefficient) Equal(o Coefficient) bool {
	return c.Value() == o.Value() && c.Periodic == o.Periodic
}
