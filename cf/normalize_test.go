package cf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contfrac/cf"
)

// TestNormalize_Finite checks zero removal, the one-merge rule and the
// trailing-one exemption on finite inputs.
func TestNormalize_Finite(t *testing.T) {
	cases := []struct {
		name  string
		terms []int64
		want  []int64
	}{
		{"Empty", nil, []int64{0}},
		{"Zero", []int64{0}, []int64{0}},
		{"AllZero", []int64{0, 0, 0}, []int64{0}},
		{"InteriorZero", []int64{5, 0, 3}, []int64{5, 3}},
		{"MergeLaw", []int64{1, 1, 2}, []int64{3}},
		{"PiPrefix", []int64{3, 7, 15, 1, 292}, []int64{3, 7, 307}},
		{"Cascade", []int64{4, 1, 1, 4}, []int64{5, 4}},
		{"TrailingOne", []int64{2, 1}, []int64{2, 1}},
		{"NegativeOneStays", []int64{2, -1, 3}, []int64{2, -1, 3}},
		{"MergeCreatesZero", []int64{5, 3, 1, -3}, []int64{5}},
		{"EPattern", []int64{2, 1, 2, 1, 1, 4, 1, 1, 6, 1}, []int64{5, 5, 6, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cf.New(tc.terms...)
			assert.Equal(t, tc.want, c.Terms())
			assert.True(t, c.IsFinite())
			assert.False(t, c.IsPeriodic())
		})
	}
}

// TestNormalize_Periodic verifies that merges never cross the start of the
// periodic tail, and that an emptied tail or a dropped zero at the start of
// the tail turns the value finite.
func TestNormalize_Periodic(t *testing.T) {
	cases := []struct {
		name           string
		prefix, period []int64
		wantPrefix     []int64
		wantPeriod     []int64
	}{
		{"Sqrt2", []int64{1}, []int64{2}, []int64{1}, []int64{2}},
		{"OneBeforeMarker", []int64{3, 1}, []int64{2}, []int64{3, 1}, []int64{2}},
		{"MarkerIsOne", []int64{3}, []int64{1, 4}, []int64{3}, []int64{1, 4}},
		{"MergeInsideTail", []int64{2}, []int64{1, 1, 1, 4}, []int64{2}, []int64{2, 4}},
		{"PurelyPeriodic", nil, []int64{5}, []int64{}, []int64{5}},
		{"ZeroTail", []int64{1}, []int64{0}, []int64{1}, nil},
		{"ZeroMarker", []int64{1}, []int64{0, 2}, []int64{1, 2}, nil},
		{"ZeroMarkerThenMerge", []int64{3}, []int64{0, 1, 2}, []int64{5}, nil},
		{"ZeroAfterMarker", []int64{1}, []int64{2, 0, 3}, []int64{1}, []int64{2, 3}},
		{"MergeZeroesMarker", []int64{4}, []int64{3, 1, -3}, []int64{4}, nil},
		{"PurelyPeriodicZero", nil, []int64{0, 2}, []int64{}, []int64{0, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cf.NewPeriodic(tc.prefix, tc.period)
			assert.Equal(t, tc.wantPrefix, c.Prefix())
			assert.Equal(t, tc.wantPeriod, c.Period())
			assert.Equal(t, tc.wantPeriod != nil, c.IsPeriodic())
			assert.Equal(t, tc.wantPeriod == nil, c.IsFinite())
		})
	}
}

// TestNormalize_Idempotent runs Simplify on canonical values and expects no change.
func TestNormalize_Idempotent(t *testing.T) {
	sqrt7, err := cf.Sqrt(7, cf.DefaultMaxTerms)
	require.NoError(t, err)
	pi, err := cf.Pi(cf.DefaultMaxTerms)
	require.NoError(t, err)

	values := []*cf.ContinuedFraction{
		cf.New(),
		cf.New(1, 1, 2),
		cf.New(5, 3, 1, -3),
		cf.New(3, 7, 15, 1, 292),
		cf.E(30),
		sqrt7,
		pi,
	}
	for _, v := range values {
		before := v.Coefficients()
		after := v.Clone().Simplify()
		assert.Equal(t, before, after.Coefficients(), "Simplify changed %s", v)
		assert.True(t, v.Equal(after))
		assert.Equal(t, v.Float64(), after.Float64())
	}
}

// TestNormalize_NoInteriorOnes checks that no canonical form keeps an interior 1.
func TestNormalize_NoInteriorOnes(t *testing.T) {
	for a := int64(-2); a <= 3; a++ {
		for b := int64(-1); b <= 2; b++ {
			for c := int64(0); c <= 2; c++ {
				for d := int64(1); d <= 2; d++ {
					got := cf.New(a, b, c, d, 1, 1).Terms()
					for i := 1; i < len(got); i++ {
						require.NotZero(t, got[i], "zero at %d in %v", i, got)
						if i+1 < len(got) {
							require.NotEqual(t, int64(1), got[i], "interior one at %d in %v", i, got)
						}
					}
				}
			}
		}
	}
}
