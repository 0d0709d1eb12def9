package cf_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contfrac/cf"
	"github.com/katalvlaran/contfrac/series"
)

// TestZeroValue verifies that an uninitialized ContinuedFraction behaves as [0].
func TestZeroValue(t *testing.T) {
	var z cf.ContinuedFraction

	assert.Equal(t, []int64{0}, z.Terms())
	assert.Equal(t, []int64{0}, z.Prefix())
	assert.Nil(t, z.Period())
	assert.Equal(t, 1, z.Size())
	assert.True(t, z.IsFinite())
	assert.True(t, z.IsInteger())
	assert.Equal(t, 0.0, z.Float64())
	assert.Equal(t, "[0]", z.String())
	assert.True(t, z.Equal(cf.New()))

	p, q, err := z.Convergent(0)
	require.NoError(t, err)
	assert.Equal(t, [2]int64{0, 1}, [2]int64{p, q})

	z.AddTerm(5)
	assert.Equal(t, []int64{0, 5}, z.Terms())
	assert.Equal(t, 0.2, z.Float64())
}

// TestCoefficients exposes sign and marker for every stored term.
func TestCoefficients(t *testing.T) {
	sqrt3, err := cf.Sqrt(3, cf.DefaultMaxTerms)
	require.NoError(t, err)

	assert.Equal(t, []cf.Coefficient{
		{Magnitude: 1},
		{Magnitude: 1, Periodic: true},
		{Magnitude: 2},
	}, sqrt3.Coefficients())

	neg := cf.FromInt(-4).Coefficients()
	require.Len(t, neg, 1)
	assert.Equal(t, cf.Coefficient{Magnitude: 4, Negative: true}, neg[0])
	assert.Equal(t, int64(-4), neg[0].Value())

	// Negative zero compares equal to zero; the marker does not.
	assert.True(t, cf.Coefficient{Negative: true}.Equal(cf.NewCoefficient(0, false)))
	assert.False(t, cf.NewCoefficient(2, true).Equal(cf.NewCoefficient(2, false)))
}

// TestMutators covers SetTerms, AddTerm, Clear and their effect on the value.
func TestMutators(t *testing.T) {
	c := cf.New(1, 2, 3)
	assert.InDelta(t, 10.0/7.0, c.Float64(), 1e-15)

	c.AddTerm(4)
	assert.Equal(t, []int64{1, 2, 3, 4}, c.Terms())
	assert.InDelta(t, 43.0/30.0, c.Float64(), 1e-15)

	c.SetTerms(2, 1, 2)
	assert.Equal(t, []int64{4}, c.Terms())
	assert.Equal(t, 4.0, c.Float64())

	c.Clear()
	assert.Equal(t, []int64{0}, c.Terms())
	assert.Equal(t, 0.0, c.Float64())

	// A periodic value grows its tail.
	root, err := cf.Sqrt(2, cf.DefaultMaxTerms)
	require.NoError(t, err)
	root.AddTerm(3)
	assert.Equal(t, "[1; (2; 3)]", root.String())
	assert.True(t, root.IsPeriodic())

	// SetTerms always yields a finite value.
	root.SetTerms(7, 2)
	assert.True(t, root.IsFinite())
	assert.Equal(t, "[7; 2]", root.String())
}

// TestClone_Independent verifies value semantics for Clone and plain copies.
func TestClone_Independent(t *testing.T) {
	a := cf.New(1, 2, 3)
	b := a.Clone()
	b.AddTerm(4)
	assert.Equal(t, []int64{1, 2, 3}, a.Terms())

	c := *a
	c.AddTerm(5)
	assert.Equal(t, []int64{1, 2, 3}, a.Terms())
	assert.Equal(t, []int64{1, 2, 3, 5}, c.Terms())

	terms := a.Terms()
	terms[0] = 99
	assert.Equal(t, []int64{1, 2, 3}, a.Terms(), "Terms must return a copy")
}

// TestConvergent_Finite checks the recurrence and the range guard.
func TestConvergent_Finite(t *testing.T) {
	c := cf.New(3, 7, 16)
	want := [][2]int64{{3, 1}, {22, 7}, {355, 113}}
	for n, w := range want {
		p, q, err := c.Convergent(n)
		require.NoError(t, err)
		assert.Equal(t, w, [2]int64{p, q}, "convergent %d", n)
	}

	_, _, err := c.Convergent(c.Size())
	assert.ErrorIs(t, err, cf.ErrOutOfRange)
	_, _, err = c.Convergent(-1)
	assert.ErrorIs(t, err, cf.ErrOutOfRange)

	assert.Equal(t, []series.Ratio{{3, 1}, {22, 7}, {355, 113}}, c.Convergents(10))
}

// TestConvergent_Periodic wraps indices modulo the stored length.
func TestConvergent_Periodic(t *testing.T) {
	sqrt2, err := cf.Sqrt(2, 10)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, sqrt2.Terms())

	p, q, err := sqrt2.Convergent(2)
	require.NoError(t, err)
	assert.Equal(t, [2]int64{4, 3}, [2]int64{p, q}, "a2 = Terms()[2 % 2] = 1")

	p, q, err = sqrt2.Convergent(10)
	require.NoError(t, err)
	assert.Equal(t, [2]int64{780, 571}, [2]int64{p, q})

	want := []series.Ratio{{1, 1}, {3, 2}, {4, 3}, {11, 8}, {15, 11}}
	assert.Equal(t, want, sqrt2.Convergents(5))
	for n, r := range want {
		p, q, err := sqrt2.Convergent(n)
		require.NoError(t, err)
		assert.Equal(t, r, series.Ratio{Num: p, Den: q}, "convergent %d", n)
	}

	sqrt3, err := cf.Sqrt(3, 10)
	require.NoError(t, err)
	assert.Equal(t, series.Ratio{Num: 12, Den: 7}, sqrt3.Convergents(5)[4])

	pure := cf.NewPeriodic(nil, []int64{5})
	p, q, err = pure.Convergent(3)
	require.NoError(t, err)
	assert.Equal(t, [2]int64{701, 135}, [2]int64{p, q})
}

// TestConvergent_Unrolled reaches √2 through the expanded period.
func TestConvergent_Unrolled(t *testing.T) {
	sqrt2, err := cf.Sqrt(2, 10)
	require.NoError(t, err)

	rs := series.Convergents(sqrt2.Expand(11))
	assert.Equal(t, []series.Ratio{{1, 1}, {3, 2}, {7, 5}, {17, 12}}, rs[:4])
	assert.Equal(t, series.Ratio{Num: 8119, Den: 5741}, rs[10])
	v := rs[10].Float64()
	assert.InDelta(t, 2.0, v*v, 1e-6)
}

// TestExpand unrolls periodic tails and caps finite values.
func TestExpand(t *testing.T) {
	sqrt7, err := cf.Sqrt(7, cf.DefaultMaxTerms)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2, 4, 2, 4, 2}, sqrt7.Expand(6))

	assert.Equal(t, []int64{3, 7, 16}, cf.New(3, 7, 16).Expand(8))
	assert.Nil(t, cf.New(3).Expand(0))
}

// TestIsInteger follows the single-term rule.
func TestIsInteger(t *testing.T) {
	assert.True(t, cf.FromInt(42).IsInteger())
	assert.True(t, cf.New(1, 1, 2).IsInteger())
	assert.False(t, cf.New(1, 2).IsInteger())
	assert.True(t, cf.NewPeriodic(nil, []int64{5}).IsInteger())
}

// TestConcurrentReaders exercises read-only methods on a shared value.
// Run with -race: the value is computed eagerly, so readers never write.
func TestConcurrentReaders(t *testing.T) {
	shared, err := cf.Sqrt(19, cf.DefaultMaxTerms)
	require.NoError(t, err)
	want := shared.Float64()

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(n int) {
			defer wg.Done()
			assert.Equal(t, want, shared.Float64())
			_ = shared.String()
			_, _, err := shared.Convergent(n)
			assert.NoError(t, err)
			assert.True(t, shared.Equal(shared.Clone()))
		}(i)
	}
	wg.Wait()
}
