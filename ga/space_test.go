package ga_test

import (
	"testing"

	"github.com/katalvlaran/clifford/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSpace_Underspecified verifies that a Space needs at least one of
// basis and metric.
func TestNewSpace_Underspecified(t *testing.T) {
	_, err := ga.NewSpace()
	assert.ErrorIs(t, err, ga.ErrSpaceUnderspecified)
}

// TestNewSpace_DefaultNamesAndMetric checks the e0..eN default basis and
// the identity default metric.
func TestNewSpace_DefaultNamesAndMetric(t *testing.T) {
	s, err := ga.NewSpace(ga.WithDimension(3))
	require.NoError(t, err)

	assert.Equal(t, 3, s.Dims())
	assert.Equal(t, []string{"e0", "e1", "e2"}, s.BasisNames())
	assert.True(t, s.IsOrthogonal(), "identity metric is diagonal")
	assert.True(t, s.IsEuclidean(), "identity metric is Euclidean")

	diag, err := s.Metric(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, diag)
	off, err := s.Metric(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, off)
}

// TestNewSpace_MetricOnly infers the dimension count from the metric size.
func TestNewSpace_MetricOnly(t *testing.T) {
	s, err := ga.NewSpace(ga.WithMetric([][]float64{{1, 0}, {0, -1}}))
	require.NoError(t, err)

	assert.Equal(t, 2, s.Dims())
	assert.True(t, s.IsOrthogonal())
	assert.False(t, s.IsEuclidean(), "diag(1,-1) is orthogonal but not Euclidean")
}

// TestNewSpace_NonOrthogonalMetric classifies a non-diagonal metric.
func TestNewSpace_NonOrthogonalMetric(t *testing.T) {
	s, err := ga.NewSpace(ga.WithMetric([][]float64{{1, 0.5}, {0.5, 1}}))
	require.NoError(t, err)

	assert.False(t, s.IsOrthogonal())
	assert.False(t, s.IsEuclidean())
}

// TestNewSpace_Validation covers the misuse sentinels of construction.
func TestNewSpace_Validation(t *testing.T) {
	cases := []struct {
		name string
		opts []ga.SpaceOption
		want error
	}{
		{
			"metric shape mismatch",
			[]ga.SpaceOption{ga.WithDimension(2), ga.WithMetric([][]float64{{1}})},
			ga.ErrMetricShape,
		},
		{
			"ragged metric",
			[]ga.SpaceOption{ga.WithMetric([][]float64{{1, 0}, {0}})},
			ga.ErrMetricShape,
		},
		{
			"duplicate basis name",
			[]ga.SpaceOption{ga.WithBasisNames("e0", "e0")},
			ga.ErrDuplicateBasisName,
		},
		{
			"dimension and names disagree",
			[]ga.SpaceOption{ga.WithDimension(3), ga.WithBasisNames("x", "y")},
			ga.ErrDimensionMismatch,
		},
		{
			"empty basis names",
			[]ga.SpaceOption{ga.WithBasisNames()},
			ga.ErrBadDimension,
		},
		{
			"explicit zero dimension",
			[]ga.SpaceOption{ga.WithDimension(0)},
			ga.ErrBadDimension,
		},
		{
			"negative dimension",
			[]ga.SpaceOption{ga.WithDimension(-1)},
			ga.ErrBadDimension,
		},
		{
			"zero dimension with metric",
			[]ga.SpaceOption{ga.WithDimension(0), ga.WithMetric([][]float64{{1}})},
			ga.ErrBadDimension,
		},
		{
			"above the 64-bit blade limit",
			[]ga.SpaceOption{ga.WithDimension(65)},
			ga.ErrDimensionLimit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ga.NewSpace(tc.opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSpace_MetricCopied verifies WithMetric deep-copies its argument.
func TestSpace_MetricCopied(t *testing.T) {
	m := [][]float64{{1, 0}, {0, 1}}
	s, err := ga.NewSpace(ga.WithMetric(m))
	require.NoError(t, err)

	m[0][1] = 9
	got, err := s.Metric(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got, "later mutation of the caller's matrix must not leak in")
}

// TestSpace_BitsAndSign verifies bitmask encoding, permutation parity, and
// the tuple-order independence of the resulting blade.
func TestSpace_BitsAndSign(t *testing.T) {
	s, err := ga.EuclideanSpace(3)
	require.NoError(t, err)

	bits, sign, err := s.BitsAndSign(0, 1)
	require.NoError(t, err)
	assert.Equal(t, ga.Blade(3), bits)
	assert.Equal(t, 1, sign, "(0,1) is already canonical")

	bits, sign, err = s.BitsAndSign(1, 0)
	require.NoError(t, err)
	assert.Equal(t, ga.Blade(3), bits, "blade identity ignores tuple order")
	assert.Equal(t, -1, sign, "(1,0) needs one transposition")

	bits, sign, err = s.BitsAndSign(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, ga.Blade(7), bits)
	assert.Equal(t, 1, sign, "(2,0,1) is an even permutation")

	bits, sign, err = s.BitsAndSign()
	require.NoError(t, err)
	assert.Equal(t, ga.Blade(0), bits, "empty tuple is the scalar blade")
	assert.Equal(t, 1, sign)

	// Memoized results stay stable on repeat lookups.
	again, signAgain, err := s.BitsAndSign(1, 0)
	require.NoError(t, err)
	assert.Equal(t, ga.Blade(3), again)
	assert.Equal(t, -1, signAgain)
}

// TestSpace_BitsAndSign_Errors covers the index validation sentinels.
func TestSpace_BitsAndSign_Errors(t *testing.T) {
	s, err := ga.EuclideanSpace(2)
	require.NoError(t, err)

	_, _, err = s.BitsAndSign(0, 2)
	assert.ErrorIs(t, err, ga.ErrIndexOutOfRange)

	_, _, err = s.BitsAndSign(-1)
	assert.ErrorIs(t, err, ga.ErrIndexOutOfRange)

	_, _, err = s.BitsAndSign(1, 1)
	assert.ErrorIs(t, err, ga.ErrRepeatedIndex)
}

// TestSpace_BladeString renders blades with the wedge separator.
func TestSpace_BladeString(t *testing.T) {
	s, err := ga.NewSpace(ga.WithBasisNames("x", "y", "z"))
	require.NoError(t, err)

	assert.Equal(t, "", s.BladeString(0))
	assert.Equal(t, "y", s.BladeString(2))
	assert.Equal(t, "x^z", s.BladeString(5))
	assert.Equal(t, "x^y^z", s.BladeString(7))
}

// TestEuclideanSpace_Cached verifies the process-wide cache returns the
// same shared instance per dimension count.
func TestEuclideanSpace_Cached(t *testing.T) {
	a, err := ga.EuclideanSpace(4)
	require.NoError(t, err)
	b, err := ga.EuclideanSpace(4)
	require.NoError(t, err)
	assert.Same(t, a, b, "one canonical Euclidean space per dimension count")

	c, err := ga.EuclideanSpace(5)
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	_, err = ga.EuclideanSpace(0)
	assert.ErrorIs(t, err, ga.ErrBadDimension)
}
