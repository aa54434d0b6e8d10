package ga_test

import (
	"testing"

	"github.com/katalvlaran/clifford/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mixed3 returns a multivector with one term of each grade 0..3 in the
// shared 3-D Euclidean space.
func mixed3(t *testing.T) *ga.MultiVector[float64] {
	t.Helper()

	s, err := ga.EuclideanSpace(3)
	require.NoError(t, err)

	v, err := ga.NewFromBlades(s, ga.Real{}, map[ga.Blade]float64{
		0: 1, // scalar
		1: 2, // e0
		3: 3, // e0^e1
		7: 4, // e0^e1^e2
	})
	require.NoError(t, err)

	return v
}

// TestRev_SignsAndInvolutivity checks the (-1)^(g(g-1)/2) sign per grade
// and that Rev undoes itself.
func TestRev_SignsAndInvolutivity(t *testing.T) {
	v := mixed3(t)

	r := v.Rev()
	assert.Equal(t, 1.0, r.Coeff(0), "grade 0 unchanged")
	assert.Equal(t, 2.0, r.Coeff(1), "grade 1 unchanged")
	assert.Equal(t, -3.0, r.Coeff(3), "grade 2 flips")
	assert.Equal(t, -4.0, r.Coeff(7), "grade 3 flips")

	assert.True(t, r.Rev().Eq(v), "rev(rev(A)) == A")
}

// TestInvol_SignsAndInvolutivity checks odd-grade flips and that Invol
// undoes itself.
func TestInvol_SignsAndInvolutivity(t *testing.T) {
	v := mixed3(t)

	i := v.Invol()
	assert.Equal(t, 1.0, i.Coeff(0), "even grade unchanged")
	assert.Equal(t, -2.0, i.Coeff(1), "odd grade flips")
	assert.Equal(t, 3.0, i.Coeff(3), "even grade unchanged")
	assert.Equal(t, -4.0, i.Coeff(7), "odd grade flips")

	assert.True(t, i.Invol().Eq(v), "invol(invol(A)) == A")
}

// TestProject retains exactly the requested grade.
func TestProject(t *testing.T) {
	v := mixed3(t)

	p := v.Project(2)
	assert.Equal(t, 3.0, p.Coeff(3))
	assert.Len(t, p.Terms(), 1)

	assert.True(t, v.Project(4).IsZero(), "no grade-4 terms in 3 dimensions")
}

// TestPureGrade distinguishes empty, pure and mixed multivectors.
func TestPureGrade(t *testing.T) {
	s, err := ga.EuclideanSpace(3)
	require.NoError(t, err)

	empty, err := ga.NewFromBlades(s, ga.Real{}, nil)
	require.NoError(t, err)
	g, ok := empty.PureGrade()
	assert.True(t, ok)
	assert.Equal(t, 0, g, "empty multivector reports grade 0")

	pure, err := ga.NewVector(s, ga.Real{}, []float64{1, 2, 0})
	require.NoError(t, err)
	g, ok = pure.PureGrade()
	assert.True(t, ok)
	assert.Equal(t, 1, g)

	_, ok = mixed3(t).PureGrade()
	assert.False(t, ok, "mixed grades report no pure grade")
}

// TestGrades lists the sorted grade set.
func TestGrades(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, mixed3(t).Grades())
}

// TestAsVector_Errors rejects any non-grade-1 component.
func TestAsVector_Errors(t *testing.T) {
	_, err := mixed3(t).AsVector()
	assert.ErrorIs(t, err, ga.ErrNotVector)
}

// TestPseudoscalar checks I spans all basis vectors and equals
// e0^e1^e2 in 3 dimensions.
func TestPseudoscalar(t *testing.T) {
	s, err := ga.EuclideanSpace(3)
	require.NoError(t, err)

	e0, err := ga.BasisBlade(s, ga.Real{}, 0)
	require.NoError(t, err)
	e1, err := ga.BasisBlade(s, ga.Real{}, 1)
	require.NoError(t, err)
	e2, err := ga.BasisBlade(s, ga.Real{}, 2)
	require.NoError(t, err)

	w, err := e0.OuterProduct(e1)
	require.NoError(t, err)
	w, err = w.OuterProduct(e2)
	require.NoError(t, err)

	assert.True(t, e0.Pseudoscalar().Eq(w), "I == e0^e1^e2")
	assert.Equal(t, 1.0, e0.Pseudoscalar().Coeff(7))
}

// TestNormSquared_Vector checks scalar_product(A, A) == norm_squared(A)
// for a grade-1 multivector and its non-negativity in Euclidean space.
func TestNormSquared_Vector(t *testing.T) {
	v, err := ga.NewVector(nil, ga.Real{}, []float64{1, 2, 3})
	require.NoError(t, err)

	ns, err := v.NormSquared()
	require.NoError(t, err)
	assert.Equal(t, 14.0, ns)

	sp, err := v.ScalarProduct(v)
	require.NoError(t, err)
	assert.Equal(t, ns, sp, "rev is the identity on grade 1")
	assert.GreaterOrEqual(t, ns, 0.0)
}

// TestNormSquared_Bivector checks the reverse sign makes a Euclidean unit
// bivector's squared norm +1 even though it squares to -1.
func TestNormSquared_Bivector(t *testing.T) {
	s, err := ga.EuclideanSpace(3)
	require.NoError(t, err)
	b, err := ga.NewFromBlades(s, ga.Real{}, map[ga.Blade]float64{3: 1})
	require.NoError(t, err)

	ns, err := b.NormSquared()
	require.NoError(t, err)
	assert.Equal(t, 1.0, ns)

	mag, err := b.Magnitude()
	require.NoError(t, err)
	assert.Equal(t, 1.0, mag)
}

// TestZapNearZeros drops tiny terms, defaults the tolerance, and is
// idempotent on its own output.
func TestZapNearZeros(t *testing.T) {
	s, err := ga.EuclideanSpace(2)
	require.NoError(t, err)

	v, err := ga.NewFromBlades(s, ga.Real{}, map[ga.Blade]float64{
		1: 1e-14,
		2: 1.0,
		3: -1e-15,
	})
	require.NoError(t, err)

	z, err := v.ZapNearZeros(0)
	require.NoError(t, err)
	assert.Len(t, z.Terms(), 1, "terms at or below 1e-13 are dropped")
	assert.Equal(t, 1.0, z.Coeff(2))

	zz, err := z.ZapNearZeros(0)
	require.NoError(t, err)
	assert.True(t, zz.Eq(z), "idempotent")

	all, err := v.ZapNearZeros(2)
	require.NoError(t, err)
	assert.True(t, all.IsZero(), "a large tolerance removes everything")
}

// TestCloseTo compares within tolerance; exact equality keeps Eq strict.
func TestCloseTo(t *testing.T) {
	s, err := ga.EuclideanSpace(2)
	require.NoError(t, err)

	a, err := ga.NewFromBlades(s, ga.Real{}, map[ga.Blade]float64{1: 1})
	require.NoError(t, err)
	b, err := ga.NewFromBlades(s, ga.Real{}, map[ga.Blade]float64{1: 1 + 1e-15})
	require.NoError(t, err)

	near, err := a.CloseTo(b, 0)
	require.NoError(t, err)
	assert.True(t, near)
	assert.False(t, a.Eq(b), "Eq is exact, CloseTo is tolerant")

	far, err := ga.NewFromBlades(s, ga.Real{}, map[ga.Blade]float64{1: 2})
	require.NoError(t, err)
	near, err = a.CloseTo(far, 0)
	require.NoError(t, err)
	assert.False(t, near)
}

// TestEq_SpaceIdentity verifies equality requires the identical Space.
func TestEq_SpaceIdentity(t *testing.T) {
	s1, err := ga.NewSpace(ga.WithDimension(2))
	require.NoError(t, err)
	s2, err := ga.NewSpace(ga.WithDimension(2))
	require.NoError(t, err)

	a, err := ga.NewScalar(s1, ga.Real{}, 1.0)
	require.NoError(t, err)
	b, err := ga.NewScalar(s2, ga.Real{}, 1.0)
	require.NoError(t, err)

	assert.False(t, a.Eq(b), "structurally equal spaces do not unify")
	assert.False(t, a.Eq(nil))
}
