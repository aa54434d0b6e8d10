package ga

import (
	"math"
	"math/bits"
	"sort"
)

// DefaultZapTolerance is the coefficient magnitude at or below which
// ZapNearZeros drops a term when no tolerance is supplied.
const DefaultZapTolerance = 1e-13

// Rev returns the reverse of v: the multivector obtained by reversing the
// order of the basis vectors inside every blade. A blade of grade g picks
// up the sign (-1)^(g(g-1)/2).
func (v *MultiVector[T]) Rev() *MultiVector[T] {
	data := make(map[Blade]T, len(v.data))
	for b, c := range v.data {
		g := b.Grade()
		if (g*(g-1)/2)%2 == 1 {
			c = v.ring.Neg(c)
		}
		data[b] = c
	}

	return newMultiVector(v.space, v.ring, data)
}

// Invol returns the grade involution of v ([DFM] §2.9.5): every odd-grade
// blade has its sign flipped.
func (v *MultiVector[T]) Invol() *MultiVector[T] {
	data := make(map[Blade]T, len(v.data))
	for b, c := range v.data {
		if b.Grade()%2 == 1 {
			c = v.ring.Neg(c)
		}
		data[b] = c
	}

	return newMultiVector(v.space, v.ring, data)
}

// Project retains only the terms of the requested grade.
func (v *MultiVector[T]) Project(grade int) *MultiVector[T] {
	data := make(map[Blade]T)
	for b, c := range v.data {
		if b.Grade() == grade {
			data[b] = c
		}
	}

	return newMultiVector(v.space, v.ring, data)
}

// PureGrade returns the single grade shared by all terms of v. The ok
// result is false when terms span multiple grades; the empty multivector
// reports (0, true).
func (v *MultiVector[T]) PureGrade() (grade int, ok bool) {
	first := true
	for b := range v.data {
		g := b.Grade()
		if first {
			grade, first = g, false
			continue
		}
		if g != grade {
			return 0, false
		}
	}

	return grade, true
}

// Grades returns the sorted set of grades present in v.
func (v *MultiVector[T]) Grades() []int {
	seen := make(map[int]struct{})
	for b := range v.data {
		seen[b.Grade()] = struct{}{}
	}

	grades := make([]int, 0, len(seen))
	for g := range seen {
		grades = append(grades, g)
	}
	sort.Ints(grades)

	return grades
}

// AsScalar returns the bare coefficient of a multivector whose only term
// (if any) sits at blade 0; the empty multivector yields the ring's zero.
// Any other component is ErrNotScalar.
func (v *MultiVector[T]) AsScalar() (T, error) {
	result := v.ring.Zero()
	for b, c := range v.data {
		if b != 0 {
			return v.ring.Zero(), ErrNotScalar
		}
		result = c
	}

	return result, nil
}

// AsVector returns the dense coordinate slice of a purely grade-1
// multivector, one entry per basis vector (absent blades read as zero).
// Any component of a different grade is ErrNotVector.
func (v *MultiVector[T]) AsVector() ([]T, error) {
	coords := make([]T, v.space.Dims())
	for i := range coords {
		coords[i] = v.ring.Zero()
	}

	for b, c := range v.data {
		if b.Grade() != 1 {
			return nil, ErrNotVector
		}
		coords[bits.TrailingZeros64(uint64(b))] = c
	}

	return coords, nil
}

// Pseudoscalar returns I for the owning Space: the blade spanning all basis
// vectors, with coefficient One.
func (v *MultiVector[T]) Pseudoscalar() *MultiVector[T] {
	data := map[Blade]T{pseudoscalarBlade(v.space.Dims()): v.ring.One()}

	return newMultiVector(v.space, v.ring, data)
}

// NormSquared returns the scalar product of Rev(v) with v.
func (v *MultiVector[T]) NormSquared() (T, error) {
	return v.Rev().ScalarProduct(v)
}

// Magnitude returns sqrt(|NormSquared(v)|) as a float64. It requires a
// NormedRing (ErrNotNormed otherwise). Taking the magnitude of the scalar
// first keeps the result real for metrics where the squared norm can be
// negative.
func (v *MultiVector[T]) Magnitude() (float64, error) {
	normed, ok := v.ring.(NormedRing[T])
	if !ok {
		return 0, ErrNotNormed
	}

	ns, err := v.NormSquared()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(normed.Abs(ns)), nil
}

// ZapNearZeros drops every term whose coefficient magnitude is <= tol; a
// tol <= 0 means DefaultZapTolerance. Requires a NormedRing
// (ErrNotNormed otherwise). Idempotent on its own output.
func (v *MultiVector[T]) ZapNearZeros(tol float64) (*MultiVector[T], error) {
	normed, ok := v.ring.(NormedRing[T])
	if !ok {
		return nil, ErrNotNormed
	}
	if tol <= 0 {
		tol = DefaultZapTolerance
	}

	data := make(map[Blade]T, len(v.data))
	for b, c := range v.data {
		if normed.Abs(c) > tol {
			data[b] = c
		}
	}

	return newMultiVector(v.space, v.ring, data), nil
}

// CloseTo reports whether v and other agree within tol: true iff
// ZapNearZeros(v - other, tol) has no terms.
//
// Errors: ErrNilMultiVector, ErrSpaceMismatch, ErrNotNormed.
func (v *MultiVector[T]) CloseTo(other *MultiVector[T], tol float64) (bool, error) {
	diff, err := v.Sub(other)
	if err != nil {
		return false, err
	}

	zapped, err := diff.ZapNearZeros(tol)
	if err != nil {
		return false, err
	}

	return zapped.IsZero(), nil
}

// Eq reports exact structural equality: identical Space (by pointer), the
// same blade set, and a definitionally zero difference per blade under the
// ring's injected zero test. A nil other is never equal.
func (v *MultiVector[T]) Eq(other *MultiVector[T]) bool {
	if other == nil || v.space != other.space || len(v.data) != len(other.data) {
		return false
	}

	for b, c := range v.data {
		oc, ok := other.data[b]
		if !ok || !v.ring.IsZero(v.ring.Add(c, v.ring.Neg(oc))) {
			return false
		}
	}

	return true
}
