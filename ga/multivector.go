package ga

// MultiVector is an immutable sparse multivector: a finite sum of
// coefficient-weighted basis blades over one Space. Implementation follows
// [DFM], chapter 19: terms live in a map from blade bitmask to coefficient,
// and no stored coefficient is ever definitionally zero (per the ring's
// injected IsZero) — absence of a blade means coefficient zero.
//
// Every operation returns a new MultiVector; none mutate the receiver. The
// bound Space is shared by reference, and operations across two values
// bound to distinct Space instances fail with ErrSpaceMismatch even when
// the spaces are algebraically identical.
//
// [DFM] L. Dorst, D. Fontijne, and S. Mann, Geometric Algebra for Computer
// Science: An Object-Oriented Approach to Geometry. Morgan Kaufmann, 2010.
type MultiVector[T any] struct {
	space *Space
	ring  Ring[T]
	data  map[Blade]T
}

// DispatchTag identifies multivector nodes to a host expression system's
// visitor/dispatch mechanism. The core only exposes the tag; dispatch
// itself belongs to the host.
const DispatchTag = "map_multi_vector"

// DispatchTag returns the fixed host-dispatch tag for multivector nodes.
func (v *MultiVector[T]) DispatchTag() string { return DispatchTag }

// newMultiVector wraps an already-normalized term map without copying.
// Callers hand over ownership of data.
func newMultiVector[T any](s *Space, ring Ring[T], data map[Blade]T) *MultiVector[T] {
	return &MultiVector[T]{space: s, ring: ring, data: data}
}

// NewVector builds a grade-1 multivector from a dense coordinate slice, one
// coefficient per basis vector. When space is nil, the canonical Euclidean
// space of dimension len(coords) is used; an explicit space must satisfy
// space.Dims() == len(coords) (ErrDimensionMismatch otherwise). Zero
// coordinates are not stored.
func NewVector[T any](space *Space, ring Ring[T], coords []T) (*MultiVector[T], error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if space == nil {
		var err error
		if space, err = EuclideanSpace(len(coords)); err != nil {
			return nil, err
		}
	} else if space.Dims() != len(coords) {
		return nil, ErrDimensionMismatch
	}

	data := make(map[Blade]T, len(coords))
	for i, c := range coords {
		if !ring.IsZero(c) {
			data[Blade(1)<<i] = c
		}
	}

	return newMultiVector(space, ring, data), nil
}

// NewScalar builds a grade-0 multivector holding the bare coefficient c at
// blade 0. The space must be supplied explicitly — a lone scalar carries no
// dimension to infer (ErrNilSpace).
func NewScalar[T any](space *Space, ring Ring[T], c T) (*MultiVector[T], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if ring == nil {
		return nil, ErrNilRing
	}

	data := make(map[Blade]T, 1)
	if !ring.IsZero(c) {
		data[0] = c
	}

	return newMultiVector(space, ring, data), nil
}

// NewFromBlades builds a multivector from an already-canonical mapping of
// blade bitmasks to coefficients. Blades with bits at or above space.Dims()
// are rejected with ErrBladeOutOfRange; zero coefficients are dropped. The
// map is copied.
func NewFromBlades[T any](space *Space, ring Ring[T], terms map[Blade]T) (*MultiVector[T], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if ring == nil {
		return nil, ErrNilRing
	}

	limit := pseudoscalarBlade(space.Dims())
	data := make(map[Blade]T, len(terms))
	for bits, c := range terms {
		if bits&^limit != 0 {
			return nil, ErrBladeOutOfRange
		}
		if !ring.IsZero(c) {
			data[bits] = c
		}
	}

	return newMultiVector(space, ring, data), nil
}

// IndexTerm pairs an ordered tuple of distinct basis indices with a
// coefficient. The tuple order matters: NewFromIndexTerms folds it into the
// canonical ascending order, and the permutation's parity flips the
// coefficient's sign.
type IndexTerm[T any] struct {
	Indices []int
	Coeff   T
}

// NewFromIndexTerms builds a multivector from ordered basis-index tuples,
// normalizing each tuple to its canonical blade via Space.BitsAndSign and
// accumulating sign*coefficient per blade. Entries whose accumulated
// coefficient becomes zero are dropped.
//
// Errors: ErrNilSpace, ErrNilRing, and BitsAndSign's ErrIndexOutOfRange /
// ErrRepeatedIndex.
func NewFromIndexTerms[T any](space *Space, ring Ring[T], terms []IndexTerm[T]) (*MultiVector[T], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if ring == nil {
		return nil, ErrNilRing
	}

	data := make(map[Blade]T, len(terms))
	for _, term := range terms {
		bits, sign, err := space.BitsAndSign(term.Indices...)
		if err != nil {
			return nil, err
		}

		c := term.Coeff
		if sign < 0 {
			c = ring.Neg(c)
		}
		if prev, ok := data[bits]; ok {
			c = ring.Add(prev, c)
		}
		if ring.IsZero(c) {
			delete(data, bits)
		} else {
			data[bits] = c
		}
	}

	return newMultiVector(space, ring, data), nil
}

// BasisBlade builds the unit blade spanned by the given ordered basis
// indices: coefficient One, negated when the tuple's canonical reordering
// is odd. With no indices it is the unit scalar.
func BasisBlade[T any](space *Space, ring Ring[T], indices ...int) (*MultiVector[T], error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if ring == nil {
		return nil, ErrNilRing
	}

	bits, sign, err := space.BitsAndSign(indices...)
	if err != nil {
		return nil, err
	}

	c := ring.One()
	if sign < 0 {
		c = ring.Neg(c)
	}

	return newMultiVector(space, ring, map[Blade]T{bits: c}), nil
}

// pseudoscalarBlade returns the all-bits blade for n dimensions.
func pseudoscalarBlade(n int) Blade {
	if n >= MaxDimensions {
		return ^Blade(0)
	}

	return Blade(1)<<n - 1
}

// Space returns the owning Space (shared reference).
func (v *MultiVector[T]) Space() *Space { return v.space }

// Ring returns the injected coefficient ring.
func (v *MultiVector[T]) Ring() Ring[T] { return v.ring }

// IsZero reports whether the multivector has no terms.
func (v *MultiVector[T]) IsZero() bool { return len(v.data) == 0 }

// Coeff returns the coefficient stored at blade b, or the ring's zero when
// the blade is absent.
func (v *MultiVector[T]) Coeff(b Blade) T {
	if c, ok := v.data[b]; ok {
		return c
	}

	return v.ring.Zero()
}

// Neg returns the additive inverse: every coefficient negated.
func (v *MultiVector[T]) Neg() *MultiVector[T] {
	data := make(map[Blade]T, len(v.data))
	for bits, c := range v.data {
		data[bits] = v.ring.Neg(c)
	}

	return newMultiVector(v.space, v.ring, data)
}

// Add returns the sum of two multivectors from the identical Space: the
// union of their blades with coefficients summed per blade; blades whose
// sum is zero are dropped.
//
// Errors: ErrNilMultiVector, ErrSpaceMismatch.
func (v *MultiVector[T]) Add(other *MultiVector[T]) (*MultiVector[T], error) {
	if other == nil {
		return nil, ErrNilMultiVector
	}
	if v.space != other.space {
		return nil, ErrSpaceMismatch
	}

	data := make(map[Blade]T, len(v.data)+len(other.data))
	for bits, c := range v.data {
		data[bits] = c
	}
	for bits, c := range other.data {
		sum := c
		if prev, ok := data[bits]; ok {
			sum = v.ring.Add(prev, c)
		}
		if v.ring.IsZero(sum) {
			delete(data, bits)
		} else {
			data[bits] = sum
		}
	}

	return newMultiVector(v.space, v.ring, data), nil
}

// Sub returns v + (-other).
func (v *MultiVector[T]) Sub(other *MultiVector[T]) (*MultiVector[T], error) {
	if other == nil {
		return nil, ErrNilMultiVector
	}

	return v.Add(other.Neg())
}

// AddScalar coerces c into v's Space as a grade-0 term and adds it.
func (v *MultiVector[T]) AddScalar(c T) *MultiVector[T] {
	data := make(map[Blade]T, len(v.data)+1)
	for bits, cv := range v.data {
		data[bits] = cv
	}

	sum := c
	if prev, ok := data[0]; ok {
		sum = v.ring.Add(prev, c)
	}
	if v.ring.IsZero(sum) {
		delete(data, 0)
	} else {
		data[0] = sum
	}

	return newMultiVector(v.space, v.ring, data)
}

// Product — the generic product engine.
//
// Description:
//
//	Computes any of the six geometric-algebra products; the kinds differ
//	only in the blade-pair weight drawn from the metric (see product.go).
//	Every named product operator delegates here.
//
// Algorithm Outline:
//  1. For every term pair (sbits, scoeff) × (obits, ocoeff):
//     a. combined blade = sbits XOR obits;
//     b. weight = kind's orthogonal weight if the Space's metric is
//     diagonal, else its generic weight (outer product only — every
//     other kind returns ErrNonOrthogonalMetric);
//     c. if the weight is nonzero, accumulate
//     weight * CanonicalReorderingSign(sbits, obits) * scoeff * ocoeff
//     into the result blade, dropping it when the running sum becomes
//     definitionally zero.
//
// Errors:
//   - ErrNilMultiVector, ErrUnknownProduct, ErrSpaceMismatch.
//   - ErrNonOrthogonalMetric — capability gap for non-diagonal metrics.
//
// Complexity: O(terms(v) × terms(other)) blade pairs.
func (v *MultiVector[T]) Product(kind ProductKind, other *MultiVector[T]) (*MultiVector[T], error) {
	if other == nil {
		return nil, ErrNilMultiVector
	}
	if !kind.valid() {
		return nil, ErrUnknownProduct
	}
	if v.space != other.space {
		return nil, ErrSpaceMismatch
	}

	weights := productWeights[kind]
	orthogonal := v.space.IsOrthogonal()

	data := make(map[Blade]T)
	for sbits, scoeff := range v.data {
		for obits, ocoeff := range other.data {
			var weight float64
			if orthogonal {
				weight = weights.orthogonal(sbits, obits, v.space)
			} else {
				var err error
				if weight, err = weights.generic(sbits, obits, v.space); err != nil {
					return nil, err
				}
			}
			if weight == 0 {
				continue
			}

			bits := sbits ^ obits
			c := v.ring.Scale(
				weight*float64(CanonicalReorderingSign(sbits, obits)),
				v.ring.Mul(scoeff, ocoeff),
			)
			if prev, ok := data[bits]; ok {
				c = v.ring.Add(prev, c)
			}
			if v.ring.IsZero(c) {
				delete(data, bits)
			} else {
				data[bits] = c
			}
		}
	}

	return newMultiVector(v.space, v.ring, data), nil
}

// GeometricProduct returns the geometric (Clifford) product v other.
func (v *MultiVector[T]) GeometricProduct(other *MultiVector[T]) (*MultiVector[T], error) {
	return v.Product(Geometric, other)
}

// OuterProduct returns the outer (wedge) product v ∧ other.
func (v *MultiVector[T]) OuterProduct(other *MultiVector[T]) (*MultiVector[T], error) {
	return v.Product(Outer, other)
}

// InnerProduct returns the (fat-dot) inner product of v and other.
func (v *MultiVector[T]) InnerProduct(other *MultiVector[T]) (*MultiVector[T], error) {
	return v.Product(Inner, other)
}

// LeftContraction returns the left contraction v ⌋ other.
func (v *MultiVector[T]) LeftContraction(other *MultiVector[T]) (*MultiVector[T], error) {
	return v.Product(LeftContraction, other)
}

// RightContraction returns the right contraction v ⌊ other.
func (v *MultiVector[T]) RightContraction(other *MultiVector[T]) (*MultiVector[T], error) {
	return v.Product(RightContraction, other)
}

// ScalarProduct returns the scalar product of v and other as a bare
// coefficient, asserting that the product collapsed to blade 0
// (ErrNotScalar otherwise).
func (v *MultiVector[T]) ScalarProduct(other *MultiVector[T]) (T, error) {
	p, err := v.Product(Scalar, other)
	if err != nil {
		var zero T

		return zero, err
	}

	return p.AsScalar()
}
