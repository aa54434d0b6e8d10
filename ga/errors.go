// Package ga: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ga
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
package ga

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ga: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// The set splits into two kinds:
//   - misuse sentinels: recoverable, the caller passed something invalid;
//   - ErrNonOrthogonalMetric: a declared capability gap, not misuse — only
//     the outer product is defined for non-diagonal metrics.

var (
	// ErrSpaceUnderspecified indicates NewSpace was called with neither a
	// basis (names or dimension) nor a metric matrix.
	ErrSpaceUnderspecified = errors.New("ga: need at least one of basis and metric matrix")

	// ErrMetricShape indicates the metric matrix is not square or its size
	// does not match the basis length.
	ErrMetricShape = errors.New("ga: metric matrix has the wrong shape")

	// ErrDuplicateBasisName indicates two basis vectors share the same label.
	ErrDuplicateBasisName = errors.New("ga: duplicate basis vector name")

	// ErrBadDimension indicates a requested dimension count < 1.
	ErrBadDimension = errors.New("ga: dimension count must be >= 1")

	// ErrDimensionLimit indicates a dimension count above MaxDimensions;
	// blades are 64-bit masks, so at most 64 basis vectors are supported.
	ErrDimensionLimit = errors.New("ga: dimension count exceeds 64")

	// ErrIndexOutOfRange indicates a basis index outside [0, Dims).
	ErrIndexOutOfRange = errors.New("ga: basis index out of range")

	// ErrRepeatedIndex indicates a repeated basis index in a blade tuple.
	ErrRepeatedIndex = errors.New("ga: repeated basis index in blade")

	// ErrDimensionMismatch indicates the supplied Space's dimension count
	// disagrees with the dimension inferred from the data.
	ErrDimensionMismatch = errors.New("ga: dimension count of space does not match data")

	// ErrBladeOutOfRange indicates a blade bitmask with bits set at or above
	// the Space's dimension count.
	ErrBladeOutOfRange = errors.New("ga: blade bitmask out of range for space")

	// ErrNilSpace indicates a nil *Space where one is required.
	ErrNilSpace = errors.New("ga: space is nil")

	// ErrNilRing indicates a nil coefficient Ring.
	ErrNilRing = errors.New("ga: coefficient ring is nil")

	// ErrNilMultiVector indicates a nil *MultiVector operand.
	ErrNilMultiVector = errors.New("ga: multivector is nil")

	// ErrSpaceMismatch indicates an operation across two multivectors bound
	// to non-identical Space instances. Spaces unify by pointer identity
	// only, never by structural equality.
	ErrSpaceMismatch = errors.New("ga: multivectors belong to different spaces")

	// ErrNotScalar indicates AsScalar (or ScalarProduct) saw a multivector
	// with a component outside blade 0.
	ErrNotScalar = errors.New("ga: multivector is not a scalar")

	// ErrNotVector indicates AsVector saw a component of grade != 1.
	ErrNotVector = errors.New("ga: multivector is not purely grade-1")

	// ErrUnknownProduct indicates a ProductKind outside the declared enum.
	ErrUnknownProduct = errors.New("ga: unknown product kind")

	// ErrNotNormed indicates the coefficient ring does not implement
	// NormedRing, which ZapNearZeros, CloseTo and Magnitude require.
	ErrNotNormed = errors.New("ga: coefficient ring has no magnitude")

	// ErrNonOrthogonalMetric marks the intentional capability gap: every
	// product except the outer product is undefined here for spaces with a
	// non-diagonal metric (non-orthogonal basis).
	ErrNonOrthogonalMetric = errors.New("ga: product not supported for non-orthogonal metric")
)
