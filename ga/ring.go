package ga

import (
	"math"
	"math/cmplx"
)

// Ring describes the coefficient arithmetic a MultiVector needs. The core
// stays coefficient-type-agnostic: numeric and symbolic hosts inject their
// own implementation, including the "is this value definitionally zero"
// predicate — symbolic coefficients may require structural inspection
// rather than numeric comparison, which is why IsZero is a capability and
// not a hard-coded compare.
//
// Implementations must be pure: no method may retain or mutate its
// arguments.
//
// Complexity notes: every method is expected O(1) for numeric rings;
// symbolic rings set their own costs.
type Ring[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// Add returns x + y.
	Add(x, y T) T

	// Neg returns -x.
	Neg(x T) T

	// Mul returns x * y.
	Mul(x, y T) T

	// Scale returns w * x for a numeric weight w (blade product weights are
	// products of metric entries and reordering signs, hence float64).
	Scale(w float64, x T) T

	// IsZero reports whether x is definitionally zero. Exactly-zero terms
	// are dropped from sparse storage; this predicate decides "exactly".
	IsZero(x T) bool
}

// NormedRing extends Ring with a coefficient magnitude. Only ZapNearZeros,
// CloseTo and Magnitude require it; everything else works on a bare Ring.
type NormedRing[T any] interface {
	Ring[T]

	// Abs returns the magnitude |x| >= 0.
	Abs(x T) float64
}

// Real is the float64 coefficient ring.
//
// It implements NormedRing[float64], so the full MultiVector surface —
// including ZapNearZeros and Magnitude — is available.
type Real struct{}

// Zero returns 0.
func (Real) Zero() float64 { return 0 }

// One returns 1.
func (Real) One() float64 { return 1 }

// Add returns x + y.
func (Real) Add(x, y float64) float64 { return x + y }

// Neg returns -x.
func (Real) Neg(x float64) float64 { return -x }

// Mul returns x * y.
func (Real) Mul(x, y float64) float64 { return x * y }

// Scale returns w * x.
func (Real) Scale(w, x float64) float64 { return w * x }

// IsZero reports x == 0.
func (Real) IsZero(x float64) bool { return x == 0 }

// Abs returns |x|.
func (Real) Abs(x float64) float64 { return math.Abs(x) }

// Complex is the complex128 coefficient ring. Like Real it implements
// NormedRing; Abs is the complex modulus.
type Complex struct{}

// Zero returns 0.
func (Complex) Zero() complex128 { return 0 }

// One returns 1.
func (Complex) One() complex128 { return 1 }

// Add returns x + y.
func (Complex) Add(x, y complex128) complex128 { return x + y }

// Neg returns -x.
func (Complex) Neg(x complex128) complex128 { return -x }

// Mul returns x * y.
func (Complex) Mul(x, y complex128) complex128 { return x * y }

// Scale returns w * x.
func (Complex) Scale(w float64, x complex128) complex128 {
	return complex(w, 0) * x
}

// IsZero reports x == 0.
func (Complex) IsZero(x complex128) bool { return x == 0 }

// Abs returns the modulus |x|.
func (Complex) Abs(x complex128) float64 { return cmplx.Abs(x) }
