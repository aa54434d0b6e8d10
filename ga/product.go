package ga

// ProductKind selects which geometric-algebra product the generic engine
// computes. The kinds differ only in the scalar weight two basis blades
// contribute through the metric; the combination rule (XOR of masks, sign
// from canonical reordering) is shared.
type ProductKind int

const (
	// Geometric is the full geometric (Clifford) product.
	Geometric ProductKind = iota

	// Outer is the outer (wedge) product: nonzero only for disjoint blades.
	Outer

	// Inner is the (fat-dot) inner product: nonzero only when one blade
	// contains the other.
	Inner

	// LeftContraction is the left contraction a ⌋ b.
	LeftContraction

	// RightContraction is the right contraction a ⌊ b.
	RightContraction

	// Scalar is the scalar product: the grade-0 part of the geometric
	// product, nonzero only for identical blades.
	Scalar

	numProductKinds // sentinel for validity checks, keep last
)

// productKindNames backs ProductKind.String; indexed by kind.
var productKindNames = [numProductKinds]string{
	Geometric:        "geometric",
	Outer:            "outer",
	Inner:            "inner",
	LeftContraction:  "left-contraction",
	RightContraction: "right-contraction",
	Scalar:           "scalar",
}

// String returns the product kind's name, or "unknown" outside the enum.
func (k ProductKind) String() string {
	if !k.valid() {
		return "unknown"
	}

	return productKindNames[k]
}

func (k ProductKind) valid() bool {
	return k >= 0 && k < numProductKinds
}

// weightFunc computes the scalar weight two basis blades contribute to a
// product term on an orthogonal (diagonal-metric) Space. Pure.
type weightFunc func(a, b Blade, s *Space) float64

// genericWeightFunc is the non-orthogonal-metric counterpart. Only the
// outer product implements it; all other kinds return
// ErrNonOrthogonalMetric — a declared capability gap.
type genericWeightFunc func(a, b Blade, s *Space) (float64, error)

// productWeight pairs the two metric regimes for one product kind.
type productWeight struct {
	orthogonal weightFunc
	generic    genericWeightFunc
}

// productWeights dispatches weight computation per kind; selected once per
// product call.
var productWeights = [numProductKinds]productWeight{
	Geometric:        {orthogonal: geometricWeight, generic: unsupportedWeight},
	Outer:            {orthogonal: outerWeight, generic: outerWeightGeneric},
	Inner:            {orthogonal: innerWeight, generic: unsupportedWeight},
	LeftContraction:  {orthogonal: leftContractionWeight, generic: unsupportedWeight},
	RightContraction: {orthogonal: rightContractionWeight, generic: unsupportedWeight},
	Scalar:           {orthogonal: scalarWeight, generic: unsupportedWeight},
}

// sharedMetricCoeff multiplies the metric diagonal entries for every basis
// index whose bit is set in shared.
// Complexity: O(Dims).
func sharedMetricCoeff(shared Blade, s *Space) float64 {
	coeff := 1.0
	for i := 0; shared != 0; i++ {
		bit := Blade(1) << i
		if shared&bit != 0 {
			coeff *= s.metric[i][i]
			shared ^= bit
		}
	}

	return coeff
}

// outerWeight: 1 for disjoint blades, 0 otherwise. The outer product never
// touches the metric, so the same rule serves both regimes.
func outerWeight(a, b Blade, _ *Space) float64 {
	if a&b != 0 {
		return 0
	}

	return 1
}

func outerWeightGeneric(a, b Blade, s *Space) (float64, error) {
	return outerWeight(a, b, s), nil
}

// geometricWeight: metric product over the shared bits; 1 when the blades
// are disjoint.
func geometricWeight(a, b Blade, s *Space) float64 {
	shared := a & b
	if shared == 0 {
		return 1
	}

	return sharedMetricCoeff(shared, s)
}

// innerWeight: metric product when one blade contains the other, else 0.
func innerWeight(a, b Blade, s *Space) float64 {
	shared := a & b
	if shared != a && shared != b {
		return 0
	}

	return sharedMetricCoeff(shared, s)
}

// leftContractionWeight: metric product when a contains b, else 0.
func leftContractionWeight(a, b Blade, s *Space) float64 {
	shared := a & b
	if shared != b {
		return 0
	}

	return sharedMetricCoeff(shared, s)
}

// rightContractionWeight: metric product when b contains a, else 0.
func rightContractionWeight(a, b Blade, s *Space) float64 {
	shared := a & b
	if shared != a {
		return 0
	}

	return sharedMetricCoeff(shared, s)
}

// scalarWeight: metric product over a for identical blades, else 0.
func scalarWeight(a, b Blade, s *Space) float64 {
	if a != b {
		return 0
	}

	return sharedMetricCoeff(a, s)
}

func unsupportedWeight(_, _ Blade, _ *Space) (float64, error) {
	return 0, ErrNonOrthogonalMetric
}
