// Package ga: functional configuration for Space construction.
// This file defines:
//   - SpaceOption (functional options with internal state),
//   - WithDimension / WithBasisNames / WithMetric constructors.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: all validation happens in NewSpace and surfaces
//     as sentinel errors (errors.go); options only record intent.
package ga

// spaceConfig accumulates NewSpace options before validation. dimSet
// distinguishes an explicitly supplied dimension from an absent option, so
// WithDimension(0) surfaces as ErrBadDimension rather than
// ErrSpaceUnderspecified.
type spaceConfig struct {
	dim    int
	dimSet bool
	names  []string
	metric [][]float64
}

// SpaceOption configures NewSpace. At least one of WithDimension,
// WithBasisNames or WithMetric must be supplied; NewSpace returns
// ErrSpaceUnderspecified otherwise.
type SpaceOption func(*spaceConfig)

// WithDimension requests n basis vectors with the default names e0..e{n-1}.
// Ignored when WithBasisNames is also given (explicit names win), except
// that a disagreement between n and the name count is ErrDimensionMismatch.
func WithDimension(n int) SpaceOption {
	return func(c *spaceConfig) {
		c.dim = n
		c.dimSet = true
	}
}

// WithBasisNames names the basis vectors explicitly. The basis length
// defines the space's dimension count; names must be pairwise distinct.
func WithBasisNames(names ...string) SpaceOption {
	return func(c *spaceConfig) {
		c.names = make([]string, len(names))
		copy(c.names, names)
	}
}

// WithMetric supplies the symmetric metric (inner-product) matrix: entry
// (i,j) is the inner product of basis vectors i and j. When omitted, the
// Euclidean (identity) metric is assumed. The matrix must be square with
// size equal to the basis length (ErrMetricShape otherwise); when no basis
// is given its size defines the dimension count.
//
// The matrix is deep-copied by NewSpace; later mutation of m does not
// affect the Space.
func WithMetric(m [][]float64) SpaceOption {
	return func(c *spaceConfig) { c.metric = m }
}
