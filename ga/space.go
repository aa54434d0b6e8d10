package ga

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Space models an n-dimensional vector space with named basis vectors and a
// symmetric metric matrix, and provides the canonical blade encoding for
// multivectors built against it.
//
// A Space is constructed once and shared by reference across many
// MultiVector values. Identity is pointer identity: two structurally equal
// Space instances are never implicitly unified, and operations across
// distinct instances fail with ErrSpaceMismatch.
//
// All fields are fixed at construction; the only internal mutation is the
// blade-encoding memo, which is a pure function of its key and safe for
// concurrent readers (a racing recomputation stores an equal value).
type Space struct {
	basisNames []string
	metric     [][]float64

	orthogonal bool
	euclidean  bool

	// blades memoizes BitsAndSign per distinct index tuple for the Space's
	// lifetime. The key space is small (tuples of up to Dims indices), so
	// the cache is unbounded by design.
	blades sync.Map // string(index bytes) -> bladeCode
}

// bladeCode is a cached BitsAndSign result.
type bladeCode struct {
	bits Blade
	sign int
}

// NewSpace builds a Space from functional options.
//
// Accepted configurations:
//   - WithBasisNames and/or WithDimension: names win; a bare dimension n
//     yields default names e0..e{n-1}.
//   - WithMetric: when given without a basis, its size defines the
//     dimension count; when omitted, the Euclidean (identity) metric is
//     assumed.
//
// Errors:
//   - ErrSpaceUnderspecified — no option supplied.
//   - ErrDimensionMismatch   — WithDimension disagrees with the name count.
//   - ErrBadDimension / ErrDimensionLimit — dimension < 1 or > 64.
//   - ErrDuplicateBasisName  — repeated basis label.
//   - ErrMetricShape         — metric not square or size != basis length.
func NewSpace(opts ...SpaceOption) (*Space, error) {
	var cfg spaceConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.dimSet && cfg.names == nil && cfg.metric == nil {
		return nil, ErrSpaceUnderspecified
	}
	if cfg.dimSet && cfg.dim < 1 {
		return nil, ErrBadDimension
	}

	names := cfg.names
	if names != nil && cfg.dimSet && cfg.dim != len(names) {
		return nil, ErrDimensionMismatch
	}
	if names == nil {
		n := cfg.dim
		if !cfg.dimSet {
			n = len(cfg.metric)
		}
		if n < 1 {
			return nil, ErrBadDimension
		}
		names = make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("e%d", i)
		}
	}

	n := len(names)
	if n < 1 {
		return nil, ErrBadDimension
	}
	if n > MaxDimensions {
		return nil, ErrDimensionLimit
	}
	seen := make(map[string]struct{}, n)
	for _, name := range names {
		if _, dup := seen[name]; dup {
			return nil, ErrDuplicateBasisName
		}
		seen[name] = struct{}{}
	}

	metric := make([][]float64, n)
	if cfg.metric == nil {
		for i := range metric {
			metric[i] = make([]float64, n)
			metric[i][i] = 1
		}
	} else {
		if len(cfg.metric) != n {
			return nil, ErrMetricShape
		}
		for i, row := range cfg.metric {
			if len(row) != n {
				return nil, ErrMetricShape
			}
			metric[i] = make([]float64, n)
			copy(metric[i], row)
		}
	}

	s := &Space{basisNames: names, metric: metric}
	s.orthogonal, s.euclidean = classifyMetric(metric)

	return s, nil
}

// classifyMetric derives the cached orthogonality facts:
// orthogonal ⇔ all off-diagonal entries are zero,
// euclidean  ⇔ the matrix is the identity.
func classifyMetric(m [][]float64) (orthogonal, euclidean bool) {
	orthogonal, euclidean = true, true
	for i, row := range m {
		for j, v := range row {
			switch {
			case i == j:
				if v != 1 {
					euclidean = false
				}
			case v != 0:
				orthogonal = false
				euclidean = false
			}
		}
	}

	return orthogonal, euclidean
}

// Dims returns the dimension count (the basis length).
func (s *Space) Dims() int { return len(s.basisNames) }

// BasisNames returns a copy of the ordered basis vector labels.
func (s *Space) BasisNames() []string {
	names := make([]string, len(s.basisNames))
	copy(names, s.basisNames)

	return names
}

// IsOrthogonal reports whether the metric matrix is diagonal.
// Computed once at construction.
func (s *Space) IsOrthogonal() bool { return s.orthogonal }

// IsEuclidean reports whether the metric matrix is the identity.
// Computed once at construction.
func (s *Space) IsEuclidean() bool { return s.euclidean }

// Metric returns the metric matrix entry (i, j): the inner product of basis
// vectors i and j. Returns ErrIndexOutOfRange for invalid indices.
func (s *Space) Metric(i, j int) (float64, error) {
	n := s.Dims()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrIndexOutOfRange
	}

	return s.metric[i][j], nil
}

// BitsAndSign encodes an ordered tuple of distinct basis indices as a
// canonical blade: the returned Blade ORs in 1<<index for each index, and
// the returned sign is the parity (±1) of the permutation that sorts the
// tuple into ascending canonical order.
//
// The result is memoized per distinct tuple for the Space's lifetime; the
// function is pure, so concurrent lookups are safe.
//
// Errors:
//   - ErrIndexOutOfRange — an index outside [0, Dims).
//   - ErrRepeatedIndex   — the same index appears twice.
//
// Complexity: O(k log k) on a cache miss (k = len(indices)), O(k) after.
func (s *Space) BitsAndSign(indices ...int) (Blade, int, error) {
	var bits Blade
	for _, idx := range indices {
		if idx < 0 || idx >= s.Dims() {
			return 0, 0, ErrIndexOutOfRange
		}
		bit := Blade(1) << idx
		if bits&bit != 0 {
			return 0, 0, ErrRepeatedIndex
		}
		bits |= bit
	}

	key := bladeKey(indices)
	if v, ok := s.blades.Load(key); ok {
		code := v.(bladeCode)

		return code.bits, code.sign, nil
	}

	// The permutation mapping sorted positions back to input positions has
	// the same parity as the sort itself.
	order := make([]int, len(indices))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return indices[order[a]] < indices[order[b]] })
	sign := PermutationSign(order)

	s.blades.Store(key, bladeCode{bits: bits, sign: sign})

	return bits, sign, nil
}

// bladeKey packs an index tuple into a map key. Indices are < 64, so one
// byte each suffices.
func bladeKey(indices []int) string {
	buf := make([]byte, len(indices))
	for i, idx := range indices {
		buf[i] = byte(idx)
	}

	return string(buf)
}

// BladeString renders a blade as its basis vector names joined by the wedge
// separator, e.g. "e0^e2". The scalar blade renders as the empty string.
// Bits at or above Dims are ignored.
func (s *Space) BladeString(b Blade) string {
	var parts []string
	for i, name := range s.basisNames {
		if b&(Blade(1)<<i) != 0 {
			parts = append(parts, name)
		}
	}

	return strings.Join(parts, "^")
}

// euclideanSpaces caches the canonical default Euclidean Space per dimension
// count for the process lifetime, so repeated requests for "the
// n-dimensional Euclidean space" share one instance (and hence unify under
// pointer identity).
var euclideanSpaces sync.Map // int -> *Space

// EuclideanSpace returns the canonical n-dimensional Euclidean Space.
//
// The instance is shared process-wide: every call with the same n returns
// the same pointer. Errors as NewSpace(WithDimension(n)).
func EuclideanSpace(n int) (*Space, error) {
	if v, ok := euclideanSpaces.Load(n); ok {
		return v.(*Space), nil
	}

	s, err := NewSpace(WithDimension(n))
	if err != nil {
		return nil, err
	}

	// A racing construction is harmless; keep whichever landed first.
	actual, _ := euclideanSpaces.LoadOrStore(n, s)

	return actual.(*Space), nil
}
