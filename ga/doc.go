// Package ga implements Clifford (geometric) algebra multivectors over
// arbitrary-metric vector spaces: a sparse, immutable representation of
// linear combinations of basis blades, with the full family of products
// and grade-manipulation operations.
//
// 🚀 What is ga?
//
//	Blades are encoded as bitmasks over basis-vector indices (one bit per
//	basis vector), which makes blade identity canonical and turns products
//	into bit arithmetic plus a permutation-parity sign.  On top of that
//	encoding the package provides:
//	  • Space — named basis + symmetric metric, blade encoding & caches
//	  • MultiVector — immutable sparse blade→coefficient maps
//	  • Products — geometric, outer, inner, left/right contraction, scalar
//	  • Grade ops — Rev, Invol, Project, PureGrade, norms, pseudoscalar
//
// ✨ Key features:
//   - one generic product engine, parameterized by ProductKind
//   - coefficient-type-agnostic: inject any Ring (Real, Complex, symbolic…)
//   - canonical-reordering signs per Dorst–Fontijne–Mann, fig. 19.1
//   - process-wide Euclidean-space cache, per-space blade memo
//   - sentinel errors throughout; errors.Is-friendly
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/clifford/ga"
//
//	s, _ := ga.EuclideanSpace(3)
//	e0, _ := ga.BasisBlade(s, ga.Real{}, 0)
//	e1, _ := ga.BasisBlade(s, ga.Real{}, 1)
//
//	b, _ := e0.OuterProduct(e1)   // the unit bivector e0^e1
//	sq, _ := b.GeometricProduct(b)
//	fmt.Println(sq)               // -1
//
// Non-orthogonal metrics:
//
//	Spaces with a non-diagonal metric support the outer product only; every
//	other product returns ErrNonOrthogonalMetric. This is a declared
//	capability gap, not a bug.
//
// Performance:
//
//   - Products enumerate O(terms × terms) blade pairs.
//   - Blade encoding and the Euclidean-space factory are memoized for the
//     process lifetime and safe for concurrent readers.
//
// See example_test.go for runnable walkthroughs, including a rotor
// rotation demo.
package ga
