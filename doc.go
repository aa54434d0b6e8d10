// Package clifford is your in-memory playground for Clifford (geometric)
// algebra — sparse multivectors over arbitrary-metric vector spaces, from
// basis blades to contractions and rotors.
//
// 🚀 What is clifford/ga?
//
//	A small, deterministic, zero-dependency library that brings together:
//		• Spaces: named basis vectors + symmetric metric matrices
//		• Blades: canonical bitmask encoding with permutation-parity signs
//		• Products: geometric, outer, inner, left/right contraction, scalar
//		• Grade ops: reverse, involution, projection, norms
//		• Generic coefficients: float64, complex128, or your own ring
//
// ✨ Why choose clifford?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, in-code docs, sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject your own coefficient ring (symbolic, exact, …)
//
// Under the hood, everything lives in one subpackage:
//
//	ga/ — Space, Blade, MultiVector, product engine & grade operations
//
// Quick ASCII example:
//
//	    e0^e1
//	   ↗
//	  e0──e1      the unit bivector e0^e1 squares to −1 in Euclidean space
//
// Dive into ga/doc.go for full examples and the package tour.
//
//	go get github.com/katalvlaran/clifford/ga
package clifford
