package ga

import "math/bits"

// MaxDimensions is the largest supported basis size. Blades are encoded as
// 64-bit masks, one bit per basis vector, so spaces are capped at 64
// dimensions. The canonical-ordering and product algorithms do not depend on
// the width; only this constant and the Blade type would change to lift it.
const MaxDimensions = 64

// Blade identifies a basis blade of the algebra as a bitmask over basis
// vector indices: bit i set ⇔ basis vector i participates. The encoding is
// canonical — a blade's identity is independent of the order its basis
// vectors were supplied in (the ordering only contributes a ±1 sign, see
// Space.BitsAndSign).
//
// Blade 0 is the scalar blade; a single set bit is a grade-1 blade (a basis
// vector); all bits set is the pseudoscalar of the owning Space.
type Blade uint64

// Grade returns the number of basis vectors composing the blade
// (0 = scalar, 1 = vector, 2 = bivector, …).
// Complexity: O(1).
func (b Blade) Grade() int {
	return bits.OnesCount64(uint64(b))
}
