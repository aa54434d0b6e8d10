package ga

import "math/bits"

// PermutationSign — parity of a permutation.
//
// Description:
//
//	Returns +1 if p is an even permutation of 0..len(p)-1 and -1 if odd,
//	i.e. the sign of the number of transpositions needed to sort p into
//	identity order.
//
// Algorithm Outline (selection sort, cycle-following):
//  1. Walk positions i = 0..n-1.
//  2. From i, scan forward until the element that belongs at i is found.
//  3. Unless it is already in place, swap it into place and flip the sign.
//
// The input is copied; p itself is never mutated.
//
// Precondition: p must be a permutation of 0..len(p)-1; the inner scan does
// not terminate otherwise. Space.BitsAndSign satisfies this by building p
// from sort positions.
//
// Complexity: O(n²) time worst case, O(n) memory.
func PermutationSign(p []int) int {
	q := make([]int, len(p))
	copy(q, p)

	sign := 1
	for i := range q {
		// j is the current position of item i.
		j := i
		for q[j] != i {
			j++
		}

		// Unless the item is already in the correct place, restore it.
		if j != i {
			q[i], q[j] = q[j], q[i]
			sign = -sign
		}
	}

	return sign
}

// CanonicalReorderingSign — sign of interleaving two blades.
//
// Description:
//
//	Returns the ±1 factor accumulated when the basis vectors of blade a are
//	moved past those of blade b to reach ascending canonical order for the
//	combined blade a^b (XOR of the masks). Every basis vector of a that must
//	hop over a lower-indexed basis vector of b contributes one transposition.
//
// Algorithm Outline (Dorst–Fontijne–Mann, fig. 19.1):
//  1. Shift a right by one bit.
//  2. While a is nonzero: add popcount(a & b) to a running swap total,
//     then shift a right again.
//  3. The sign is -1 iff the total is odd.
//
// Complexity: O(grade) time, O(1) memory.
func CanonicalReorderingSign(a, b Blade) int {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount64(uint64(a & b))
		a >>= 1
	}

	if swaps&1 == 1 {
		return -1
	}

	return 1
}
