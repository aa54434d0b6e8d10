package ga

import (
	"fmt"
	"sort"
	"strings"
)

// Term pairs a blade with its coefficient in a listing.
type Term[T any] struct {
	Blade Blade
	Coeff T
}

// Terms returns the multivector's nonzero terms ordered by (grade, blade
// bitmask) — the deterministic order display collaborators and tests rely
// on.
func (v *MultiVector[T]) Terms() []Term[T] {
	terms := make([]Term[T], 0, len(v.data))
	for b, c := range v.data {
		terms = append(terms, Term[T]{Blade: b, Coeff: c})
	}
	sort.Slice(terms, func(i, j int) bool {
		gi, gj := terms[i].Blade.Grade(), terms[j].Blade.Grade()
		if gi != gj {
			return gi < gj
		}

		return terms[i].Blade < terms[j].Blade
	})

	return terms
}

// String renders the multivector as a sum of coefficient*blade terms in
// Terms order, e.g. "2*e0 + 1*e0^e1". Scalar terms render as the bare
// coefficient; the zero multivector renders as "0".
func (v *MultiVector[T]) String() string {
	if len(v.data) == 0 {
		return "0"
	}

	parts := make([]string, 0, len(v.data))
	for _, term := range v.Terms() {
		coeff := fmt.Sprintf("%v", term.Coeff)
		if blade := v.space.BladeString(term.Blade); blade != "" {
			parts = append(parts, coeff+"*"+blade)
		} else {
			parts = append(parts, coeff)
		}
	}

	return strings.Join(parts, " + ")
}
