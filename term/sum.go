// SPDX-License-Identifier: MIT

// Package term: the sum term S — a canonical, signature-keyed sum of
// product terms with like-term combination and zero cancellation.
package term

import "sort"

// S is a canonical sum of product terms.
//
// Invariants (established by NewS and preserved by every operation):
//   - Coeff is 1: overall scalars are distributed into the terms during
//     reduction, so the map alone identifies the sum.
//   - Terms is keyed by P.Key(); no two entries share operator content.
//   - No entry has a zero coefficient.
//
// The empty sum (no terms) is the canonical Zero.
type S[U Unit] struct {
	// Coeff is the overall multiplier. Always 1 after reduction.
	Coeff complex128

	// Terms maps each product signature to its combined product term.
	Terms map[string]P[U]
}

// NewS builds a reduced sum: scale is distributed into every term, like
// terms (equal Key) combine by coefficient addition, and terms whose
// combined coefficient reaches zero are dropped.
// Complexity: O(Σ len(terms[i])).
func NewS[U Unit](scale complex128, terms ...P[U]) S[U] {
	scale = Reduce(scale)
	out := S[U]{Coeff: 1, Terms: make(map[string]P[U], len(terms))}
	if scale == 0 {
		return out
	}
	for _, t := range terms {
		out.accumulate(t.Scale(scale))
	}

	return out
}

// SumOf wraps a slice of products into a canonical sum with scale 1.
func SumOf[U Unit](terms ...P[U]) S[U] { return NewS(1, terms...) }

// accumulate folds one product into the map, combining by signature and
// deleting entries that cancel. Internal: callers own the map.
func (s S[U]) accumulate(t P[U]) {
	if t.IsZero() {
		return
	}
	key := t.Key()
	existing, ok := s.Terms[key]
	if !ok {
		s.Terms[key] = t

		return
	}
	combined := Reduce(existing.Coeff + t.Coeff)
	if combined == 0 {
		delete(s.Terms, key)

		return
	}
	s.Terms[key] = P[U]{Coeff: combined, Units: existing.Units}
}

// IsZero reports whether the sum has no surviving terms.
func (s S[U]) IsZero() bool { return len(s.Terms) == 0 }

// Len returns the number of distinct product terms.
func (s S[U]) Len() int { return len(s.Terms) }

// Add returns the canonical sum of s and o.
// Complexity: O(s.Len()+o.Len()).
func (s S[U]) Add(o S[U]) S[U] {
	out := S[U]{Coeff: 1, Terms: make(map[string]P[U], len(s.Terms)+len(o.Terms))}
	for _, t := range s.Terms {
		out.accumulate(t)
	}
	for _, t := range o.Terms {
		out.accumulate(t)
	}

	return out
}

// Mul distributes the product over every pair of terms and
// re-canonicalizes. Term order within each product is preserved
// (left operand's units first); only the grouping of the sum is free.
// Complexity: O(s.Len()·o.Len()·arity).
func (s S[U]) Mul(o S[U]) S[U] {
	out := S[U]{Coeff: 1, Terms: make(map[string]P[U])}
	for _, a := range s.Terms {
		for _, b := range o.Terms {
			out.accumulate(a.Mul(b))
		}
	}

	return out
}

// Scale returns the sum with every term coefficient multiplied by z.
func (s S[U]) Scale(z complex128) S[U] {
	z = Reduce(z)
	out := S[U]{Coeff: 1, Terms: make(map[string]P[U], len(s.Terms))}
	if z == 0 {
		return out
	}
	for _, t := range s.Terms {
		out.accumulate(t.Scale(z))
	}

	return out
}

// ProductTerms returns the product terms sorted by signature for
// deterministic iteration.
func (s S[U]) ProductTerms() []P[U] {
	keys := make([]string, 0, len(s.Terms))
	for k := range s.Terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]P[U], len(keys))
	for i, k := range keys {
		out[i] = s.Terms[k]
	}

	return out
}

// Term looks up the product term with the given signature.
func (s S[U]) Term(key string) (P[U], bool) {
	t, ok := s.Terms[key]

	return t, ok
}
