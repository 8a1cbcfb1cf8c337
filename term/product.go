// SPDX-License-Identifier: MIT

// Package term: the product term P — an ordered, non-commutative sequence
// of operator units under a single extracted coefficient.
package term

import "strings"

// keySeparator joins unit keys into a product signature. Unit keys never
// contain it (they are short structural tags), so signatures stay unambiguous.
const keySeparator = "|"

// P is an ordered product of operator units with one overall coefficient.
//
// Invariant (established by NewP): every element of Units carries
// coefficient 1 — unit-level coefficients are folded into Coeff during
// construction. A product with Coeff == 0 is the canonical Zero and its
// Units slice is nil.
type P[U Unit] struct {
	// Coeff is the overall scalar weight of the product.
	Coeff complex128

	// Units is the ordered unit sequence. Order is algebraically
	// significant and never changed by this package.
	Units []C[U]
}

// NewP builds a reduced product term: every unit coefficient is folded
// into the overall coefficient, and a zero anywhere collapses the whole
// product to Zero. The input slice is copied, never retained.
// Complexity: O(len(units)).
func NewP[U Unit](coeff complex128, units ...C[U]) P[U] {
	total := Reduce(coeff)
	if total == 0 {
		return P[U]{}
	}

	extracted := make([]C[U], len(units))
	for i, u := range units {
		total = Reduce(total * u.Coeff)
		if total == 0 {
			return P[U]{}
		}
		extracted[i] = C[U]{Coeff: 1, Unit: u.Unit}
	}

	return P[U]{Coeff: total, Units: extracted}
}

// ProductOf builds a product directly from bare units with coefficient 1 each.
func ProductOf[U Unit](coeff complex128, units ...U) P[U] {
	cs := make([]C[U], len(units))
	for i, u := range units {
		cs[i] = C[U]{Coeff: 1, Unit: u}
	}

	return NewP(coeff, cs...)
}

// IsZero reports whether p is the canonical Zero product.
func (p P[U]) IsZero() bool { return p.Coeff == 0 }

// Len returns the number of units in the product.
func (p P[U]) Len() int { return len(p.Units) }

// Key returns the structural signature of the unit sequence, excluding
// the coefficient. Two products with equal Keys are combinable by
// coefficient addition.
func (p P[U]) Key() string {
	if len(p.Units) == 0 {
		return ""
	}

	var b strings.Builder
	for i, u := range p.Units {
		if i > 0 {
			b.WriteString(keySeparator)
		}
		b.WriteString(u.Unit.Key())
	}

	return b.String()
}

// Mul tensors two products: unit sequences concatenate in order and
// coefficients multiply. Not commutative.
// Complexity: O(p.Len()+q.Len()).
func (p P[U]) Mul(q P[U]) P[U] {
	coeff := Reduce(p.Coeff * q.Coeff)
	if coeff == 0 {
		return P[U]{}
	}

	units := make([]C[U], 0, len(p.Units)+len(q.Units))
	units = append(units, p.Units...)
	units = append(units, q.Units...)

	return P[U]{Coeff: coeff, Units: units}
}

// Scale returns a copy of p with its coefficient multiplied by z.
func (p P[U]) Scale(z complex128) P[U] {
	coeff := Reduce(p.Coeff * z)
	if coeff == 0 {
		return P[U]{}
	}

	return P[U]{Coeff: coeff, Units: p.Units}
}

// BareUnits returns the unit values in order, without coefficients.
// The returned slice is fresh and safe to mutate.
func (p P[U]) BareUnits() []U {
	out := make([]U, len(p.Units))
	for i, u := range p.Units {
		out[i] = u.Unit
	}

	return out
}
