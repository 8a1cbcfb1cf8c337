// SPDX-License-Identifier: MIT

// Package term: the Unit constraint, the numeric Reduce policy, and the
// single-unit coefficient term C. Product and sum terms live in
// product.go and sum.go per the package conventions.
package term

import "math"

// Unit is the constraint every operator unit must satisfy to participate
// in the algebra. Key returns a stable structural signature of the unit;
// two units are algebraically identical exactly when their Keys are equal.
// Keys never encode coefficients.
type Unit interface {
	Key() string
}

// Reduce clamps non-finite complex values to zero.
//
// NaN or ±Inf in either component degrades the whole coefficient to
// Complex zero rather than propagating through the algebra. The clamp is
// deliberate policy (totality over strict surfacing) and is applied by
// every constructor in this package; call it directly when ingesting
// coefficients from outside the algebra.
func Reduce(z complex128) complex128 {
	re, im := real(z), imag(z)
	if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
		return 0
	}

	return z
}

// C is a single operator unit scaled by a complex coefficient.
//
// C values are immutable; construct them with NewC so the coefficient
// passes through Reduce.
type C[U Unit] struct {
	// Coeff is the scalar weight. Always finite after construction.
	Coeff complex128

	// Unit is the operator unit being weighted.
	Unit U
}

// NewC builds a reduced coefficient term: coeff is clamped via Reduce.
// Complexity: O(1).
func NewC[U Unit](coeff complex128, unit U) C[U] {
	return C[U]{Coeff: Reduce(coeff), Unit: unit}
}

// IsZero reports whether the term's coefficient is exactly zero.
func (c C[U]) IsZero() bool { return c.Coeff == 0 }

// Key returns the structural signature of the underlying unit.
// Coefficients are excluded by construction.
func (c C[U]) Key() string { return c.Unit.Key() }

// Scale returns a copy of c with its coefficient multiplied by z.
func (c C[U]) Scale(z complex128) C[U] {
	return C[U]{Coeff: Reduce(c.Coeff * z), Unit: c.Unit}
}
