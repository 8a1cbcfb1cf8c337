// Package term implements the coefficient algebra underlying all symbolic
// operator manipulation in this library: scalar-weighted units (C), ordered
// products of units (P), and canonical sums of products (S).
//
// The three layers nest bottom-up:
//
//	C[U] — one operator unit scaled by a complex coefficient.
//	P[U] — an ordered sequence of units with a single extracted coefficient.
//	      The product of two P values concatenates their unit sequences;
//	      it is NOT commutative, because most unit types represent
//	      non-commuting operators.
//	S[U] — a canonical sum of products, keyed by the structural signature
//	      of each product's unit sequence so that algebraically identical
//	      products are combined by adding coefficients. A term whose
//	      combined coefficient reaches zero is dropped.
//
// Any type can participate as a unit by implementing the Unit interface:
// a stable structural Key used for canonicalization. Coefficients never
// enter a Key.
//
// Numeric policy:
//
//	All constructors pass coefficients through Reduce, which clamps
//	non-finite values (NaN, ±Inf) to zero. This keeps every pipeline built
//	on the algebra a total function: degenerate arithmetic degrades to the
//	canonical Zero value instead of propagating poison. Reduce is exported
//	so the policy stays auditable at call sites.
//
// Zero propagation is total: a zero coefficient anywhere collapses the
// enclosing product, and zero products vanish from sums.
//
// All values are immutable; every operation returns a new value. No
// operation in this package returns an error or panics.
package term
