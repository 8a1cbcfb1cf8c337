// SPDX-License-Identifier: MIT

// Package ladder: the statistics abstraction (CAR/CCR combining algebras).
package ladder

// Resolution is one replacement for an adjacent out-of-order pair.
// Units is the unit sequence spliced in place of the pair; a nil Units
// is the Kronecker-delta contraction (the pair vanishes entirely).
// A resolution never yields more than two units, keeping the hot path
// free of dynamic growth.
type Resolution struct {
	// Coeff multiplies the enclosing product's coefficient.
	Coeff complex128

	// Units replaces the resolved pair; nil removes it.
	Units []IxOp
}

// Algebra abstracts the operator statistics over which normal ordering
// is performed.
//
// Resolve rewrites one adjacent pair a·b — a always a Lower unit, b
// always a Raise unit — into an equivalent sum of one or two
// resolutions. For distinct indices the result MUST be a single
// resolution (a pure swap with a statistics phase): the index-ordering
// machinery assumes single-swap resolution and the package panics if an
// algebra violates it. This is a known limitation of the generic
// commuting-terms resolution, kept as an assertion rather than silently
// generalized; it holds for the fermionic and bosonic algebras shipped
// here.
//
// TransposePhase reports the phase picked up when a unit moves past
// `moves` like-type neighbors during index ordering.
type Algebra interface {
	Resolve(a, b IxOp) []Resolution
	TransposePhase(moves int) complex128
}

// Fermion implements the canonical anti-commutation relations (CAR):
// {a_k, a†_j} = δ_kj.
type Fermion struct{}

// Resolve rewrites a_k·a†_j. Distinct indices anti-commute with a sign
// flip; matching indices split into the contraction (the prefix alone)
// and the sign-flipped swap — the algebra's reading of {a_k, a†_j} = δ.
func (Fermion) Resolve(a, b IxOp) []Resolution {
	swapped := []IxOp{b, a}
	if a.Index != b.Index {
		return []Resolution{{Coeff: -1, Units: swapped}}
	}

	return []Resolution{
		{Coeff: 1},
		{Coeff: -1, Units: swapped},
	}
}

// TransposePhase is (−1)^moves: each adjacent transposition of fermionic
// operators flips the sign.
func (Fermion) TransposePhase(moves int) complex128 {
	if moves%2 == 1 {
		return -1
	}

	return 1
}

// Boson implements the canonical commutation relations (CCR):
// [a_k, a†_j] = δ_kj.
type Boson struct{}

// Resolve rewrites a_k·a†_j. Distinct indices commute freely; matching
// indices add the "+1" delta term alongside the unsigned swap.
func (Boson) Resolve(a, b IxOp) []Resolution {
	swapped := []IxOp{b, a}
	if a.Index != b.Index {
		return []Resolution{{Coeff: 1, Units: swapped}}
	}

	return []Resolution{
		{Coeff: 1},
		{Coeff: 1, Units: swapped},
	}
}

// TransposePhase is always +1: bosonic operators reorder without phase.
func (Boson) TransposePhase(int) complex128 { return 1 }
