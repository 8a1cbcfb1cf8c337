// SPDX-License-Identifier: MIT

// Package majorana: the shared encoder over any Scheme.
//
// Description:
//
//	CMajorana and DMajorana assemble the two Hermitian Majorana strings
//	of mode j from the scheme's index sets; Encode combines them into
//	the requested ladder operator using a† = ½(c − i·d), a = ½(c + i·d).
//	Every concrete encoding shares this code path — only the index sets
//	differ.
//
// Complexity: O(n) per operator (register assembly); the emitted
// sequence always has exactly two terms.
package majorana

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/quantafold/fermion/ladder"
	"github.com/quantafold/fermion/pauli"
)

// EncoderFn is the functional interface consumed by Hamiltonian
// assembly: one ladder operator on mode j of an n-mode register mapped
// to its Pauli sequence.
type EncoderFn func(op ladder.Op, j, n uint) pauli.Sequence

// CMajorana builds the first Majorana operator of mode j under s:
// X on {j} ∪ Update(j,n), Z on Parity(j).
func CMajorana(s Scheme, j, n int) pauli.Register {
	r := pauli.NewRegister(n).With(j, pauli.X)
	r = withAll(r, s.Update(j, n), pauli.X)
	r = withAll(r, s.Parity(j), pauli.Z)

	return r
}

// DMajorana builds the second Majorana operator of mode j under s:
// Y on j, X on Update(j,n), Z on (Parity(j) ⊕ Occupation(j)) \ {j}.
func DMajorana(s Scheme, j, n int) pauli.Register {
	r := pauli.NewRegister(n).With(j, pauli.Y)
	r = withAll(r, s.Update(j, n), pauli.X)

	zs := s.Parity(j).SymmetricDifference(s.Occupation(j))
	zs.Remove(j)
	r = withAll(r, zs, pauli.Z)

	return r
}

// Encode maps one ladder operator to its two-term Pauli sequence under
// scheme s. Identity operators and out-of-register indices (j ≥ n) are
// domain-total conditions yielding the empty sequence.
func Encode(s Scheme, op ladder.Op, j, n uint) pauli.Sequence {
	if op == ladder.Identity || j >= n {
		return pauli.NewSequence()
	}

	c := CMajorana(s, int(j), int(n)).Scale(0.5)

	// a† = ½(c − i·d), a = ½(c + i·d).
	dPhase := complex128(0.5i)
	if op == ladder.Raise {
		dPhase = -0.5i
	}
	d := DMajorana(s, int(j), int(n)).Scale(dPhase)

	return pauli.NewSequence(c, d)
}

// SchemeEncoder curries a scheme into the EncoderFn shape.
func SchemeEncoder(s Scheme) EncoderFn {
	return func(op ladder.Op, j, n uint) pauli.Sequence {
		return Encode(s, op, j, n)
	}
}

// Prebuilt encoders for the three concrete schemes.
var (
	// JordanWignerTerms encodes under the Jordan-Wigner scheme.
	JordanWignerTerms = SchemeEncoder(JordanWigner())

	// BravyiKitaevTerms encodes under the Bravyi-Kitaev scheme.
	BravyiKitaevTerms = SchemeEncoder(BravyiKitaev())

	// ParityTerms encodes under the parity scheme.
	ParityTerms = SchemeEncoder(Parity())
)

// withAll places p on every qubit in the set.
func withAll(r pauli.Register, qubits mapset.Set[int], p pauli.Pauli) pauli.Register {
	// Sorted placement keeps register construction deterministic.
	for _, q := range sortedSlice(qubits) {
		r = r.With(q, p)
	}

	return r
}

// sortedSlice renders a set as an ascending slice.
func sortedSlice(s mapset.Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)

	return out
}
