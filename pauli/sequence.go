// SPDX-License-Identifier: MIT

// Package pauli: the Sequence type — a canonical sum of Pauli registers.
package pauli

import (
	"math/cmplx"
	"sort"
)

// dustTol is the phase magnitude below which an accumulated term counts
// as zero. Intended cancellations of rounded partial sums (three or
// more summands per signature) leave residue near 2⁻⁶⁰; real tensor
// coefficients sit many orders above this.
const dustTol = 1e-12

// Sequence is a signature-keyed canonical sum of Pauli registers: a
// Hamiltonian fragment. Invariants: one entry per signature, no entry
// with a phase at or below dustTol. The empty sequence is the additive
// zero.
type Sequence struct {
	terms map[string]Register
}

// NewSequence canonicalizes regs into a sequence: identical signatures
// combine by phase addition, phases within dust of zero vanish.
func NewSequence(regs ...Register) Sequence {
	s := Sequence{terms: make(map[string]Register, len(regs))}
	for _, r := range regs {
		s.accumulate(r)
	}

	return s
}

// accumulate folds one register into the map. Internal: callers own the map.
func (s Sequence) accumulate(r Register) {
	if cmplx.Abs(r.phase) <= dustTol {
		return
	}
	sig := r.Signature()
	existing, ok := s.terms[sig]
	if !ok {
		s.terms[sig] = r

		return
	}
	combined := existing.phase + r.phase
	if cmplx.Abs(combined) <= dustTol {
		delete(s.terms, sig)

		return
	}
	s.terms[sig] = Register{ops: existing.ops, phase: combined}
}

// IsZero reports whether the sequence has no surviving terms.
func (s Sequence) IsZero() bool { return len(s.terms) == 0 }

// Len returns the number of distinct Pauli strings.
func (s Sequence) Len() int { return len(s.terms) }

// Add returns the canonical sum of two sequences.
// Complexity: O(s.Len()+o.Len()).
func (s Sequence) Add(o Sequence) Sequence {
	out := Sequence{terms: make(map[string]Register, len(s.terms)+len(o.terms))}
	for _, r := range s.terms {
		out.accumulate(r)
	}
	for _, r := range o.terms {
		out.accumulate(r)
	}

	return out
}

// Mul distributes the register product across the Cartesian product of
// both sequences' terms and re-canonicalizes — merging identical
// signatures and cancelling phases within dust of zero.
// Complexity: O(s.Len()·o.Len()·qubits).
func (s Sequence) Mul(o Sequence) Sequence {
	out := Sequence{terms: make(map[string]Register)}
	for _, a := range s.terms {
		for _, b := range o.terms {
			out.accumulate(a.Mul(b))
		}
	}

	return out
}

// Scale multiplies every term's phase by z.
func (s Sequence) Scale(z complex128) Sequence {
	out := Sequence{terms: make(map[string]Register, len(s.terms))}
	for _, r := range s.terms {
		out.accumulate(r.Scale(z))
	}

	return out
}

// Term looks up the register with the given signature.
func (s Sequence) Term(signature string) (Register, bool) {
	r, ok := s.terms[signature]

	return r, ok
}

// Terms returns the registers sorted by signature for deterministic
// iteration.
func (s Sequence) Terms() []Register {
	sigs := make([]string, 0, len(s.terms))
	for sig := range s.terms {
		sigs = append(sigs, sig)
	}
	sort.Strings(sigs)

	out := make([]Register, len(sigs))
	for i, sig := range sigs {
		out[i] = s.terms[sig]
	}

	return out
}

// MaxWeight returns the largest operator weight across all terms, 0 for
// the empty sequence.
func (s Sequence) MaxWeight() int {
	max := 0
	for _, r := range s.terms {
		if w := r.Weight(); w > max {
			max = w
		}
	}

	return max
}
