// SPDX-License-Identifier: MIT

// Package hamiltonian assembles second-quantized operators into qubit
// form.
//
// # What the package does
//
// A molecular electronic Hamiltonian in a finite spin-orbital basis is
// a sum of one-body and two-body ladder products,
//
//	H = Σ_{ij} h_{ij} a†_i a_j + ½ Σ_{ijkl} h_{ijkl} a†_i a†_j a_k a_l,
//
// with complex integral tensors h. Assemble walks both tensors through
// a CoefficientFactory, encodes every ladder operator with the caller's
// encoder (Jordan-Wigner, Bravyi-Kitaev, parity or a tree encoding),
// multiplies the per-operator Pauli sequences and accumulates the
// result. Like terms merge and exact cancellations vanish, so the
// returned sequence is the minimal Pauli form of H under that encoding.
//
// # Coefficient factories
//
// A CoefficientFactory maps a comma-joined index key ("i,j" one-body,
// "i,j,k,l" two-body) to its integral value. Map lookups keep the
// tensor sparse: absent keys contribute nothing. H2STO3G ships the
// molecular hydrogen minimal-basis tensors as a worked dataset.
//
// # Usage
//
//	h := hamiltonian.H2STO3G()
//	seq := hamiltonian.Assemble(majorana.JordanWignerTerms, h, 4)
//	for _, term := range seq.Terms() {
//		fmt.Println(term)
//	}
package hamiltonian
