// SPDX-License-Identifier: MIT

// Package spectral realizes Pauli sequences as dense matrices and
// recovers their spectra.
//
// # What the package does
//
// Three operations close the loop between the symbolic Pauli algebra
// and explicit linear algebra on small registers:
//
//   - Embed expands a sequence into its 2ⁿ×2ⁿ complex matrix via the
//     tensor-product structure of Pauli strings, qubit 0 as the most
//     significant factor.
//   - Decompose inverts Embed: any matrix on n qubits projects onto
//     the orthogonal Pauli basis through normalized trace inner
//     products, Tr(P·M)/2ⁿ per string.
//   - Eigenvalues reports the sorted real spectrum of a Hermitian
//     sequence. The complex Hermitian matrix is lifted to the real
//     symmetric form [[Re, −Im], [Im, Re]], whose spectrum doubles
//     every eigenvalue, and deduplicated after the symmetric solve.
//
// Different fermion-to-qubit encodings of one Hamiltonian are related
// by unitaries, so Eigenvalues is the natural cross-check that two
// encodings describe the same physics.
//
// # Limits
//
// Dense embedding is exponential in the qubit count. Embed refuses
// registers past twelve qubits and Decompose past six; both report
// ErrTooLarge.
package spectral
