// Package fermion is an in-memory toolkit for mapping fermionic and
// bosonic many-body operators onto qubit registers, from the raw
// ladder-operator algebra to dense spectra.
//
// 🚀 What is fermion?
//
//	A pure in-memory library that brings together:
//		• Term algebra: complex-weighted sums of operator products with reliable cancellation
//		• Ladder operators: fermionic and bosonic normal ordering with sign tracking
//		• Pauli strings: registers, signatures and closed multiplication
//		• Index-set encodings: Jordan-Wigner, parity, Bravyi-Kitaev over Fenwick sets
//		• Tree encodings: path-based Majorana pairing on arbitrary rooted trees
//		• Hamiltonians: second-quantized tensor assembly with a worked H₂ dataset
//		• Spectra: dense embedding, Pauli-basis projection and Hermitian eigenvalues
//
// ✨ Why choose fermion?
//
//   - Deterministic – canonical term keys, sorted iteration, exact zero removal
//   - Encoding-agnostic – every encoder is a plain function, trees and bit tricks interchangeable
//   - Pure Go – no cgo, dense linear algebra through gonum only at the edges
//   - Extensible – supply your own Scheme or rooted tree and reuse the whole pipeline
//
// Under the hood, everything is organized per concern:
//
//	term/        — generic sums and products of algebra units
//	ladder/      — creation/annihilation operators, CAR/CCR rewriting
//	pauli/       — Pauli registers and accumulating sequences
//	fenwick/     — partial-sum tree plus the Bravyi-Kitaev index sets
//	majorana/    — index-set schemes and the Majorana construction
//	enctree/     — rooted encoding trees, leg pairing, derived schemes
//	hamiltonian/ — integral tensor factories and operator assembly
//	spectral/    — dense matrices, decomposition, eigenvalues
//
// Quick pipeline sketch:
//
//	a†₂ ──encode──▶ ½·ZZXI − ½i·ZZYI ──assemble──▶ Σ hᵢⱼ… ──spectra──▶ E₀
//
// Dive into the per-package docs for the full contracts and worked
// examples.
//
//	go get github.com/quantafold/fermion
package fermion
