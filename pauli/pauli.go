// SPDX-License-Identifier: MIT

// Package pauli: the single-qubit operator tag and its closed product table.
package pauli

import "errors"

// ErrBadPauli indicates a character outside {I, X, Y, Z} in a parsed string.
var ErrBadPauli = errors.New("pauli: invalid Pauli character")

// Pauli is one single-qubit Pauli operator.
type Pauli uint8

const (
	// I is the single-qubit identity.
	I Pauli = iota

	// X is the bit-flip operator.
	X

	// Y is the combined bit-and-phase flip.
	Y

	// Z is the phase-flip operator.
	Z
)

// String renders the operator letter.
func (p Pauli) String() string {
	switch p {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	default:
		return "I"
	}
}

// byte renders the operator letter for signature building.
func (p Pauli) byte() byte {
	switch p {
	case X:
		return 'X'
	case Y:
		return 'Y'
	case Z:
		return 'Z'
	default:
		return 'I'
	}
}

// parsePauli maps a signature character back to its operator.
func parsePauli(c byte) (Pauli, error) {
	switch c {
	case 'I':
		return I, nil
	case 'X':
		return X, nil
	case 'Y':
		return Y, nil
	case 'Z':
		return Z, nil
	default:
		return I, ErrBadPauli
	}
}

// mul multiplies two single-qubit Paulis via the closed table, returning
// the resulting operator and its phase in {+1, −1, +i, −i}. The switch
// is exhaustive over the non-trivial off-diagonal pairs; exhaustiveness
// is the correctness net for the sign table.
func mul(a, b Pauli) (Pauli, complex128) {
	if a == I {
		return b, 1
	}
	if b == I {
		return a, 1
	}
	if a == b {
		return I, 1
	}

	switch {
	case a == X && b == Y:
		return Z, 1i
	case a == Y && b == X:
		return Z, -1i
	case a == Y && b == Z:
		return X, 1i
	case a == Z && b == Y:
		return X, -1i
	case a == Z && b == X:
		return Y, 1i
	default: // a == X && b == Z
		return Y, -1i
	}
}

// Mul exposes the closed table: the product operator and its ±1/±i phase.
func Mul(a, b Pauli) (Pauli, complex128) { return mul(a, b) }
