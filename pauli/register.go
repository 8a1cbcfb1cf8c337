// SPDX-License-Identifier: MIT

// Package pauli: the Register type — one Pauli string with a global phase.
package pauli

import (
	"strconv"
	"strings"

	"github.com/quantafold/fermion/term"
)

// Register is a tensor product of single-qubit Pauli operators together
// with a global complex phase. Qubit 0 is the leftmost position of the
// signature. Registers are immutable values.
type Register struct {
	ops   []Pauli
	phase complex128
}

// NewRegister returns the identity string on n qubits with phase 1.
func NewRegister(n int) Register {
	return Register{ops: make([]Pauli, n), phase: 1}
}

// NewRegisterFrom builds a register from an explicit phase and operator
// list. The slice is copied; the phase passes through term.Reduce.
func NewRegisterFrom(phase complex128, ops ...Pauli) Register {
	o := make([]Pauli, len(ops))
	copy(o, ops)

	return Register{ops: o, phase: term.Reduce(phase)}
}

// ParseRegister parses a signature string such as "ZZXI" into a register
// with phase 1. Returns ErrBadPauli on any character outside {I,X,Y,Z}.
// Round-trips with Register.Signature.
func ParseRegister(s string) (Register, error) {
	ops := make([]Pauli, len(s))
	for i := 0; i < len(s); i++ {
		p, err := parsePauli(s[i])
		if err != nil {
			return Register{}, err
		}
		ops[i] = p
	}

	return Register{ops: ops, phase: 1}, nil
}

// Len returns the number of qubits in the string.
func (r Register) Len() int { return len(r.ops) }

// At returns the operator on qubit i. Positions beyond Len are Identity.
func (r Register) At(i int) Pauli {
	if i < 0 || i >= len(r.ops) {
		return I
	}

	return r.ops[i]
}

// Phase returns the global phase.
func (r Register) Phase() complex128 { return r.phase }

// Scale returns r with its phase multiplied by z.
func (r Register) Scale(z complex128) Register {
	return Register{ops: r.ops, phase: term.Reduce(r.phase * z)}
}

// With returns a copy of r with operator p placed on qubit i, growing
// the string with Identity padding if needed. The previous operator at
// i is overwritten; use Mul for algebraic composition.
func (r Register) With(i int, p Pauli) Register {
	n := len(r.ops)
	if i+1 > n {
		n = i + 1
	}
	ops := make([]Pauli, n)
	copy(ops, r.ops)
	ops[i] = p

	return Register{ops: ops, phase: r.phase}
}

// Mul multiplies two registers positionwise through the closed table,
// folding every per-qubit phase and both global phases into the result.
// The shorter operand is treated as padded with Identity.
// Complexity: O(max(r.Len(), o.Len())).
func (r Register) Mul(o Register) Register {
	n := len(r.ops)
	if len(o.ops) > n {
		n = len(o.ops)
	}

	ops := make([]Pauli, n)
	phase := term.Reduce(r.phase * o.phase)
	for i := 0; i < n; i++ {
		p, ph := mul(r.At(i), o.At(i))
		ops[i] = p
		phase *= ph
	}

	return Register{ops: ops, phase: phase}
}

// Weight returns the number of non-Identity positions — the operator
// weight that encoding schemes compete to minimize.
func (r Register) Weight() int {
	w := 0
	for _, p := range r.ops {
		if p != I {
			w++
		}
	}

	return w
}

// IsZero reports whether the register's phase is exactly zero.
func (r Register) IsZero() bool { return r.phase == 0 }

// Signature returns the phase-free Pauli string, e.g. "ZZXI".
// Two registers with equal signatures are combinable by phase addition.
func (r Register) Signature() string {
	var b strings.Builder
	b.Grow(len(r.ops))
	for _, p := range r.ops {
		b.WriteByte(p.byte())
	}

	return b.String()
}

// String renders phase and string for debugging, e.g. "(0.5-0.5i)·ZZXI".
// FormatComplex supplies the surrounding parentheses.
func (r Register) String() string {
	return strconv.FormatComplex(r.phase, 'g', -1, 128) + "·" + r.Signature()
}
