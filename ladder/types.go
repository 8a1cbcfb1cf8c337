// SPDX-License-Identifier: MIT

// Package ladder: operator unit types and their structural signatures.
package ladder

import (
	"strconv"

	"github.com/quantafold/fermion/term"
)

// Op is one ladder-operator unit, compared by structural equality.
type Op uint8

const (
	// Identity is the multiplicative unit, used to pad short products.
	Identity Op = iota

	// Raise is the creation operator a†.
	Raise

	// Lower is the annihilation operator a.
	Lower
)

// String renders the unit tag: "1" for Identity, "+" for Raise, "-" for Lower.
func (o Op) String() string {
	switch o {
	case Raise:
		return "+"
	case Lower:
		return "-"
	default:
		return "1"
	}
}

// IxOp binds an operator unit to the mode (or qubit) index it acts on.
// The zero value is the Identity on mode 0.
type IxOp struct {
	// Index is the mode the operator acts on.
	Index uint

	// Op is the operator unit.
	Op Op
}

// NewRaise returns a† on mode j.
func NewRaise(j uint) IxOp { return IxOp{Index: j, Op: Raise} }

// NewLower returns a on mode j.
func NewLower(j uint) IxOp { return IxOp{Index: j, Op: Lower} }

// Key returns the structural signature used by the term algebra:
// the op tag followed by the decimal index, e.g. "+3" or "-0".
// Identity units share the single key "1" regardless of index.
func (x IxOp) Key() string {
	if x.Op == Identity {
		return "1"
	}

	return x.Op.String() + strconv.FormatUint(uint64(x.Index), 10)
}

// String renders the unit in the debugging grammar, e.g. "(+, 3)".
func (x IxOp) String() string {
	return "(" + x.Op.String() + ", " + strconv.FormatUint(uint64(x.Index), 10) + ")"
}

// NewProduct builds a coefficient-weighted product of indexed units.
func NewProduct(coeff complex128, units ...IxOp) term.P[IxOp] {
	return term.ProductOf(coeff, units...)
}

// NewSum wraps products into a canonical sum.
func NewSum(terms ...term.P[IxOp]) term.S[IxOp] {
	return term.SumOf(terms...)
}
