// SPDX-License-Identifier: MIT

// Package ladder: normal-order and index-order constructors.
//
// Description:
//
//	NormalOrder folds every unit of every product term through the
//	algebra's pair resolution until no Lower unit precedes a Raise unit,
//	then canonicalizes the resulting sum (zero terms dropped, like terms
//	merged). IndexOrder additionally sorts the Raise subsequence
//	ascending and the Lower subsequence descending with the
//	swap-tracking sort, folding the transposition phases into each
//	term's coefficient.
//
// Algorithm Outline (per product term):
//  1. Strip Identity units (the multiplicative unit carries nothing).
//  2. Find the leftmost adjacent (Lower, Raise) pair. If none, the term
//     is normal ordered: emit it.
//  3. Ask the algebra to resolve the pair (1 or 2 resolutions), splice
//     each resolution in place, and recurse on every branch.
//  4. Each path shortens the term or strictly reduces its
//     (Lower, Raise) inversion count, so resolution terminates within a
//     quadratic structural budget; exhausting the budget reports
//     ErrUnresolved (malformed input, a defect — not retryable).
//
// Complexity: O(arity²) resolution steps per branch; branching doubles
// terms only on matching-index contractions.
//
// Errors:
//   - ErrUnresolved — resolution failed to terminate within the budget.
package ladder

import (
	"errors"

	"github.com/quantafold/fermion/term"
)

// ErrUnresolved indicates normal ordering could not terminate with the
// given algebra. Callers should treat it as a defect to report upward.
var ErrUnresolved = errors.New("ladder: normal ordering failed to terminate")

// NormalOrder rewrites s into an equivalent canonical sum in which every
// product term is normal ordered (all Raise units before all Lower units).
func NormalOrder(alg Algebra, s term.S[IxOp]) (term.S[IxOp], error) {
	out := term.SumOf[IxOp]()
	for _, p := range s.ProductTerms() {
		ns, err := normalOrderProduct(alg, p)
		if err != nil {
			return term.S[IxOp]{}, err
		}
		out = out.Add(ns)
	}

	return out, nil
}

// IndexOrder rewrites s into the fully canonical form: normal ordered,
// with Raise indices ascending and Lower indices descending inside every
// term, each transposition phase folded into the term's coefficient.
func IndexOrder(alg Algebra, s term.S[IxOp]) (term.S[IxOp], error) {
	normal, err := NormalOrder(alg, s)
	if err != nil {
		return term.S[IxOp]{}, err
	}

	out := term.SumOf[IxOp]()
	for _, p := range normal.ProductTerms() {
		units := stripIdentity(p.BareUnits())

		// Normal order guarantees raises form a prefix.
		split := 0
		for split < len(units) && units[split].Op == Raise {
			split++
		}
		raises, lowers := units[:split], units[split:]

		sortedRaises, upPhase := sortTracked(raises, ascendingIndex, alg.TransposePhase)
		sortedLowers, downPhase := sortTracked(lowers, descendingIndex, alg.TransposePhase)

		ordered := append(sortedRaises, sortedLowers...)
		out = out.Add(term.SumOf(term.ProductOf(p.Coeff*upPhase*downPhase, ordered...)))
	}

	return out, nil
}

// ascendingIndex orders Raise units by increasing mode index.
func ascendingIndex(a, b IxOp) bool { return a.Index < b.Index }

// descendingIndex orders Lower units by decreasing mode index.
func descendingIndex(a, b IxOp) bool { return a.Index > b.Index }

// normalOrderProduct resolves a single product term into a canonical sum.
func normalOrderProduct(alg Algebra, p term.P[IxOp]) (term.S[IxOp], error) {
	if p.IsZero() {
		return term.SumOf[IxOp](), nil
	}

	units := stripIdentity(p.BareUnits())
	budget := len(units)*len(units) + len(units) + 1

	var acc []term.P[IxOp]
	if err := resolveUnits(alg, p.Coeff, units, budget, &acc); err != nil {
		return term.S[IxOp]{}, err
	}

	return term.SumOf(acc...), nil
}

// resolveUnits recursively rewrites units until normal ordered,
// appending finished terms to acc.
func resolveUnits(alg Algebra, coeff complex128, units []IxOp, budget int, acc *[]term.P[IxOp]) error {
	if budget < 0 {
		return ErrUnresolved
	}

	i := firstViolation(units)
	if i < 0 {
		*acc = append(*acc, term.ProductOf(coeff, units...))

		return nil
	}

	resolutions := alg.Resolve(units[i], units[i+1])
	if units[i].Index != units[i+1].Index && len(resolutions) != 1 {
		// Algebra limitation: index ordering assumes a distinct-index
		// reorder resolves to exactly one term. See Algebra docs.
		panic("ladder: algebra resolved a distinct-index pair into multiple terms")
	}

	for _, r := range resolutions {
		if err := resolveUnits(alg, coeff*r.Coeff, splice(units, i, r.Units), budget-1, acc); err != nil {
			return err
		}
	}

	return nil
}

// firstViolation returns the position of the leftmost adjacent
// (Lower, Raise) pair, or -1 when units is normal ordered.
func firstViolation(units []IxOp) int {
	for i := 0; i+1 < len(units); i++ {
		if units[i].Op == Lower && units[i+1].Op == Raise {
			return i
		}
	}

	return -1
}

// splice returns a fresh slice with units[i] and units[i+1] replaced by
// replacement (which may be empty).
func splice(units []IxOp, i int, replacement []IxOp) []IxOp {
	out := make([]IxOp, 0, len(units)-2+len(replacement))
	out = append(out, units[:i]...)
	out = append(out, replacement...)
	out = append(out, units[i+2:]...)

	return out
}

// stripIdentity drops Identity padding units.
func stripIdentity(units []IxOp) []IxOp {
	out := units[:0:0]
	for _, u := range units {
		if u.Op != Identity {
			out = append(out, u)
		}
	}

	return out
}
