// SPDX-License-Identifier: MIT

// Package ladder: pure order predicates over indexed-operator products.
// Both predicates scan without mutating their input. Identity units are
// transparent: they neither break nor establish an ordering.
package ladder

import "github.com/quantafold/fermion/term"

// IsNormalOrdered reports whether no Lower unit is immediately followed
// by a Raise unit when p's units are scanned left to right — equivalently,
// whether every creation operator precedes every annihilation operator.
// Complexity: O(p.Len()).
func IsNormalOrdered(p term.P[IxOp]) bool {
	prev := Identity
	for _, u := range p.Units {
		op := u.Unit.Op
		if op == Identity {
			continue
		}
		if prev == Lower && op == Raise {
			return false
		}
		prev = op
	}

	return true
}

// IsIndexOrdered reports whether p is normal ordered and, additionally,
// the Raise subsequence has ascending indices while the Lower
// subsequence has descending indices.
// Complexity: O(p.Len()).
func IsIndexOrdered(p term.P[IxOp]) bool {
	if !IsNormalOrdered(p) {
		return false
	}

	var (
		haveRaise, haveLower bool
		lastRaise, lastLower uint
	)
	for _, u := range p.Units {
		switch u.Unit.Op {
		case Raise:
			if haveRaise && u.Unit.Index < lastRaise {
				return false
			}
			lastRaise, haveRaise = u.Unit.Index, true
		case Lower:
			if haveLower && u.Unit.Index > lastLower {
				return false
			}
			lastLower, haveLower = u.Unit.Index, true
		case Identity:
			// transparent
		}
	}

	return true
}
