// SPDX-License-Identifier: MIT

// pairing.go — Majorana leg pairing and the path-based encoder.
//
// Description:
//
//	Each mode u owns two Majorana legs. sₓ(u) starts down u's X link,
//	s_y(u) down its Y link; a link that is itself a leg terminates
//	immediately, otherwise the walk descends through that child's Z
//	links until it reaches a node whose Z slot is a leg. Because edges
//	fill Z slots first, the Z-descent always terminates at a childless
//	descendant, every mode resolves to two distinct legs, and exactly
//	one leg per tree (the pure-Z descent from the root) stays unpaired.
//
// Algorithm Outline (one leg's Pauli string):
//  1. Collect the root→node path via parent back-references.
//  2. At each ancestor emit the label of the edge taken toward the next
//     node on the path; at the leg's own node emit the leg label.
//  3. All other qubits stay Identity; the string weight is the path
//     depth plus one.
//
// Complexity: O(depth) per leg, O(n) per encoded operator.
package enctree

import (
	"github.com/quantafold/fermion/ladder"
	"github.com/quantafold/fermion/majorana"
	"github.com/quantafold/fermion/pauli"
)

// Link label slots, in arena order.
const (
	labelX = iota
	labelY
	labelZ
)

// legLabels maps link slots to Pauli operators.
var legLabels = [labelCount]pauli.Pauli{pauli.X, pauli.Y, pauli.Z}

// Leg identifies one dangling labeled link uniquely.
type Leg struct {
	// Node is the mode whose link dangles.
	Node int

	// Label is the dangling link's Pauli label.
	Label pauli.Pauli
}

// LegPair is the two Majorana legs assigned to one mode.
type LegPair struct {
	// SX is the leg reached through the mode's X link.
	SX Leg

	// SY is the leg reached through the mode's Y link.
	SY Leg
}

// Link returns the child behind mode j's labeled link, or false when
// the link is a leg. Label must be one of pauli.X, pauli.Y, pauli.Z.
func (t *Tree) Link(j int, label pauli.Pauli) (int, bool) {
	target := t.nodes[j].links[slotOf(label)]

	return target, target != noTarget
}

// PairLegs assigns every mode its two Majorana legs. The result is
// indexed by mode; all 2n legs are distinct.
func (t *Tree) PairLegs() []LegPair {
	t.requirePathEncodable()

	pairs := make([]LegPair, len(t.nodes))
	for u := range t.nodes {
		pairs[u] = LegPair{
			SX: t.resolveLeg(u, labelX),
			SY: t.resolveLeg(u, labelY),
		}
	}

	return pairs
}

// resolveLeg follows mode u's slot link, then Z links, to a leg.
func (t *Tree) resolveLeg(u, slot int) Leg {
	target := t.nodes[u].links[slot]
	if target == noTarget {
		return Leg{Node: u, Label: legLabels[slot]}
	}

	v := target
	for t.nodes[v].links[labelZ] != noTarget {
		v = t.nodes[v].links[labelZ]
	}

	return Leg{Node: v, Label: pauli.Z}
}

// LegRegister reads the Pauli string of one leg off the root-to-node
// path: edge labels at the ancestors, the leg label at its node.
func (t *Tree) LegRegister(l Leg) pauli.Register {
	// Path from the leg's node up to the root, then consumed in reverse.
	path := []int{l.Node}
	for p := t.nodes[l.Node].parent; p != noTarget; p = t.nodes[p].parent {
		path = append(path, p)
	}

	r := pauli.NewRegister(len(t.nodes))
	for i := len(path) - 1; i > 0; i-- {
		ancestor, next := path[i], path[i-1]
		r = r.With(ancestor, t.edgeLabel(ancestor, next))
	}

	return r.With(l.Node, l.Label)
}

// edgeLabel returns the label of the edge from parent toward child.
func (t *Tree) edgeLabel(parent, child int) pauli.Pauli {
	for slot, target := range t.nodes[parent].links {
		if target == child {
			return legLabels[slot]
		}
	}

	// Unreachable on path-encodable trees: every edge owns a link slot.
	panic("enctree: edge without a link slot; tree is not path-encodable")
}

// Encode maps one ladder operator on mode j to its two-term Pauli
// sequence via the tree's Majorana legs: a† = ½(sₓ − i·s_y),
// a = ½(sₓ + i·s_y). Identity operators and j ≥ n yield the empty
// sequence. Panics if any node has more than three children — the
// path-based method's documented limitation.
func Encode(t *Tree, op ladder.Op, j, n uint) pauli.Sequence {
	if op == ladder.Identity || j >= n || int(j) >= t.Len() {
		return pauli.NewSequence()
	}
	t.requirePathEncodable()

	sx := t.LegRegister(t.resolveLeg(int(j), labelX)).Scale(0.5)

	syPhase := complex128(0.5i)
	if op == ladder.Raise {
		syPhase = -0.5i
	}
	sy := t.LegRegister(t.resolveLeg(int(j), labelY)).Scale(syPhase)

	return pauli.NewSequence(sx, sy)
}

// TreeEncoder curries a shared tree into the EncoderFn shape, so one
// tree serves repeated encodings of the same register size.
func TreeEncoder(t *Tree) majorana.EncoderFn {
	return func(op ladder.Op, j, n uint) pauli.Sequence {
		return Encode(t, op, j, n)
	}
}

// BalancedBinaryTreeTerms encodes under a balanced binary tree of the
// requested register size.
func BalancedBinaryTreeTerms(op ladder.Op, j, n uint) pauli.Sequence {
	if op == ladder.Identity || j >= n {
		return pauli.NewSequence()
	}
	t, err := BalancedBinary(int(n))
	if err != nil {
		return pauli.NewSequence()
	}

	return Encode(t, op, j, n)
}

// TernaryTreeTerms encodes under a balanced ternary tree of the
// requested register size.
func TernaryTreeTerms(op ladder.Op, j, n uint) pauli.Sequence {
	if op == ladder.Identity || j >= n {
		return pauli.NewSequence()
	}
	t, err := BalancedTernary(int(n))
	if err != nil {
		return pauli.NewSequence()
	}

	return Encode(t, op, j, n)
}

// requirePathEncodable asserts the three-children limit of the
// path-based method. A wider tree is a programmer error, not a runtime
// condition, so the check panics instead of returning an error.
func (t *Tree) requirePathEncodable() {
	if t.maxKids > labelCount {
		panic("enctree: path-based encoding requires at most three children per node; use Scheme for this tree")
	}
}

// slotOf maps a Pauli label to its link slot.
func slotOf(label pauli.Pauli) int {
	switch label {
	case pauli.X:
		return labelX
	case pauli.Y:
		return labelY
	case pauli.Z:
		return labelZ
	default:
		panic("enctree: link labels are X, Y or Z")
	}
}
