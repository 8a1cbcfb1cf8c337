// SPDX-License-Identifier: MIT

// Package enctree: arena tree representation and the concrete
// constructors.
//
// Nodes live in a flat arena indexed by mode index; children and parent
// are stored as indices, never pointers, so trees copy trivially and
// cannot form ownership cycles (parent links are back-references only).
package enctree

import "errors"

// Sentinel errors for tree construction.
var (
	// ErrBadSize indicates a non-positive mode count.
	ErrBadSize = errors.New("enctree: mode count must be positive")

	// ErrNotPowerOfTwo indicates a Fenwick tree request for a size the
	// single-rooted Fenwick shape does not support.
	ErrNotPowerOfTwo = errors.New("enctree: fenwick tree size must be a power of two")
)

// noTarget marks a link slot with no child, a leg.
const noTarget = -1

// labelCount is the number of descending links per node (X, Y, Z).
const labelCount = 3

// node is one arena entry. links is indexed by label (labelX..labelZ)
// and holds the child index or noTarget. children preserves attachment
// order and is authoritative when a node has more than three children
// (possible in Fenwick shapes, where only the index-set route applies).
type node struct {
	parent   int
	children []int
	links    [labelCount]int
}

// Tree is an immutable rooted tree over modes 0..n−1. Construct with
// Linear, BalancedBinary, BalancedTernary or Fenwick; the zero value is
// unusable.
type Tree struct {
	nodes   []node
	root    int
	maxKids int
}

// newTree allocates an arena of n unattached nodes, all legs.
func newTree(n int) *Tree {
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i].parent = noTarget
		nodes[i].links = [labelCount]int{noTarget, noTarget, noTarget}
	}

	return &Tree{nodes: nodes, root: noTarget}
}

// attach wires kids (in order) as children of parent, filling link
// slots Z first, then Y, then X. Kids beyond the third keep no link
// slot; they are reachable through children only.
func (t *Tree) attach(parent int, kids ...int) {
	slots := []int{labelZ, labelY, labelX}
	for i, kid := range kids {
		t.nodes[kid].parent = parent
		t.nodes[parent].children = append(t.nodes[parent].children, kid)
		if i < len(slots) {
			t.nodes[parent].links[slots[i]] = kid
		}
	}
	if len(t.nodes[parent].children) > t.maxKids {
		t.maxKids = len(t.nodes[parent].children)
	}
}

// Len returns the number of modes (= qubits = nodes).
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root mode index.
func (t *Tree) Root() int { return t.root }

// Parent returns the parent of mode j, or false at the root.
func (t *Tree) Parent(j int) (int, bool) {
	p := t.nodes[j].parent

	return p, p != noTarget
}

// Children returns mode j's children in attachment order. The returned
// slice is fresh and safe to mutate.
func (t *Tree) Children(j int) []int {
	kids := t.nodes[j].children
	out := make([]int, len(kids))
	copy(out, kids)

	return out
}

// MaxChildren returns the largest child count across all nodes.
func (t *Tree) MaxChildren() int { return t.maxKids }

// Linear builds the chain 0 → 1 → … → n−1 (each edge on the Z link).
// The path encoding of this tree is exactly Jordan-Wigner.
func Linear(n int) (*Tree, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	t := newTree(n)
	t.root = 0
	for i := 0; i+1 < n; i++ {
		t.attach(i, i+1)
	}

	return t, nil
}

// BalancedBinary builds the balanced binary tree: the root of every
// index range is its midpoint, with the two halves built recursively.
// Worst-case path-encoding weight ≈ ⌈log₂n⌉+1.
func BalancedBinary(n int) (*Tree, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	t := newTree(n)
	t.root = t.buildBinary(0, n)

	return t, nil
}

// buildBinary roots the range [lo, hi) at its midpoint.
func (t *Tree) buildBinary(lo, hi int) int {
	if lo >= hi {
		return noTarget
	}

	mid := lo + (hi-lo)/2
	kids := make([]int, 0, 2)
	if left := t.buildBinary(lo, mid); left != noTarget {
		kids = append(kids, left)
	}
	if right := t.buildBinary(mid+1, hi); right != noTarget {
		kids = append(kids, right)
	}
	t.attach(mid, kids...)

	return mid
}

// BalancedTernary builds the balanced ternary tree: every range is
// split into three near-equal parts, two from below the split point and
// one from above it. Worst-case path-encoding weight ≈ ⌈log₃n⌉+1,
// asymptotically optimal.
func BalancedTernary(n int) (*Tree, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	t := newTree(n)
	t.root = t.buildTernary(0, n)

	return t, nil
}

// buildTernary roots the range [lo, hi) two thirds of the way up so the
// three child ranges stay near-equal.
func (t *Tree) buildTernary(lo, hi int) int {
	if lo >= hi {
		return noTarget
	}

	split := lo + 2*(hi-lo)/3
	lowMid := lo + (split-lo)/2

	kids := make([]int, 0, labelCount)
	if a := t.buildTernary(lo, lowMid); a != noTarget {
		kids = append(kids, a)
	}
	if b := t.buildTernary(lowMid, split); b != noTarget {
		kids = append(kids, b)
	}
	if c := t.buildTernary(split+1, hi); c != noTarget {
		kids = append(kids, c)
	}
	t.attach(split, kids...)

	return split
}

// Fenwick builds the Bravyi-Kitaev tree shape: 1-based node k parents
// to k+lsb(k), so node k's children are found by walking k−1 and
// clearing the lowest set bit down to the left wall. Only power-of-two
// sizes have a single root. Fenwick nodes can exceed three children,
// so use Scheme (the index-set route) rather than the path encoder.
func Fenwick(n int) (*Tree, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	if n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}

	t := newTree(n)
	t.root = n - 1
	for k := n; k >= 1; k-- {
		kids := make([]int, 0, 4)
		for c := k - 1; c > k-(k&-k); c &= c - 1 {
			kids = append(kids, c-1) // to 0-based
		}
		t.attach(k-1, kids...)
	}

	return t, nil
}
