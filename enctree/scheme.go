// SPDX-License-Identifier: MIT

// scheme.go — index-set schemes read off a rooted tree.
//
// Description:
//
//	A tree whose prefix structure mirrors a partial-sum layout also
//	admits the Majorana index-set formulation: the update set is the
//	chain of proper ancestors, the occupation set is the mode together
//	with its children, and the parity set collects the children of the
//	root path that store complete blocks of strictly lower modes.
//	Unlike the path encoder, the index-set route carries no limit on
//	node arity, so it serves Fenwick layouts whose root fans out past
//	three children.
//
// Complexity: O(depth + fan-out) per set.
package enctree

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/quantafold/fermion/majorana"
)

// Scheme derives the update, parity and occupation sets of the tree's
// encoding, in the shape the Majorana construction consumes. The tree
// is captured by reference; callers must not mutate it afterwards.
func Scheme(t *Tree) majorana.Scheme {
	return majorana.Scheme{
		Update: func(j, n int) mapset.Set[int] {
			return t.UpdateSet(j)
		},
		Parity:     t.ParitySet,
		Occupation: t.OccupationSet,
	}
}

// UpdateSet returns mode j's proper ancestors.
func (t *Tree) UpdateSet(j int) mapset.Set[int] {
	set := mapset.NewThreadUnsafeSet[int]()
	if j < 0 || j >= len(t.nodes) {
		return set
	}
	for p := t.nodes[j].parent; p != noTarget; p = t.nodes[p].parent {
		set.Add(p)
	}

	return set
}

// OccupationSet returns mode j together with its children.
func (t *Tree) OccupationSet(j int) mapset.Set[int] {
	set := mapset.NewThreadUnsafeSet[int]()
	if j < 0 || j >= len(t.nodes) {
		return set
	}
	set.Add(j)
	for _, c := range t.nodes[j].children {
		set.Add(c)
	}

	return set
}

// ParitySet returns the children of mode j's root path that hold
// strictly lower modes and sit off the path itself.
func (t *Tree) ParitySet(j int) mapset.Set[int] {
	set := mapset.NewThreadUnsafeSet[int]()
	if j < 0 || j >= len(t.nodes) {
		return set
	}

	onPath := mapset.NewThreadUnsafeSet[int]()
	for v := j; v != noTarget; v = t.nodes[v].parent {
		onPath.Add(v)
	}

	for v := j; v != noTarget; v = t.nodes[v].parent {
		for _, c := range t.nodes[v].children {
			if c < j && !onPath.Contains(c) {
				set.Add(c)
			}
		}
	}

	return set
}
