// SPDX-License-Identifier: MIT

// Package fenwick: the pure index-set functions feeding Bravyi-Kitaev.
// All arguments and results are 0-based mode indices; the bit walks run
// 1-based internally as the tree arithmetic requires.
package fenwick

import mapset "github.com/deckarep/golang-set/v2"

// UpdateSet returns the 0-based ancestors of mode j in a tree of n
// modes: the stored positions whose value changes when mode j flips.
// j itself is never a member.
func UpdateSet(j, n int) mapset.Set[int] {
	out := mapset.NewThreadUnsafeSet[int]()
	for k := j + 1 + lsb(j+1); k <= n; k += lsb(k) {
		out.Add(k - 1)
	}

	return out
}

// ParitySet returns the 0-based stored positions whose values together
// hold the occupation parity of modes 0..j−1.
func ParitySet(j int) mapset.Set[int] {
	out := mapset.NewThreadUnsafeSet[int]()
	for k := j; k > 0; k &= k - 1 {
		out.Add(k - 1)
	}

	return out
}

// OccupationSet returns the 0-based stored positions whose values
// together hold the occupation of mode j: the mode itself plus the
// descendants of j+1 (its children in the tree, each storing a full
// subtree aggregate).
func OccupationSet(j int) mapset.Set[int] {
	out := mapset.NewThreadUnsafeSet(j)
	k := j + 1
	for c := k - 1; c > k-lsb(k); c &= c - 1 {
		out.Add(c - 1)
	}

	return out
}

// RemainderSet returns ParitySet(j) \ OccupationSet(j): the parity
// contributors that do not also witness mode j's own occupation.
// The n argument is accepted for signature symmetry with UpdateSet.
func RemainderSet(j, _ int) mapset.Set[int] {
	return ParitySet(j).Difference(OccupationSet(j))
}
