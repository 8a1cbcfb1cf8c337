// SPDX-License-Identifier: MIT

// Package ladder: swap-tracking selection sort.
//
// Description:
//
//	Sorts a small slice under a strict-less comparator while accumulating
//	a side-channel phase proportional to the positional displacement of
//	each selected element. Selecting the minimum at offset i from the
//	front of the remaining unsorted slice simulates i adjacent
//	transpositions, so the tracker is invoked with i and its result is
//	folded into the running coefficient. Under fermionic statistics the
//	tracker is (−1)^i; the transposition count being exact is the entire
//	contract of this file.
//
// Algorithm Outline:
//  1. For each position s from the front: linear-scan the remaining
//     slice for the minimum under less. Ties keep the first occurrence,
//     so the sort is stable with respect to the comparator.
//  2. If the minimum sits at offset i > 0, multiply the running
//     coefficient by phase(i), shift the skipped elements right by one,
//     and place the minimum at s.
//
// Complexity: O(n²) time, O(n) extra memory. Intentional — n is the
// arity of one product term, typically ≤ 4.
package ladder

// sortTracked returns a sorted copy of items and the accumulated phase.
// The input slice is never mutated.
func sortTracked[T any](items []T, less func(a, b T) bool, phase func(moves int) complex128) ([]T, complex128) {
	out := make([]T, len(items))
	copy(out, items)

	coeff := complex128(1)
	for start := 0; start < len(out); start++ {
		best := start
		for k := start + 1; k < len(out); k++ {
			if less(out[k], out[best]) {
				best = k
			}
		}
		moves := best - start
		if moves == 0 {
			continue
		}
		coeff *= phase(moves)

		picked := out[best]
		copy(out[start+1:best+1], out[start:best])
		out[start] = picked
	}

	return out, coeff
}
