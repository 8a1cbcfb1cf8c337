// SPDX-License-Identifier: MIT

// Package fenwick: the generic binary indexed tree.
//
// Algorithm Outline:
//  1. Build seeds each leaf i (1-based) with values[i-1] and folds it
//     into the immediate covering ancestor within the array, giving the
//     standard O(n) construction.
//  2. Update(i, delta) combines delta into leaf i+1 and every 1-based
//     ancestor i+1 → i+1+lsb → … ≤ n. The combine need not be
//     invertible, so there is no "set" operation — only accumulation.
//  3. Prefix(i) folds combine over the stored values at the indices
//     reached from i+1 by repeatedly clearing the lowest set bit,
//     yielding the aggregate of positions 0..i.
//
// Complexity: Build O(n); Update and Prefix O(log n).
//
// Errors:
//   - ErrBadSize  — non-positive tree size.
//   - ErrOutOfRange — index outside [0, n).
package fenwick

import "errors"

// Sentinel errors for tree construction and access.
var (
	// ErrBadSize indicates a non-positive tree size.
	ErrBadSize = errors.New("fenwick: tree size must be positive")

	// ErrOutOfRange indicates an index outside [0, n).
	ErrOutOfRange = errors.New("fenwick: index out of range")
)

// Tree is a persistent binary indexed tree over an associative
// combine/identity pair. The zero value is unusable; construct with New
// or Build. Update returns a new tree, leaving the receiver untouched.
type Tree[A any] struct {
	data     []A // 1-indexed; data[0] unused
	combine  func(A, A) A
	identity A
}

// New returns an empty tree of size n where every position holds identity.
func New[A any](n int, combine func(A, A) A, identity A) (*Tree[A], error) {
	if n <= 0 {
		return nil, ErrBadSize
	}

	data := make([]A, n+1)
	for i := range data {
		data[i] = identity
	}

	return &Tree[A]{data: data, combine: combine, identity: identity}, nil
}

// Build constructs a tree holding the given values in O(n).
func Build[A any](values []A, combine func(A, A) A, identity A) (*Tree[A], error) {
	t, err := New(len(values), combine, identity)
	if err != nil {
		return nil, err
	}

	n := len(values)
	for i := 1; i <= n; i++ {
		t.data[i] = t.combine(t.data[i], values[i-1])
		if parent := i + lsb(i); parent <= n {
			t.data[parent] = t.combine(t.data[parent], t.data[i])
		}
	}

	return t, nil
}

// Len returns the number of positions.
func (t *Tree[A]) Len() int { return len(t.data) - 1 }

// Update combines delta into 0-based position i and returns the updated
// tree. The receiver is not modified.
func (t *Tree[A]) Update(i int, delta A) (*Tree[A], error) {
	n := t.Len()
	if i < 0 || i >= n {
		return nil, ErrOutOfRange
	}

	data := make([]A, len(t.data))
	copy(data, t.data)
	for k := i + 1; k <= n; k += lsb(k) {
		data[k] = t.combine(data[k], delta)
	}

	return &Tree[A]{data: data, combine: t.combine, identity: t.identity}, nil
}

// Prefix folds combine over positions 0..i and returns the aggregate.
func (t *Tree[A]) Prefix(i int) (A, error) {
	if i < 0 || i >= t.Len() {
		return t.identity, ErrOutOfRange
	}

	acc := t.identity
	for k := i + 1; k > 0; k &= k - 1 {
		acc = t.combine(acc, t.data[k])
	}

	return acc, nil
}

// lsb isolates the lowest set bit of k.
func lsb(k int) int { return k & -k }
