// SPDX-License-Identifier: MIT

// Package majorana: the Scheme type and the three concrete index-set
// encodings.
package majorana

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/quantafold/fermion/fenwick"
)

// Scheme is one index-set-based encoding: the three functions fully
// determine how ladder operators map to Pauli strings. Schemes are
// immutable data; all three functions must be pure.
type Scheme struct {
	// Update returns the qubits (beyond j itself) flipped by mode j in
	// a register of n modes.
	Update func(j, n int) mapset.Set[int]

	// Parity returns the qubits holding the parity of modes 0..j−1.
	Parity func(j int) mapset.Set[int]

	// Occupation returns the qubits holding the occupation of mode j.
	Occupation func(j int) mapset.Set[int]
}

// JordanWigner returns the Jordan-Wigner scheme: occupation lives on the
// mode's own qubit and parity is carried by the full Z-string below it.
func JordanWigner() Scheme {
	return Scheme{
		Update: func(_, _ int) mapset.Set[int] {
			return mapset.NewThreadUnsafeSet[int]()
		},
		Parity: func(j int) mapset.Set[int] {
			out := mapset.NewThreadUnsafeSet[int]()
			for i := 0; i < j; i++ {
				out.Add(i)
			}

			return out
		},
		Occupation: func(j int) mapset.Set[int] {
			return mapset.NewThreadUnsafeSet(j)
		},
	}
}

// Parity returns the parity scheme, Jordan-Wigner's mirror image: qubit
// j stores the parity of modes 0..j, so updates ripple upward through
// {j+1..n−1} while parity reads need only qubit j−1.
func Parity() Scheme {
	return Scheme{
		Update: func(j, n int) mapset.Set[int] {
			out := mapset.NewThreadUnsafeSet[int]()
			for i := j + 1; i < n; i++ {
				out.Add(i)
			}

			return out
		},
		Parity: func(j int) mapset.Set[int] {
			out := mapset.NewThreadUnsafeSet[int]()
			if j > 0 {
				out.Add(j - 1)
			}

			return out
		},
		Occupation: func(j int) mapset.Set[int] {
			out := mapset.NewThreadUnsafeSet(j)
			if j > 0 {
				out.Add(j - 1)
			}

			return out
		},
	}
}

// BravyiKitaev returns the Bravyi-Kitaev scheme, plugging in the
// Fenwick-tree index sets: both updates and parity reads touch O(log n)
// qubits.
func BravyiKitaev() Scheme {
	return Scheme{
		Update:     fenwick.UpdateSet,
		Parity:     fenwick.ParitySet,
		Occupation: fenwick.OccupationSet,
	}
}
