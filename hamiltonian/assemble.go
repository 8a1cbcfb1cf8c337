// SPDX-License-Identifier: MIT

// assemble.go — tensor walk and Pauli accumulation.
//
// Description:
//
//	Assemble ranges over every one-body pair and two-body quadruple of
//	mode indices, asks the factory for the integral, and skips absent
//	or zero entries before encoding. The remaining ladder products are
//	encoded operator by operator and multiplied as Pauli sequences, so
//	the anticommutation bookkeeping lives entirely in the encoding.
//
// Complexity: O(n⁴) factory probes; each present term costs a constant
// number of sequence multiplications.
package hamiltonian

import (
	"strconv"
	"strings"

	"github.com/quantafold/fermion/ladder"
	"github.com/quantafold/fermion/majorana"
	"github.com/quantafold/fermion/pauli"
)

// CoefficientFactory resolves an integral tensor entry by its index
// key. The second return reports presence; absent entries are treated
// as zero.
type CoefficientFactory func(key string) (complex128, bool)

// MapFactory wraps a literal tensor map in the factory shape.
func MapFactory(tensor map[string]complex128) CoefficientFactory {
	return func(key string) (complex128, bool) {
		z, ok := tensor[key]
		return z, ok
	}
}

// Key joins mode indices into the canonical comma-separated tensor key.
func Key(indices ...uint) string {
	parts := make([]string, len(indices))
	for i, ix := range indices {
		parts[i] = strconv.FormatUint(uint64(ix), 10)
	}

	return strings.Join(parts, ",")
}

// Assemble builds the qubit form of the second-quantized Hamiltonian
// over n modes under the given encoding. One-body entries h_{ij}
// weight a†_i a_j; two-body entries h_{ijkl} weight ½ a†_i a†_j a_k a_l.
func Assemble(enc majorana.EncoderFn, factory CoefficientFactory, n uint) pauli.Sequence {
	total := pauli.NewSequence()

	for i := uint(0); i < n; i++ {
		for j := uint(0); j < n; j++ {
			h, ok := factory(Key(i, j))
			if !ok || h == 0 {
				continue
			}
			term := enc(ladder.Raise, i, n).
				Mul(enc(ladder.Lower, j, n)).
				Scale(h)
			total = total.Add(term)
		}
	}

	for i := uint(0); i < n; i++ {
		for j := uint(0); j < n; j++ {
			for k := uint(0); k < n; k++ {
				for l := uint(0); l < n; l++ {
					h, ok := factory(Key(i, j, k, l))
					if !ok || h == 0 {
						continue
					}
					term := enc(ladder.Raise, i, n).
						Mul(enc(ladder.Raise, j, n)).
						Mul(enc(ladder.Lower, k, n)).
						Mul(enc(ladder.Lower, l, n)).
						Scale(0.5 * h)
					total = total.Add(term)
				}
			}
		}
	}

	return total
}
