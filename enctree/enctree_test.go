// SPDX-License-Identifier: MIT

package enctree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantafold/fermion/enctree"
	"github.com/quantafold/fermion/fenwick"
	"github.com/quantafold/fermion/ladder"
	"github.com/quantafold/fermion/majorana"
	"github.com/quantafold/fermion/pauli"
)

// requireSameSequence asserts two Pauli sequences agree term by term.
func requireSameSequence(t *testing.T, want, got pauli.Sequence) {
	t.Helper()

	require.Equal(t, want.Len(), got.Len())
	for _, w := range want.Terms() {
		g, ok := got.Term(w.Signature())
		require.True(t, ok, "missing term %s", w.Signature())
		assert.InDelta(t, real(w.Phase()), real(g.Phase()), 1e-12)
		assert.InDelta(t, imag(w.Phase()), imag(g.Phase()), 1e-12)
	}
}

// TestLinearTreeMatchesJordanWigner checks the chain's path encoding
// against the direct Jordan-Wigner construction for every mode.
func TestLinearTreeMatchesJordanWigner(t *testing.T) {
	for _, n := range []uint{1, 2, 4, 8} {
		tree, err := enctree.Linear(int(n))
		require.NoError(t, err)

		for j := uint(0); j < n; j++ {
			for _, op := range []ladder.Op{ladder.Raise, ladder.Lower} {
				want := majorana.JordanWignerTerms(op, j, n)
				got := enctree.Encode(tree, op, j, n)
				requireSameSequence(t, want, got)
			}
		}
	}
}

// TestEncodeCanonicalAnticommutation verifies {a_i, a†_j} = δ_ij on the
// balanced binary and ternary encodings of six modes.
func TestEncodeCanonicalAnticommutation(t *testing.T) {
	const n = uint(6)
	identity := strings.Repeat("I", int(n))

	binary, err := enctree.BalancedBinary(int(n))
	require.NoError(t, err)
	ternary, err := enctree.BalancedTernary(int(n))
	require.NoError(t, err)

	for name, tree := range map[string]*enctree.Tree{
		"binary":  binary,
		"ternary": ternary,
	} {
		for i := uint(0); i < n; i++ {
			for j := uint(0); j < n; j++ {
				lower := enctree.Encode(tree, ladder.Lower, i, n)
				raise := enctree.Encode(tree, ladder.Raise, j, n)
				anti := lower.Mul(raise).Add(raise.Mul(lower))

				if i != j {
					assert.True(t, anti.IsZero(), "%s: {a_%d, a†_%d} ≠ 0", name, i, j)
					continue
				}

				require.Equal(t, 1, anti.Len(), "%s mode %d", name, i)
				id, ok := anti.Term(identity)
				require.True(t, ok, "%s mode %d", name, i)
				assert.InDelta(t, 1, real(id.Phase()), 1e-12)
				assert.InDelta(t, 0, imag(id.Phase()), 1e-12)
			}
		}
	}
}

// TestPairLegsDistinct checks each of nine modes owns two legs and no
// leg is claimed twice.
func TestPairLegsDistinct(t *testing.T) {
	tree, err := enctree.BalancedBinary(9)
	require.NoError(t, err)

	pairs := tree.PairLegs()
	require.Len(t, pairs, 9)

	seen := make(map[enctree.Leg]bool)
	for _, p := range pairs {
		assert.False(t, seen[p.SX], "leg %v claimed twice", p.SX)
		assert.False(t, seen[p.SY], "leg %v claimed twice", p.SY)
		seen[p.SX] = true
		seen[p.SY] = true
	}
	assert.Len(t, seen, 18)
}

// TestFenwickSchemeMatchesBitwiseSets compares the tree-derived index
// sets with the bit-arithmetic formulation for several sizes.
func TestFenwickSchemeMatchesBitwiseSets(t *testing.T) {
	for _, n := range []int{4, 8, 16} {
		tree, err := enctree.Fenwick(n)
		require.NoError(t, err)

		for j := 0; j < n; j++ {
			assert.True(t, tree.UpdateSet(j).Equal(fenwick.UpdateSet(j, n)),
				"update set, n=%d j=%d", n, j)
			assert.True(t, tree.ParitySet(j).Equal(fenwick.ParitySet(j)),
				"parity set, n=%d j=%d", n, j)
			assert.True(t, tree.OccupationSet(j).Equal(fenwick.OccupationSet(j)),
				"occupation set, n=%d j=%d", n, j)
		}
	}
}

// TestFenwickSchemeEncodesBravyiKitaev runs the tree-derived scheme
// through the Majorana construction and compares with Bravyi-Kitaev.
func TestFenwickSchemeEncodesBravyiKitaev(t *testing.T) {
	const n = uint(8)

	tree, err := enctree.Fenwick(int(n))
	require.NoError(t, err)
	enc := majorana.SchemeEncoder(enctree.Scheme(tree))

	for j := uint(0); j < n; j++ {
		for _, op := range []ladder.Op{ladder.Raise, ladder.Lower} {
			want := majorana.BravyiKitaevTerms(op, j, n)
			requireSameSequence(t, want, enc(op, j, n))
		}
	}
}

// TestTreeWeightsBeatChain confirms the weight hierarchy across sizes:
// the chain pays linear support, the balanced binary tree stays within
// ⌈log₂n⌉+1, the balanced ternary tree within ⌈log₃n⌉+1, and ternary
// never exceeds binary.
func TestTreeWeightsBeatChain(t *testing.T) {
	cases := []struct {
		n        uint
		binBound int // ⌈log₂n⌉+1
		terBound int // ⌈log₃n⌉+1
	}{
		{n: 4, binBound: 3, terBound: 3},
		{n: 8, binBound: 4, terBound: 3},
		{n: 16, binBound: 5, terBound: 4},
		{n: 24, binBound: 6, terBound: 4},
	}

	for _, tc := range cases {
		binary, err := enctree.BalancedBinary(int(tc.n))
		require.NoError(t, err)
		ternary, err := enctree.BalancedTernary(int(tc.n))
		require.NoError(t, err)

		maxWeight := func(enc majorana.EncoderFn) int {
			top := 0
			for j := uint(0); j < tc.n; j++ {
				if w := enc(ladder.Raise, j, tc.n).MaxWeight(); w > top {
					top = w
				}
			}
			return top
		}

		chain := maxWeight(majorana.JordanWignerTerms)
		bin := maxWeight(enctree.TreeEncoder(binary))
		ter := maxWeight(enctree.TreeEncoder(ternary))

		assert.Equal(t, int(tc.n), chain, "n=%d", tc.n)
		assert.LessOrEqual(t, bin, tc.binBound, "n=%d binary", tc.n)
		assert.LessOrEqual(t, ter, tc.terBound, "n=%d ternary", tc.n)
		assert.LessOrEqual(t, ter, bin, "n=%d ternary vs binary", tc.n)
		assert.Less(t, bin, chain, "n=%d binary vs chain", tc.n)
	}
}

// TestEncodePanicsOnWideTree checks the path encoder refuses a node
// with more than three children.
func TestEncodePanicsOnWideTree(t *testing.T) {
	tree, err := enctree.Fenwick(16)
	require.NoError(t, err)
	require.Greater(t, tree.MaxChildren(), 3)

	assert.Panics(t, func() { enctree.Encode(tree, ladder.Raise, 0, 16) })
	assert.Panics(t, func() { tree.PairLegs() })
}

// TestEncodeDomainTotal checks identity operators and out-of-range
// modes map to the empty sequence.
func TestEncodeDomainTotal(t *testing.T) {
	tree, err := enctree.BalancedTernary(4)
	require.NoError(t, err)

	assert.True(t, enctree.Encode(tree, ladder.Identity, 2, 4).IsZero())
	assert.True(t, enctree.Encode(tree, ladder.Raise, 4, 4).IsZero())
	assert.True(t, enctree.TernaryTreeTerms(ladder.Identity, 0, 4).IsZero())
	assert.True(t, enctree.BalancedBinaryTreeTerms(ladder.Lower, 7, 4).IsZero())
}

// TestConvenienceEncodersTwoTerms checks the per-call tree encoders
// always emit the two half-magnitude Majorana terms.
func TestConvenienceEncodersTwoTerms(t *testing.T) {
	for _, n := range []uint{1, 4, 9, 16} {
		for _, enc := range []majorana.EncoderFn{
			enctree.BalancedBinaryTreeTerms,
			enctree.TernaryTreeTerms,
		} {
			for j := uint(0); j < n; j++ {
				seq := enc(ladder.Raise, j, n)
				require.Equal(t, 2, seq.Len(), "n=%d j=%d", n, j)
				for _, term := range seq.Terms() {
					mag := real(term.Phase())*real(term.Phase()) +
						imag(term.Phase())*imag(term.Phase())
					assert.InDelta(t, 0.25, mag, 1e-12)
				}
			}
		}
	}
}

// TestTreeAccessors pins the structural accessors on a small chain.
func TestTreeAccessors(t *testing.T) {
	tree, err := enctree.Linear(3)
	require.NoError(t, err)

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 0, tree.Root())
	assert.Equal(t, 1, tree.MaxChildren())

	parent, ok := tree.Parent(1)
	require.True(t, ok)
	assert.Equal(t, 0, parent)
	_, ok = tree.Parent(0)
	assert.False(t, ok)

	assert.Equal(t, []int{2}, tree.Children(1))
	assert.Empty(t, tree.Children(2))

	child, ok := tree.Link(0, pauli.Z)
	require.True(t, ok)
	assert.Equal(t, 1, child)
	_, ok = tree.Link(0, pauli.X)
	assert.False(t, ok)
}

// TestConstructorSentinels checks the documented constructor failures.
func TestConstructorSentinels(t *testing.T) {
	_, err := enctree.Linear(0)
	assert.ErrorIs(t, err, enctree.ErrBadSize)
	_, err = enctree.BalancedBinary(-1)
	assert.ErrorIs(t, err, enctree.ErrBadSize)
	_, err = enctree.BalancedTernary(0)
	assert.ErrorIs(t, err, enctree.ErrBadSize)
	_, err = enctree.Fenwick(0)
	assert.ErrorIs(t, err, enctree.ErrBadSize)
	_, err = enctree.Fenwick(12)
	assert.ErrorIs(t, err, enctree.ErrNotPowerOfTwo)
}
