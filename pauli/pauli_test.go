package pauli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantafold/fermion/pauli"
)

var singles = []pauli.Pauli{pauli.I, pauli.X, pauli.Y, pauli.Z}

// TestMul_Closure verifies that every single-qubit product yields a
// Pauli with a phase in {±1, ±i}.
func TestMul_Closure(t *testing.T) {
	phases := map[complex128]bool{1: true, -1: true, 1i: true, -1i: true}
	for _, a := range singles {
		for _, b := range singles {
			p, ph := pauli.Mul(a, b)
			assert.Contains(t, singles, p, "%v·%v must stay in the Pauli group", a, b)
			assert.True(t, phases[ph], "%v·%v phase %v outside {±1,±i}", a, b, ph)
		}
	}
}

// TestMul_Table pins the non-trivial entries of the closed table.
func TestMul_Table(t *testing.T) {
	cases := []struct {
		a, b, want pauli.Pauli
		phase      complex128
	}{
		{pauli.X, pauli.Y, pauli.Z, 1i},
		{pauli.Y, pauli.X, pauli.Z, -1i},
		{pauli.Y, pauli.Z, pauli.X, 1i},
		{pauli.Z, pauli.Y, pauli.X, -1i},
		{pauli.Z, pauli.X, pauli.Y, 1i},
		{pauli.X, pauli.Z, pauli.Y, -1i},
	}
	for _, tc := range cases {
		p, ph := pauli.Mul(tc.a, tc.b)
		assert.Equal(t, tc.want, p, "%v·%v", tc.a, tc.b)
		assert.Equal(t, tc.phase, ph, "%v·%v phase", tc.a, tc.b)
	}

	for _, s := range singles {
		p, ph := pauli.Mul(s, s)
		assert.Equal(t, pauli.I, p, "s·s must be identity")
		assert.Equal(t, complex128(1), ph)
	}
}

// TestMul_CommutationStructure verifies multiplication commutes exactly
// when the operands are equal or either is the identity, and
// anti-commutes otherwise.
func TestMul_CommutationStructure(t *testing.T) {
	for _, a := range singles {
		for _, b := range singles {
			pab, phab := pauli.Mul(a, b)
			pba, phba := pauli.Mul(b, a)
			require.Equal(t, pab, pba, "operator part always agrees")
			if a == b || a == pauli.I || b == pauli.I {
				assert.Equal(t, phab, phba, "%v·%v must commute", a, b)
			} else {
				assert.Equal(t, phab, -phba, "%v·%v must anti-commute", a, b)
			}
		}
	}
}

// TestMul_Associativity spot-checks associativity through register
// triple products over all single-qubit combinations.
func TestMul_Associativity(t *testing.T) {
	reg := func(p pauli.Pauli) pauli.Register { return pauli.NewRegisterFrom(1, p) }
	for _, a := range singles {
		for _, b := range singles {
			for _, c := range singles {
				left := reg(a).Mul(reg(b)).Mul(reg(c))
				right := reg(a).Mul(reg(b).Mul(reg(c)))
				assert.Equal(t, left.Signature(), right.Signature())
				assert.Equal(t, left.Phase(), right.Phase(), "(%v·%v)·%v", a, b, c)
			}
		}
	}
}

// TestRegister_MulPads verifies unequal-length registers multiply as if
// the shorter were Identity-padded.
func TestRegister_MulPads(t *testing.T) {
	short := pauli.NewRegisterFrom(2, pauli.X)
	long := pauli.NewRegisterFrom(0.5i, pauli.I, pauli.Z, pauli.Y)

	prod := short.Mul(long)
	require.Equal(t, 3, prod.Len())
	assert.Equal(t, "XZY", prod.Signature())
	assert.Equal(t, complex128(1i), prod.Phase())
}

// TestRegister_With verifies the builder places operators and pads.
func TestRegister_With(t *testing.T) {
	r := pauli.NewRegister(2).With(3, pauli.Z)
	assert.Equal(t, "IIIZ", r.Signature())
	assert.Equal(t, pauli.I, r.At(10), "positions beyond Len read Identity")
	assert.Equal(t, 1, r.Weight())
}

// TestParseRegister_RoundTrip verifies Signature/ParseRegister round-trip
// and the invalid-character sentinel.
func TestParseRegister_RoundTrip(t *testing.T) {
	r, err := pauli.ParseRegister("ZZXIY")
	require.NoError(t, err)
	assert.Equal(t, "ZZXIY", r.Signature())
	assert.Equal(t, complex128(1), r.Phase())

	_, err = pauli.ParseRegister("ZQX")
	assert.ErrorIs(t, err, pauli.ErrBadPauli)
}

// TestSequence_CombinesAndCancels verifies signature merging and exact
// zero cancellation.
func TestSequence_CombinesAndCancels(t *testing.T) {
	a := pauli.NewRegisterFrom(0.5, pauli.X, pauli.I)
	b := pauli.NewRegisterFrom(0.25, pauli.X, pauli.I)
	c := pauli.NewRegisterFrom(-0.75, pauli.X, pauli.I)

	s := pauli.NewSequence(a, b)
	require.Equal(t, 1, s.Len(), "identical signatures must merge")
	merged, ok := s.Term("XI")
	require.True(t, ok)
	assert.Equal(t, complex128(0.75), merged.Phase())

	cancelled := s.Add(pauli.NewSequence(c))
	assert.True(t, cancelled.IsZero(), "exactly zero summed phase must drop the term")
}

// TestSequence_CancelsRoundedSums verifies an intended cancellation
// still drops the term when the partial sums round: 0.1+0.2−0.3 leaves
// a ~4e−17 residue, below the dust tolerance.
func TestSequence_CancelsRoundedSums(t *testing.T) {
	s := pauli.NewSequence(
		pauli.NewRegisterFrom(0.1, pauli.X, pauli.Y),
		pauli.NewRegisterFrom(0.2, pauli.X, pauli.Y),
		pauli.NewRegisterFrom(-0.3, pauli.X, pauli.Y),
	)

	assert.True(t, s.IsZero(), "rounding residue must count as cancellation")

	// A genuinely small coefficient above the tolerance must survive.
	kept := pauli.NewSequence(pauli.NewRegisterFrom(1e-9, pauli.Z))
	assert.Equal(t, 1, kept.Len())
}

// TestSequence_MulDistributes verifies the Cartesian product expansion
// with per-pair register multiplication.
func TestSequence_MulDistributes(t *testing.T) {
	// (X + Z)·(X − Z) = X² − XZ + ZX − Z² = −XZ + ZX = −(−iY) + iY = 2iY.
	x := pauli.NewRegisterFrom(1, pauli.X)
	z := pauli.NewRegisterFrom(1, pauli.Z)
	zNeg := pauli.NewRegisterFrom(-1, pauli.Z)

	prod := pauli.NewSequence(x, z).Mul(pauli.NewSequence(x, zNeg))
	require.Equal(t, 1, prod.Len(), "X² and Z² must cancel, XZ and ZX must merge")

	y, ok := prod.Term("Y")
	require.True(t, ok)
	assert.Equal(t, complex128(2i), y.Phase())
}

// TestSequence_MaxWeight verifies the weight aggregate.
func TestSequence_MaxWeight(t *testing.T) {
	s := pauli.NewSequence(
		pauli.NewRegisterFrom(1, pauli.X, pauli.I, pauli.I),
		pauli.NewRegisterFrom(1, pauli.Z, pauli.Z, pauli.Y),
	)
	assert.Equal(t, 3, s.MaxWeight())
	assert.Equal(t, 0, pauli.NewSequence().MaxWeight())
}

// TestSequence_TermsDeterministic verifies sorted iteration order.
func TestSequence_TermsDeterministic(t *testing.T) {
	s := pauli.NewSequence(
		pauli.NewRegisterFrom(1, pauli.Z),
		pauli.NewRegisterFrom(1, pauli.X),
		pauli.NewRegisterFrom(1, pauli.I),
	)
	terms := s.Terms()
	require.Len(t, terms, 3)
	assert.Equal(t, "I", terms[0].Signature())
	assert.Equal(t, "X", terms[1].Signature())
	assert.Equal(t, "Z", terms[2].Signature())
}
