// SPDX-License-Identifier: MIT

// spectral.go — dense embedding, Pauli projection, Hermitian spectra.
//
// Description:
//
//	A Pauli string on n qubits is a Kronecker product of 2×2 factors,
//	so its matrix entry at (r, c) is the product over qubits of the
//	factor entries selected by the corresponding bits of r and c, with
//	qubit 0 on the most significant bit. Embed sums those entries per
//	term; Decompose projects with the same entry function; Eigenvalues
//	hands the real symmetric lift of the embedded matrix to gonum's
//	symmetric eigensolver.
//
// Errors: ErrBadDims, ErrTooLarge, ErrNotHermitian.
package spectral

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/quantafold/fermion/pauli"
)

var (
	// ErrBadDims indicates a matrix whose shape is not 2ⁿ×2ⁿ for the
	// requested qubit count.
	ErrBadDims = errors.New("spectral: matrix dimensions do not match the qubit count")

	// ErrTooLarge indicates a register past the dense-embedding limit.
	ErrTooLarge = errors.New("spectral: register too large for dense embedding")

	// ErrNotHermitian indicates a sequence whose embedded matrix is not
	// Hermitian, so its spectrum is not real.
	ErrNotHermitian = errors.New("spectral: embedded operator is not Hermitian")
)

const (
	// maxEmbedQubits bounds Embed; 2¹² rows is the largest dense matrix
	// worth materializing here.
	maxEmbedQubits = 12

	// maxDecomposeQubits bounds Decompose, which walks all 4ⁿ strings.
	maxDecomposeQubits = 6

	// hermTol is the entrywise tolerance of the Hermiticity check.
	hermTol = 1e-10

	// dropTol discards numerically zero projection coefficients.
	dropTol = 1e-12
)

// factor holds the 2×2 entries of one Pauli operator.
var factor = [4][2][2]complex128{
	pauli.I: {{1, 0}, {0, 1}},
	pauli.X: {{0, 1}, {1, 0}},
	pauli.Y: {{0, -1i}, {1i, 0}},
	pauli.Z: {{1, 0}, {0, -1}},
}

// entry evaluates one matrix element of a Pauli register, phase
// included. Qubit 0 selects the most significant bit of r and c.
func entry(reg pauli.Register, n, r, c int) complex128 {
	z := reg.Phase()
	for q := 0; q < n && z != 0; q++ {
		shift := uint(n - 1 - q)
		z *= factor[reg.At(q)][(r>>shift)&1][(c>>shift)&1]
	}

	return z
}

// Embed expands the sequence into its dense 2ⁿ×2ⁿ matrix.
func Embed(seq pauli.Sequence, n int) (*mat.CDense, error) {
	if n <= 0 || n > maxEmbedQubits {
		return nil, ErrTooLarge
	}

	dim := 1 << n
	m := mat.NewCDense(dim, dim, nil)
	for _, term := range seq.Terms() {
		for r := 0; r < dim; r++ {
			for c := 0; c < dim; c++ {
				if z := entry(term, n, r, c); z != 0 {
					m.Set(r, c, m.At(r, c)+z)
				}
			}
		}
	}

	return m, nil
}

// Decompose projects a 2ⁿ×2ⁿ matrix onto the Pauli basis. The result
// satisfies Embed(Decompose(M)) = M for any M of matching shape.
func Decompose(m *mat.CDense, n int) (pauli.Sequence, error) {
	if n <= 0 || n > maxDecomposeQubits {
		return pauli.Sequence{}, ErrTooLarge
	}
	dim := 1 << n
	if r, c := m.Dims(); r != dim || c != dim {
		return pauli.Sequence{}, ErrBadDims
	}

	seq := pauli.NewSequence()
	ops := make([]pauli.Pauli, n)
	var walk func(q int)
	walk = func(q int) {
		if q == n {
			reg := pauli.NewRegisterFrom(1, ops...)
			z := project(reg, m, n)
			if cmplx.Abs(z) > dropTol {
				seq = seq.Add(pauli.NewSequence(reg.Scale(z)))
			}
			return
		}
		for _, p := range []pauli.Pauli{pauli.I, pauli.X, pauli.Y, pauli.Z} {
			ops[q] = p
			walk(q + 1)
		}
	}
	walk(0)

	return seq, nil
}

// project computes the normalized trace inner product Tr(P·M)/2ⁿ.
func project(reg pauli.Register, m *mat.CDense, n int) complex128 {
	dim := 1 << n
	var tr complex128
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if z := entry(reg, n, r, c); z != 0 {
				tr += z * m.At(c, r)
			}
		}
	}

	return tr / complex(float64(dim), 0)
}

// Eigenvalues returns the ascending real spectrum of a Hermitian
// sequence on n qubits.
func Eigenvalues(seq pauli.Sequence, n int) ([]float64, error) {
	m, err := Embed(seq, n)
	if err != nil {
		return nil, err
	}

	dim := 1 << n
	for r := 0; r < dim; r++ {
		for c := r; c < dim; c++ {
			if cmplx.Abs(m.At(r, c)-cmplx.Conj(m.At(c, r))) > hermTol {
				return nil, ErrNotHermitian
			}
		}
	}

	// Lift H = Re + i·Im to the real symmetric [[Re, −Im], [Im, Re]];
	// its spectrum is that of H with every eigenvalue doubled.
	sym := mat.NewSymDense(2*dim, nil)
	for r := 0; r < dim; r++ {
		for c := r; c < dim; c++ {
			z := m.At(r, c)
			sym.SetSym(r, c, real(z))
			sym.SetSym(dim+r, dim+c, real(z))
			sym.SetSym(r, dim+c, -imag(z))
		}
		for c := 0; c < r; c++ {
			sym.SetSym(r, dim+c, imag(m.At(c, r)))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, false) {
		return nil, errors.New("spectral: eigendecomposition failed to converge")
	}

	doubled := es.Values(nil)
	sort.Float64s(doubled)

	spectrum := make([]float64, dim)
	for i := range spectrum {
		spectrum[i] = doubled[2*i]
	}

	return spectrum, nil
}

// SpectraEqual reports whether two ascending spectra agree within tol.
func SpectraEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}

	return true
}
