// SPDX-License-Identifier: MIT

// h2.go — molecular hydrogen, minimal basis, at equilibrium geometry.
//
// Description:
//
//	The STO-3G integrals for H₂ at 0.7414 Å, in spin-orbital order
//	0 = g↑, 1 = g↓, 2 = u↑, 3 = u↓ (bonding then antibonding, spin-up
//	then spin-down within each spatial orbital). One-body entries are
//	the core integrals; two-body entries are laid out for the
//	a†_i a†_j a_k a_l convention, so each Coulomb and exchange integral
//	appears once per distinct operator ordering that reproduces it.
//	Under Jordan-Wigner the assembled operator has fifteen Pauli terms.
package hamiltonian

// Spatial integral values in Hartree.
const (
	h2Core0  = -1.252477 // bonding core energy
	h2Core1  = -0.475934 // antibonding core energy
	h2Coul00 = 0.674493  // bonding-bonding Coulomb
	h2Coul11 = 0.697397  // antibonding-antibonding Coulomb
	h2Coul01 = 0.663472  // bonding-antibonding Coulomb
	h2Exch01 = 0.181287  // bonding-antibonding exchange
)

// H2STO3G returns the four-mode molecular hydrogen tensor factory.
func H2STO3G() CoefficientFactory {
	tensor := map[string]complex128{
		// One-body core integrals.
		"0,0": h2Core0,
		"1,1": h2Core0,
		"2,2": h2Core1,
		"3,3": h2Core1,

		// Same-orbital Coulomb repulsion.
		"0,1,1,0": h2Coul00,
		"1,0,0,1": h2Coul00,
		"2,3,3,2": h2Coul11,
		"3,2,2,3": h2Coul11,

		// Cross-orbital Coulomb repulsion.
		"0,2,2,0": h2Coul01,
		"0,3,3,0": h2Coul01,
		"1,2,2,1": h2Coul01,
		"1,3,3,1": h2Coul01,
		"2,0,0,2": h2Coul01,
		"3,0,0,3": h2Coul01,
		"2,1,1,2": h2Coul01,
		"3,1,1,3": h2Coul01,

		// Exchange and double-excitation integrals.
		"0,2,0,2": h2Exch01,
		"0,1,3,2": h2Exch01,
		"0,3,1,2": h2Exch01,
		"2,0,2,0": h2Exch01,
		"2,1,3,0": h2Exch01,
		"2,3,1,0": h2Exch01,
		"1,3,1,3": h2Exch01,
		"1,0,2,3": h2Exch01,
		"1,2,0,3": h2Exch01,
		"3,1,3,1": h2Exch01,
		"3,0,2,1": h2Exch01,
		"3,2,0,1": h2Exch01,
	}

	return MapFactory(tensor)
}

// H2Modes is the spin-orbital count of the H2STO3G dataset.
const H2Modes = 4
