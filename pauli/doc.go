// Package pauli implements the exact symbolic algebra of multi-qubit
// Pauli strings: tensor products of the single-qubit operators
// {I, X, Y, Z} carrying a global complex phase.
//
// The closed single-qubit product table never introduces irrational
// phases — only ±1 and ±i — so multiplication here is exact, not
// floating-point approximate:
//
//	I·s = s·I = s    s·s = I
//	X·Y = iZ         Y·X = −iZ
//	Y·Z = iX         Z·Y = −iX
//	Z·X = iY         X·Z = −iY
//
// Register is one Pauli string with its phase; multiplying registers is
// positionwise, folding each position's table phase into the global
// phase. Registers of unequal length multiply as if the shorter were
// padded with Identity.
//
// Sequence is a canonical sum of registers keyed by Pauli-string
// signature — a Hamiltonian fragment. Combining sequences re-keys on
// signature, sums phases of identical strings, and drops strings whose
// summed phase lands within dust (1e−12) of zero, so cancellations that
// rounding leaves a 2⁻⁶⁰-scale residue on still vanish; this is what
// reduces, for example, a raw 4-qubit H₂ product expansion to its 15
// surviving terms.
//
// A round-trippable debug representation is provided by
// Register.Signature and ParseRegister.
//
// All values are immutable; operations return new values.
package pauli
