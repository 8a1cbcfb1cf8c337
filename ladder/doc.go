// Package ladder models indexed creation/annihilation operators and the
// normal-ordering machinery that rewrites their products into canonical
// form while tracking every sign mandated by the operator statistics.
//
// Building blocks:
//
//   - Op — tagged operator unit: Identity, Raise (a†) or Lower (a).
//   - IxOp — an Op bound to the unsigned mode index it acts on; the unit
//     type plugged into the term algebra (term.P[IxOp], term.S[IxOp]).
//   - Algebra — the statistics abstraction. Fermion implements the
//     canonical anti-commutation relations (CAR), Boson the canonical
//     commutation relations (CCR). Resolving one out-of-order adjacent
//     pair yields one term (distinct indices: a swap, with a sign flip
//     under CAR) or two terms (matching indices: the Kronecker-delta
//     contraction plus the swap).
//
// Canonical forms:
//
//	Normal order — every Raise precedes every Lower.
//	Index order  — normal order, with Raise indices ascending and
//	               Lower indices descending.
//
// NormalOrder folds every unit of every product through the algebra's
// resolution step, producing a canonical sum (matching-index resolution
// branches, so term counts can grow before cancellation trims them).
// IndexOrder additionally sorts the Raise and Lower subsequences with a
// swap-tracking selection sort whose side channel accumulates the phase
// of each positional move — (−1)^moves under CAR, +1 under CCR.
//
// The sort is intentionally O(n²): n is the arity of one product term
// (at most 4 for one/two-body integrals) and the transposition count,
// not speed, is the contract.
//
// Errors: both constructors return ErrUnresolved when resolution fails
// to terminate within its structural budget; that signals malformed
// input, a defect to report, not a condition to retry. An Algebra that
// resolves a distinct-index pair into more than one term is unsupported
// and panics (see Algebra.Resolve).
package ladder
