// Package majorana implements the generic Majorana-decomposition
// encoding framework that turns a ladder operator on fermionic modes
// into a two-term Pauli sequence on qubits.
//
// The central design point: encodings are data, not code. A Scheme is
// nothing but three index-set functions,
//
//	Update(j, n) — qubits whose stored value flips with mode j
//	Parity(j)    — qubits holding the parity of modes 0..j−1
//	Occupation(j)— qubits holding the occupation of mode j
//
// and one shared Encode covers every index-set-based encoding. The two
// Majorana operators read directly off the sets:
//
//	c_j = X on {j} ∪ Update(j,n),  Z on Parity(j)
//	d_j = Y on j,  X on Update(j,n),  Z on (Parity(j) ⊕ Occupation(j)) \ {j}
//
// (⊕ is symmetric difference), and the ladder operators are their exact
// combinations a† = ½(c − i·d), a = ½(c + i·d), so every encoded
// operator is exactly two Pauli terms regardless of n.
//
// Concrete schemes:
//
//	JordanWigner — Update = ∅, Parity = {0..j−1}, Occupation = {j}.
//	  O(n) worst-case weight, strings like Z…ZX.
//	Parity       — Update = {j+1..n−1}, Parity = {j−1} (j>0),
//	  Occupation = {j−1, j} (j>0). The mirror image of Jordan-Wigner.
//	BravyiKitaev — the Fenwick-tree sets from package fenwick,
//	  O(log n) worst-case weight.
//
// Domain-total conditions: encoding the Identity unit, or a mode index
// j ≥ n, yields the empty sequence — never an error.
package majorana
