// Package enctree implements the rooted-tree, path-based encoding
// framework that generalizes the index-set encodings to arbitrary trees,
// recovering Jordan-Wigner (linear chain) and Bravyi-Kitaev (Fenwick
// shape) as special cases and adding balanced binary and ternary trees
// with provably lower worst-case Pauli weight.
//
// Structure:
//
//	Every node is one fermionic mode (and one qubit) and carries exactly
//	three descending links labeled X, Y and Z. Edges to children fill
//	link slots first, starting from Z (then Y, then X); the remaining
//	labels are "legs" — dangling link endpoints with no child. A Leg is
//	identified by its (node, label) pair.
//
// Majorana legs:
//
//	Mode u owns two Majorana legs, sₓ(u) and s_y(u): follow u's X link
//	(respectively Y link); if it is itself a leg, done — otherwise
//	descend into that child and keep following Z links until a leg is
//	reached. The Pauli string of a leg is read off the root-to-node
//	path: each ancestor contributes the label of the edge taken toward
//	the next node, the leg's own node contributes the leg label, and
//	every other qubit stays Identity. With Z-first edge filling the
//	linear chain reproduces the Jordan-Wigner strings exactly:
//	Z…ZX and Z…ZY.
//
// Ladder operators combine the two leg strings just as in the index-set
// framework: a† = ½(sₓ − i·s_y), a = ½(sₓ + i·s_y).
//
// Concrete trees:
//
//	Linear(n)          — chain rooted at 0; Jordan-Wigner, weight n.
//	BalancedBinary(n)  — recursive split at the range midpoint;
//	                     worst-case weight ≈ ⌈log₂n⌉+1.
//	BalancedTernary(n) — recursive split into three near-equal parts
//	                     (two from below the root, one from above);
//	                     asymptotically optimal ≈ ⌈log₃n⌉+1.
//	Fenwick(n)         — the Bravyi-Kitaev tree shape (n a power of
//	                     two). Fenwick nodes may have more than three
//	                     children, so this tree pairs with Scheme (the
//	                     index-set route), not with the path encoder.
//
// Scheme derives Update/Parity/Occupation index sets from the tree
// shape; the derivation is correct for Fenwick-shaped trees, where it
// reproduces the Bravyi-Kitaev sets, and feeds majorana.Encode. The
// path-based Encode is the general construction and is valid for ANY
// tree with at most three children per node; handing it a node with
// more children is a programmer error and panics.
package enctree
