// Package fenwick implements a generic binary indexed tree and the
// index-set functions it induces — the source of the Bravyi-Kitaev
// encoding's Update, Parity and Occupation sets.
//
// Two faces of one structure:
//
//   - Tree[A] — a 1-indexed array supporting O(log n) point update and
//     prefix query under an arbitrary associative combine/identity pair.
//     The combine is NOT assumed invertible: a point update folds the
//     delta into one leaf and every ancestor, and a prefix query folds
//     combine over the indices reached by repeatedly clearing the lowest
//     set bit. Trees are persistent: Update returns a new tree.
//
//   - Pure index-set functions of a 0-based mode index and the tree
//     size, derived from three bit-twiddling primitives:
//
//     lsb(k)         = k & −k
//     ancestors(k,n) : k → k+lsb(k) → …        while ≤ n   (1-based)
//     descendants(k) : k−1 → clear lowest bit → …  down to k−lsb(k)
//
//     UpdateSet(j,n)     = 0-based ancestors of j+1 (excludes j itself)
//     ParitySet(j)       = 0-based prefix contributors of j
//     OccupationSet(j)   = {j} ∪ 0-based descendants of j+1
//     RemainderSet(j,n)  = ParitySet \ OccupationSet
//
// Index sets are mapset.Set[int] values so callers can take unions and
// symmetric differences directly.
package fenwick
