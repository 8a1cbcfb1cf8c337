// SPDX-License-Identifier: MIT

package enctree_test

import (
	"fmt"
	"sort"

	"github.com/quantafold/fermion/enctree"
	"github.com/quantafold/fermion/ladder"
)

// ExampleEncode encodes a creation operator under the balanced ternary
// tree on four modes. Mode 2 roots the tree, so mode 0's Majorana legs
// sit one Z edge below it.
func ExampleEncode() {
	tree, err := enctree.BalancedTernary(4)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	for _, term := range enctree.Encode(tree, ladder.Raise, 0, 4).Terms() {
		fmt.Println(term)
	}

	// Output:
	// (0.5+0i)·XIZI
	// (0-0.5i)·YIZI
}

// ExampleScheme derives Bravyi-Kitaev style index sets from the
// Fenwick tree shape.
func ExampleScheme() {
	tree, err := enctree.Fenwick(8)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	update := tree.UpdateSet(2).ToSlice()
	sort.Ints(update)
	fmt.Println("update(2):", update)

	// Output:
	// update(2): [3 7]
}
