// SPDX-License-Identifier: MIT

package majorana_test

import (
	"fmt"

	"github.com/quantafold/fermion/ladder"
	"github.com/quantafold/fermion/majorana"
)

// ExampleEncode prints the Jordan-Wigner form of a creation operator
// in the middle of a four-mode register: the Z-string below, X or Y on
// the mode itself.
func ExampleEncode() {
	for _, term := range majorana.JordanWignerTerms(ladder.Raise, 2, 4).Terms() {
		fmt.Println(term)
	}

	// Output:
	// (0.5+0i)·ZZXI
	// (0-0.5i)·ZZYI
}
