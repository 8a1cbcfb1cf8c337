// SPDX-License-Identifier: MIT

package hamiltonian_test

import (
	"fmt"

	"github.com/quantafold/fermion/hamiltonian"
	"github.com/quantafold/fermion/majorana"
)

// ExampleAssemble builds the molecular hydrogen operator under
// Jordan-Wigner and reports its size and trace part.
func ExampleAssemble() {
	seq := hamiltonian.Assemble(
		majorana.JordanWignerTerms, hamiltonian.H2STO3G(), hamiltonian.H2Modes)

	id, _ := seq.Term("IIII")
	fmt.Println("terms:", seq.Len())
	fmt.Printf("identity: %.4f\n", real(id.Phase()))

	// Output:
	// terms: 15
	// identity: -0.8126
}
