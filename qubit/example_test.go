package qubit_test

import (
	"fmt"

	"github.com/katalvlaran/qcirc/qubit"
)

// ExampleToRegister builds the two-qubit register |1⟩⊗|0⟩ and reads it back.
func ExampleToRegister() {
	reg, err := qubit.ToRegister(qubit.One, qubit.Zero)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(reg)
	fmt.Println("qubits:", reg.Qubits())
	// Output:
	// ket[0, 0, 1, 0]
	// qubits: 2
}

// ExampleQubit_Inner shows that the basis kets are orthonormal.
func ExampleQubit_Inner() {
	same, _ := qubit.Zero.Inner(qubit.Zero)
	cross, _ := qubit.Zero.Inner(qubit.One)
	fmt.Println(real(same), real(cross))
	// Output:
	// 1 0
}
