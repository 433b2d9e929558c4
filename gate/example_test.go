package gate_test

import (
	"fmt"

	"github.com/katalvlaran/qcirc/gate"
	"github.com/katalvlaran/qcirc/qubit"
)

// ExampleControlled synthesises CNOT and applies it to |10⟩.
func ExampleControlled() {
	cnot, err := gate.Controlled(1, gate.X)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	in, _ := qubit.ToRegister(qubit.One, qubit.Zero)
	out, _ := cnot.Of(in)
	fmt.Println(cnot.Name(), out)
	fmt.Print(cnot.Matrix())
	// Output:
	// CX ket[0, 0, 0, 1]
	// [1, 0, 0, 0]
	// [0, 1, 0, 0]
	// [0, 0, 0, 1]
	// [0, 0, 1, 0]
}

// ExampleTensorOf composes a three-line operator from single-line gates.
func ExampleTensorOf() {
	g, err := gate.TensorOf(gate.H, gate.I, gate.X)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(g.Name(), g.Lines(), g.Size())
	// Output:
	// H(x)I(x)X 3 8
}
