package circuit

import "github.com/katalvlaran/qcirc/gate"

// Derived gates compiled once from one-step circuits.
var (
	// CNOT flips line 1 iff line 0 is |1⟩.
	CNOT = mustCompile(NewCNOT())
	// Toffoli flips line 2 iff lines 0 and 1 are both |1⟩.
	Toffoli = mustCompile(NewToffoli())
)

// NewCNOT returns a fresh 2-qubit, 1-step circuit holding a controlled X
// with line 0 as control and line 1 as target.
func NewCNOT() *Circuit {
	return mustControlled(2, gate.X)
}

// NewToffoli returns a fresh 3-qubit, 1-step circuit holding a doubly
// controlled X with lines 0 and 1 as controls and line 2 as target.
func NewToffoli() *Circuit {
	return mustControlled(3, gate.X)
}

func mustControlled(nqubits int, target gate.Gate) *Circuit {
	c, err := New(nqubits, 1)
	if err != nil {
		panic(err)
	}
	if err = c.AddControlledGate(0, nqubits-1, target); err != nil {
		panic(err)
	}

	return c
}

func mustCompile(c *Circuit) gate.Gate {
	g, err := c.AsGate()
	if err != nil {
		panic(err)
	}

	return g
}
