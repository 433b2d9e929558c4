package gate

import (
	"math"

	"github.com/katalvlaran/qcirc/qubit"
)

// Primitive gates, built once at package initialisation and never mutated.
var (
	// I is the single-line identity.
	I = mustFromRows("I", [][]complex128{{1, 0}, {0, 1}})
	// X is the Pauli bit-flip.
	X = mustFromRows("X", [][]complex128{{0, 1}, {1, 0}})
	// Z is the Pauli phase-flip.
	Z = mustFromRows("Z", [][]complex128{{1, 0}, {0, -1}})
	// H is the Hadamard transform.
	H = mustFromRows("H", [][]complex128{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	})
	// P0 is the projector |0⟩⟨0|.
	P0 = mustProjector("P0", qubit.Zero)
	// P1 is the projector |1⟩⟨1|.
	P1 = mustProjector("P1", qubit.One)
)

func mustFromRows(name string, rows [][]complex128) Gate {
	g, err := FromRows(name, rows)
	if err != nil {
		panic(err)
	}

	return g
}

func mustProjector(name string, q qubit.Qubit) Gate {
	m, err := q.Outer(q)
	if err != nil {
		panic(err)
	}
	g, err := New(m, name)
	if err != nil {
		panic(err)
	}

	return g
}
