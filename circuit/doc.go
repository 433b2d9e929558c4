// Package circuit models quantum circuits as a grid of gates over qubit
// lines (rows) and time steps (columns), and compiles a circuit into a
// single gate.
//
// Placement rules:
//
//   - Every cell starts as gate.I.
//   - AddControlledGate(step, r, G) places G on line r controlled by lines
//     0..r-1 of the same step; those lines must still hold I.
//   - Once a step holds a controlled gate on line r, lines above r in that
//     step are its controls and AddGate refuses them.
//
// Quick ASCII example (CNOT then H, 2 qubits, 2 steps):
//
//	line 0 ──●──H──
//	         │
//	line 1 ──X─────
//
//	c, _ := circuit.New(2, 2)
//	_ = c.AddControlledGate(0, 1, gate.X)
//	_ = c.AddGate(1, 0, gate.H)
//	u, _ := c.AsGate()
//
// Circuits of equal width concatenate with Concat; compiled gates apply to
// registers built with qubit.ToRegister.
//
// Performance:
//
//   - Compilation materialises dense 2ⁿ×2ⁿ operators: O(4ⁿ) memory and
//     O(steps·8ⁿ) time for n lines. This is the dominant cost of the
//     library; keep n small.
package circuit
