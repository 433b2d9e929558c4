// Package qcirc is a small classical simulator for quantum circuits: build a
// circuit out of gates on qubit lines, compile it into one unitary, and apply
// it to a register to read out measurement probabilities.
//
// 🚀 What is qcirc?
//
//	A pure-Go library in four layers:
//		• matrix/  : dense complex128 matrices, Kronecker product, gonum BLAS kernels
//		• qubit/   : kets and bras, tensor registers, inner/outer products, probabilities
//		• gate/    : primitive gates, composition, controlled-gate synthesis
//		• circuit/ : the step×line grid, placement rules, compilation via AsGate
//
// ✨ Why qcirc?
//
//   - Values, not handles: every operation returns a fresh state or gate.
//   - Sentinel errors per package, wrapped with context and matched with errors.Is.
//   - Optional structured tracing through zerolog (silent by default).
//
// Quick ASCII example (Bell pair):
//
//	line 0 ──H──●──
//	            │
//	line 1 ─────X──
//
//	c, _ := circuit.New(2, 2)
//	_ = c.AddGate(0, 0, gate.H)
//	_ = c.AddControlledGate(1, 1, gate.X)
//	u, _ := c.AsGate()
//	reg, _ := qubit.ToRegister(qubit.Zero, qubit.Zero)
//	out, _ := u.Of(reg) // P(00) = P(11) = 0.5
//
// Cost: a circuit over n lines compiles to a 2ⁿ×2ⁿ dense matrix, so memory is
// O(4ⁿ). Keep n small.
//
//	go get github.com/katalvlaran/qcirc
package qcirc
