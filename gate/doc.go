// Package gate implements the gate algebra of qcirc: quantum operations as
// named 2^m×2^m complex matrices.
//
// 🚀 What is here?
//
//   - Primitive gates I, X, Z, H and the basis projectors P0, P1, built once
//     at package initialisation and shared as immutable values.
//   - Composition: Tensor / TensorOf (Kronecker product), Add, Sub, Mul
//     (scalar or matrix product through a tagged Operand), Dagger.
//   - Controlled(d, G): synthesis of the operator that applies G to a line
//     iff the d lines above it are all |1⟩.
//
// ⚙️ Usage:
//
//	cnot, err := gate.Controlled(1, gate.X)
//	if err != nil {
//	  // handle ErrInvalidDistance or ErrNotSingleLine
//	}
//	reg, _ := qubit.ToRegister(qubit.One, qubit.Zero)
//	out, _ := cnot.Of(reg) // |11⟩
//
// Names are carried for tracing only: "H(x)I", "CCX", "X * Z". Two gates are
// Equal when their matrices are, regardless of name.
//
// Unitarity (G†G = I) is a caller obligation; IsUnitary checks it on demand.
//
// Performance:
//
//   - A gate over n lines holds 4^n complex entries; Tensor, Mul and
//     Controlled are O(4^n) to O(8^n) in time.
package gate
