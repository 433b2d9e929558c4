// Package matrix offers the dense complex matrix used as storage for quantum
// gates and as the result of outer products.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked At/Set.
//   - Kernels (Add, Sub, Mul, Kron, Scale, ConjTranspose, MatVec) that never
//     mutate their operands. Mul and MatVec run through gonum's cblas128.
//   - Validators and sentinel errors shared by the qubit, gate and circuit
//     packages.
//
// Dense matrices cost O(r*c) memory; a gate over n qubit lines is a
// 2ⁿ×2ⁿ matrix, so memory grows as O(4ⁿ).
package matrix
