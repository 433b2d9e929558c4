// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the gate and
// qubit algebras: element-wise addition and subtraction, matrix product,
// Kronecker product, conjugate transpose, scalar scaling and matrix-vector
// product. All functions perform strict fail-fast validation, never mutate
// their operands and return a freshly allocated result.
//
// Purpose:
//   - Route the O(n³)/O(n²) products through BLAS (gonum cblas128) instead of hand loops.
//   - Define operation tags for determinism and uniform error reporting.

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/cmplxs/cscalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opSub           = "Sub"
	opMul           = "Mul"
	opKron          = "Kron"
	opScale         = "Scale"
	opConjTranspose = "ConjTranspose"
	opMatVec        = "MatVec"
	opAllClose      = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// general exposes the receiver's storage as a BLAS general matrix (no copy).
func (m *Dense) general() cblas128.General {
	return cblas128.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
// Complexity: O(r*c).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	cmplxs.AddTo(res.data, a.data, b.data)

	return res, nil
}

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
// Complexity: O(r*c).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	cmplxs.SubTo(res.data, a.data, b.data)

	return res, nil
}

// Mul returns the matrix product a·b computed with cblas128.Gemm.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (non-nil, a.Cols == b.Rows).
//   - Stage 2: allocate the r×c result and run Gemm(NoTrans, NoTrans, 1, a, b, 0, res).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.general(), b.general(), 0, res.general())

	return res, nil
}

// Kron returns the Kronecker product a ⊗ b of shape (a.r*b.r)×(a.c*b.c).
// Entry (i*b.r+k, j*b.c+l) equals a[i,j]*b[k,l].
//
// Implementation:
//   - Stage 1: validate both operands non-nil.
//   - Stage 2: for each a[i,j] write the scaled block of b; zero blocks are skipped.
//
// Complexity:
//   - Time O(a.r*a.c*b.r*b.c), Space the same.
func Kron(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := a.r*b.r, a.c*b.c
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	var i, j, k, l int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			av := a.data[i*a.c+j]
			if av == 0 {
				continue // block stays zero
			}
			for k = 0; k < b.r; k++ {
				rowBase := (i*b.r+k)*cols + j*b.c
				for l = 0; l < b.c; l++ {
					res.data[rowBase+l] = av * b.data[k*b.c+l]
				}
			}
		}
	}

	return res, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	cmplxs.ScaleTo(res.data, alpha, m.data)

	return res, nil
}

// ConjTranspose returns the conjugate transpose m† (c×r).
// Complexity: O(r*c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConjTranspose, err)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// MatVec returns y = m·x computed with cblas128.Gemv.
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]complex128, m.r)
	cblas128.Gemv(blas.NoTrans, 1, m.general(),
		cblas128.Vector{N: len(x), Data: x, Inc: 1},
		0, cblas128.Vector{N: m.r, Data: y, Inc: 1})

	return y, nil
}

// Equal reports whether a and b have the same shape and identical entries.
// Nil operands are never equal.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}

	return cmplxs.Equal(a.data, b.data)
}

// AllClose reports whether |a[i,j]-b[i,j]| <= tol for every entry.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "AllClose").
// Complexity: O(r*c).
func AllClose(a, b *Dense, tol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range a.data {
		if !cscalar.EqualWithinAbs(a.data[i], b.data[i], tol) {
			return false, nil
		}
	}

	return true, nil
}
