// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qcirc/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 4, 3, 2, 1i)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(sum, mustDense(t, 2, 2, 5, 5, 5, 4+1i)))
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 1, 2, 1, 2)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_Nil(t *testing.T) {
	a := mustDense(t, 1, 1, 1)
	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSub_Succeeds(t *testing.T) {
	a := mustDense(t, 1, 3, 5, 4, 3)
	b := mustDense(t, 1, 3, 1, 1, 1i)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(diff, mustDense(t, 1, 3, 4, 3, 3-1i)))
}

func TestMul_Succeeds(t *testing.T) {
	// A is 2×3, B is 3×2: A*B = 2×2
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustDense(t, 3, 2, 7, 8, 9, 10, 11, 12)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, mustDense(t, 2, 2, 58, 64, 139, 154)))
}

func TestMul_Complex(t *testing.T) {
	a := mustDense(t, 2, 2, 1i, 0, 0, 1)
	b := mustDense(t, 2, 2, 1i, 1, 1, 0)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(c, mustDense(t, 2, 2, -1, 1i, 1, 0)))
}

func TestMul_DimensionMismatch(t *testing.T) {
	a := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)
	_, err := matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestKron_Succeeds(t *testing.T) {
	// [[1,2],[3,4]] ⊗ [[0,1],[1,0]]
	a := mustDense(t, 2, 2, 1, 2, 3, 4)
	b := mustDense(t, 2, 2, 0, 1, 1, 0)

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 4, k.Cols())
	require.True(t, matrix.Equal(k, mustDense(t, 4, 4,
		0, 1, 0, 2,
		1, 0, 2, 0,
		0, 3, 0, 4,
		3, 0, 4, 0,
	)))
}

func TestKron_Vectors(t *testing.T) {
	a := mustDense(t, 2, 1, 1, 2)
	b := mustDense(t, 1, 3, 1, 1i, -1)

	k, err := matrix.Kron(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(k, mustDense(t, 2, 3, 1, 1i, -1, 2, 2i, -2)))
}

func TestScale(t *testing.T) {
	m := mustDense(t, 1, 2, 1, 1i)
	s, err := matrix.Scale(m, 2i)
	require.NoError(t, err)
	require.True(t, matrix.Equal(s, mustDense(t, 1, 2, 2i, -2)))
	// operand untouched
	require.True(t, matrix.Equal(m, mustDense(t, 1, 2, 1, 1i)))
}

func TestConjTranspose(t *testing.T) {
	m := mustDense(t, 2, 3, 1, 1i, 2, 3, 4, 5-1i)
	h, err := matrix.ConjTranspose(m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(h, mustDense(t, 3, 2, 1, 3, -1i, 4, 2, 5+1i)))
}

func TestMatVec(t *testing.T) {
	m := mustDense(t, 2, 2, 0, 1, 1, 0)
	y, err := matrix.MatVec(m, []complex128{1i, 2})
	require.NoError(t, err)
	require.Equal(t, []complex128{2, 1i}, y)

	_, err = matrix.MatVec(m, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := mustDense(t, 1, 2, 1, 1i)
	b := mustDense(t, 1, 2, 1+1e-12, 1i)

	ok, err := matrix.AllClose(a, b, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 1e-15)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustDense(t, 2, 1, 1, 1), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(mustDense(t, 1, 2, 1, 2)), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(mustDense(t, 1, 1, 1)))
}
