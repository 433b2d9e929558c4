package gate_test

import (
	"testing"

	"github.com/katalvlaran/qcirc/gate"
	"github.com/katalvlaran/qcirc/qubit"
	"github.com/stretchr/testify/require"
)

// permutation returns the n×n matrix of the basis permutation i → perm[i].
func permutation(perm ...int) [][]complex128 {
	rows := make([][]complex128, len(perm))
	for i := range rows {
		rows[i] = make([]complex128, len(perm))
	}
	for col, row := range perm {
		rows[row][col] = 1
	}

	return rows
}

func TestControlled_DistanceOne_IsCNOT(t *testing.T) {
	cx, err := gate.Controlled(1, gate.X)
	require.NoError(t, err)
	require.Equal(t, "CX", cx.Name())
	require.True(t, cx.IsControlled())
	require.Equal(t, 1, cx.ControlDistance())
	require.Equal(t, 2, cx.Lines())

	want := mustRows(t, "cnot", permutation(0, 1, 3, 2))
	require.True(t, cx.Equal(want))
	require.True(t, cx.IsUnitary(tol))
}

func TestControlled_DistanceTwo_IsToffoli(t *testing.T) {
	ccx, err := gate.Controlled(2, gate.X)
	require.NoError(t, err)
	require.Equal(t, "CCX", ccx.Name())
	require.Equal(t, 3, ccx.Lines())

	want := mustRows(t, "toffoli", permutation(0, 1, 2, 3, 4, 5, 7, 6))
	require.True(t, ccx.Equal(want))
}

func TestControlled_AppliesOnlyWhenAllControlsSet(t *testing.T) {
	const d = 3
	cz, err := gate.Controlled(d, gate.Z)
	require.NoError(t, err)
	require.Equal(t, 16, cz.Size())
	require.True(t, cz.IsUnitary(tol))

	// CCCZ is diagonal with a single -1 at |1111⟩.
	for i := 0; i < 16; i++ {
		v, err := cz.Matrix().At(i, i)
		require.NoError(t, err)
		if i == 15 {
			require.Equal(t, complex(-1, 0), v)
		} else {
			require.Equal(t, complex(1, 0), v)
		}
	}
}

func TestControlled_OnRegisters(t *testing.T) {
	cx, _ := gate.Controlled(1, gate.X)
	in, _ := qubit.ToRegister(qubit.One, qubit.Zero)
	out, err := cx.Of(in)
	require.NoError(t, err)
	want, _ := qubit.ToRegister(qubit.One, qubit.One)
	require.True(t, out.Equal(want))

	// control off: unchanged
	in, _ = qubit.ToRegister(qubit.Zero, qubit.One)
	out, err = cx.Of(in)
	require.NoError(t, err)
	require.True(t, out.Equal(in))

	ccx, _ := gate.Controlled(2, gate.X)
	in, _ = qubit.ToRegister(qubit.One, qubit.Zero, qubit.Zero)
	out, err = ccx.Of(in)
	require.NoError(t, err)
	require.True(t, out.Equal(in))
}

func TestControlled_Validation(t *testing.T) {
	_, err := gate.Controlled(0, gate.X)
	require.ErrorIs(t, err, gate.ErrInvalidDistance)
	_, err = gate.Controlled(-2, gate.X)
	require.ErrorIs(t, err, gate.ErrInvalidDistance)

	cx, _ := gate.Controlled(1, gate.X)
	_, err = gate.Controlled(1, cx)
	require.ErrorIs(t, err, gate.ErrNotSingleLine)
	_, err = gate.Controlled(1, gate.Gate{})
	require.ErrorIs(t, err, gate.ErrNotSingleLine)
}

func TestControlled_TensorDropsControlFlag(t *testing.T) {
	cx, _ := gate.Controlled(1, gate.X)
	wide, err := cx.Tensor(gate.I)
	require.NoError(t, err)
	require.False(t, wide.IsControlled())
}
