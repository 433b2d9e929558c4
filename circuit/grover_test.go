package circuit_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qcirc/circuit"
	"github.com/katalvlaran/qcirc/gate"
	"github.com/katalvlaran/qcirc/qubit"
	"github.com/stretchr/testify/require"
)

// oracle marks x over n data lines by flipping the ancilla (line n) iff the
// data lines hold x.
func oracle(t *testing.T, x, n int) *circuit.Circuit {
	t.Helper()
	c := mustCircuit(t, n+1, 3)
	for line := 0; line < n; line++ {
		if x>>(n-1-line)&1 == 0 {
			require.NoError(t, c.AddGate(0, line, gate.X))
			require.NoError(t, c.AddGate(2, line, gate.X))
		}
	}
	require.NoError(t, c.AddControlledGate(1, n, gate.X))

	return c
}

// diffusion is the inversion about the mean over n data lines.
func diffusion(t *testing.T, n int) *circuit.Circuit {
	t.Helper()
	c := mustCircuit(t, n+1, 5)
	for line := 0; line < n; line++ {
		require.NoError(t, c.AddGate(0, line, gate.H))
		require.NoError(t, c.AddGate(1, line, gate.X))
		require.NoError(t, c.AddGate(3, line, gate.X))
		require.NoError(t, c.AddGate(4, line, gate.H))
	}
	require.NoError(t, c.AddControlledGate(2, n-1, gate.Z))

	return c
}

// grover runs the search for x over n data lines plus one ancilla.
func grover(t *testing.T, x, n int) qubit.Qubit {
	t.Helper()
	lines := make([]qubit.Qubit, 0, n+1)
	for i := 0; i < n; i++ {
		lines = append(lines, qubit.Zero)
	}
	initial, err := qubit.ToRegister(append(lines, qubit.One)...)
	require.NoError(t, err)

	c := mustCircuit(t, n+1, 1)
	for line := 0; line <= n; line++ {
		require.NoError(t, c.AddGate(0, line, gate.H))
	}
	iters := int(math.Pi / 4 * math.Sqrt(float64(int(1)<<n)))
	for i := 0; i < iters; i++ {
		c, err = c.Concat(oracle(t, x, n))
		require.NoError(t, err)
		c, err = c.Concat(diffusion(t, n))
		require.NoError(t, err)
	}
	require.NoError(t, c.Validate())

	out, err := c.Run(initial)
	require.NoError(t, err)

	return out
}

func TestGrover_TwoQubits_FindsEveryTarget(t *testing.T) {
	const n = 2
	for x := 0; x < 1<<n; x++ {
		out := grover(t, x, n)
		for v := 0; v < 1<<n; v++ {
			p, err := out.AncillaProbability(v)
			require.NoError(t, err)
			if v == x {
				require.InDelta(t, 1.0, p, 1e-9, "P(%d) searching %d", v, x)
			} else {
				require.InDelta(t, 0.0, p, 1e-9, "P(%d) searching %d", v, x)
			}
		}
	}
}

func TestGrover_ThreeQubits(t *testing.T) {
	const n, x = 3, 5
	out := grover(t, x, n)

	total := 0.0
	for v := 0; v < 1<<n; v++ {
		p, err := out.AncillaProbability(v)
		require.NoError(t, err)
		total += p
		if v == x {
			require.Greater(t, p, 0.9)
		} else {
			require.Less(t, p, 0.05)
		}
	}
	require.InDelta(t, 1.0, total, 1e-9)
}
