package circuit

import (
	"fmt"

	"github.com/katalvlaran/qcirc/gate"
	"github.com/katalvlaran/qcirc/matrix"
)

// AsGate compiles the circuit into a single gate.
//
// Implementation:
//   - Stage 1: build one operator per step. When the step holds a
//     controlled gate, the operator is the tensor of the cells from the
//     first controlled line downward: that gate already spans every line
//     above it, which by placement rule hold I. Otherwise it is the tensor
//     of the whole column.
//   - Stage 2: multiply the step operators in reverse time order,
//     U = U_last · … · U_1.
//
// Errors:
//   - matrix.ErrDimensionMismatch when a step operator does not span the
//     circuit's qubit count (a malformed grid).
//
// Complexity:
//   - Time O(steps·8^n), Space O(4^n) for n qubit lines.
func (c *Circuit) AsGate() (gate.Gate, error) {
	ops := make([]gate.Gate, len(c.grid))
	for s := range c.grid {
		op, err := c.stepGate(s)
		if err != nil {
			return gate.Gate{}, err
		}
		ops[s] = op
	}

	u := ops[len(ops)-1]
	for s := len(ops) - 2; s >= 0; s-- {
		var err error
		if u, err = u.Mul(gate.Op(ops[s])); err != nil {
			return gate.Gate{}, fmt.Errorf("AsGate: step %d: %w", s, err)
		}
	}
	c.opts.log.Debug().
		Int("qubits", c.nqubits).
		Int("steps", len(c.grid)).
		Int("size", u.Size()).
		Msg("circuit: compiled")

	return u, nil
}

// stepGate returns the operator of a single time step.
func (c *Circuit) stepGate(step int) (gate.Gate, error) {
	col := c.grid[step]
	from := 0
	for l, g := range col {
		if g.IsControlled() {
			from = l
			break
		}
	}
	op, err := gate.TensorOf(col[from:]...)
	if err != nil {
		return gate.Gate{}, fmt.Errorf("AsGate: step %d: %w", step, err)
	}
	if op.Lines() != c.nqubits {
		return gate.Gate{}, fmt.Errorf("AsGate: step %d spans %d lines, want %d: %w",
			step, op.Lines(), c.nqubits, matrix.ErrDimensionMismatch)
	}
	c.opts.log.Debug().
		Int("step", step).
		Int("from_line", from).
		Str("op", op.Name()).
		Msg("circuit: step compiled")

	return op, nil
}
