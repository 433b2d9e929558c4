package circuit

import (
	"fmt"

	"github.com/katalvlaran/qcirc/gate"
	"github.com/katalvlaran/qcirc/qubit"
)

// Circuit is a grid of gates: grid[step][line]. Steps are time columns,
// lines are qubits, line 0 first (most significant in registers).
//
// A controlled gate placed at (step, r) spans lines 0..r of that step:
// lines 0..r-1 are its controls and line r its target. Those control lines
// must hold I, and no ordinary gate may later be placed on them.
//
// A Circuit is a single-owner builder; it is not safe for concurrent
// mutation. Compiling does not consume it.
type Circuit struct {
	nqubits int
	grid    [][]gate.Gate
	opts    Options
}

// New returns an nqubits×steps circuit with every cell set to gate.I.
// Returns ErrInvalidDimensions when either dimension is < 1.
func New(nqubits, steps int, opts ...Option) (*Circuit, error) {
	if nqubits < 1 || steps < 1 {
		return nil, fmt.Errorf("New(%d, %d): %w", nqubits, steps, ErrInvalidDimensions)
	}

	return &Circuit{
		nqubits: nqubits,
		grid:    identityGrid(nqubits, steps),
		opts:    gatherOptions(opts...),
	}, nil
}

func identityGrid(nqubits, steps int) [][]gate.Gate {
	grid := make([][]gate.Gate, steps)
	for s := range grid {
		grid[s] = make([]gate.Gate, nqubits)
		for l := range grid[s] {
			grid[s][l] = gate.I
		}
	}

	return grid
}

// Qubits returns the number of qubit lines.
func (c *Circuit) Qubits() int { return c.nqubits }

// Steps returns the number of time steps.
func (c *Circuit) Steps() int { return len(c.grid) }

// At returns the gate at (step, line).
func (c *Circuit) At(step, line int) (gate.Gate, error) {
	if err := c.checkCell(step, line); err != nil {
		return gate.Gate{}, err
	}

	return c.grid[step][line], nil
}

func (c *Circuit) checkCell(step, line int) error {
	if step < 0 || step >= len(c.grid) || line < 0 || line >= c.nqubits {
		return fmt.Errorf("cell (%d,%d): %w", step, line, ErrOutOfRange)
	}

	return nil
}

// controlledBelow reports whether a line after `line` in step holds a
// controlled gate, i.e. whether `line` is one of its control lines.
func (c *Circuit) controlledBelow(step, line int) bool {
	for _, g := range c.grid[step][line+1:] {
		if g.IsControlled() {
			return true
		}
	}

	return false
}

// AddGate places the single-line gate g at (step, line).
//
// Errors:
//   - ErrOutOfRange for a cell outside the grid.
//   - gate.ErrNotSingleLine when g spans more than one line.
//   - ErrControllingLine when a later line of the same step holds a
//     controlled gate.
func (c *Circuit) AddGate(step, line int, g gate.Gate) error {
	if err := c.checkCell(step, line); err != nil {
		return fmt.Errorf("AddGate: %w", err)
	}
	if g.Lines() != 1 {
		return fmt.Errorf("AddGate(%d,%d,%s): %w", step, line, g, gate.ErrNotSingleLine)
	}
	if c.controlledBelow(step, line) {
		return fmt.Errorf("AddGate(%d,%d,%s): %w", step, line, g, ErrControllingLine)
	}
	c.grid[step][line] = g

	return nil
}

// AddControlledGate places target at (step, line) controlled by every line
// above it: the cell receives gate.Controlled(line, target).
//
// Errors:
//   - ErrOutOfRange for a cell outside the grid.
//   - gate.ErrInvalidDistance when line == 0 (nothing above to control).
//   - gate.ErrNotSingleLine when target spans more than one line.
//   - ErrPriorGate when any of lines 0..line-1 of the step is not I.
//   - ErrControllingLine when a later line of the step already holds a
//     controlled gate.
//
// Nothing is mutated when an error is returned.
func (c *Circuit) AddControlledGate(step, line int, target gate.Gate) error {
	if err := c.checkCell(step, line); err != nil {
		return fmt.Errorf("AddControlledGate: %w", err)
	}
	for l, g := range c.grid[step][:line] {
		if !g.IsIdentity() {
			return fmt.Errorf("AddControlledGate(%d,%d,%s): line %d holds %s: %w",
				step, line, target, l, g, ErrPriorGate)
		}
	}
	if c.controlledBelow(step, line) {
		return fmt.Errorf("AddControlledGate(%d,%d,%s): %w", step, line, target, ErrControllingLine)
	}
	cg, err := gate.Controlled(line, target)
	if err != nil {
		return fmt.Errorf("AddControlledGate: %w", err)
	}
	c.grid[step][line] = cg

	return nil
}

// Concat returns a new circuit running c then other. Both must act on the
// same number of qubits (ErrQubitMismatch). Neither operand is modified;
// the result carries c's options.
func (c *Circuit) Concat(other *Circuit) (*Circuit, error) {
	if c == nil || other == nil {
		return nil, fmt.Errorf("Concat: %w", ErrNilCircuit)
	}
	if c.nqubits != other.nqubits {
		return nil, fmt.Errorf("Concat(%d, %d qubits): %w", c.nqubits, other.nqubits, ErrQubitMismatch)
	}
	grid := make([][]gate.Gate, 0, len(c.grid)+len(other.grid))
	for _, src := range [][][]gate.Gate{c.grid, other.grid} {
		for _, col := range src {
			grid = append(grid, append([]gate.Gate(nil), col...))
		}
	}
	c.opts.log.Debug().
		Int("qubits", c.nqubits).
		Int("steps", len(grid)).
		Msg("circuit: concatenated")

	return &Circuit{nqubits: c.nqubits, grid: grid, opts: c.opts}, nil
}

// Clone returns an independent copy of the circuit.
func (c *Circuit) Clone() *Circuit {
	grid := make([][]gate.Gate, len(c.grid))
	for s, col := range c.grid {
		grid[s] = append([]gate.Gate(nil), col...)
	}

	return &Circuit{nqubits: c.nqubits, grid: grid, opts: c.opts}
}

// Run compiles the circuit and applies the result to q.
func (c *Circuit) Run(q qubit.Qubit) (qubit.Qubit, error) {
	u, err := c.AsGate()
	if err != nil {
		return qubit.Qubit{}, err
	}

	return u.Of(q)
}

// Validate compiles the circuit and checks that the result is unitary
// within the configured tolerance (ErrNotUnitary otherwise).
func (c *Circuit) Validate() error {
	u, err := c.AsGate()
	if err != nil {
		return err
	}
	if !u.IsUnitary(c.opts.tol) {
		return fmt.Errorf("Validate: %w", ErrNotUnitary)
	}

	return nil
}
