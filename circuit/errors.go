package circuit

import "errors"

// Sentinel errors for circuit construction and compilation.
var (
	// ErrInvalidDimensions indicates a circuit with fewer than one qubit or one step.
	ErrInvalidDimensions = errors.New("circuit: qubits and steps must be >= 1")
	// ErrOutOfRange indicates a step or line index outside the grid.
	ErrOutOfRange = errors.New("circuit: cell out of range")
	// ErrControllingLine indicates a placement on a line that a later line's
	// controlled gate already uses as a control in the same step.
	ErrControllingLine = errors.New("circuit: cannot apply a gate to a qubit that is controlling")
	// ErrPriorGate indicates a controlled gate whose control lines are not all identity.
	ErrPriorGate = errors.New("circuit: cannot add a controlled gate where the previous gates are not I")
	// ErrQubitMismatch indicates concatenation of circuits over different qubit counts.
	ErrQubitMismatch = errors.New("circuit: both circuits must work on the same number of qubits")
	// ErrNotUnitary indicates a compiled circuit that fails the unitarity check.
	ErrNotUnitary = errors.New("circuit: compiled operator is not unitary")
	// ErrNilCircuit indicates a nil *Circuit argument.
	ErrNilCircuit = errors.New("circuit: nil circuit")
)
