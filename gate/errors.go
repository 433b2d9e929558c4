package gate

import "errors"

var (
	// ErrEmptySequence indicates TensorOf was called with no gates.
	ErrEmptySequence = errors.New("gate: sequence of gates must not be empty")
	// ErrNotPowerOfTwo indicates a matrix whose side is not 2^m.
	ErrNotPowerOfTwo = errors.New("gate: matrix side must be a power of two")
	// ErrInvalidOperand indicates a multiplication operand that is neither a scalar nor a gate.
	ErrInvalidOperand = errors.New("gate: operand must be a scalar or a gate")
	// ErrInvalidDistance indicates a control distance below 1.
	ErrInvalidDistance = errors.New("gate: control distance must be >= 1")
	// ErrNotSingleLine indicates a gate spanning more than one qubit line where one is required.
	ErrNotSingleLine = errors.New("gate: gate must act on a single qubit line")
)
