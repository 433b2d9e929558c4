package qubit

import "errors"

// Sentinel errors for qubit operations.
var (
	// ErrInvalidBit indicates a basis state other than 0 or 1 was requested.
	ErrInvalidBit = errors.New("qubit: basis bit must be 0 or 1")
	// ErrInvalidKind indicates a state kind other than Ket or Bra.
	ErrInvalidKind = errors.New("qubit: kind must be Ket or Bra")
	// ErrEmptyVector indicates a state was built from no amplitudes.
	ErrEmptyVector = errors.New("qubit: state vector must not be empty")
	// ErrEmptySequence indicates a register was requested from no qubits.
	ErrEmptySequence = errors.New("qubit: sequence of qubits must not be empty")
	// ErrNotKet indicates an operation that acts only on kets received a bra.
	ErrNotKet = errors.New("qubit: state must be a ket")
	// ErrKindMismatch indicates element-wise arithmetic between a ket and a bra.
	ErrKindMismatch = errors.New("qubit: both states must be of the same kind")
	// ErrInvalidOperand indicates a multiplication operand that is neither a scalar nor a state.
	ErrInvalidOperand = errors.New("qubit: operand must be a scalar or a state")
	// ErrOutOfRange indicates a readout value outside the register.
	ErrOutOfRange = errors.New("qubit: value out of range")
	// ErrInvalidLength indicates a state vector whose length is not a power of two.
	ErrInvalidLength = errors.New("qubit: state length must be a power of two")
)
