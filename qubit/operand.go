package qubit

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
)

type operandKind int

const (
	operandNone operandKind = iota
	operandScalar
	operandState
)

// Operand is the right-hand side of Qubit.Mul: either a numeric scalar or
// another state. Build it with Scalar, Real or State; the zero value is
// rejected with ErrInvalidOperand.
type Operand struct {
	kind   operandKind
	scalar complex128
	state  Qubit
}

// Scalar wraps a complex scalar.
func Scalar(c complex128) Operand { return Operand{kind: operandScalar, scalar: c} }

// Real wraps a real scalar.
func Real(f float64) Operand { return Scalar(complex(f, 0)) }

// State wraps a state; multiplying by it is the tensor product.
func State(q Qubit) Operand { return Operand{kind: operandState, state: q} }

// Mul multiplies q by op.
//   - Scalar: returns the scaled state as a ket.
//   - State: returns q ⊗ op; both must be kets (ErrNotKet).
//   - anything else: ErrInvalidOperand.
func (q Qubit) Mul(op Operand) (Qubit, error) {
	switch op.kind {
	case operandScalar:
		out := make([]complex128, len(q.vec))
		cmplxs.ScaleTo(out, op.scalar, q.vec)

		return Qubit{vec: out, kind: Ket}, nil
	case operandState:
		if q.kind != Ket || op.state.kind != Ket {
			return Qubit{}, fmt.Errorf("Mul: %w", ErrNotKet)
		}

		return q.Tensor(op.state), nil
	default:
		return Qubit{}, fmt.Errorf("Mul: %w", ErrInvalidOperand)
	}
}
