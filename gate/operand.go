package gate

import (
	"fmt"

	"github.com/katalvlaran/qcirc/matrix"
)

type operandKind int

const (
	operandNone operandKind = iota
	operandScalar
	operandGate
)

// Operand is the right-hand side of Gate.Mul: a numeric scalar or another
// gate. The zero value is rejected with ErrInvalidOperand.
type Operand struct {
	kind   operandKind
	scalar complex128
	gate   Gate
}

// Scalar wraps a complex scalar.
func Scalar(c complex128) Operand { return Operand{kind: operandScalar, scalar: c} }

// Real wraps a real scalar.
func Real(f float64) Operand { return Scalar(complex(f, 0)) }

// Op wraps a gate; multiplying by it is the matrix product.
func Op(g Gate) Operand { return Operand{kind: operandGate, gate: g} }

// Mul multiplies g by op.
//   - Scalar c: returns c·g named "c*g".
//   - Gate h:   returns the matrix product g·h named "g * h".
//   - otherwise ErrInvalidOperand.
func (g Gate) Mul(op Operand) (Gate, error) {
	switch op.kind {
	case operandScalar:
		m, err := matrix.Scale(g.m, op.scalar)
		if err != nil {
			return Gate{}, err
		}

		return wrap(m, formatScalar(op.scalar)+sepScalar+g.name), nil
	case operandGate:
		m, err := matrix.Mul(g.m, op.gate.m)
		if err != nil {
			return Gate{}, err
		}

		return wrap(m, g.name+sepMul+op.gate.name), nil
	default:
		return Gate{}, fmt.Errorf("Mul(%s): %w", g.name, ErrInvalidOperand)
	}
}

func formatScalar(c complex128) string {
	if imag(c) == 0 {
		return fmt.Sprintf("%g", real(c))
	}

	return fmt.Sprintf("%g", c)
}
