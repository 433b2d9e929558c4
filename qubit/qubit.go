// Package qubit implements the state vector algebra: single qubits and
// qubit registers as complex vectors, tagged as kets (columns) or bras
// (conjugated rows).
package qubit

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/qcirc/matrix"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/cmplxs/cscalar"
)

// Kind discriminates a column state (Ket) from a conjugated row state (Bra).
type Kind int

const (
	// Ket is a column vector |ψ⟩.
	Ket Kind = iota
	// Bra is a conjugate-transposed row vector ⟨ψ|.
	Bra
)

// String returns "ket" or "bra".
func (k Kind) String() string {
	switch k {
	case Ket:
		return "ket"
	case Bra:
		return "bra"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Qubit is an immutable quantum state of one or more qubits.
// vec has length 2^k for k qubits. Every method returns a new Qubit and
// leaves the receiver untouched.
type Qubit struct {
	vec  []complex128
	kind Kind
}

// Operator is anything that acts on a ket through its matrix.
// gate.Gate satisfies it.
type Operator interface {
	Matrix() *matrix.Dense
}

// Zero and One are the canonical basis kets |0⟩ and |1⟩.
var (
	Zero = mustBasis(0)
	One  = mustBasis(1)
)

func mustBasis(bit int) Qubit {
	q, err := Basis(bit)
	if err != nil {
		panic(err)
	}

	return q
}

// Basis returns the ket |bit⟩: [1,0] for 0 and [0,1] for 1.
// Returns ErrInvalidBit for any other value.
func Basis(bit int) (Qubit, error) {
	switch bit {
	case 0:
		return Qubit{vec: []complex128{1, 0}, kind: Ket}, nil
	case 1:
		return Qubit{vec: []complex128{0, 1}, kind: Ket}, nil
	default:
		return Qubit{}, fmt.Errorf("Basis(%d): %w", bit, ErrInvalidBit)
	}
}

// New builds a state from a copy of amps. The length must be a power of two.
func New(amps []complex128, kind Kind) (Qubit, error) {
	if kind != Ket && kind != Bra {
		return Qubit{}, ErrInvalidKind
	}
	if len(amps) == 0 {
		return Qubit{}, ErrEmptyVector
	}
	if bits.OnesCount(uint(len(amps))) != 1 {
		return Qubit{}, fmt.Errorf("New(len=%d): %w", len(amps), ErrInvalidLength)
	}
	vec := make([]complex128, len(amps))
	copy(vec, amps)

	return Qubit{vec: vec, kind: kind}, nil
}

// ToRegister tensors qs left to right into a single register state.
// Returns ErrEmptySequence when qs is empty.
func ToRegister(qs ...Qubit) (Qubit, error) {
	if len(qs) == 0 {
		return Qubit{}, ErrEmptySequence
	}
	acc := qs[0]
	for _, q := range qs[1:] {
		acc = acc.Tensor(q)
	}

	return acc, nil
}

// Kind reports whether q is a Ket or a Bra.
func (q Qubit) Kind() Kind { return q.kind }

// IsKet reports whether q is a column state.
func (q Qubit) IsKet() bool { return q.kind == Ket }

// Len returns the number of amplitudes (2^Qubits()).
func (q Qubit) Len() int { return len(q.vec) }

// Qubits returns the number of qubits the state spans.
func (q Qubit) Qubits() int {
	if len(q.vec) == 0 {
		return 0
	}

	return bits.TrailingZeros(uint(len(q.vec)))
}

// Amplitudes returns a copy of the state vector.
func (q Qubit) Amplitudes() []complex128 {
	out := make([]complex128, len(q.vec))
	copy(out, q.vec)

	return out
}

// Conjugate returns the conjugate transpose: a ket becomes a bra and vice versa.
func (q Qubit) Conjugate() Qubit {
	out := make([]complex128, len(q.vec))
	for i, v := range q.vec {
		out[i] = complex(real(v), -imag(v))
	}

	return Qubit{vec: out, kind: q.flipped()}
}

func (q Qubit) flipped() Kind {
	if q.kind == Ket {
		return Bra
	}

	return Ket
}

// Tensor returns the Kronecker product q ⊗ other. The kind is taken from q.
func (q Qubit) Tensor(other Qubit) Qubit {
	out := make([]complex128, 0, len(q.vec)*len(other.vec))
	for _, a := range q.vec {
		for _, b := range other.vec {
			out = append(out, a*b)
		}
	}

	return Qubit{vec: out, kind: q.kind}
}

// ApplyGate returns op·q. Gates act on kets only.
// Errors: ErrNotKet, matrix.ErrDimensionMismatch.
func (q Qubit) ApplyGate(op Operator) (Qubit, error) {
	if q.kind != Ket {
		return Qubit{}, fmt.Errorf("ApplyGate: %w", ErrNotKet)
	}
	out, err := matrix.MatVec(op.Matrix(), q.vec)
	if err != nil {
		return Qubit{}, fmt.Errorf("ApplyGate: %w", err)
	}

	return Qubit{vec: out, kind: Ket}, nil
}

// Inner returns ⟨q|other⟩. Both arguments must be kets.
func (q Qubit) Inner(other Qubit) (complex128, error) {
	if q.kind != Ket || other.kind != Ket {
		return 0, fmt.Errorf("Inner: %w", ErrNotKet)
	}
	if len(q.vec) != len(other.vec) {
		return 0, fmt.Errorf("Inner: %w", matrix.ErrDimensionMismatch)
	}

	return cmplxs.Dot(q.vec, other.vec), nil
}

// Outer returns the matrix |q⟩⟨other|. Both arguments must be kets.
func (q Qubit) Outer(other Qubit) (*matrix.Dense, error) {
	if q.kind != Ket || other.kind != Ket {
		return nil, fmt.Errorf("Outer: %w", ErrNotKet)
	}
	col, err := matrix.NewDenseFrom(len(q.vec), 1, q.vec)
	if err != nil {
		return nil, fmt.Errorf("Outer: %w", err)
	}
	row, err := matrix.NewDenseFrom(1, len(other.vec), other.Conjugate().vec)
	if err != nil {
		return nil, fmt.Errorf("Outer: %w", err)
	}

	return matrix.Mul(col, row)
}

// Add returns the element-wise sum q + other.
// Errors: ErrKindMismatch, matrix.ErrDimensionMismatch.
func (q Qubit) Add(other Qubit) (Qubit, error) {
	if err := q.compatible(other); err != nil {
		return Qubit{}, fmt.Errorf("Add: %w", err)
	}
	out := make([]complex128, len(q.vec))
	cmplxs.AddTo(out, q.vec, other.vec)

	return Qubit{vec: out, kind: q.kind}, nil
}

// Sub returns the element-wise difference q - other.
// Errors: ErrKindMismatch, matrix.ErrDimensionMismatch.
func (q Qubit) Sub(other Qubit) (Qubit, error) {
	if err := q.compatible(other); err != nil {
		return Qubit{}, fmt.Errorf("Sub: %w", err)
	}
	out := make([]complex128, len(q.vec))
	cmplxs.SubTo(out, q.vec, other.vec)

	return Qubit{vec: out, kind: q.kind}, nil
}

func (q Qubit) compatible(other Qubit) error {
	if q.kind != other.kind {
		return ErrKindMismatch
	}
	if len(q.vec) != len(other.vec) {
		return matrix.ErrDimensionMismatch
	}

	return nil
}

// Neg returns -q.
func (q Qubit) Neg() Qubit {
	out := make([]complex128, len(q.vec))
	cmplxs.ScaleTo(out, -1, q.vec)

	return Qubit{vec: out, kind: q.kind}
}

// Equal reports whether q and other have the same kind and identical amplitudes.
func (q Qubit) Equal(other Qubit) bool {
	return q.kind == other.kind && cmplxs.Equal(q.vec, other.vec)
}

// ApproxEqual reports whether q and other have the same kind and every
// amplitude pair differs by at most tol.
func (q Qubit) ApproxEqual(other Qubit, tol float64) bool {
	if q.kind != other.kind || len(q.vec) != len(other.vec) {
		return false
	}
	for i := range q.vec {
		if !cscalar.EqualWithinAbs(q.vec[i], other.vec[i], tol) {
			return false
		}
	}

	return true
}

// String renders the amplitudes as a row, prefixed with the kind.
func (q Qubit) String() string {
	parts := make([]string, len(q.vec))
	for i, v := range q.vec {
		if imag(v) == 0 {
			parts[i] = fmt.Sprintf("%g", real(v))
		} else {
			parts[i] = fmt.Sprintf("%g", v)
		}
	}

	return q.kind.String() + "[" + strings.Join(parts, ", ") + "]"
}
