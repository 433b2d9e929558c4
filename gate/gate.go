package gate

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/qcirc/matrix"
	"github.com/katalvlaran/qcirc/qubit"
)

// Name separators used when composing display names.
const (
	sepTensor = "(x)"
	sepAdd    = "+"
	sepSub    = "-"
	sepMul    = " * "
	sepScalar = "*"
	sufDagger = "†"
)

// Gate is an immutable quantum operation: a 2^m×2^m complex matrix with a
// display name. control is the control distance for synthesised
// controlled gates and 0 for everything else.
type Gate struct {
	m       *matrix.Dense
	name    string
	control int
}

// Compile-time assertions.
var (
	_ qubit.Operator = Gate{}
	_ fmt.Stringer   = Gate{}
)

// New builds a gate from a copy of m. m must be square with a side of 2^k.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotPowerOfTwo.
func New(m *matrix.Dense, name string) (Gate, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Gate{}, fmt.Errorf("New(%s): %w", name, err)
	}
	if bits.OnesCount(uint(m.Rows())) != 1 {
		return Gate{}, fmt.Errorf("New(%s): %w", name, ErrNotPowerOfTwo)
	}

	return Gate{m: m.Clone(), name: name}, nil
}

// FromRows builds a gate from a literal matrix given row by row.
func FromRows(name string, rows [][]complex128) (Gate, error) {
	if len(rows) == 0 {
		return Gate{}, fmt.Errorf("FromRows(%s): %w", name, matrix.ErrInvalidDimensions)
	}
	n := len(rows)
	data := make([]complex128, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return Gate{}, fmt.Errorf("FromRows(%s): %w", name, matrix.ErrNonSquare)
		}
		data = append(data, row...)
	}
	m, err := matrix.NewDenseFrom(n, n, data)
	if err != nil {
		return Gate{}, fmt.Errorf("FromRows(%s): %w", name, err)
	}

	return New(m, name)
}

// wrap builds a gate around a kernel result without copying it.
func wrap(m *matrix.Dense, name string) Gate {
	return Gate{m: m, name: name}
}

// Matrix returns a copy of the gate's matrix.
func (g Gate) Matrix() *matrix.Dense {
	if g.m == nil {
		return nil
	}

	return g.m.Clone()
}

// Name returns the display name.
func (g Gate) Name() string { return g.name }

// String implements fmt.Stringer with the display name.
func (g Gate) String() string { return g.name }

// Size returns the side of the matrix (2^Lines()).
func (g Gate) Size() int {
	if g.m == nil {
		return 0
	}

	return g.m.Rows()
}

// Lines returns the number of qubit lines the gate acts on.
func (g Gate) Lines() int {
	if g.m == nil {
		return 0
	}

	return bits.TrailingZeros(uint(g.m.Rows()))
}

// IsControlled reports whether g was produced by Controlled.
func (g Gate) IsControlled() bool { return g.control > 0 }

// ControlDistance returns the control distance of a controlled gate, 0 otherwise.
func (g Gate) ControlDistance() int { return g.control }

// Tensor returns g ⊗ other, named "g(x)other".
func (g Gate) Tensor(other Gate) (Gate, error) {
	m, err := matrix.Kron(g.m, other.m)
	if err != nil {
		return Gate{}, fmt.Errorf("Tensor(%s, %s): %w", g.name, other.name, err)
	}

	return wrap(m, g.name+sepTensor+other.name), nil
}

// TensorOf folds Tensor over gates left to right. A single gate is
// returned unchanged. Returns ErrEmptySequence when gates is empty.
func TensorOf(gates ...Gate) (Gate, error) {
	if len(gates) == 0 {
		return Gate{}, ErrEmptySequence
	}
	acc := gates[0]
	for _, g := range gates[1:] {
		var err error
		if acc, err = acc.Tensor(g); err != nil {
			return Gate{}, err
		}
	}

	return acc, nil
}

// Of applies the gate to q; see qubit.Qubit.ApplyGate.
func (g Gate) Of(q qubit.Qubit) (qubit.Qubit, error) {
	return q.ApplyGate(g)
}

// Add returns the element-wise sum, named "g+other".
func (g Gate) Add(other Gate) (Gate, error) {
	m, err := matrix.Add(g.m, other.m)
	if err != nil {
		return Gate{}, err
	}

	return wrap(m, g.name+sepAdd+other.name), nil
}

// Sub returns the element-wise difference, named "g-other".
func (g Gate) Sub(other Gate) (Gate, error) {
	m, err := matrix.Sub(g.m, other.m)
	if err != nil {
		return Gate{}, err
	}

	return wrap(m, g.name+sepSub+other.name), nil
}

// Dagger returns the adjoint g†.
func (g Gate) Dagger() (Gate, error) {
	m, err := matrix.ConjTranspose(g.m)
	if err != nil {
		return Gate{}, err
	}

	return wrap(m, g.name+sufDagger), nil
}

// IsUnitary reports whether g†·g equals the identity within tol.
// The zero Gate is not unitary.
func (g Gate) IsUnitary(tol float64) bool {
	if g.m == nil {
		return false
	}
	adj, err := matrix.ConjTranspose(g.m)
	if err != nil {
		return false
	}
	prod, err := matrix.Mul(adj, g.m)
	if err != nil {
		return false
	}
	id, err := matrix.NewIdentity(g.m.Rows())
	if err != nil {
		return false
	}
	ok, err := matrix.AllClose(prod, id, tol)

	return err == nil && ok
}

// Equal reports whether both gates have identical matrices. Names are
// display-only and are not compared.
func (g Gate) Equal(other Gate) bool {
	return matrix.Equal(g.m, other.m)
}

// ApproxEqual reports whether both matrices agree entry-wise within tol.
func (g Gate) ApproxEqual(other Gate, tol float64) bool {
	ok, err := matrix.AllClose(g.m, other.m, tol)

	return err == nil && ok
}

// IsIdentity reports whether g's matrix is exactly the identity.
func (g Gate) IsIdentity() bool {
	if g.m == nil {
		return false
	}
	id, err := matrix.NewIdentity(g.m.Rows())
	if err != nil {
		return false
	}

	return matrix.Equal(g.m, id)
}
