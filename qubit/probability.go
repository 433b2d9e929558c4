package qubit

import (
	"fmt"

	"gonum.org/v1/gonum/cmplxs"
)

// Norm returns the Euclidean norm sqrt(⟨q|q⟩). A physical state has norm 1.
func (q Qubit) Norm() float64 {
	return cmplxs.Norm(q.vec, 2)
}

// Probabilities returns |a_i|² for every basis state i.
func (q Qubit) Probabilities() []float64 {
	out := make([]float64, len(q.vec))
	cmplxs.Abs(out, q.vec)
	for i, a := range out {
		out[i] = a * a
	}

	return out
}

// AncillaProbability reads out value v from a register whose last line is
// an ancilla: the data lines hold v whichever way the ancilla ends up, so
// the result is |a[2v]|² + |a[2v+1]|².
// Errors: ErrNotKet, ErrOutOfRange when v < 0 or 2v+1 >= Len().
func (q Qubit) AncillaProbability(v int) (float64, error) {
	if q.kind != Ket {
		return 0, fmt.Errorf("AncillaProbability: %w", ErrNotKet)
	}
	if v < 0 || 2*v+1 >= len(q.vec) {
		return 0, fmt.Errorf("AncillaProbability(%d): %w", v, ErrOutOfRange)
	}
	a, b := q.vec[2*v], q.vec[2*v+1]

	return real(a)*real(a) + imag(a)*imag(a) + real(b)*real(b) + imag(b)*imag(b), nil
}
