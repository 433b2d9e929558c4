package gate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qcirc/matrix"
)

// Controlled synthesises the (d+1)-line operator that applies target to
// the last line iff every one of the d lines above it is |1⟩, and acts as
// the identity otherwise. d == 1 is the usual singly controlled gate
// (Controlled(1, X) is CNOT); d == 2 yields the doubly controlled gate
// (Controlled(2, X) is Toffoli).
//
// Implementation:
//   - Stage 1: validate d ≥ 1 and a single-line target.
//   - Stage 2: build the block operator bottom-up with the basis projectors:
//     C(1)   = P0 ⊗ I + P1 ⊗ G
//     C(k)   = P0 ⊗ I^{⊗k} + P1 ⊗ C(k-1)
//   - Stage 3: name the result "C"×d + target name and record d.
//
// Errors:
//   - ErrInvalidDistance when d < 1.
//   - ErrNotSingleLine when target is not a 2×2 gate.
//
// Complexity:
//   - Time O(4^(d+1)) per level, Space O(4^(d+1)).
func Controlled(d int, target Gate) (Gate, error) {
	if d < 1 {
		return Gate{}, fmt.Errorf("Controlled(%d, %s): %w", d, target.name, ErrInvalidDistance)
	}
	if target.Lines() != 1 {
		return Gate{}, fmt.Errorf("Controlled(%d, %s): %w", d, target.name, ErrNotSingleLine)
	}

	// inner is C(k-1), starting from the bare target for k == 1.
	inner := target.m
	// idk is I^{⊗k}, grown by one line per level.
	idk := I.m
	for k := 1; k <= d; k++ {
		off, err := matrix.Kron(P0.m, idk)
		if err != nil {
			return Gate{}, fmt.Errorf("Controlled(%d, %s): %w", d, target.name, err)
		}
		on, err := matrix.Kron(P1.m, inner)
		if err != nil {
			return Gate{}, fmt.Errorf("Controlled(%d, %s): %w", d, target.name, err)
		}
		if inner, err = matrix.Add(off, on); err != nil {
			return Gate{}, fmt.Errorf("Controlled(%d, %s): %w", d, target.name, err)
		}
		if idk, err = matrix.Kron(idk, I.m); err != nil {
			return Gate{}, fmt.Errorf("Controlled(%d, %s): %w", d, target.name, err)
		}
	}

	return Gate{m: inner, name: strings.Repeat("C", d) + target.name, control: d}, nil
}
