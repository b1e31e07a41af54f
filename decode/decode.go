package decode

import (
	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/solve"
)

// Decode maps model to a multiplicity map using f's per-edge variable
// assignment: x_k2 true ⇒ 2, else x_k1 true ⇒ 1, else omitted.
// Deterministic and total over f.EdgeOf.
func Decode(f *cnf.Formula, model solve.Assignment) map[int]int {
	mult := make(map[int]int)
	for k, ev := range f.EdgeOf {
		switch {
		case model[ev.X2] == 1:
			mult[k] = 2
		case model[ev.X1] == 1:
			mult[k] = 1
		}
	}

	return mult
}

// Encode is the round-trip inverse of Decode, used by the round-trip
// tests: given a multiplicity map, it
// derives the variable assignment that would decode back to it
// (x_k1 = mult>=1, x_k2 = mult==2), leaving every other variable unset.
func Encode(f *cnf.Formula, mult map[int]int) solve.Assignment {
	assign := make(solve.Assignment, f.NumVars+1)
	for i := range assign {
		assign[i] = -1
	}
	for k, ev := range f.EdgeOf {
		m := mult[k]
		assign[ev.X1] = boolToTri(m >= 1)
		assign[ev.X2] = boolToTri(m == 2)
	}

	return assign
}

func boolToTri(b bool) int8 {
	if b {
		return 1
	}

	return 0
}
