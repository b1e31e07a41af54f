package geometry

import "github.com/katalvlaran/hashiwokakero/grid"

// Orientation distinguishes horizontal from vertical candidate edges.
type Orientation int

const (
	// Horizontal edges join two islands on the same row.
	Horizontal Orientation = iota
	// Vertical edges join two islands on the same column.
	Vertical
)

// Edge is a candidate bridge between islands U and V, U < V, both
// indices into the Island slice the Edge was computed from.
type Edge struct {
	U, V        int
	Orientation Orientation
}

// CandidateEdges returns every candidate edge among islands, in the
// order i ascending, j ascending over island indices, annotated with
// orientation.
// Complexity: O(N^3) worst case (N islands, O(N) intermediate-island
// check per pair); acceptable at puzzle scale.
func CandidateEdges(islands []grid.Island) []Edge {
	edges := make([]Edge, 0)
	for i := 0; i < len(islands); i++ {
		for j := i + 1; j < len(islands); j++ {
			a, b := islands[i], islands[j]
			switch {
			case a.Row == b.Row && !blockedHorizontal(islands, a, b):
				edges = append(edges, Edge{U: i, V: j, Orientation: Horizontal})
			case a.Col == b.Col && !blockedVertical(islands, a, b):
				edges = append(edges, Edge{U: i, V: j, Orientation: Vertical})
			}
		}
	}

	return edges
}

// blockedHorizontal reports whether some third island lies on a's row,
// strictly between a's and b's columns.
func blockedHorizontal(islands []grid.Island, a, b grid.Island) bool {
	lo, hi := a.Col, b.Col
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, k := range islands {
		if k.Row == a.Row && k.Col > lo && k.Col < hi {
			return true
		}
	}

	return false
}

// blockedVertical reports whether some third island lies on a's column,
// strictly between a's and b's rows.
func blockedVertical(islands []grid.Island, a, b grid.Island) bool {
	lo, hi := a.Row, b.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, k := range islands {
		if k.Col == a.Col && k.Row > lo && k.Row < hi {
			return true
		}
	}

	return false
}

// Crosses reports whether edges a and b cross: one horizontal, one
// vertical, the vertical edge's column strictly between the
// horizontal's endpoint columns, and the horizontal edge's row strictly
// between the vertical's endpoint rows.
func Crosses(islands []grid.Island, a, b Edge) bool {
	var h, v Edge
	switch {
	case a.Orientation == Horizontal && b.Orientation == Vertical:
		h, v = a, b
	case a.Orientation == Vertical && b.Orientation == Horizontal:
		h, v = b, a
	default:
		return false
	}

	hRow := islands[h.U].Row
	hc1, hc2 := islands[h.U].Col, islands[h.V].Col
	if hc1 > hc2 {
		hc1, hc2 = hc2, hc1
	}

	vCol := islands[v.U].Col
	vr1, vr2 := islands[v.U].Row, islands[v.V].Row
	if vr1 > vr2 {
		vr1, vr2 = vr2, vr1
	}

	return vCol > hc1 && vCol < hc2 && hRow > vr1 && hRow < vr2
}
