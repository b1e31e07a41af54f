package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
)

const (
	symbolEmpty            = "0"
	symbolBridgeHorizontal = "-"
	symbolBridgeHDouble    = "="
	symbolBridgeVertical   = "|"
	symbolBridgeVDouble    = "$"
)

// Build projects mult onto g's dimensions: island cells receive their
// demand digit, the cells strictly between a bridged pair receive the
// matching single/double symbol for the edge's orientation, and every
// other cell is "0".
func Build(g *grid.Grid, edges []geometry.Edge, mult map[int]int) [][]string {
	cells := make([][]string, g.Rows)
	for r := range cells {
		cells[r] = make([]string, g.Cols)
		for c := range cells[r] {
			cells[r][c] = symbolEmpty
		}
	}

	for _, isl := range g.Islands {
		cells[isl.Row][isl.Col] = strconv.Itoa(isl.Demand)
	}

	for k, e := range edges {
		m := mult[k]
		if m == 0 {
			continue
		}
		a, b := g.Islands[e.U], g.Islands[e.V]
		paintBridge(cells, a, b, e.Orientation, m)
	}

	return cells
}

// paintBridge fills every cell strictly between a and b with the
// symbol matching orientation and multiplicity.
func paintBridge(cells [][]string, a, b grid.Island, orientation geometry.Orientation, mult int) {
	switch orientation {
	case geometry.Horizontal:
		symbol := symbolBridgeHorizontal
		if mult == 2 {
			symbol = symbolBridgeHDouble
		}
		lo, hi := a.Col, b.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for c := lo + 1; c < hi; c++ {
			cells[a.Row][c] = symbol
		}
	case geometry.Vertical:
		symbol := symbolBridgeVertical
		if mult == 2 {
			symbol = symbolBridgeVDouble
		}
		lo, hi := a.Row, b.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for r := lo + 1; r < hi; r++ {
			cells[r][a.Col] = symbol
		}
	}
}

// WriteASCII writes cells as one bracketed, quoted-element line per
// row: ["c0", "c1", ...].
func WriteASCII(w io.Writer, cells [][]string) error {
	bw := bufio.NewWriter(w)
	for _, row := range cells {
		quoted := make([]string, len(row))
		for i, cell := range row {
			quoted[i] = fmt.Sprintf("%q", cell)
		}
		if _, err := fmt.Fprintf(bw, "[%s]\n", strings.Join(quoted, ", ")); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFallback writes the same content as WriteASCII. It exists as a
// distinct entry point so a future change to the symbol set that
// introduces a non-ASCII character can add substitution here without
// touching WriteASCII's callers.
func WriteFallback(w io.Writer, cells [][]string) error {
	return WriteASCII(w, cells)
}
