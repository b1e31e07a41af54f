// Package grid loads and validates the rectangular island grid that
// drives the rest of the solver: a non-empty, rectangular matrix of
// non-negative integers where 0 is empty water and 1..8 is an island
// bridge demand.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cell
// values. It deep-copies the input so the returned Grid is immutable.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrInvalidCell if any
// value falls outside 0..8.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]int, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int, cols)
		copy(cells[r], values[r])
		for c, v := range values[r] {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d) has value %d", ErrInvalidCell, r, c, v)
			}
		}
	}

	g := &Grid{Rows: rows, Cols: cols, Cells: cells}
	g.Islands = identifyIslands(g)
	for i := range g.Islands {
		if g.Islands[i].Demand < 0 || g.Islands[i].Demand > 8 {
			return nil, fmt.Errorf("%w: island at (%d,%d) has demand %d", ErrInvalidCell, g.Islands[i].Row, g.Islands[i].Col, g.Islands[i].Demand)
		}
	}

	return g, nil
}

// identifyIslands walks the grid in row-major order and collects every
// cell with a positive demand, assigning each a stable Index.
func identifyIslands(g *Grid) []Island {
	islands := make([]Island, 0)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c] > 0 {
				islands = append(islands, Island{Row: r, Col: c, Demand: g.Cells[r][c], Index: len(islands)})
			}
		}
	}

	return islands
}

// Parse reads an input grid from r: UTF-8 text, one comma-separated row
// of non-negative integers per non-blank line; whitespace around each
// integer is ignored; blank lines are skipped.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	var rows [][]int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		row := make([]int, len(fields))
		for i, field := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedRow, lineNo, line)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}

	return New(rows)
}

// LoadFile opens path and parses it as an input grid.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}
