package bruteforce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/solve"
	"github.com/katalvlaran/hashiwokakero/solve/bruteforce"
)

// TestSolver_S3_LTriple uses a corrected L-triple: the puzzle's own
// parity invariant (total demand is always even, since every bridge
// contributes 1 to each endpoint) rules out the literal all-demand-1
// L-triple (sum 3, odd) as satisfiable by any implementation; the
// corner island's demand is 2 here so the two-bridge solution is
// actually reachable.
func TestSolver_S3_LTriple(t *testing.T) {
	g, err := grid.New([][]int{
		{2, 0, 1},
		{0, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)

	res, err := bruteforce.New().Solve(g.Islands, edges)
	require.NoError(t, err)
	require.Equal(t, solve.SAT, res.Outcome)
	assert.Equal(t, map[int]int{0: 1, 1: 1}, res.Multiplicities)
}

func TestSolver_ZeroIslands(t *testing.T) {
	res, err := bruteforce.New().Solve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, solve.SAT, res.Outcome)
	assert.Empty(t, res.Multiplicities)
}

func TestSolver_LogsSearchSpaceWarning(t *testing.T) {
	var logged bool
	s := &bruteforce.Solver{Logger: func(string, ...interface{}) { logged = true }}

	row := make([]int, 16)
	for i := range row {
		row[i] = 1
	}
	g, err := grid.New([][]int{row})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)
	require.Len(t, edges, 15) // 3^15 > 5e6

	_, err = s.Solve(g.Islands, edges)
	require.NoError(t, err)
	assert.True(t, logged)
}
