package cdcl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/decode"
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/solve"
	"github.com/katalvlaran/hashiwokakero/solve/cdcl"
)

func TestSolver_S1_TrivialPair(t *testing.T) {
	g, err := grid.New([][]int{
		{1, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges)
	require.NoError(t, err)

	res, err := cdcl.New().Solve(f)
	require.NoError(t, err)
	require.Equal(t, solve.SAT, res.Outcome)

	mult := decode.Decode(f, res.Model)
	assert.Equal(t, map[int]int{0: 1}, mult)
}

func TestSolver_S4_Unsat(t *testing.T) {
	g, err := grid.New([][]int{
		{3, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges, cnf.WithoutPreflightCheck())
	require.NoError(t, err)

	res, err := cdcl.New().Solve(f)
	require.NoError(t, err)
	assert.Equal(t, solve.UNSAT, res.Outcome)
}
