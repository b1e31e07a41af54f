package cnf_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
)

func buildFormula(t *testing.T, rows [][]int) (*grid.Grid, []geometry.Edge, *cnf.Formula) {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges)
	require.NoError(t, err)

	return g, edges, f
}

func TestEncode_S1_TrivialPair(t *testing.T) {
	_, edges, f := buildFormula(t, [][]int{
		{1, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.Len(t, edges, 1)
	assert.Equal(t, 2, f.NumVars)
	// double-implies-single (1) + atLeast/atMost for two islands with demand 1
	// over a 2-literal bag each (atLeast takes every subset of size
	// n-k+1=2, atMost every subset of size k+1=2; C(2,2)=1 clause each)
	// => 1 + 2*(1+1) = 5 clauses.
	assert.Len(t, f.Clauses, 5)
}

func TestEncode_Preflight_S4_Overdemanded(t *testing.T) {
	g, err := grid.New([][]int{
		{3, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)

	_, err = cnf.Encode(g.Islands, edges)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cnf.ErrIslandOverdemanded))

	var overdemanded *cnf.OverdemandedError
	require.True(t, errors.As(err, &overdemanded))
	assert.Equal(t, 0, overdemanded.IslandIndex)
	assert.Equal(t, 3, overdemanded.Demand)
	assert.Equal(t, 1, overdemanded.IncidentEdges)
}

func TestEncode_WithoutPreflightCheck_StillEncodes(t *testing.T) {
	g, err := grid.New([][]int{
		{3, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)

	f, err := cnf.Encode(g.Islands, edges, cnf.WithoutPreflightCheck())
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestEncode_NoCrossClauses(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges)
	require.NoError(t, err)

	// Exactly one crossing pair exists (the H and V edge through the
	// center); it contributes exactly 4 binary clauses.
	binaryNegClauses := 0
	for _, c := range f.Clauses {
		if len(c) == 2 && !c[0].IsPositive() && !c[1].IsPositive() {
			binaryNegClauses++
		}
	}
	assert.GreaterOrEqual(t, binaryNegClauses, 4)
}
