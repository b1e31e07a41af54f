package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/decode"
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/solve"
)

func TestDecode_RoundTrip(t *testing.T) {
	g, err := grid.New([][]int{
		{2, 0, 0},
		{0, 0, 0},
		{2, 0, 0},
	})
	require.NoError(t, err)
	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges)
	require.NoError(t, err)

	want := map[int]int{0: 2}
	model := decode.Encode(f, want)
	got := decode.Decode(f, model)
	assert.Equal(t, want, got)
}

func TestDecode_OmitsZeroMultiplicity(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 0, 0},
	})
	require.NoError(t, err)
	_ = g
	f := &cnf.Formula{NumVars: 2, EdgeOf: []cnf.EdgeVars{{X1: 1, X2: 2}}}
	model := solve.Assignment{-1, 0, 0}
	mult := decode.Decode(f, model)
	assert.Empty(t, mult)
}
