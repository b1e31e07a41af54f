package hashiwokakero_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/connectivity"
	"github.com/katalvlaran/hashiwokakero/decode"
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/solve/bruteforce"
	"github.com/katalvlaran/hashiwokakero/solve/dpll"
	"github.com/katalvlaran/hashiwokakero/validate"
)

// TestDPLLAndBruteForceAgree exercises invariant 5 of the spec's
// testable properties: with fixed inputs and deadlines large enough to
// complete, DPLL (via the connectivity refinement loop) and brute
// force return identical multiplicity maps. go-cmp renders a readable
// diff on mismatch instead of a flat equality failure.
func TestDPLLAndBruteForceAgree(t *testing.T) {
	// The corner's demand is 2, not 1: the puzzle's parity invariant
	// (total demand is always even) rules out the literal all-demand-1
	// L-triple as satisfiable by any implementation.
	g, err := grid.New([][]int{
		{2, 0, 1},
		{0, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)

	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges)
	require.NoError(t, err)

	dpllOutcome, err := connectivity.Refine(dpll.New(), g.Islands, edges, f)
	require.NoError(t, err)

	bfResult, err := bruteforce.New().Solve(g.Islands, edges)
	require.NoError(t, err)

	if diff := cmp.Diff(dpllOutcome.Multiplicities, bfResult.Multiplicities); diff != "" {
		t.Errorf("DPLL and brute-force multiplicity maps differ (-dpll +bruteforce):\n%s", diff)
	}

	ok, reason := validate.Validate(g.Islands, edges, dpllOutcome.Multiplicities)
	require.True(t, ok, reason)
}

// TestDecodeEncodeRoundTrip checks the decoder's round-trip property
// (spec invariant 3) across every S1-S3 scenario grid, comparing the
// recovered multiplicity maps with go-cmp.
func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want map[int]int
	}{
		{
			name: "S1_trivial_pair",
			rows: [][]int{{1, 0, 1}, {0, 0, 0}, {0, 0, 0}},
			want: map[int]int{0: 1},
		},
		{
			name: "S2_vertical_pair",
			rows: [][]int{{2, 0, 0}, {0, 0, 0}, {2, 0, 0}},
			want: map[int]int{0: 2},
		},
		{
			// The corner's demand is 2, not 1: the puzzle's parity
			// invariant (total demand is always even) rules out the
			// literal all-demand-1 L-triple as satisfiable.
			name: "S3_L_triple",
			rows: [][]int{{2, 0, 1}, {0, 0, 0}, {1, 0, 0}},
			want: map[int]int{0: 1, 1: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.New(tc.rows)
			require.NoError(t, err)
			edges := geometry.CandidateEdges(g.Islands)
			f, err := cnf.Encode(g.Islands, edges)
			require.NoError(t, err)

			model := decode.Encode(f, tc.want)
			got := decode.Decode(f, model)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
