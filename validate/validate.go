package validate

import (
	"fmt"

	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/reach"
)

// Validate checks mult against islands and edges, in the order the
// checks are cheapest to explain a failure by: demand equality,
// multiplicity bound, no crossing, then global connectivity. The first
// failing check's reason is returned; a fully valid solution reports
// (true, "").
func Validate(islands []grid.Island, edges []geometry.Edge, mult map[int]int) (bool, string) {
	if ok, reason := checkDemand(islands, edges, mult); !ok {
		return false, reason
	}
	if ok, reason := checkMultiplicityBound(mult); !ok {
		return false, reason
	}
	if ok, reason := checkNoCross(islands, edges, mult); !ok {
		return false, reason
	}
	if ok, reason := checkConnectivity(islands, edges, mult); !ok {
		return false, reason
	}

	return true, ""
}

// checkMultiplicityBound rejects any edge multiplicity outside {0,1,2}.
func checkMultiplicityBound(mult map[int]int) (bool, string) {
	for k, m := range mult {
		if m < 0 || m > 2 {
			return false, fmt.Sprintf("edge %d has multiplicity %d, outside {0,1,2}", k, m)
		}
	}

	return true, ""
}

// checkDemand rejects any island whose incident multiplicity sum does
// not equal its demand.
func checkDemand(islands []grid.Island, edges []geometry.Edge, mult map[int]int) (bool, string) {
	sums := make([]int, len(islands))
	for k, e := range edges {
		sums[e.U] += mult[k]
		sums[e.V] += mult[k]
	}
	for i, isl := range islands {
		if sums[i] != isl.Demand {
			return false, fmt.Sprintf("island %d has demand %d but incident multiplicity sums to %d", i, isl.Demand, sums[i])
		}
	}

	return true, ""
}

// checkNoCross rejects any pair of geometrically crossing edges that
// are both active.
func checkNoCross(islands []grid.Island, edges []geometry.Edge, mult map[int]int) (bool, string) {
	for i := 0; i < len(edges); i++ {
		if mult[i] == 0 {
			continue
		}
		for j := i + 1; j < len(edges); j++ {
			if mult[j] == 0 {
				continue
			}
			if geometry.Crosses(islands, edges[i], edges[j]) {
				return false, fmt.Sprintf("edges %d and %d cross while both active", i, j)
			}
		}
	}

	return true, ""
}

// checkConnectivity rejects a solution that does not reach every
// island by breadth-first search from island 0 over active edges.
func checkConnectivity(islands []grid.Island, edges []geometry.Edge, mult map[int]int) (bool, string) {
	if !reach.Connected(islands, edges, mult) {
		return false, "not all islands are reachable from island 0"
	}

	return true, ""
}
