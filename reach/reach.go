package reach

import (
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
)

// Connected reports whether every island is reachable from island 0
// using only edges whose multiplicity in mult is at least 1, per §4.6
// and §4.8's "BFS over islands using edges with multiplicity ≥ 1,
// starting from island 0". An empty island list is vacuously connected.
func Connected(islands []grid.Island, edges []geometry.Edge, mult map[int]int) bool {
	if len(islands) == 0 {
		return true
	}

	adj := adjacency(islands, edges, mult)
	visited := make([]bool, len(islands))
	queue := make([]int, 0, len(islands))
	visited[0] = true
	queue = append(queue, 0)
	reached := 1

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				reached++
				queue = append(queue, v)
			}
		}
	}

	return reached == len(islands)
}

// adjacency builds an undirected adjacency list over island indices
// from every edge active in mult.
func adjacency(islands []grid.Island, edges []geometry.Edge, mult map[int]int) [][]int {
	adj := make([][]int, len(islands))
	for k, e := range edges {
		if mult[k] > 0 {
			adj[e.U] = append(adj[e.U], e.V)
			adj[e.V] = append(adj[e.V], e.U)
		}
	}

	return adj
}
