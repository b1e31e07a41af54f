package bruteforce

import (
	"time"

	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/solve"
)

// SearchSpaceCeiling is the 3^|edges| size past which Solve logs a
// warning (via Logger, if set) before running. Per the spec this never
// blocks the search; it only runs until its deadline.
const SearchSpaceCeiling = 5_000_000

// Solver is a stateless brute-force enumerator. Logger, if non-nil, is
// called once with a search-space-ceiling warning; it is never called
// more than once per Solve.
type Solver struct {
	Logger func(format string, args ...interface{})
}

// New returns a ready-to-use brute-force Solver.
func New() *Solver { return &Solver{} }

// Result is the outcome of a brute-force search: a decoded
// multiplicity map on SAT, nothing otherwise.
type Result struct {
	Outcome        solve.Outcome
	Multiplicities map[int]int
}

// Solve enumerates 3^|edges| tuples over edges, returning the first one
// that satisfies island demands, has no crossing active pair, and
// leaves the active-edge graph connected.
func (s *Solver) Solve(islands []grid.Island, edges []geometry.Edge, opts ...solve.Option) (*Result, error) {
	o := solve.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := len(edges)
	if spaceSize := ipow(3, n); spaceSize > SearchSpaceCeiling && s.Logger != nil {
		s.Logger("bruteforce: search space 3^%d=%d exceeds ceiling %d; continuing until deadline", n, spaceSize, SearchSpaceCeiling)
	}

	tuple := make([]int, n)
	checked := 0
	for {
		if checked%1000 == 0 && !o.Deadline.IsZero() && time.Now().After(o.Deadline) {
			return &Result{Outcome: solve.TIMEOUT}, nil
		}
		checked++

		if degreesMatch(islands, edges, tuple) &&
			!anyCrossingActive(islands, edges, tuple) &&
			connected(islands, edges, tuple) {
			return &Result{Outcome: solve.SAT, Multiplicities: toMap(tuple)}, nil
		}

		if !next(tuple) {
			break
		}
	}

	return &Result{Outcome: solve.UNSAT}, nil
}

func ipow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}

	return r
}

// next advances tuple to its successor in lexicographic base-3 order;
// the last edge is the least significant digit, so earlier edges vary
// slowest, as the spec requires and tests may rely on.
func next(tuple []int) bool {
	for i := len(tuple) - 1; i >= 0; i-- {
		if tuple[i] < 2 {
			tuple[i]++
			return true
		}
		tuple[i] = 0
	}

	return false
}

func degreesMatch(islands []grid.Island, edges []geometry.Edge, tuple []int) bool {
	sums := make([]int, len(islands))
	for k, e := range edges {
		sums[e.U] += tuple[k]
		sums[e.V] += tuple[k]
	}
	for i, isl := range islands {
		if sums[i] != isl.Demand {
			return false
		}
	}

	return true
}

func anyCrossingActive(islands []grid.Island, edges []geometry.Edge, tuple []int) bool {
	for i := 0; i < len(edges); i++ {
		if tuple[i] == 0 {
			continue
		}
		for j := i + 1; j < len(edges); j++ {
			if tuple[j] == 0 {
				continue
			}
			if geometry.Crosses(islands, edges[i], edges[j]) {
				return true
			}
		}
	}

	return false
}

// connected checks global connectivity over edges active in tuple using
// a disjoint-set (union-find) over integer island indices with path
// compression and union by rank.
func connected(islands []grid.Island, edges []geometry.Edge, tuple []int) bool {
	if len(islands) == 0 {
		return true
	}

	uf := newUnionFind(len(islands))
	for k, e := range edges {
		if tuple[k] > 0 {
			uf.union(e.U, e.V)
		}
	}

	root := uf.find(0)
	for i := range islands {
		if uf.find(i) != root {
			return false
		}
	}

	return true
}

func toMap(tuple []int) map[int]int {
	m := make(map[int]int)
	for k, mult := range tuple {
		if mult > 0 {
			m[k] = mult
		}
	}

	return m
}

// unionFind is a disjoint-set over integer indices 0..n-1.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}

	return uf
}

// find walks to the root with path compression.
func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// union merges two sets by rank.
func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		uf.parent[ra] = rb
	} else {
		uf.parent[rb] = ra
		if uf.rank[ra] == uf.rank[rb] {
			uf.rank[ra]++
		}
	}
}
