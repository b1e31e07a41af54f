// Package cnf builds the conjunctive-normal-form encoding of a
// Hashiwokakero instance: two Boolean variables per candidate edge
// (x_k1, x_k2) encoding the legal multiplicities {0, 1, 2}, plus the
// double-implies-single, per-island exact-demand, and no-cross clause
// families.
package cnf

import (
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	skipPreflight bool
}

// WithoutPreflightCheck disables the demand-vs-incident-edges preflight
// check. Useful for tests that want to observe the raw clause set for
// an intentionally infeasible instance.
func WithoutPreflightCheck() EncodeOption {
	return func(c *encodeConfig) { c.skipPreflight = true }
}

// Encode builds the CNF for islands and their candidate edges.
// Before encoding it runs the preflight check: for each island, if its
// demand exceeds 2x its incident candidate-edge count, it returns an
// *OverdemandedError naming that island and emits no clauses.
func Encode(islands []grid.Island, edges []geometry.Edge, opts ...EncodeOption) (*Formula, error) {
	cfg := &encodeConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	incident := make([][]int, len(islands))
	for k, e := range edges {
		incident[e.U] = append(incident[e.U], k)
		incident[e.V] = append(incident[e.V], k)
	}

	if !cfg.skipPreflight {
		for i, isl := range islands {
			if isl.Demand > 2*len(incident[i]) {
				return nil, &OverdemandedError{IslandIndex: i, Demand: isl.Demand, IncidentEdges: len(incident[i])}
			}
		}
	}

	edgeVars := make([]EdgeVars, len(edges))
	nextVar := Var(1)
	for k := range edges {
		edgeVars[k] = EdgeVars{X1: nextVar, X2: nextVar + 1}
		nextVar += 2
	}

	f := &Formula{NumVars: int(nextVar) - 1, EdgeOf: edgeVars}

	encodeDoubleImpliesSingle(f, edgeVars)
	encodeDemands(f, islands, incident, edgeVars)
	encodeNoCross(f, islands, edges, edgeVars)

	return f, nil
}

// encodeDoubleImpliesSingle emits ¬x_k2 ∨ x_k1 for every edge.
func encodeDoubleImpliesSingle(f *Formula, edgeVars []EdgeVars) {
	for _, ev := range edgeVars {
		f.Clauses = append(f.Clauses, Clause{Lit(ev.X2).Negate(), Lit(ev.X1)})
	}
}

// encodeDemands emits AtLeast(L_v, d) ∧ AtMost(L_v, d) for each island v
// with demand d, over the literal bag of both variables of every edge
// incident to v.
func encodeDemands(f *Formula, islands []grid.Island, incident [][]int, edgeVars []EdgeVars) {
	for i, isl := range islands {
		bag := make([]Lit, 0, 2*len(incident[i]))
		for _, k := range incident[i] {
			ev := edgeVars[k]
			bag = append(bag, Lit(ev.X1), Lit(ev.X2))
		}
		atLeast(&f.Clauses, bag, isl.Demand)
		atMost(&f.Clauses, bag, isl.Demand)
	}
}

// encodeNoCross emits the four binary mutual-exclusion clauses for
// every pair of geometrically crossing edges.
func encodeNoCross(f *Formula, islands []grid.Island, edges []geometry.Edge, edgeVars []EdgeVars) {
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			if !geometry.Crosses(islands, edges[i], edges[j]) {
				continue
			}
			a, b := edgeVars[i], edgeVars[j]
			f.Clauses = append(f.Clauses,
				Clause{Lit(a.X1).Negate(), Lit(b.X1).Negate()},
				Clause{Lit(a.X1).Negate(), Lit(b.X2).Negate()},
				Clause{Lit(a.X2).Negate(), Lit(b.X1).Negate()},
				Clause{Lit(a.X2).Negate(), Lit(b.X2).Negate()},
			)
		}
	}
}

// atLeast emits, for every subset of lits of size |lits|-k+1, a clause
// containing that subset as positive literals.
func atLeast(clauses *[]Clause, lits []Lit, k int) {
	n := len(lits)
	if k <= 0 {
		return
	}
	if k > n {
		// Unreachable when the preflight check has run, but kept total:
		// emit a clause that can never be satisfied.
		*clauses = append(*clauses, Clause{})
		return
	}
	subsetSize := n - k + 1
	forEachCombination(n, subsetSize, func(idx []int) {
		clause := make(Clause, subsetSize)
		for i, id := range idx {
			clause[i] = lits[id]
		}
		*clauses = append(*clauses, clause)
	})
}

// atMost emits, for every subset of lits of size k+1, a clause
// containing the negations of that subset.
func atMost(clauses *[]Clause, lits []Lit, k int) {
	n := len(lits)
	if k >= n {
		return
	}
	subsetSize := k + 1
	forEachCombination(n, subsetSize, func(idx []int) {
		clause := make(Clause, subsetSize)
		for i, id := range idx {
			clause[i] = lits[id].Negate()
		}
		*clauses = append(*clauses, clause)
	})
}

// forEachCombination calls yield once per r-combination of {0..n-1}, in
// lexicographic order, without allocating the full combination set.
func forEachCombination(n, r int, yield func([]int)) {
	if r < 0 || r > n {
		return
	}
	if r == 0 {
		yield(nil)
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		yield(idx)
		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
