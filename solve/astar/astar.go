package astar

import (
	"container/heap"
	"sort"
	"time"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/solve"
)

// Solver is a stateless A* best-first search; a single value can be
// reused across formulas.
type Solver struct{}

// New returns a ready-to-use A* Solver.
func New() *Solver { return &Solver{} }

// node is one partial assignment on the frontier.
type node struct {
	assign solve.Assignment
	g, h   int
	seq    int
}

func (n *node) f() int { return n.g + n.h }

// frontier is a priority queue ordered by f ascending, ties broken by
// larger g (deeper states first), then by insertion order.
type frontier []*node

func (fr frontier) Len() int { return len(fr) }
func (fr frontier) Less(i, j int) bool {
	if fi, fj := fr[i].f(), fr[j].f(); fi != fj {
		return fi < fj
	}
	if fr[i].g != fr[j].g {
		return fr[i].g > fr[j].g
	}

	return fr[i].seq < fr[j].seq
}
func (fr frontier) Swap(i, j int) { fr[i], fr[j] = fr[j], fr[i] }
func (fr *frontier) Push(x any)   { *fr = append(*fr, x.(*node)) }
func (fr *frontier) Pop() any {
	old := *fr
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*fr = old[:n-1]

	return item
}

// Solve runs the best-first search to completion or until opts'
// deadline elapses, checked once per pop.
func (s *Solver) Solve(f *cnf.Formula, opts ...solve.Option) (*solve.Result, error) {
	o := solve.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	order := variableOrder(f)

	init := make(solve.Assignment, f.NumVars+1)
	for i := range init {
		init[i] = -1
	}
	init, ok := unitPropagate(f, init)
	if !ok {
		return &solve.Result{Outcome: solve.UNSAT}, nil
	}

	seq := 0
	start := &node{assign: init, g: 0, h: countUnsatisfied(f, init), seq: seq}
	seq++

	fr := &frontier{start}
	heap.Init(fr)

	for fr.Len() > 0 {
		if !o.Deadline.IsZero() && time.Now().After(o.Deadline) {
			return &solve.Result{Outcome: solve.TIMEOUT}, nil
		}

		cur := heap.Pop(fr).(*node)
		if cur.h == 0 && complete(f, cur.assign) {
			return &solve.Result{Outcome: solve.SAT, Model: cur.assign}, nil
		}

		for _, child := range expand(f, order, cur) {
			child.h = countUnsatisfied(f, child.assign)
			child.seq = seq
			seq++
			heap.Push(fr, child)
		}
	}

	return &solve.Result{Outcome: solve.UNSAT}, nil
}

// expand branches the first unassigned variable (in the fixed
// frequency-sorted order) true then false, propagates each child, and
// discards any that conflict.
func expand(f *cnf.Formula, order []int, n *node) []*node {
	v, ok := firstUnassigned(order, n.assign)
	if !ok {
		return nil
	}

	var children []*node
	for _, val := range []int8{1, 0} {
		child := append(solve.Assignment(nil), n.assign...)
		child[v] = val
		propagated, ok := unitPropagate(f, child)
		if !ok {
			continue
		}
		children = append(children, &node{assign: propagated, g: n.g + 1})
	}

	return children
}

// variableOrder sorts variables by descending total clause-occurrence
// count, ties broken by lower index; computed once per Solve call.
func variableOrder(f *cnf.Formula) []int {
	counts := make([]int, f.NumVars+1)
	for _, c := range f.Clauses {
		for _, lit := range c {
			counts[lit.Var()]++
		}
	}
	order := make([]int, f.NumVars)
	for v := 1; v <= f.NumVars; v++ {
		order[v-1] = v
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}

		return order[i] < order[j]
	})

	return order
}

func firstUnassigned(order []int, assign solve.Assignment) (int, bool) {
	for _, v := range order {
		if assign[v] == -1 {
			return v, true
		}
	}

	return 0, false
}

// unitPropagate iterates to a fixed point, forcing unit literals;
// returns ok=false on conflict (a non-satisfied clause with no
// unassigned literal left).
func unitPropagate(f *cnf.Formula, assign solve.Assignment) (solve.Assignment, bool) {
	out := append(solve.Assignment(nil), assign...)
	maxSweeps := f.NumVars + 100
	for sweep := 0; sweep < maxSweeps; sweep++ {
		progressed := false
		for _, c := range f.Clauses {
			if isSatisfied(c, out) {
				continue
			}
			unassigned := 0
			var unitLit cnf.Lit
			for _, lit := range c {
				if out[lit.Var()] == -1 {
					unassigned++
					unitLit = lit
				}
			}
			switch unassigned {
			case 0:
				return nil, false
			case 1:
				if unitLit.IsPositive() {
					out[unitLit.Var()] = 1
				} else {
					out[unitLit.Var()] = 0
				}
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}

	return out, true
}

func isSatisfied(c cnf.Clause, assign solve.Assignment) bool {
	for _, lit := range c {
		val := assign[lit.Var()]
		if val == -1 {
			continue
		}
		if (lit.IsPositive() && val == 1) || (!lit.IsPositive() && val == 0) {
			return true
		}
	}

	return false
}

// countUnsatisfied counts clauses not satisfied by assign, per the
// spec's heuristic: a clause counts as unsatisfied regardless of
// whether it still has unassigned literals.
func countUnsatisfied(f *cnf.Formula, assign solve.Assignment) int {
	n := 0
	for _, c := range f.Clauses {
		if !isSatisfied(c, assign) {
			n++
		}
	}

	return n
}

func complete(f *cnf.Formula, assign solve.Assignment) bool {
	for v := 1; v <= f.NumVars; v++ {
		if assign[v] == -1 {
			return false
		}
	}

	return true
}
