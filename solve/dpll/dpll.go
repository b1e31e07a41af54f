package dpll

import (
	"time"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/solve"
)

// Solver is a stateless DPLL backtracking search; a single value can be
// reused across formulas.
type Solver struct{}

// New returns a ready-to-use DPLL Solver.
func New() *Solver { return &Solver{} }

type clauseState int

const (
	satisfied clauseState = iota
	conflict
	unit
	undetermined
)

// timedOut is panicked from deep inside the recursion to unwind the
// stack on deadline expiry, per the spec's "distinguished TIMEOUT that
// unwinds the stack".
type timedOut struct{}

// Solve runs DPLL to completion or until opts' deadline elapses.
func (s *Solver) Solve(f *cnf.Formula, opts ...solve.Option) (res *solve.Result, err error) {
	o := solve.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(timedOut); ok {
				res, err = &solve.Result{Outcome: solve.TIMEOUT}, nil
				return
			}
			panic(r)
		}
	}()

	init := make(solve.Assignment, f.NumVars+1)
	for i := range init {
		init[i] = -1
	}

	model := search(f, init, o.Deadline)
	if model == nil {
		return &solve.Result{Outcome: solve.UNSAT}, nil
	}

	return &solve.Result{Outcome: solve.SAT, Model: model}, nil
}

// search performs one propagate-decide-recurse step. It returns nil on
// a closed-off branch (caller tries its sibling value or backtracks).
func search(f *cnf.Formula, assign solve.Assignment, deadline time.Time) solve.Assignment {
	propagated, ok := unitPropagate(f, assign)
	if !ok {
		return nil
	}

	if !deadline.IsZero() && time.Now().After(deadline) {
		panic(timedOut{})
	}

	if complete(f, propagated) {
		if allSatisfied(f, propagated) {
			return propagated
		}
		return nil
	}

	v, ok := pickDecisionVar(f, propagated)
	if !ok {
		return nil
	}

	for _, val := range valueOrder(f, propagated, v) {
		next := append(solve.Assignment(nil), propagated...)
		next[v] = val
		if model := search(f, next, deadline); model != nil {
			return model
		}
	}

	return nil
}

// unitPropagate iterates clauses to a fixed point, forcing unit
// literals, until no clause makes progress or a conflict is found.
// Bounded by |vars|+100 sweeps, mirroring the spec's safety bound.
func unitPropagate(f *cnf.Formula, assign solve.Assignment) (solve.Assignment, bool) {
	out := append(solve.Assignment(nil), assign...)
	maxSweeps := f.NumVars + 100
	for sweep := 0; sweep < maxSweeps; sweep++ {
		progressed := false
		for _, c := range f.Clauses {
			st, lit := statusOf(c, out)
			switch st {
			case conflict:
				return nil, false
			case unit:
				if lit > 0 {
					out[lit.Var()] = 1
				} else {
					out[lit.Var()] = 0
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

// statusOf classifies a clause under assign: satisfied, conflict
// (every literal false), unit (exactly one unassigned literal, all
// others false), or undetermined. For unit it also returns that
// literal.
func statusOf(c cnf.Clause, assign solve.Assignment) (clauseState, cnf.Lit) {
	unassigned := 0
	var unitLit cnf.Lit
	for _, lit := range c {
		val := assign[lit.Var()]
		if val == -1 {
			unassigned++
			unitLit = lit
			continue
		}
		if litTrue(lit, val) {
			return satisfied, 0
		}
	}
	switch unassigned {
	case 0:
		return conflict, 0
	case 1:
		return unit, unitLit
	default:
		return undetermined, 0
	}
}

func litTrue(lit cnf.Lit, val int8) bool {
	return (lit.IsPositive() && val == 1) || (!lit.IsPositive() && val == 0)
}

// complete reports whether every variable has a value.
func complete(f *cnf.Formula, assign solve.Assignment) bool {
	for v := 1; v <= f.NumVars; v++ {
		if assign[v] == -1 {
			return false
		}
	}

	return true
}

// allSatisfied reports whether every clause is satisfied.
func allSatisfied(f *cnf.Formula, assign solve.Assignment) bool {
	for _, c := range f.Clauses {
		st, _ := statusOf(c, assign)
		if st != satisfied {
			return false
		}
	}

	return true
}

// pickDecisionVar picks, among unassigned variables, the one appearing
// in the most not-yet-satisfied clauses; ties go to the lower index.
func pickDecisionVar(f *cnf.Formula, assign solve.Assignment) (int, bool) {
	counts := make(map[int]int)
	for _, c := range f.Clauses {
		st, _ := statusOf(c, assign)
		if st == satisfied {
			continue
		}
		for _, lit := range c {
			v := int(lit.Var())
			if assign[v] == -1 {
				counts[v]++
			}
		}
	}

	bestVar, bestScore := -1, -1
	for v := 1; v <= f.NumVars; v++ {
		if assign[v] != -1 {
			continue
		}
		if counts[v] > bestScore {
			bestScore, bestVar = counts[v], v
		}
	}
	if bestVar == -1 {
		return 0, false
	}

	return bestVar, true
}

// valueOrder tries true first iff v occurs at least as often positively
// as negatively among not-yet-satisfied clauses; otherwise false first.
// Both values are always returned so the caller can try the other on
// failure.
func valueOrder(f *cnf.Formula, assign solve.Assignment, v int) []int8 {
	pos, neg := 0, 0
	for _, c := range f.Clauses {
		st, _ := statusOf(c, assign)
		if st == satisfied {
			continue
		}
		for _, lit := range c {
			if int(lit.Var()) != v {
				continue
			}
			if lit.IsPositive() {
				pos++
			} else {
				neg++
			}
		}
	}
	if pos >= neg {
		return []int8{1, 0}
	}

	return []int8{0, 1}
}
