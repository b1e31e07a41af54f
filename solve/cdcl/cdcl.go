package cdcl

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/solve"
)

// Solver is a thin adapter from this module's CNF representation to
// gini's raw clause-loading API.
type Solver struct{}

// New returns a ready-to-use CDCL oracle Solver.
func New() *Solver { return &Solver{} }

// Solve loads f's clauses into a fresh gini instance and solves it.
// Solve is stateless across calls: the refinement loop always hands it
// a full clause list, including every previously issued blocking
// clause, rather than reusing learned clauses between calls.
func (s *Solver) Solve(f *cnf.Formula, opts ...solve.Option) (*solve.Result, error) {
	o := solve.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := gini.New()
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(0)
	}

	code := solveWithDeadline(g, o.Deadline)
	switch code {
	case 1:
		return &solve.Result{Outcome: solve.SAT, Model: extractModel(g, f.NumVars)}, nil
	case -1:
		return &solve.Result{Outcome: solve.UNSAT}, nil
	default:
		return &solve.Result{Outcome: solve.TIMEOUT}, nil
	}
}

// extractModel reads gini's truth values for variables 1..numVars into
// this module's tri-valued Assignment vector.
func extractModel(g *gini.Gini, numVars int) solve.Assignment {
	model := make(solve.Assignment, numVars+1)
	model[0] = -1
	for v := 1; v <= numVars; v++ {
		if g.Value(z.Dimacs2Lit(v)) {
			model[v] = 1
		} else {
			model[v] = 0
		}
	}

	return model
}

// solveWithDeadline runs g.Solve() on a no-deadline fast path, or races
// it against the deadline otherwise, returning gini's 1/-1/0 (SAT/
// UNSAT/UNKNOWN) solve code.
func solveWithDeadline(g *gini.Gini, deadline time.Time) int {
	if deadline.IsZero() {
		return g.Solve()
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0
	}

	result := make(chan int, 1)
	go func() { result <- g.Solve() }()

	select {
	case code := <-result:
		return code
	case <-time.After(remaining):
		return 0
	}
}
