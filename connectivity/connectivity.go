package connectivity

import (
	"errors"
	"time"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/decode"
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/reach"
	"github.com/katalvlaran/hashiwokakero/solve"
)

// Sentinel errors for the refinement loop's terminal states. A caller
// must not conflate the two: ErrUnsat means the original clause set (as
// handed in) has no model at all; ErrExhausted means every connected
// extension of it has since been blocked out.
var (
	// ErrUnsat is returned when the underlying solver reports UNSAT on
	// the loop's first iteration.
	ErrUnsat = errors.New("connectivity: clause set is unsatisfiable")
	// ErrExhausted is returned when the loop has blocked every model the
	// solver can find without ever reaching a connected one, and also
	// when the WithMaxIterations cap is reached before a connected model.
	ErrExhausted = errors.New("connectivity: exhausted connected extensions")
)

// Option configures Refine.
type Option func(*config)

type config struct {
	deadline      time.Time
	maxIterations int
}

// WithDeadline bounds the loop's total wall-clock time across all
// iterations.
func WithDeadline(d time.Time) Option {
	return func(c *config) { c.deadline = d }
}

// WithMaxIterations caps the number of solve-decode-check rounds; zero
// (the default) means unbounded except by the deadline.
func WithMaxIterations(n int) Option {
	return func(c *config) { c.maxIterations = n }
}

// Outcome is a connected solution found by the refinement loop.
type Outcome struct {
	Multiplicities map[int]int
	Iterations     int
}

// Refine repeatedly solves f (extended with blocking clauses as
// needed) via solver, decoding and connectivity-checking each model,
// until a globally connected solution is found or the search is
// exhausted.
func Refine(solver solve.Solver, islands []grid.Island, edges []geometry.Edge, f *cnf.Formula, opts ...Option) (*Outcome, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	clauses := append([]cnf.Clause(nil), f.Clauses...)
	iteration := 0
	for {
		iteration++
		if cfg.maxIterations > 0 && iteration > cfg.maxIterations {
			return nil, ErrExhausted
		}

		current := &cnf.Formula{Clauses: clauses, NumVars: f.NumVars, EdgeOf: f.EdgeOf}

		var solveOpts []solve.Option
		if !cfg.deadline.IsZero() {
			solveOpts = append(solveOpts, solve.WithDeadline(cfg.deadline))
		}

		result, err := solver.Solve(current, solveOpts...)
		if err != nil {
			return nil, err
		}

		switch result.Outcome {
		case solve.TIMEOUT:
			return nil, solve.ErrTimeout
		case solve.UNSAT:
			if iteration == 1 {
				return nil, ErrUnsat
			}
			return nil, ErrExhausted
		}

		mult := decode.Decode(f, result.Model)

		if reach.Connected(islands, edges, mult) {
			return &Outcome{Multiplicities: mult, Iterations: iteration}, nil
		}

		clauses = append(clauses, blockingClause(result.Model))
	}
}

// blockingClause negates every literal of model, one per variable.
func blockingClause(model solve.Assignment) cnf.Clause {
	clause := make(cnf.Clause, 0, len(model)-1)
	for v := 1; v < len(model); v++ {
		switch model[v] {
		case 1:
			clause = append(clause, cnf.Lit(-v))
		case 0:
			clause = append(clause, cnf.Lit(v))
		}
	}

	return clause
}
