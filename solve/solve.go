package solve

import (
	"errors"
	"time"

	"github.com/katalvlaran/hashiwokakero/cnf"
)

// ErrTimeout is returned in spirit by a solver hitting its deadline;
// callers observe it via Result.Outcome == TIMEOUT rather than as a Go
// error from Solve, but connectivity uses this sentinel when it must
// surface a timeout as an error.
var ErrTimeout = errors.New("solve: solver hit its deadline")

// Outcome classifies what a Solver call decided.
type Outcome int

const (
	// SAT means Result.Model is a complete, clause-satisfying assignment.
	SAT Outcome = iota
	// UNSAT means the clause set has no model.
	UNSAT
	// TIMEOUT means the deadline elapsed before a verdict was reached.
	TIMEOUT
)

// Assignment is a tri-valued vector indexed by cnf.Var (index 0 unused):
// -1 unset, 0 false, 1 true.
type Assignment []int8

// Result is what a Solver returns for one clause set.
type Result struct {
	Outcome Outcome
	Model   Assignment
}

// Options holds the one knob every backend in this spec honors: a
// wall-clock deadline. The zero value (IsZero deadline) means no
// deadline.
type Options struct {
	Deadline time.Time
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with no deadline.
func DefaultOptions() Options { return Options{} }

// WithDeadline sets an absolute wall-clock deadline.
func WithDeadline(d time.Time) Option {
	return func(o *Options) { o.Deadline = d }
}

// WithTimeout sets a deadline relative to now.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Deadline = time.Now().Add(d) }
}

// Solver decides satisfiability of a CNF formula and, on SAT, returns a
// complete satisfying assignment.
type Solver interface {
	Solve(f *cnf.Formula, opts ...Option) (*Result, error)
}
