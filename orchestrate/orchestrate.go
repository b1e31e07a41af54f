package orchestrate

import (
	"errors"
	"os"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hashiwokakero/cnf"
	"github.com/katalvlaran/hashiwokakero/connectivity"
	"github.com/katalvlaran/hashiwokakero/geometry"
	"github.com/katalvlaran/hashiwokakero/grid"
	"github.com/katalvlaran/hashiwokakero/render"
	"github.com/katalvlaran/hashiwokakero/solve"
	"github.com/katalvlaran/hashiwokakero/solve/astar"
	"github.com/katalvlaran/hashiwokakero/solve/bruteforce"
	"github.com/katalvlaran/hashiwokakero/solve/cdcl"
	"github.com/katalvlaran/hashiwokakero/solve/dpll"
	"github.com/katalvlaran/hashiwokakero/validate"
)

// Solver names, matching the subset the summary JSON's solvers map may
// key on.
const (
	SolverCDCL         = "pysat"
	SolverAStar        = "astar"
	SolverBacktracking = "backtracking"
	SolverBruteforce   = "bruteforce"
)

// DefaultTimeouts are the per-instance wall-clock budgets named by the
// external interface.
var DefaultTimeouts = map[string]time.Duration{
	SolverCDCL:         30 * time.Second,
	SolverAStar:        30 * time.Second,
	SolverBacktracking: 30 * time.Second,
	SolverBruteforce:   60 * time.Second,
}

// bruteforceGridLimit is the side length past which bruteforce is
// skipped unless explicitly selected.
const bruteforceGridLimit = 7

// SolverResult is one solver's outcome for one input file.
type SolverResult struct {
	Success bool
	Elapsed time.Duration
	Note    string
}

// FileResult is one input file's outcome across every solver it ran.
type FileResult struct {
	InputFile string
	GridSize  string
	Islands   int
	Solvers   map[string]SolverResult
	Error     string
	Valid     bool
}

// Orchestrator runs the full pipeline over a batch of input files.
// OutputDir and VisualizeDir, when non-empty, receive the rendered
// ASCII grid and PNG visualization of each successful solve.
type Orchestrator struct {
	Logger       *logrus.Logger
	Metrics      *Metrics
	OutputDir    string
	VisualizeDir string
}

// New returns an Orchestrator with a standard logrus logger and a
// fresh private metrics registry. OutputDir and VisualizeDir default
// to the conventional "Outputs" and "visualize" directories.
func New() *Orchestrator {
	return &Orchestrator{
		Logger:       logrus.StandardLogger(),
		Metrics:      NewMetrics(),
		OutputDir:    "Outputs",
		VisualizeDir: "visualize",
	}
}

// RunFile runs every solver named in solverNames against the grid
// loaded from path, in the order requested. An explicit selection of
// "bruteforce" bypasses the grid-size skip.
func (o *Orchestrator) RunFile(path string, solverNames []string) *FileResult {
	result := &FileResult{InputFile: filepath.Base(path)}

	g, err := grid.LoadFile(path)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.GridSize = gridSizeString(g)
	result.Islands = len(g.Islands)

	edges := geometry.CandidateEdges(g.Islands)
	f, err := cnf.Encode(g.Islands, edges)
	if err != nil {
		result.Error = err.Error()
		result.Valid = false
		return result
	}
	result.Valid = true

	baseName := strings.TrimSuffix(result.InputFile, filepath.Ext(result.InputFile))

	result.Solvers = make(map[string]SolverResult, len(solverNames))
	for _, name := range solverNames {
		explicit := len(solverNames) == 1 && name == SolverBruteforce
		if name == SolverBruteforce && !explicit && (g.Rows > bruteforceGridLimit || g.Cols > bruteforceGridLimit) {
			result.Solvers[name] = SolverResult{Success: false, Note: "skipped: grid exceeds 7x7 and bruteforce was not explicitly selected"}
			continue
		}

		result.Solvers[name] = o.runSolver(name, g, edges, f, baseName)
	}

	return result
}

// RunAll runs every file in paths with solverNames, fanning the
// per-file work out concurrently via one errgroup.
func (o *Orchestrator) RunAll(paths []string, solverNames []string) ([]*FileResult, error) {
	results := make([]*FileResult, len(paths))

	g := new(errgroup.Group)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = o.RunFile(path, solverNames)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (o *Orchestrator) runSolver(name string, g *grid.Grid, edges []geometry.Edge, f *cnf.Formula, baseName string) SolverResult {
	o.Metrics.SolverAttemptsTotal.WithLabelValues(name).Inc()
	deadline := time.Now().Add(DefaultTimeouts[name])
	start := time.Now()

	mult, solveErr := o.runWithRecover(name, g, func() (map[int]int, error) {
		return o.solveOnce(name, g, edges, f, deadline)
	})

	elapsed := time.Since(start)
	o.Metrics.SolveSeconds.WithLabelValues(name).Observe(elapsed.Seconds())

	if solveErr != nil {
		o.Logger.WithFields(logrus.Fields{"solver": name, "file_size": gridSizeString(g)}).Warn(solveErr)
		return SolverResult{Success: false, Elapsed: elapsed, Note: solveErr.Error()}
	}

	ok, reason := validate.Validate(g.Islands, edges, mult)
	if !ok {
		return SolverResult{Success: false, Elapsed: elapsed, Note: "validation failed: " + reason}
	}

	o.Metrics.SolverSuccessesTotal.WithLabelValues(name).Inc()

	note := o.writeOutputs(name, baseName, g, edges, mult)

	return SolverResult{Success: true, Elapsed: elapsed, Note: note}
}

// runWithRecover calls fn and converts any panic escaping it into the
// "internal solver exception" error kind: logged at Error with a stack
// field and translated to solve.ErrTimeout, treating it as a timeout
// for this solver (§7). This is the orchestration boundary RunAll's
// errgroup goroutines rely on — without it a panic inside any backend
// would crash the whole batch instead of degrading one solver result.
func (o *Orchestrator) runWithRecover(name string, g *grid.Grid, fn func() (map[int]int, error)) (mult map[int]int, err error) {
	defer func() {
		if r := recover(); r != nil {
			o.Logger.WithFields(logrus.Fields{"solver": name, "file_size": gridSizeString(g), "panic": r, "stack": string(debug.Stack())}).Error("internal solver exception")
			mult = nil
			err = solve.ErrTimeout
		}
	}()

	return fn()
}

// solveOnce dispatches to the brute-force enumerator or, for every other
// backend, the connectivity refinement loop around it.
func (o *Orchestrator) solveOnce(name string, g *grid.Grid, edges []geometry.Edge, f *cnf.Formula, deadline time.Time) (map[int]int, error) {
	if name == SolverBruteforce {
		bf := &bruteforce.Solver{Logger: func(format string, args ...interface{}) { o.Logger.Warnf(format, args...) }}
		res, err := bf.Solve(g.Islands, edges, solve.WithDeadline(deadline))
		if err != nil {
			return nil, err
		}
		switch res.Outcome {
		case solve.SAT:
			return res.Multiplicities, nil
		case solve.TIMEOUT:
			return nil, solve.ErrTimeout
		default:
			return nil, errors.New("bruteforce: unsatisfiable")
		}
	}

	solver := solverByName(name)
	outcome, err := connectivity.Refine(solver, g.Islands, edges, f, connectivity.WithDeadline(deadline))
	if err != nil {
		return nil, err
	}
	o.Metrics.RefinementIterations.WithLabelValues(name).Observe(float64(outcome.Iterations))

	return outcome.Multiplicities, nil
}

// writeOutputs renders mult to the ASCII grid format and, if
// configured, writes it under OutputDir and a PNG visualization under
// VisualizeDir. A write failure is reported as a note rather than
// flipping the solve itself to a failure: the solution was still
// found.
func (o *Orchestrator) writeOutputs(name, baseName string, g *grid.Grid, edges []geometry.Edge, mult map[int]int) string {
	cells := render.Build(g, edges, mult)

	if o.OutputDir != "" {
		if err := os.MkdirAll(o.OutputDir, 0o755); err != nil {
			return "output write failed: " + err.Error()
		}
		path := filepath.Join(o.OutputDir, baseName+"."+name+".txt")
		out, err := os.Create(path)
		if err != nil {
			return "output write failed: " + err.Error()
		}
		defer out.Close()
		if err := render.WriteASCII(out, cells); err != nil {
			return "output write failed: " + err.Error()
		}
	}

	if o.VisualizeDir != "" {
		if err := os.MkdirAll(o.VisualizeDir, 0o755); err != nil {
			return "visualization write failed: " + err.Error()
		}
		path := filepath.Join(o.VisualizeDir, baseName+"."+name+".png")
		out, err := os.Create(path)
		if err != nil {
			return "visualization write failed: " + err.Error()
		}
		defer out.Close()
		if err := render.WritePNG(out, cells); err != nil {
			return "visualization write failed: " + err.Error()
		}
	}

	return ""
}

func solverByName(name string) solve.Solver {
	switch name {
	case SolverCDCL:
		return cdcl.New()
	case SolverAStar:
		return astar.New()
	case SolverBacktracking:
		return dpll.New()
	default:
		return dpll.New()
	}
}

func gridSizeString(g *grid.Grid) string {
	return strconv.Itoa(g.Rows) + "x" + strconv.Itoa(g.Cols)
}
