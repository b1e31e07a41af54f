package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashiwokakero/orchestrate"
)

// newAllCmd runs every input file under --input-dir through one named
// solver, or every solver when --solver is omitted, matching the
// menu's "run all inputs with one named solver" / "run all inputs with
// all solvers" options.
func newAllCmd() *cobra.Command {
	var solverName string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every input file with one solver, or every solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := listInputFiles(flagString(cmd, "input-dir"))
			if err != nil {
				return err
			}

			names := allSolverNames
			if solverName != "" {
				names = []string{solverName}
			}

			o := buildOrchestrator(cmd)
			results, err := o.RunAll(paths, names)
			if err != nil {
				return fmt.Errorf("running batch: %w", err)
			}

			return printSummary(results)
		},
	}

	cmd.Flags().StringVarP(&solverName, "solver", "s", "", "solver to use: backtracking, astar, pysat, bruteforce (default: all)")

	return cmd
}
