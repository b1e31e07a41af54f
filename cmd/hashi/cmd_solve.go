package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashiwokakero/orchestrate"
)

// newSolveCmd solves a single selected file with a selected solver.
func newSolveCmd() *cobra.Command {
	var file, solverName string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single input file with one solver",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := buildOrchestrator(cmd)
			result := o.RunFile(file, []string{solverName})

			return printSummary([]*orchestrate.FileResult{result})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "input grid file to solve")
	cmd.Flags().StringVarP(&solverName, "solver", "s", orchestrate.SolverBacktracking, "solver to use: backtracking, astar, pysat, bruteforce")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		fmt.Println(err)
	}

	return cmd
}
