package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashiwokakero/orchestrate"
)

// newRenderCmd solves every input file under --input-dir with one
// solver and writes only the PNG visualization of each successful
// solve under --visualize-dir, matching the menu's "render all outputs
// to images" option. It does not write the ASCII output grid.
func newRenderCmd() *cobra.Command {
	var solverName string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every input file's solution to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := listInputFiles(flagString(cmd, "input-dir"))
			if err != nil {
				return err
			}

			o := buildOrchestrator(cmd)
			o.OutputDir = ""

			results, err := o.RunAll(paths, []string{solverName})
			if err != nil {
				return fmt.Errorf("rendering batch: %w", err)
			}

			return printSummary(results)
		},
	}

	cmd.Flags().StringVarP(&solverName, "solver", "s", orchestrate.SolverBacktracking, "solver to use: backtracking, astar, pysat, bruteforce")

	return cmd
}
