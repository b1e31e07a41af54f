package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashiwokakero/orchestrate"
)

// newValidateCmd preflight-checks every input file under --input-dir
// without invoking any solver: it loads and encodes each grid, which
// surfaces malformed input and preflight-infeasible islands, then
// reports the result. No solvers are run and nothing is written under
// --output-dir or --visualize-dir.
func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Preflight-check every input file without solving",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := listInputFiles(flagString(cmd, "input-dir"))
			if err != nil {
				return err
			}

			o := buildOrchestrator(cmd)
			results := make([]*orchestrate.FileResult, len(paths))
			for i, path := range paths {
				results[i] = o.RunFile(path, nil)
			}

			return printSummary(results)
		},
	}

	return cmd
}
