package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hashiwokakero/orchestrate"
)

// allSolverNames is the fixed, stable order "run with every solver"
// iterates in.
var allSolverNames = []string{
	orchestrate.SolverBacktracking,
	orchestrate.SolverAStar,
	orchestrate.SolverCDCL,
	orchestrate.SolverBruteforce,
}

// listInputFiles returns every regular file directly under dir, sorted
// by name for deterministic batch ordering.
func listInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)

	return paths, nil
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func buildOrchestrator(cmd *cobra.Command) *orchestrate.Orchestrator {
	o := orchestrate.New()
	o.OutputDir = flagString(cmd, "output-dir")
	o.VisualizeDir = flagString(cmd, "visualize-dir")

	return o
}

func printSummary(results []*orchestrate.FileResult) error {
	summary := orchestrate.BuildSummary(results)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	fmt.Println(orchestrate.FormatReport(results))

	return nil
}
