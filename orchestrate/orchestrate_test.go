package orchestrate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hashiwokakero/orchestrate"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunFile_TrivialPairSucceedsAcrossSolvers(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "pair.txt", "1,0,1\n0,0,0\n0,0,0\n")

	o := orchestrate.New()
	o.OutputDir = filepath.Join(dir, "Outputs")
	o.VisualizeDir = filepath.Join(dir, "visualize")

	result := o.RunFile(path, []string{orchestrate.SolverBacktracking, orchestrate.SolverAStar, orchestrate.SolverCDCL})
	require.Empty(t, result.Error)
	assert.True(t, result.Valid)
	assert.Equal(t, "3x3", result.GridSize)
	assert.Equal(t, 2, result.Islands)

	for _, name := range []string{orchestrate.SolverBacktracking, orchestrate.SolverAStar, orchestrate.SolverCDCL} {
		sr, ok := result.Solvers[name]
		require.True(t, ok, "missing solver %s", name)
		assert.True(t, sr.Success, "solver %s did not succeed: %s", name, sr.Note)
	}

	entries, err := os.ReadDir(o.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRunFile_UnreadableFileReportsError(t *testing.T) {
	o := orchestrate.New()
	result := o.RunFile(filepath.Join(t.TempDir(), "missing.txt"), []string{orchestrate.SolverBacktracking})
	assert.NotEmpty(t, result.Error)
}

func TestRunFile_OverdemandedGridIsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "bad.txt", "3,0,1\n0,0,0\n0,0,0\n")

	o := orchestrate.New()
	o.OutputDir = ""
	o.VisualizeDir = ""

	result := o.RunFile(path, []string{orchestrate.SolverBacktracking})
	assert.NotEmpty(t, result.Error)
	assert.False(t, result.Valid)
}

func TestRunFile_SkipsBruteforceOnLargeGridUnlessExplicit(t *testing.T) {
	dir := t.TempDir()
	row := "1,0,1,0,1,0,1,0,1"
	content := ""
	for i := 0; i < 8; i++ {
		content += row + "\n"
	}
	path := writeInput(t, dir, "big.txt", content)

	o := orchestrate.New()
	o.OutputDir = ""
	o.VisualizeDir = ""

	result := o.RunFile(path, []string{orchestrate.SolverBacktracking, orchestrate.SolverBruteforce})
	require.Empty(t, result.Error)
	sr := result.Solvers[orchestrate.SolverBruteforce]
	assert.False(t, sr.Success)
	assert.Contains(t, sr.Note, "skipped")
}

func TestBuildSummary_MatchesFileResults(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "pair.txt", "1,0,1\n0,0,0\n0,0,0\n")

	o := orchestrate.New()
	o.OutputDir = ""
	o.VisualizeDir = ""

	result := o.RunFile(path, []string{orchestrate.SolverBacktracking})
	summary := orchestrate.BuildSummary([]*orchestrate.FileResult{result})
	require.Len(t, summary, 1)
	assert.Equal(t, "pair.txt", summary[0].InputFile)
	assert.Equal(t, 2, summary[0].Islands)
	require.Contains(t, summary[0].Solvers, orchestrate.SolverBacktracking)
	assert.True(t, summary[0].Solvers[orchestrate.SolverBacktracking].Success)
}

func TestFormatReport_IncludesEachSolverLine(t *testing.T) {
	dir := t.TempDir()
	path := writeInput(t, dir, "pair.txt", "1,0,1\n0,0,0\n0,0,0\n")

	o := orchestrate.New()
	o.OutputDir = ""
	o.VisualizeDir = ""

	result := o.RunFile(path, []string{orchestrate.SolverBacktracking})
	report := orchestrate.FormatReport([]*orchestrate.FileResult{result})
	assert.Contains(t, report, "pair.txt")
	assert.Contains(t, report, orchestrate.SolverBacktracking)
}
