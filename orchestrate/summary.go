package orchestrate

import (
	"fmt"
	"strings"
)

// SolverSummary is one solver's entry in the summary JSON.
type SolverSummary struct {
	Success bool    `json:"success"`
	Time    float64 `json:"time"`
	Note    string  `json:"note,omitempty"`
}

// SummaryEntry is one input file's entry in the summary JSON: either a
// per-solver breakdown, or an error/valid pair on preflight failure.
type SummaryEntry struct {
	InputFile string                   `json:"input_file"`
	GridSize  string                   `json:"grid_size,omitempty"`
	Islands   int                      `json:"islands,omitempty"`
	Solvers   map[string]SolverSummary `json:"solvers,omitempty"`
	Error     string                   `json:"error,omitempty"`
	Valid     *bool                    `json:"valid,omitempty"`
}

// BuildSummary converts a batch's FileResults to the JSON-serializable
// shape described by the external interface.
func BuildSummary(results []*FileResult) []SummaryEntry {
	entries := make([]SummaryEntry, 0, len(results))
	for _, r := range results {
		if r.Error != "" {
			valid := r.Valid
			entries = append(entries, SummaryEntry{InputFile: r.InputFile, Error: r.Error, Valid: &valid})
			continue
		}

		solvers := make(map[string]SolverSummary, len(r.Solvers))
		for name, sr := range r.Solvers {
			solvers[name] = SolverSummary{Success: sr.Success, Time: sr.Elapsed.Seconds(), Note: sr.Note}
		}
		entries = append(entries, SummaryEntry{
			InputFile: r.InputFile,
			GridSize:  r.GridSize,
			Islands:   r.Islands,
			Solvers:   solvers,
		})
	}

	return entries
}

// FormatReport renders results as the console performance table the
// original CLI printed after a batch run, supplementing the required
// JSON summary with a human-readable one.
func FormatReport(results []*FileResult) string {
	var b strings.Builder
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(&b, "%-24s  ERROR: %s\n", r.InputFile, r.Error)
			continue
		}
		fmt.Fprintf(&b, "%-24s  %-7s  %d islands\n", r.InputFile, r.GridSize, r.Islands)
		for name, sr := range r.Solvers {
			status := "FAIL"
			if sr.Success {
				status = "OK"
			}
			fmt.Fprintf(&b, "  %-14s %-4s  %8.3fs", name, status, sr.Elapsed.Seconds())
			if sr.Note != "" {
				fmt.Fprintf(&b, "  (%s)", sr.Note)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
