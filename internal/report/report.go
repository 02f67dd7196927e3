// Package report renders a run's accumulated diagnostics and maps them to a
// process exit status. The report is the validator's only output artifact:
// every diagnostic collected during the run appears in it, in a
// deterministic order, so two runs over an unchanged manifest set print
// byte-identical reports.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/vk/biogrid/internal/model"
)

// Report is an ordered, immutable collection of diagnostics.
type Report struct {
	diags []model.Diagnostic
}

// New copies and deterministically orders the diagnostics: by manifest
// identifier, then severity (errors first), then field path, then message.
func New(diags []model.Diagnostic) *Report {
	sorted := make([]model.Diagnostic, len(diags))
	copy(sorted, diags)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Manifest != b.Manifest {
			return a.Manifest < b.Manifest
		}
		if a.Severity != b.Severity {
			return severityRank(a.Severity) < severityRank(b.Severity)
		}
		if a.Field != b.Field {
			return a.Field < b.Field
		}
		return a.Message < b.Message
	})

	return &Report{diags: sorted}
}

func severityRank(s model.Severity) int {
	if s == model.SeverityError {
		return 0
	}
	return 1
}

// Diagnostics returns the ordered diagnostics.
func (r *Report) Diagnostics() []model.Diagnostic {
	return r.diags
}

// ErrorCount returns the number of error-severity diagnostics.
func (r *Report) ErrorCount() int {
	n := 0
	for _, d := range r.diags {
		if d.Severity == model.SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warning-severity diagnostics.
func (r *Report) WarningCount() int {
	return len(r.diags) - r.ErrorCount()
}

// ExitCode is 0 when the run produced no error-severity diagnostics.
// Warnings never affect it.
func (r *Report) ExitCode() int {
	if r.ErrorCount() > 0 {
		return 1
	}
	return 0
}

// Render writes one line per diagnostic plus a summary tally.
func (r *Report) Render(w io.Writer) error {
	for _, d := range r.diags {
		manifest := d.Manifest
		if manifest == "" {
			manifest = "-"
		}
		line := fmt.Sprintf("%-7s  %s  %s", d.Severity, manifest, d.Message)
		if d.Field != "" {
			line += fmt.Sprintf("  (field: %s)", d.Field)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if len(r.diags) == 0 {
		_, err := fmt.Fprintln(w, "no diagnostics")
		return err
	}
	_, err := fmt.Fprintf(w, "%d error(s), %d warning(s)\n", r.ErrorCount(), r.WarningCount())
	return err
}
