// Package report renders scan results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/boshu2/agentaudit/internal/audit"
)

// Text writes the default terminal report: score header, findings
// table, and suggestion list.
func Text(w io.Writer, result *audit.Result) error {
	fmt.Fprintf(w, "agentaudit scan: score %d/100\n", result.Score)
	fmt.Fprintf(w, "%d files scanned, %d/%d checks passed, %dms\n\n",
		result.FilesScanned, result.ChecksPassed, result.ChecksRun, result.DurationMs)

	if len(result.Findings) == 0 {
		fmt.Fprintln(w, "No findings.")
	} else {
		t := newTable(w, "SEVERITY", "ID", "TITLE", "FILE")
		t.setMaxWidth(2, 60)
		t.setMaxWidth(3, 48)
		for _, f := range result.Findings {
			t.addRow(string(f.Severity), f.ID, f.Title, f.File)
		}
		if err := t.render(); err != nil {
			return err
		}
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintf(w, "\nSuggestions (not scored):\n")
		for _, s := range result.Suggestions {
			fmt.Fprintf(w, "  - [%s] %s\n", s.ID, s.Title)
		}
	}
	return nil
}

// Verbose writes the full detail block for each finding.
func Verbose(w io.Writer, result *audit.Result) error {
	if err := Text(w, result); err != nil {
		return err
	}
	for _, f := range result.Findings {
		fmt.Fprintf(w, "\n%s [%s/%s] %s\n", f.ID, f.Severity, f.Confidence, f.Title)
		fmt.Fprintf(w, "  %s\n", f.Description)
		fmt.Fprintf(w, "  Risk: %s\n", f.Risk)
		fmt.Fprintf(w, "  Fix:  %s\n", f.Remediation)
		if f.File != "" {
			fmt.Fprintf(w, "  File: %s\n", f.File)
		}
	}
	return nil
}

// JSON writes the result as indented JSON.
func JSON(w io.Writer, result *audit.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
