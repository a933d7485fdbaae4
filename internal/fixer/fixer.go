// Package fixer applies the remediations findings mark as auto-fixable.
// Every mutation writes a pre-modification backup next to the target
// file. Behavioral fixes (ones that change what the agent does, not
// just file metadata) are gated behind an explicit opt-in.
package fixer

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/boshu2/agentaudit/internal/audit"
)

// Outcome reports what happened to one finding's fix attempt.
type Outcome struct {
	FindingID string `json:"findingId"`
	File      string `json:"file,omitempty"`
	Applied   bool   `json:"applied"`
	Backup    string `json:"backup,omitempty"`
	Detail    string `json:"detail"`
}

// fixFunc applies one rule's remediation and returns the backup path.
type fixFunc func(f audit.Finding) (backup string, err error)

// fixes maps rule IDs to their remediations. Only IDs listed here are
// actionable regardless of what a finding's AutoFixable flag claims.
var fixes = map[string]fixFunc{
	"CRED_FILE_WORLD_READABLE": tightenMode,
	"KEY_FILE_LOOSE_PERMS":     tightenMode,
	"GATEWAY_EXPOSED_NO_AUTH":  rebindLoopback,
}

// Apply runs the registered fix for each auto-fixable finding.
// Behavioral fixes are skipped unless allowBehavioral is set. One
// failing fix never stops the rest.
func Apply(findings []audit.Finding, allowBehavioral bool) []Outcome {
	var outcomes []Outcome
	for _, f := range findings {
		if !f.AutoFixable {
			continue
		}
		fix, ok := fixes[f.ID]
		if !ok {
			outcomes = append(outcomes, Outcome{
				FindingID: f.ID, File: f.File,
				Detail: "no fix registered for this rule",
			})
			continue
		}
		if f.FixType == audit.FixBehavioral && !allowBehavioral {
			outcomes = append(outcomes, Outcome{
				FindingID: f.ID, File: f.File,
				Detail: "behavioral fix skipped; re-run with --behavioral to apply",
			})
			continue
		}
		backup, err := fix(f)
		if err != nil {
			outcomes = append(outcomes, Outcome{
				FindingID: f.ID, File: f.File,
				Detail: err.Error(),
			})
			continue
		}
		outcomes = append(outcomes, Outcome{
			FindingID: f.ID, File: f.File, Applied: true, Backup: backup,
			Detail: "fixed",
		})
	}
	return outcomes
}

// tightenMode restricts a credential or key file to owner-only access.
func tightenMode(f audit.Finding) (string, error) {
	if f.File == "" {
		return "", fmt.Errorf("finding carries no file")
	}
	backup, err := backupFile(f.File)
	if err != nil {
		return "", err
	}
	if err := os.Chmod(f.File, 0o600); err != nil {
		return backup, fmt.Errorf("chmod %s: %w", f.File, err)
	}
	return backup, nil
}

// bindValuePattern locates the gateway bind value in the raw config text.
var bindValuePattern = regexp.MustCompile(`("bind"\s*:\s*)"[^"]*"`)

// rebindLoopback rewrites the gateway bind address to loopback in the
// config file. Text-level rewrite on purpose: re-serializing the parsed
// structure would destroy comments and layout.
func rebindLoopback(f audit.Finding) (string, error) {
	if f.File == "" {
		return "", fmt.Errorf("finding carries no file")
	}
	data, err := os.ReadFile(f.File)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.File, err)
	}
	if !bindValuePattern.Match(data) {
		return "", fmt.Errorf("no bind value found in %s", f.File)
	}
	backup, err := backupFile(f.File)
	if err != nil {
		return "", err
	}
	fixed := bindValuePattern.ReplaceAll(data, []byte(`$1"127.0.0.1"`))
	info, err := os.Stat(f.File)
	if err != nil {
		return backup, fmt.Errorf("stat %s: %w", f.File, err)
	}
	if err := os.WriteFile(f.File, fixed, info.Mode().Perm()); err != nil {
		return backup, fmt.Errorf("writing %s: %w", f.File, err)
	}
	return backup, nil
}

// backupFile copies path to a timestamped sibling and returns the copy's path.
func backupFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s for backup: %w", path, err)
	}
	backup := fmt.Sprintf("%s.bak-%d", path, time.Now().Unix())
	if err := os.WriteFile(backup, data, 0o600); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backup, err)
	}
	return backup, nil
}
