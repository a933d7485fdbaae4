package checks

import (
	"regexp"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/envfile"
)

const categorySecrets = "Secrets"

// secretValuePattern matches well-known credential formats. Shared by
// the env-file and session-log checks.
var secretValuePattern = regexp.MustCompile(
	`(sk-ant-[A-Za-z0-9_-]{20,}|sk-[A-Za-z0-9]{20,}|AKIA[0-9A-Z]{16}|ghp_[A-Za-z0-9]{36}|github_pat_[A-Za-z0-9_]{22,}|AIza[0-9A-Za-z_-]{35}|xox[baprs]-[A-Za-z0-9-]{10,})`)

// Secrets scans discovered env files for literal credential values.
// Keys whose values reference other variables are fine; only recognized
// secret formats fire. Runs with or without a parsed config.
func Secrets(in audit.Input) []audit.Finding {
	if in.Files == nil {
		return nil
	}

	var findings []audit.Finding
	for _, path := range in.Files.Env {
		vars, err := envfile.Parse(path)
		if err != nil {
			continue
		}
		for key, value := range vars {
			if !secretValuePattern.MatchString(value) {
				continue
			}
			findings = append(findings, audit.Finding{
				ID:          "ENV_CONTAINS_LIVE_SECRET",
				Severity:    audit.SeverityHigh,
				Confidence:  audit.ConfidenceHigh,
				Category:    categorySecrets,
				Title:       "Env file contains a live credential",
				Description: "Variable " + key + " holds a value matching a known credential format.",
				Risk:        "Env files are commonly synced, backed up, and world-readable by default.",
				Remediation: "Move the credential to an OS keychain or secrets manager and tighten the file mode.",
				AutoFixable: false,
				File:        path,
			})
			break // one finding per file; aggregation handles the rest
		}
	}
	return findings
}
