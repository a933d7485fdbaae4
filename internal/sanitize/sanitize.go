// Package sanitize redacts secret-like substrings from finding text
// before any output or sharing path. Findings quote file content and
// config fragments, so the report itself must not become a second copy
// of a leaked credential.
package sanitize

import (
	"regexp"

	"github.com/boshu2/agentaudit/internal/audit"
)

// secretPatterns cover the credential formats the checks recognize plus
// generic bearer/assignment shapes that show up in quoted text.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`sk-ant-[A-Za-z0-9_-]{20,}`),
	regexp.MustCompile(`sk-[A-Za-z0-9]{20,}`),
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),
	regexp.MustCompile(`ghp_[A-Za-z0-9]{36}`),
	regexp.MustCompile(`github_pat_[A-Za-z0-9_]{22,}`),
	regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`),
	regexp.MustCompile(`xox[baprs]-[A-Za-z0-9-]{10,}`),
	regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/-]{20,}=*`),
	regexp.MustCompile(`(?i)(api[_-]?key|token|password|secret)["']?\s*[:=]\s*["']?[A-Za-z0-9._~+/-]{12,}`),
}

const replacement = "[REDACTED]"

// String redacts secret-like substrings in s.
func String(s string) string {
	for _, p := range secretPatterns {
		s = p.ReplaceAllString(s, replacement)
	}
	return s
}

// Finding returns a copy of f with every free-text field redacted.
// Paths and identifiers are left alone.
func Finding(f audit.Finding) audit.Finding {
	f.Title = String(f.Title)
	f.Description = String(f.Description)
	f.Risk = String(f.Risk)
	f.Remediation = String(f.Remediation)
	return f
}

// Result redacts all findings and suggestions in place.
func Result(r *audit.Result) {
	for i, f := range r.Findings {
		r.Findings[i] = Finding(f)
	}
	for i, f := range r.Suggestions {
		r.Suggestions[i] = Finding(f)
	}
}
