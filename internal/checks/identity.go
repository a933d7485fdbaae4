package checks

import (
	"regexp"

	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryIdentity = "Identity & Access"

// inlineTokenPattern matches a literal token or password value in the
// raw config text. Values that reference environment variables
// (${VAR} or $VAR) are fine; only inline literals are flagged. This is
// a raw-text check on purpose: the parsed structure cannot distinguish
// an expanded reference from a hardcoded secret.
var inlineTokenPattern = regexp.MustCompile(`"(token|password|apiKey)"\s*:\s*"[^"$][^"]*"`)

// minPasswordLength is the shortest gateway password not flagged as weak.
const minPasswordLength = 12

// Identity audits authentication material and access control settings.
func Identity(in audit.Input) []audit.Finding {
	cfg := in.Config
	var findings []audit.Finding

	if loc := inlineTokenPattern.FindStringIndex(cfg.Raw); loc != nil {
		findings = append(findings, audit.Finding{
			ID:          "AUTH_SECRET_INLINE",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryIdentity,
			Title:       "Authentication secret stored inline in the config file",
			Description: "A token or password is written literally in the configuration instead of referencing an environment variable.",
			Risk:        "The secret is exposed to backups, sync tools, and anything that can read the config.",
			Remediation: "Move the secret to the installation's .env file and reference it as ${VAR}.",
			AutoFixable: false,
			File:        cfg.Path,
			Line:        lineOf(cfg.Raw, loc[0]),
		})
	}

	if g := cfg.Gateway; g != nil && g.Auth != nil {
		if pw := g.Auth.Password; pw != "" && len(pw) < minPasswordLength {
			findings = append(findings, audit.Finding{
				ID:          "AUTH_WEAK_PASSWORD",
				Severity:    audit.SeverityMedium,
				Confidence:  audit.ConfidenceHigh,
				Category:    categoryIdentity,
				Title:       "Gateway password is too short",
				Description: "The configured gateway password is shorter than 12 characters.",
				Risk:        "Short passwords fall to online guessing quickly.",
				Remediation: "Use a generated token of at least 32 characters.",
				AutoFixable: false,
				File:        cfg.Path,
			})
		}
	}

	// Fires only on an explicitly empty group list; an absent list
	// means the deployment relies on the default policy, which is a
	// different (and quieter) situation.
	if a := cfg.Access; a != nil && a.AllowedGroups != nil && len(a.AllowedGroups) == 0 {
		findings = append(findings, audit.Finding{
			ID:          "ACCESS_GROUPS_EMPTY",
			Severity:    audit.SeverityMedium,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryIdentity,
			Title:       "Access control group list is explicitly empty",
			Description: "access.allowedGroups is set to an empty list, which disables group-based restrictions entirely.",
			Risk:        "Every authenticated principal gets full access.",
			Remediation: "List the groups that should be allowed to drive the agent, or remove the key to restore defaults.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}

	return findings
}

// lineOf converts a byte offset in text to a 1-based line number.
func lineOf(text string, offset int) int {
	line := 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
		}
	}
	return line
}
