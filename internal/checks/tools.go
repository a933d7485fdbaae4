package checks

import (
	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryTools = "Tool Policy"

// Tools audits the agent's tool surface configuration.
func Tools(in audit.Input) []audit.Finding {
	cfg := in.Config
	t := cfg.Tools
	if t == nil {
		return nil
	}

	var findings []audit.Finding
	if isTrue(t.AllowShell) && !isTrue(t.ConfirmDestructive) {
		findings = append(findings, audit.Finding{
			ID:          "TOOLS_SHELL_NO_CONFIRM",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryTools,
			Title:       "Shell tool enabled without destructive-action confirmation",
			Description: "tools.allowShell is true and confirmDestructive is not, so the agent can run arbitrary commands unprompted.",
			Risk:        "A single injected instruction can delete files or exfiltrate data.",
			Remediation: "Set tools.confirmDestructive: true, or disable the shell tool.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	} else if isTrue(t.AllowShell) {
		findings = append(findings, audit.Finding{
			ID:          "TOOLS_SHELL_ENABLED",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceMedium,
			Category:    categoryTools,
			Title:       "Shell tool is enabled",
			Description: "The shell tool is available to the agent, gated by confirmation.",
			Risk:        "Confirmation fatigue can still let dangerous commands through.",
			Remediation: "Prefer narrow task-specific tools over a general shell where possible.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	return findings
}
