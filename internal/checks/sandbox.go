package checks

import (
	"strings"

	"github.com/boshu2/agentaudit/internal/audit"
)

const categorySandbox = "Sandboxing"

// Sandbox audits execution isolation. Absence and an explicit
// enabled=false are treated identically here: either way the agent
// executes tools directly on the host.
func Sandbox(in audit.Input) []audit.Finding {
	cfg := in.Config
	var findings []audit.Finding

	s := cfg.Sandbox
	if s == nil || !isTrue(s.Enabled) {
		findings = append(findings, audit.Finding{
			ID:          "SANDBOX_DISABLED",
			Severity:    audit.SeverityMedium,
			Confidence:  audit.ConfidenceHigh,
			Category:    categorySandbox,
			Title:       "Agent tool execution is not sandboxed",
			Description: "No sandbox is enabled, so tools run with the full privileges of the agent process.",
			Risk:        "A prompt-injected or buggy tool call can read and modify anything the user account can.",
			Remediation: "Enable the sandbox (sandbox.enabled: true) with a container-backed mode.",
			AutoFixable: false,
			File:        cfg.Path,
		})
		return findings
	}

	if strings.EqualFold(s.Mode, "none") {
		findings = append(findings, audit.Finding{
			ID:          "SANDBOX_MODE_NONE",
			Severity:    audit.SeverityMedium,
			Confidence:  audit.ConfidenceHigh,
			Category:    categorySandbox,
			Title:       "Sandbox enabled but mode is \"none\"",
			Description: "sandbox.enabled is true but the mode disables isolation, which is equivalent to running unsandboxed.",
			Risk:        "The enabled flag gives a false sense of containment.",
			Remediation: "Set sandbox.mode to a container-backed isolation mode.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	if isTrue(s.AllowHostNetwork) {
		findings = append(findings, audit.Finding{
			ID:          "SANDBOX_HOST_NETWORK",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    categorySandbox,
			Title:       "Sandbox shares the host network namespace",
			Description: "sandbox.allowHostNetwork is true, letting sandboxed tools reach loopback services on the host.",
			Risk:        "Sandboxed code can attack local daemons, including the gateway itself.",
			Remediation: "Remove allowHostNetwork or set it to false.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	return findings
}
