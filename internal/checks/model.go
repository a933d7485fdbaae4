package checks

import (
	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryModel = "Model Hygiene"

// Model audits which models the installation is allowed to talk to.
func Model(in audit.Input) []audit.Finding {
	cfg := in.Config
	m := cfg.Model
	var findings []audit.Finding

	// Absence-based heuristic, so it surfaces as a suggestion only.
	if m == nil || m.Allowlist == nil {
		findings = append(findings, audit.Finding{
			ID:          "MODEL_NO_ALLOWLIST",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceLow,
			Category:    categoryModel,
			Title:       "No model allowlist configured",
			Description: "Without model.allowlist, any reachable provider model can be selected at runtime.",
			Risk:        "Session content may be routed to unvetted models or providers.",
			Remediation: "Pin the approved models in model.allowlist.",
			AutoFixable: false,
			File:        cfg.Path,
		})
		return findings
	}

	if m.Primary != "" && !contains(m.Allowlist, m.Primary) {
		findings = append(findings, audit.Finding{
			ID:          "MODEL_PRIMARY_NOT_ALLOWED",
			Severity:    audit.SeverityMedium,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryModel,
			Title:       "Primary model is not on the allowlist",
			Description: "model.primary names a model that model.allowlist does not include, so the allowlist is not actually enforced for the default path.",
			Risk:        "The allowlist silently fails to constrain day-to-day traffic.",
			Remediation: "Add the primary model to the allowlist or change the primary.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	return findings
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
