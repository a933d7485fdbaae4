package checks

import (
	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryDataProtection = "Data Protection"

// DataProtection audits secret redaction in the agent's own logging.
// Explicit false and absence are deliberately different findings here:
// someone turned redaction off versus nobody turned it on.
func DataProtection(in audit.Input) []audit.Finding {
	cfg := in.Config
	var redact *bool
	if cfg.Logging != nil {
		redact = cfg.Logging.RedactSecrets
	}

	if isFalse(redact) {
		return []audit.Finding{{
			ID:          "REDACTION_DISABLED",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryDataProtection,
			Title:       "Secret redaction explicitly disabled",
			Description: "logging.redactSecrets is set to false, so credentials seen by the agent are written to session logs verbatim.",
			Risk:        "Every secret the agent touches persists in plaintext logs.",
			Remediation: "Remove logging.redactSecrets or set it to true.",
			AutoFixable: false,
			File:        cfg.Path,
		}}
	}
	if redact == nil {
		return []audit.Finding{{
			ID:          "REDACTION_UNSET",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceLow,
			Category:    categoryDataProtection,
			Title:       "Secret redaction not explicitly enabled",
			Description: "logging.redactSecrets is not set; the effective behavior depends on the installed version's default.",
			Risk:        "Older defaults logged secrets in the clear.",
			Remediation: "Set logging.redactSecrets: true explicitly.",
			AutoFixable: false,
			File:        cfg.Path,
		}}
	}
	return nil
}
