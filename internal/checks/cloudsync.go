package checks

import (
	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryCloudSync = "Cloud Sync"

// CloudSync audits workspace replication settings.
func CloudSync(in audit.Input) []audit.Finding {
	cfg := in.Config
	cs := cfg.CloudSync
	if cs == nil || !isTrue(cs.Enabled) {
		return nil
	}

	var findings []audit.Finding
	if !isTrue(cs.Encrypt) {
		findings = append(findings, audit.Finding{
			ID:          "CLOUDSYNC_UNENCRYPTED",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryCloudSync,
			Title:       "Workspace sync uploads without client-side encryption",
			Description: "cloudSync is enabled but cloudSync.encrypt is not, so workspace files (including memory and credentials references) are stored remotely in the clear.",
			Risk:        "A provider-side breach exposes the full agent workspace.",
			Remediation: "Enable cloudSync.encrypt before syncing, or disable sync.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	if cs.Provider == "" {
		findings = append(findings, audit.Finding{
			ID:          "CLOUDSYNC_NO_PROVIDER",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceLow,
			Category:    categoryCloudSync,
			Title:       "Cloud sync enabled without a pinned provider",
			Description: "cloudSync.provider is empty; the destination is resolved at runtime.",
			Risk:        "Sync could target an unexpected remote.",
			Remediation: "Pin cloudSync.provider to the intended destination.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	return findings
}
