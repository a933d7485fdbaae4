package checks

import (
	"strings"

	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryUpdate = "Operational"

// Update audits self-update hygiene.
func Update(in audit.Input) []audit.Finding {
	cfg := in.Config
	u := cfg.Update
	if u == nil {
		return nil
	}

	var findings []audit.Finding
	if isFalse(u.AutoUpdate) {
		findings = append(findings, audit.Finding{
			ID:          "UPDATE_AUTO_DISABLED",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceLow,
			Category:    categoryUpdate,
			Title:       "Automatic updates disabled",
			Description: "update.autoUpdate is false; security fixes require a manual upgrade.",
			Risk:        "Known-vulnerable versions linger.",
			Remediation: "Re-enable automatic updates or schedule regular manual upgrades.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	switch strings.ToLower(u.Channel) {
	case "nightly", "dev":
		findings = append(findings, audit.Finding{
			ID:          "UPDATE_UNSTABLE_CHANNEL",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceMedium,
			Category:    categoryUpdate,
			Title:       "Installation tracks an unstable release channel",
			Description: "update.channel is \"" + u.Channel + "\"; prerelease builds skip the stable channel's review window.",
			Risk:        "Regressions and unvetted changes land directly on this machine.",
			Remediation: "Track the stable channel for production installs.",
			AutoFixable: false,
			File:        cfg.Path,
		})
	}
	return findings
}
