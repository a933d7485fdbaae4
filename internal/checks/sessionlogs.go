package checks

import (
	"os"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/readcap"
)

const categorySessionLogs = "Session Logs"

// oversizedLogBytes flags logs that have grown past any plausible
// retention policy.
const oversizedLogBytes = 100 * 1024 * 1024

// SessionLogs scans a bounded prefix of the discovered session logs for
// leaked credentials. Reads go through the capped reader so an
// arbitrarily large log cannot blow the memory budget.
func SessionLogs(in audit.Input) []audit.Finding {
	if in.Files == nil {
		return nil
	}

	budget := readcap.Budget(in.Deep)
	var findings []audit.Finding
	for _, path := range firstN(in.Files.SessionLogs, audit.MaxLogFiles) {
		content, _, err := readcap.Read(path, budget)
		if err != nil {
			continue
		}
		if secretValuePattern.MatchString(content) {
			findings = append(findings, audit.Finding{
				ID:          "LOG_CONTAINS_SECRET",
				Severity:    audit.SeverityMedium,
				Confidence:  audit.ConfidenceHigh,
				Category:    categorySessionLogs,
				Title:       "Session log contains credential material",
				Description: "A value matching a known credential format appears in this session log.",
				Risk:        "Logs outlive sessions and are rarely protected like credentials.",
				Remediation: "Enable logging.redactSecrets, rotate the leaked credential, and prune old logs.",
				AutoFixable: false,
				File:        path,
			})
		}
		if info, err := os.Stat(path); err == nil && info.Size() > oversizedLogBytes {
			findings = append(findings, audit.Finding{
				ID:          "LOG_OVERSIZED",
				Severity:    audit.SeverityLow,
				Confidence:  audit.ConfidenceLow,
				Category:    categorySessionLogs,
				Title:       "Session log exceeds 100 MB",
				Description: "This log has grown past any plausible retention window.",
				Risk:        "Large unrotated logs magnify the blast radius of any leak.",
				Remediation: "Configure log rotation or prune old sessions.",
				AutoFixable: false,
				File:        path,
			})
		}
	}
	return findings
}
