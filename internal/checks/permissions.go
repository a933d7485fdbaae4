package checks

import (
	"os"
	"runtime"

	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryPermissions = "File Permissions"

// Permissions audits the modes of credential and key material. Each
// affected file produces one finding; the aggregator collapses repeats
// of the same rule into a single countable entry.
func Permissions(in audit.Input) []audit.Finding {
	// POSIX mode bits are synthesized on windows and would only
	// produce noise there.
	if runtime.GOOS == "windows" || in.Files == nil {
		return nil
	}

	var findings []audit.Finding

	var credentialFiles []string
	credentialFiles = append(credentialFiles, in.Files.Credentials...)
	credentialFiles = append(credentialFiles, in.Files.AuthProfiles...)
	credentialFiles = append(credentialFiles, in.Files.Env...)
	for _, path := range credentialFiles {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0o044 != 0 {
			findings = append(findings, audit.Finding{
				ID:          "CRED_FILE_WORLD_READABLE",
				Severity:    audit.SeverityHigh,
				Confidence:  audit.ConfidenceHigh,
				Category:    categoryPermissions,
				Title:       "Credential file is readable by other users",
				Description: "File mode allows group or world read access to credential material.",
				Risk:        "Any local user or process can copy the credentials.",
				Remediation: "chmod 600 the file.",
				AutoFixable: true,
				FixType:     audit.FixSafe,
				File:        path,
			})
		}
	}

	var keyFiles []string
	keyFiles = append(keyFiles, in.Files.PrivateKeys...)
	keyFiles = append(keyFiles, in.Files.SSHKeys...)
	for _, path := range keyFiles {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.Mode().Perm()&0o077 != 0 {
			findings = append(findings, audit.Finding{
				ID:          "KEY_FILE_LOOSE_PERMS",
				Severity:    audit.SeverityHigh,
				Confidence:  audit.ConfidenceHigh,
				Category:    categoryPermissions,
				Title:       "Private key has loose permissions",
				Description: "Private key material is accessible to users other than the owner.",
				Risk:        "Key theft grants persistent impersonation.",
				Remediation: "chmod 600 the key file.",
				AutoFixable: true,
				FixType:     audit.FixSafe,
				File:        path,
			})
		}
	}

	return findings
}
