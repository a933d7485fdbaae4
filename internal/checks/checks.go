// Package checks implements the detector categories run by the audit
// engine. Each check is a pure function over the common Input: it
// performs its own bounded file reads, never propagates errors, and
// never observes another check's output. Registration order in Registry
// is fixed and part of the deterministic contract.
package checks

import (
	"github.com/boshu2/agentaudit/internal/audit"
)

// Registry returns the ordered detector registry the engine runs.
// Config-gated categories come first; file-presence categories run even
// when no configuration could be parsed.
func Registry() []audit.Check {
	return []audit.Check{
		{Name: "network", RequiresConfig: true, Run: Network},
		{Name: "identity", RequiresConfig: true, Run: Identity},
		{Name: "sandbox", RequiresConfig: true, Run: Sandbox},
		{Name: "model", RequiresConfig: true, Run: Model},
		{Name: "tools", RequiresConfig: true, Run: Tools},
		{Name: "data-protection", RequiresConfig: true, Run: DataProtection},
		{Name: "cloud-sync", RequiresConfig: true, Run: CloudSync},
		{Name: "update", RequiresConfig: true, Run: Update},
		{Name: "secrets", Run: Secrets},
		{Name: "permissions", Run: Permissions},
		{Name: "session-logs", Run: SessionLogs},
		{Name: "skills", Run: Skills},
		{Name: "workspace", Run: Workspace},
	}
}

// isTrue reports whether an optional boolean is explicitly true.
func isTrue(b *bool) bool {
	return b != nil && *b
}

// isFalse reports whether an optional boolean is explicitly false.
// Absent is not false: several checks only fire on an explicit setting.
func isFalse(b *bool) bool {
	return b != nil && !*b
}

// firstN returns at most n leading elements of paths.
func firstN(paths []string, n int) []string {
	if len(paths) <= n {
		return paths
	}
	return paths[:n]
}
