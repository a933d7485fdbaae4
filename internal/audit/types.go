// Package audit implements the core finding pipeline: check invocation,
// deduplication, confidence triage, scoring, and result assembly.
package audit

import "time"

// Severity classifies how dangerous a finding is. Values are ordered:
// Critical > High > Medium > Low.
type Severity string

// Severity constants, in wire format.
const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
)

// Confidence expresses how likely a finding is to be a true positive.
// Low-confidence findings are reported as suggestions and never scored.
type Confidence string

// Confidence constants, in wire format.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// FixType distinguishes fixes that cannot change agent behavior (file
// modes, backups) from fixes that do (rewriting config values).
type FixType string

// FixType constants.
const (
	FixSafe       FixType = "safe"
	FixBehavioral FixType = "behavioral"
)

// Finding is a single detected issue instance. ID is the stable rule
// identifier and doubles as the aggregation key: when the same rule
// fires against multiple files, Aggregate merges the group into one
// entry keyed by ID.
type Finding struct {
	ID          string     `json:"id"`
	Severity    Severity   `json:"severity"`
	Confidence  Confidence `json:"confidence"`
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Risk        string     `json:"risk"`
	Remediation string     `json:"remediation"`
	AutoFixable bool       `json:"autoFixable"`
	FixType     FixType    `json:"fixType,omitempty"`
	File        string     `json:"file,omitempty"`
	Line        int        `json:"line,omitempty"`
}

// Result is the aggregate output of a scan. Findings holds everything
// with medium or high confidence; Suggestions holds the low-confidence
// remainder, surfaced for completeness but excluded from the score.
type Result struct {
	Timestamp    time.Time `json:"timestamp"`
	ToolVersion  string    `json:"toolVersion,omitempty"`
	Score        int       `json:"score"`
	Findings     []Finding `json:"findings"`
	Suggestions  []Finding `json:"suggestions"`
	FilesScanned int       `json:"filesScanned"`
	ChecksRun    int       `json:"checksRun"`
	ChecksPassed int       `json:"checksPassed"`
	DurationMs   int64     `json:"durationMs"`
	Platform     string    `json:"platform"`
}

// severityRank orders severities for display sorting (most severe first).
func severityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}
