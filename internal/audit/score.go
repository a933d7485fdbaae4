package audit

// Severity penalties subtracted from the starting score. Critical
// findings carry no additive penalty of their own; their entire effect
// is the hard ceiling applied after the subtraction.
const (
	penaltyHigh   = 8
	penaltyMedium = 3
	penaltyLow    = 1

	// criticalCeiling caps the final score whenever any Critical
	// finding is present. A single critical exposure must never be
	// hidden behind an otherwise-healthy aggregate.
	criticalCeiling = 40
)

// Score reduces a finding list to a single value in [0,100]. Starts at
// 100, subtracts a fixed penalty per finding keyed by severity, floors
// the subtraction at 0, then applies the Critical ceiling.
func Score(findings []Finding) int {
	score := 100
	hasCritical := false
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			hasCritical = true
		case SeverityHigh:
			score -= penaltyHigh
		case SeverityMedium:
			score -= penaltyMedium
		case SeverityLow:
			score -= penaltyLow
		}
	}
	if score < 0 {
		score = 0
	}
	if hasCritical && score > criticalCeiling {
		score = criticalCeiling
	}
	return score
}

// SplitConfidence partitions findings into the authoritative list
// (confidence medium or high) and suggestions (confidence low).
// Suggestions come from weaker heuristics with a higher expected
// false-positive rate and must not depress the score.
func SplitConfidence(all []Finding) (findings, suggestions []Finding) {
	findings = make([]Finding, 0, len(all))
	suggestions = make([]Finding, 0)
	for _, f := range all {
		if f.Confidence == ConfidenceLow {
			suggestions = append(suggestions, f)
			continue
		}
		findings = append(findings, f)
	}
	return findings, suggestions
}
