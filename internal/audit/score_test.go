package audit

import "testing"

// mk is a helper to create findings with just the fields scoring cares about.
func mk(id string, sev Severity, conf Confidence) Finding {
	return Finding{
		ID:         id,
		Severity:   sev,
		Confidence: conf,
		Category:   "Test",
		Title:      "test finding " + id,
	}
}

func TestScore_Empty(t *testing.T) {
	if got := Score(nil); got != 100 {
		t.Errorf("Score(nil) = %d, want 100", got)
	}
}

func TestScore_SingleSeverities(t *testing.T) {
	cases := []struct {
		name string
		sev  Severity
		want int
	}{
		{"high", SeverityHigh, 92},
		{"medium", SeverityMedium, 97},
		{"low", SeverityLow, 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score([]Finding{mk("a", tc.sev, ConfidenceHigh)})
			if got != tc.want {
				t.Errorf("Score([%s]) = %d, want %d", tc.sev, got, tc.want)
			}
		})
	}
}

func TestScore_Additive(t *testing.T) {
	findings := []Finding{
		mk("a", SeverityHigh, ConfidenceHigh),
		mk("b", SeverityMedium, ConfidenceHigh),
		mk("c", SeverityLow, ConfidenceHigh),
	}
	if got := Score(findings); got != 88 {
		t.Errorf("Score = %d, want 88 (100-8-3-1)", got)
	}
}

func TestScore_CriticalCeiling(t *testing.T) {
	if got := Score([]Finding{mk("a", SeverityCritical, ConfidenceHigh)}); got != 40 {
		t.Errorf("Score([Critical]) = %d, want 40", got)
	}

	// The additive total alone would stay above 40; any Critical still
	// forces the ceiling.
	findings := []Finding{
		mk("a", SeverityCritical, ConfidenceHigh),
		mk("b", SeverityHigh, ConfidenceHigh),
		mk("c", SeverityLow, ConfidenceHigh),
	}
	if got := Score(findings); got != 40 {
		t.Errorf("Score([Critical High Low]) = %d, want 40", got)
	}
}

func TestScore_CriticalBelowCeiling(t *testing.T) {
	// Enough additive damage to drop below the ceiling: the lower
	// value wins, the ceiling never raises a score.
	findings := []Finding{mk("crit", SeverityCritical, ConfidenceHigh)}
	for i := 0; i < 10; i++ {
		findings = append(findings, mk(string(rune('a'+i)), SeverityHigh, ConfidenceHigh))
	}
	if got := Score(findings); got != 20 {
		t.Errorf("Score = %d, want 20 (100-80, under the 40 ceiling)", got)
	}
}

func TestScore_ClampsAtZero(t *testing.T) {
	var findings []Finding
	for i := 0; i < 20; i++ {
		findings = append(findings, mk(string(rune('a'+i)), SeverityHigh, ConfidenceHigh))
	}
	if got := Score(findings); got != 0 {
		t.Errorf("Score(20 highs) = %d, want 0", got)
	}
}

func TestSplitConfidence(t *testing.T) {
	all := []Finding{
		mk("a", SeverityHigh, ConfidenceHigh),
		mk("b", SeverityLow, ConfidenceLow),
		mk("c", SeverityMedium, ConfidenceMedium),
	}
	findings, suggestions := SplitConfidence(all)
	if len(findings) != 2 {
		t.Errorf("findings = %d, want 2", len(findings))
	}
	if len(suggestions) != 1 || suggestions[0].ID != "b" {
		t.Errorf("suggestions = %v, want just b", suggestions)
	}
}

func TestSplitConfidence_SuggestionsNeverScored(t *testing.T) {
	all := []Finding{
		mk("a", SeverityCritical, ConfidenceLow),
	}
	findings, _ := SplitConfidence(all)
	if got := Score(findings); got != 100 {
		t.Errorf("low-confidence critical depressed score to %d", got)
	}
}
