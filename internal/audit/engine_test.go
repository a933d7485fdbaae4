package audit

import (
	"testing"

	"github.com/boshu2/agentaudit/internal/agentconfig"
	"github.com/boshu2/agentaudit/internal/discovery"
)

func staticCheck(name string, requiresConfig bool, out ...Finding) Check {
	return Check{
		Name:           name,
		RequiresConfig: requiresConfig,
		Run:            func(Input) []Finding { return out },
	}
}

func TestEngine_SkipsConfigChecksWithoutConfig(t *testing.T) {
	ran := false
	e := NewEngine([]Check{
		{Name: "gated", RequiresConfig: true, Run: func(Input) []Finding {
			ran = true
			return []Finding{mk("gated", SeverityCritical, ConfidenceHigh)}
		}},
		staticCheck("files-only", false, mk("present", SeverityLow, ConfidenceHigh)),
	})

	result := e.Run(Input{Config: nil, Files: &discovery.Files{}}, "")
	if ran {
		t.Error("config-gated check ran without a parsed config")
	}
	if len(result.Findings) != 1 || result.Findings[0].ID != "present" {
		t.Errorf("findings = %v, want only the file-presence finding", result.Findings)
	}
	// Registry size is constant regardless of skipping.
	if result.ChecksRun != 2 {
		t.Errorf("ChecksRun = %d, want 2", result.ChecksRun)
	}
}

func TestEngine_RunsConfigChecksWithConfig(t *testing.T) {
	e := NewEngine([]Check{
		staticCheck("gated", true, mk("gated", SeverityMedium, ConfidenceHigh)),
	})
	result := e.Run(Input{Config: &agentconfig.Config{}, Files: &discovery.Files{}}, "1.2.3")
	if len(result.Findings) != 1 {
		t.Fatalf("findings = %d, want 1", len(result.Findings))
	}
	if result.ToolVersion != "1.2.3" {
		t.Errorf("ToolVersion = %q", result.ToolVersion)
	}
}

func TestEngine_ResultAccounting(t *testing.T) {
	e := NewEngine([]Check{
		staticCheck("a", false, mk("f1", SeverityHigh, ConfidenceHigh)),
		staticCheck("b", false, mk("s1", SeverityLow, ConfidenceLow)),
		staticCheck("c", false),
	})
	files := &discovery.Files{
		Config: []string{"/root/openclaw.json"},
		Env:    []string{"/root/.env"},
	}
	result := e.Run(Input{Files: files}, "")

	if result.FilesScanned != 2 {
		t.Errorf("FilesScanned = %d, want 2", result.FilesScanned)
	}
	if result.ChecksRun != 3 {
		t.Errorf("ChecksRun = %d, want 3", result.ChecksRun)
	}
	// One authoritative finding: 3 checks - 1 = 2 passed.
	if result.ChecksPassed != 2 {
		t.Errorf("ChecksPassed = %d, want 2", result.ChecksPassed)
	}
	if len(result.Suggestions) != 1 {
		t.Errorf("Suggestions = %d, want 1", len(result.Suggestions))
	}
	if result.Score != 92 {
		t.Errorf("Score = %d, want 92", result.Score)
	}
	if result.Platform == "" {
		t.Error("Platform not set")
	}
}

func TestEngine_ChecksPassedNeverNegative(t *testing.T) {
	e := NewEngine([]Check{
		staticCheck("noisy", false,
			mk("a", SeverityLow, ConfidenceHigh),
			mk("b", SeverityLow, ConfidenceHigh),
			mk("c", SeverityLow, ConfidenceHigh)),
	})
	result := e.Run(Input{Files: &discovery.Files{}}, "")
	if result.ChecksPassed != 0 {
		t.Errorf("ChecksPassed = %d, want 0", result.ChecksPassed)
	}
}

func TestEngine_FindingsSortedBySeverity(t *testing.T) {
	e := NewEngine([]Check{
		staticCheck("a", false, mk("low", SeverityLow, ConfidenceHigh)),
		staticCheck("b", false, mk("crit", SeverityCritical, ConfidenceHigh)),
		staticCheck("c", false, mk("med", SeverityMedium, ConfidenceHigh)),
	})
	result := e.Run(Input{Files: &discovery.Files{}}, "")
	want := []string{"crit", "med", "low"}
	for i, id := range want {
		if result.Findings[i].ID != id {
			t.Errorf("Findings[%d] = %s, want %s", i, result.Findings[i].ID, id)
		}
	}
}
