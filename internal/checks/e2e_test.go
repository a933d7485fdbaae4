package checks

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/discovery"
)

// runPipeline executes the full engine over the registry.
func runPipeline(t *testing.T, in audit.Input) *audit.Result {
	t.Helper()
	if in.Files == nil {
		in.Files = &discovery.Files{}
	}
	return audit.NewEngine(Registry()).Run(in, "")
}

func TestPipeline_ExposedGatewayScoresAtMostForty(t *testing.T) {
	cfg := parseConfig(t, `{"gateway": {"bind": "0.0.0.0"}}`)
	result := runPipeline(t, audit.Input{Config: cfg})

	f := findByID(result.Findings, "GATEWAY_EXPOSED_NO_AUTH")
	require.NotNil(t, f, "critical network exposure must surface")
	assert.Equal(t, audit.SeverityCritical, f.Severity)
	assert.LessOrEqual(t, result.Score, 40, "any Critical finding caps the score")
}

func TestPipeline_EmptyConfigHasNoCriticalOrHigh(t *testing.T) {
	cfg := parseConfig(t, `{}`)
	result := runPipeline(t, audit.Input{Config: cfg})

	for _, f := range result.Findings {
		assert.NotEqual(t, audit.SeverityCritical, f.Severity, "unexpected critical: %s", f.ID)
		assert.NotEqual(t, audit.SeverityHigh, f.Severity, "unexpected high: %s", f.ID)
	}
	// Absence-based findings are allowed; a perfect score requires none at all.
	if len(result.Findings) == 0 {
		assert.Equal(t, 100, result.Score)
	} else {
		assert.Less(t, result.Score, 100)
	}
}

func TestPipeline_WorldReadableCredentialsAggregate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permission check")
	}

	dir := t.TempDir()
	var creds []string
	for _, name := range []string{"api.json", "oauth.json", "svc.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
		creds = append(creds, path)
	}

	result := runPipeline(t, audit.Input{Files: &discovery.Files{Credentials: creds}})

	var matches []audit.Finding
	for _, f := range result.Findings {
		if f.ID == "CRED_FILE_WORLD_READABLE" {
			matches = append(matches, f)
		}
	}
	require.Len(t, matches, 1, "repeats of one rule must aggregate to a single finding")

	desc := matches[0].Description
	assert.Contains(t, desc, "3 occurrences")
	for _, name := range []string{"api.json", "oauth.json", "svc.json"} {
		assert.Contains(t, desc, name)
	}
	assert.Equal(t, creds[0], matches[0].File)
}

func TestPipeline_ConfigChecksSkippedWithoutConfig(t *testing.T) {
	result := runPipeline(t, audit.Input{Config: nil})

	// No config means no config-derived findings at all, not
	// "everything is insecure" findings from an empty default.
	for _, f := range append(result.Findings, result.Suggestions...) {
		assert.False(t, strings.HasPrefix(f.ID, "SANDBOX_"), "config-gated finding leaked: %s", f.ID)
		assert.False(t, strings.HasPrefix(f.ID, "GATEWAY_"), "config-gated finding leaked: %s", f.ID)
		assert.False(t, strings.HasPrefix(f.ID, "REDACTION_"), "config-gated finding leaked: %s", f.ID)
	}
	assert.Equal(t, len(Registry()), result.ChecksRun, "checksRun stays at registry size")
}

func TestRegistry_OrderIsStable(t *testing.T) {
	a := Registry()
	b := Registry()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Name, b[i].Name)
	}
}
