package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/discovery"
)

func TestSessionLogs_SecretInLog(t *testing.T) {
	log := writeTemp(t, "s1.jsonl",
		`{"role":"tool","output":"export KEY=sk-ant-`+strings.Repeat("x", 24)+`"}`+"\n")

	findings := SessionLogs(audit.Input{Files: &discovery.Files{SessionLogs: []string{log}}})

	f := findByID(findings, "LOG_CONTAINS_SECRET")
	require.NotNil(t, f)
	assert.Equal(t, audit.SeverityMedium, f.Severity)
	assert.Equal(t, log, f.File)
}

func TestSessionLogs_CleanLog(t *testing.T) {
	log := writeTemp(t, "s1.jsonl", `{"role":"user","content":"hello"}`+"\n")
	findings := SessionLogs(audit.Input{Files: &discovery.Files{SessionLogs: []string{log}}})
	assert.Empty(t, findings)
}

func TestSessionLogs_OnlyPrefixScanned(t *testing.T) {
	dir := t.TempDir()
	secret := `{"output":"sk-ant-` + strings.Repeat("z", 24) + `"}` + "\n"

	// More logs than the cap; only the leading MaxLogFiles are read.
	var logs []string
	for i := 0; i < audit.MaxLogFiles+3; i++ {
		path := filepath.Join(dir, "s"+string(rune('a'+i))+".jsonl")
		content := `{"clean":true}` + "\n"
		if i >= audit.MaxLogFiles {
			content = secret
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		logs = append(logs, path)
	}

	findings := SessionLogs(audit.Input{Files: &discovery.Files{SessionLogs: logs}})
	assert.Empty(t, findings, "logs past the prefix cap must not be read")
}
