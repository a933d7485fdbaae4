package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boshu2/agentaudit/internal/audit"
)

func renderInput() *audit.Result {
	return &audit.Result{
		Timestamp:    time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Score:        89,
		FilesScanned: 12,
		ChecksRun:    13,
		ChecksPassed: 11,
		DurationMs:   42,
		Platform:     "linux",
		Findings: []audit.Finding{{
			ID:          "GATEWAY_NO_TLS",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    "Network Exposure",
			Title:       "Gateway serves plaintext on a non-loopback bind",
			Description: "The gateway binds 10.0.0.5 without TLS.",
			Risk:        "Tokens cross the network in the clear.",
			Remediation: "Enable gateway.tls or bind to loopback.",
			File:        "/home/user/.openclaw/openclaw.json",
		}},
		Suggestions: []audit.Finding{{
			ID:    "MODEL_NO_ALLOWLIST",
			Title: "No model allowlist configured",
		}},
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, renderInput()))
	out := buf.String()

	assert.Contains(t, out, "score 89/100")
	assert.Contains(t, out, "11/13 checks passed")
	assert.Contains(t, out, "GATEWAY_NO_TLS")
	assert.Contains(t, out, "Suggestions (not scored):")
	assert.Contains(t, out, "MODEL_NO_ALLOWLIST")
	assert.NotContains(t, out, "binds 10.0.0.5", "descriptions belong to verbose mode")
}

func TestText_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	r := renderInput()
	r.Findings = nil
	r.Suggestions = nil
	require.NoError(t, Text(&buf, r))
	assert.Contains(t, buf.String(), "No findings.")
}

func TestVerbose_IncludesDetail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Verbose(&buf, renderInput()))
	out := buf.String()
	assert.Contains(t, out, "binds 10.0.0.5")
	assert.Contains(t, out, "Risk: Tokens cross the network")
	assert.Contains(t, out, "Fix:  Enable gateway.tls")
}

func TestJSON_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, renderInput()))

	var got audit.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 89, got.Score)
	require.Len(t, got.Findings, 1)
	assert.Equal(t, "GATEWAY_NO_TLS", got.Findings[0].ID)
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, renderInput()))
	out := buf.String()

	assert.Contains(t, out, "**Score:** 89/100")
	assert.Contains(t, out, "### HIGH")
	assert.Contains(t, out, "`GATEWAY_NO_TLS`")
	assert.Contains(t, out, "## Suggestions")
	assert.Contains(t, out, "`MODEL_NO_ALLOWLIST`")
}
