package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boshu2/agentaudit/internal/audit"
)

func TestIdentity_InlineToken(t *testing.T) {
	cfg := parseConfig(t, `{
	"gateway": {
		"auth": {"token": "hardcoded-secret-value-123"}
	}
}`)
	findings := Identity(audit.Input{Config: cfg})

	f := findByID(findings, "AUTH_SECRET_INLINE")
	require.NotNil(t, f)
	assert.Equal(t, audit.SeverityHigh, f.Severity)
	assert.Equal(t, 3, f.Line, "line should point at the token in the raw text")
}

func TestIdentity_EnvReferenceNotFlagged(t *testing.T) {
	cfg := parseConfig(t, `{"gateway": {"auth": {"token": "${OPENCLAW_GATEWAY_TOKEN}"}}}`)
	findings := Identity(audit.Input{Config: cfg})
	assert.Nil(t, findByID(findings, "AUTH_SECRET_INLINE"),
		"${VAR} references are the remediation, not a finding")
}

func TestIdentity_WeakPassword(t *testing.T) {
	cfg := parseConfig(t, `{"gateway": {"auth": {"password": "${PW}"}}}`)
	cfg.Gateway.Auth.Password = "short"
	findings := Identity(audit.Input{Config: cfg})
	assert.NotNil(t, findByID(findings, "AUTH_WEAK_PASSWORD"))
}

func TestIdentity_EmptyGroupsFiresOnlyWhenExplicit(t *testing.T) {
	explicit := parseConfig(t, `{"access": {"allowedGroups": []}}`)
	assert.NotNil(t, findByID(Identity(audit.Input{Config: explicit}), "ACCESS_GROUPS_EMPTY"))

	absent := parseConfig(t, `{"access": {}}`)
	assert.Nil(t, findByID(Identity(audit.Input{Config: absent}), "ACCESS_GROUPS_EMPTY"),
		"absent list relies on defaults and must not fire")

	populated := parseConfig(t, `{"access": {"allowedGroups": ["ops"]}}`)
	assert.Nil(t, findByID(Identity(audit.Input{Config: populated}), "ACCESS_GROUPS_EMPTY"))
}
