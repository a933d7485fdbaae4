package checks

import (
	"strings"

	"github.com/boshu2/agentaudit/internal/agentconfig"
	"github.com/boshu2/agentaudit/internal/audit"
)

const categoryNetwork = "Network Exposure"

// loopbackBinds are bind addresses that keep the gateway local-only.
// An empty bind falls back to the gateway default, which is loopback.
var loopbackBinds = map[string]bool{
	"":          true,
	"127.0.0.1": true,
	"localhost": true,
	"::1":       true,
}

// Network audits the gateway's listen address, authentication, and
// transport security.
func Network(in audit.Input) []audit.Finding {
	g := in.Config.Gateway
	if g == nil {
		return nil
	}

	exposed := !loopbackBinds[strings.ToLower(strings.TrimSpace(g.Bind))]
	authed := gatewayAuthConfigured(g.Auth)

	var findings []audit.Finding
	if exposed && !authed {
		findings = append(findings, audit.Finding{
			ID:          "GATEWAY_EXPOSED_NO_AUTH",
			Severity:    audit.SeverityCritical,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryNetwork,
			Title:       "Gateway bound to a non-loopback interface without authentication",
			Description: "The gateway listens on " + g.Bind + " with no auth section configured, so anyone who can reach the port can drive the agent.",
			Risk:        "Remote code execution and full agent takeover from the local network or the internet.",
			Remediation: "Bind the gateway to 127.0.0.1, or enable token authentication before exposing it.",
			AutoFixable: true,
			FixType:     audit.FixBehavioral,
			File:        in.Config.Path,
		})
	}
	if exposed && authed && !isTrue(tlsEnabled(g)) {
		findings = append(findings, audit.Finding{
			ID:          "GATEWAY_NO_TLS",
			Severity:    audit.SeverityHigh,
			Confidence:  audit.ConfidenceHigh,
			Category:    categoryNetwork,
			Title:       "Gateway exposed without TLS",
			Description: "The gateway listens on " + g.Bind + " and authenticates clients, but traffic (including credentials) is sent in cleartext.",
			Risk:        "Tokens and session content can be captured by anyone on the network path.",
			Remediation: "Enable gateway TLS or terminate TLS in front of the gateway.",
			AutoFixable: false,
			File:        in.Config.Path,
		})
	}
	if !exposed && !authed {
		findings = append(findings, audit.Finding{
			ID:          "GATEWAY_LOCAL_NO_AUTH",
			Severity:    audit.SeverityLow,
			Confidence:  audit.ConfidenceMedium,
			Category:    categoryNetwork,
			Title:       "Local gateway runs without authentication",
			Description: "The gateway only listens on loopback, but any local process can connect to it unauthenticated.",
			Risk:        "Other software on this machine can drive the agent.",
			Remediation: "Enable token authentication even for loopback-only deployments.",
			AutoFixable: false,
			File:        in.Config.Path,
		})
	}
	return findings
}

// gatewayAuthConfigured reports whether the auth section actually
// establishes authentication. A missing section, an explicit
// enabled=false, or mode "none" all count as unauthenticated.
func gatewayAuthConfigured(a *agentconfig.GatewayAuth) bool {
	if a == nil || isFalse(a.Enabled) {
		return false
	}
	if isTrue(a.Enabled) {
		return true
	}
	if strings.EqualFold(a.Mode, "none") {
		return false
	}
	return a.Token != "" || a.Password != "" || a.Mode != ""
}

func tlsEnabled(g *agentconfig.Gateway) *bool {
	if g.TLS == nil {
		return nil
	}
	return g.TLS.Enabled
}
