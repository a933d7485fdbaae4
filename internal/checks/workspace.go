package checks

import (
	"regexp"
	"strings"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/readcap"
)

const categoryWorkspace = "Workspace Trust"

// injectionMarkers are phrases characteristic of prompt-injection
// payloads planted in agent-readable documents. Keyword heuristics have
// a high false-positive rate, so everything here is low confidence.
var injectionMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore (all )?(previous|prior) instructions`),
	regexp.MustCompile(`(?i)disregard (all )?(previous|prior|your) (instructions|rules)`),
	regexp.MustCompile(`(?i)do not (tell|inform) the user`),
	regexp.MustCompile(`(?i)you are now in developer mode`),
}

// zeroWidthRunes hide payload text from human review while staying
// visible to the model.
const zeroWidthRunes = "​‌‍⁠"

// Workspace scans workspace documents and custom commands for
// prompt-injection markers.
func Workspace(in audit.Input) []audit.Finding {
	if in.Files == nil {
		return nil
	}

	budget := readcap.Budget(in.Deep)
	var docs []string
	docs = append(docs, in.Files.WorkspaceDocs...)
	docs = append(docs, in.Files.CustomCommands...)

	var findings []audit.Finding
	for _, path := range docs {
		content, _, err := readcap.Read(path, budget)
		if err != nil {
			continue
		}
		if marker := matchInjection(content); marker != "" {
			findings = append(findings, audit.Finding{
				ID:          "WORKSPACE_INJECTION_MARKER",
				Severity:    audit.SeverityLow,
				Confidence:  audit.ConfidenceLow,
				Category:    categoryWorkspace,
				Title:       "Workspace document contains prompt-injection phrasing",
				Description: "Found " + marker + " in an agent-readable document.",
				Risk:        "Documents the agent reads on every session can steer its behavior.",
				Remediation: "Review the document and remove anything you did not write.",
				AutoFixable: false,
				File:        path,
			})
		}
	}
	return findings
}

// matchInjection returns a short description of the first marker found,
// or "" when the content looks clean.
func matchInjection(content string) string {
	for _, p := range injectionMarkers {
		if p.MatchString(content) {
			return "an override instruction"
		}
	}
	if strings.ContainsAny(content, zeroWidthRunes) {
		return "zero-width characters"
	}
	return ""
}
