package checks

import (
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/boshu2/agentaudit/internal/audit"
	"github.com/boshu2/agentaudit/internal/readcap"
)

const categorySkills = "Skills"

// remoteExecPatterns match instructions that pipe downloaded content
// straight into an interpreter.
var remoteExecPatterns = []*regexp.Regexp{
	regexp.MustCompile(`curl[^\n|]*\|\s*(ba|z)?sh`),
	regexp.MustCompile(`wget[^\n|]*\|\s*(ba|z)?sh`),
	regexp.MustCompile(`base64\s+(-d|--decode)[^\n|]*\|\s*(ba|z)?sh`),
	regexp.MustCompile(`iwr[^\n|]*\|\s*iex`),
}

// skillManifest is the subset of skill.yaml the audit cares about.
type skillManifest struct {
	Name   string `yaml:"name"`
	Source struct {
		URL    string `yaml:"url"`
		SHA256 string `yaml:"sha256"`
	} `yaml:"source"`
}

// Skills audits installed skill instructions and their manifests.
func Skills(in audit.Input) []audit.Finding {
	if in.Files == nil {
		return nil
	}

	budget := readcap.Budget(in.Deep)
	var findings []audit.Finding

	for _, path := range in.Files.SkillFiles {
		content, _, err := readcap.Read(path, budget)
		if err != nil {
			continue
		}
		for _, p := range remoteExecPatterns {
			if p.MatchString(content) {
				findings = append(findings, audit.Finding{
					ID:          "SKILL_REMOTE_EXEC",
					Severity:    audit.SeverityHigh,
					Confidence:  audit.ConfidenceHigh,
					Category:    categorySkills,
					Title:       "Skill pipes downloaded content into a shell",
					Description: "A skill instruction downloads remote content and executes it directly.",
					Risk:        "The remote endpoint can change at any time; the skill becomes a remote code execution channel.",
					Remediation: "Vendor the script into the skill and execute the local, reviewed copy.",
					AutoFixable: false,
					File:        path,
				})
				break
			}
		}
	}

	for _, path := range in.Files.SkillManifests {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var m skillManifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			continue
		}
		if strings.HasPrefix(strings.ToLower(m.Source.URL), "http://") {
			findings = append(findings, audit.Finding{
				ID:          "SKILL_INSECURE_SOURCE",
				Severity:    audit.SeverityMedium,
				Confidence:  audit.ConfidenceHigh,
				Category:    categorySkills,
				Title:       "Skill source fetched over plain HTTP",
				Description: "The skill manifest pins its source to an http:// URL.",
				Risk:        "On-path attackers can substitute the skill content.",
				Remediation: "Use an https:// source URL.",
				AutoFixable: false,
				File:        path,
			})
		}
		if m.Source.URL != "" && m.Source.SHA256 == "" {
			findings = append(findings, audit.Finding{
				ID:          "SKILL_UNPINNED_SOURCE",
				Severity:    audit.SeverityLow,
				Confidence:  audit.ConfidenceLow,
				Category:    categorySkills,
				Title:       "Skill source is not pinned to a digest",
				Description: "The manifest names a remote source without a sha256 pin.",
				Risk:        "Upstream changes flow in without review.",
				Remediation: "Add source.sha256 to the manifest.",
				AutoFixable: false,
				File:        path,
			})
		}
	}

	return findings
}
