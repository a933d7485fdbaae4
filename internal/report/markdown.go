package report

import (
	"io"
	"text/template"

	"github.com/boshu2/agentaudit/internal/audit"
)

// markdownTemplate renders a shareable report document.
const markdownTemplate = `# agentaudit report

**Score:** {{.Score}}/100
**Scanned:** {{.Timestamp.Format "2006-01-02 15:04 MST"}} on {{.Platform}}{{if .ToolVersion}} (tool v{{.ToolVersion}}){{end}}
**Files:** {{.FilesScanned}} · **Checks:** {{.ChecksPassed}}/{{.ChecksRun}} passed

## Findings
{{if not .Findings}}
None.
{{else}}{{range .Findings}}
### {{.Severity}} · {{.Title}}

{{.Description}}

- **Rule:** ` + "`{{.ID}}`" + ` ({{.Category}}, confidence {{.Confidence}})
{{- if .File}}
- **File:** ` + "`{{.File}}`" + `{{if .Line}} line {{.Line}}{{end}}
{{- end}}
- **Risk:** {{.Risk}}
- **Remediation:** {{.Remediation}}{{if .AutoFixable}} (auto-fixable, {{.FixType}}){{end}}
{{end}}{{end}}
{{- if .Suggestions}}
## Suggestions

Low-confidence observations, excluded from the score.
{{range .Suggestions}}
- ` + "`{{.ID}}`" + `: {{.Title}}
{{- end}}
{{end}}`

// Markdown writes the result as a markdown document.
func Markdown(w io.Writer, result *audit.Result) error {
	tmpl, err := template.New("report").Parse(markdownTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, result)
}
