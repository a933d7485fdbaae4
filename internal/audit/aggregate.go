package audit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// maxListedBasenames is how many affected files an aggregated
// description names before collapsing the rest into a count.
const maxListedBasenames = 3

// Aggregate merges findings that share an ID into a single entry.
// A group of one passes through unchanged. For larger groups the first
// finding's metadata is kept, the description is rewritten to summarize
// the occurrence count and affected files, and File is set to the first
// distinct file in the group. The set of distinct IDs is preserved and
// each ID appears exactly once in the output.
func Aggregate(findings []Finding) []Finding {
	groups := make(map[string][]Finding)
	var order []string
	for _, f := range findings {
		if _, seen := groups[f.ID]; !seen {
			order = append(order, f.ID)
		}
		groups[f.ID] = append(groups[f.ID], f)
	}

	out := make([]Finding, 0, len(order))
	for _, id := range order {
		group := groups[id]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}

		merged := group[0]
		files := distinctFiles(group)
		if len(files) > 1 {
			merged.Description = fmt.Sprintf("%s (%d occurrences in: %s)",
				group[0].Title, len(group), summarizeFiles(files))
		}
		if len(files) > 0 {
			merged.File = files[0]
		}
		out = append(out, merged)
	}
	return out
}

// distinctFiles returns the distinct non-empty File values in first-seen order.
func distinctFiles(group []Finding) []string {
	seen := make(map[string]bool)
	var files []string
	for _, f := range group {
		if f.File == "" || seen[f.File] {
			continue
		}
		seen[f.File] = true
		files = append(files, f.File)
	}
	return files
}

// summarizeFiles renders up to maxListedBasenames basenames, appending
// "... +N more" when the group spans more files than that.
func summarizeFiles(files []string) string {
	names := make([]string, 0, maxListedBasenames)
	for i, f := range files {
		if i == maxListedBasenames {
			break
		}
		names = append(names, filepath.Base(f))
	}
	summary := strings.Join(names, ", ")
	if extra := len(files) - maxListedBasenames; extra > 0 {
		summary += fmt.Sprintf(", ... +%d more", extra)
	}
	return summary
}
