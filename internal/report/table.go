package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// table formats columnar output using tabwriter.
type table struct {
	w             *tabwriter.Writer
	headers       []string
	maxWidth      map[int]int // column index -> max width (0 = unlimited)
	headerWritten bool
}

// newTable creates a table that writes to w with the given column headers.
func newTable(w io.Writer, headers ...string) *table {
	return &table{
		w:        tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
		headers:  headers,
		maxWidth: make(map[int]int),
	}
}

// setMaxWidth sets the maximum display width for a column (0-indexed).
// Values exceeding the limit are truncated with "...".
func (t *table) setMaxWidth(col, width int) *table {
	t.maxWidth[col] = width
	return t
}

// addRow appends a data row. Extra values beyond the header count are
// ignored; missing values are filled with empty strings.
func (t *table) addRow(values ...string) {
	if !t.headerWritten {
		t.headerWritten = true
		t.writeHeaderAndSeparator()
	}

	cells := make([]string, len(t.headers))
	for i := range cells {
		if i < len(values) {
			cells[i] = t.truncate(i, values[i])
		}
	}

	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, cell)
	}
	fmt.Fprintln(t.w)
}

// render flushes the underlying tabwriter. Must be called after all addRow calls.
func (t *table) render() error {
	return t.w.Flush()
}

func (t *table) writeHeaderAndSeparator() {
	for i, h := range t.headers {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, h)
	}
	fmt.Fprintln(t.w)

	for i, h := range t.headers {
		if i > 0 {
			fmt.Fprint(t.w, "\t")
		}
		fmt.Fprint(t.w, dashes(len(h)))
	}
	fmt.Fprintln(t.w)
}

func (t *table) truncate(col int, s string) string {
	max, ok := t.maxWidth[col]
	if !ok || max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// dashes returns a string of n dashes.
func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
