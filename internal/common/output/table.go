package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxVersionWidth caps version cells so pathological version strings
// cannot break the table layout.
const MaxVersionWidth = 25

// Truncate shortens s to limit runes, replacing the tail with an ellipsis.
func Truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-1]) + "…"
}

// Table renders rows of plain cells with left-aligned, padded columns.
// Coloring is applied per row after layout so ANSI codes do not skew
// column widths.
type Table struct {
	headers []string
	rows    [][]string
	colors  []func(format string, a ...interface{}) string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row. A nil colorize function renders the row uncolored.
func (t *Table) AddRow(colorize func(format string, a ...interface{}) string, cells ...string) {
	for len(cells) < len(t.headers) {
		cells = append(cells, "")
	}
	t.rows = append(t.rows, cells)
	t.colors = append(t.colors, colorize)
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && utf8.RuneCountInString(cell) > widths[i] {
				widths[i] = utf8.RuneCountInString(cell)
			}
		}
	}

	fmt.Fprintln(w, "  "+formatRow(t.headers, widths))
	fmt.Fprintln(w, "  "+strings.Repeat("─", totalWidth(widths)))
	for i, row := range t.rows {
		line := formatRow(row, widths)
		if c := t.colors[i]; c != nil {
			line = c("%s", line)
		}
		fmt.Fprintln(w, "  "+line)
	}
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		pad := widths[i] - utf8.RuneCountInString(cell)
		parts[i] = cell + strings.Repeat(" ", pad)
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w
	}
	return total + 2*(len(widths)-1)
}
