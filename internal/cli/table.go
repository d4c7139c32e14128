package cli

import (
	"strings"
	"unicode/utf8"

	"github.com/jmylchreest/contrastpick/internal/util"
)

// Table is a plain-text table with dynamic column widths, used by the
// table output format.
type Table struct {
	headers    []string
	rows       [][]string
	padding    int
	alignRight map[int]bool
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:    headers,
		rows:       make([][]string, 0),
		padding:    2, // 2 spaces between columns
		alignRight: make(map[int]bool),
	}
}

// SetColumnAlignRight right-aligns a column, for numbers.
func (t *Table) SetColumnAlignRight(colIndex int) {
	t.alignRight[colIndex] = true
}

// AddRow adds a row to the table, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	normalised := make([]string, len(t.headers))
	copy(normalised, row)
	t.rows = append(t.rows, normalised)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	var result strings.Builder
	sep := strings.Repeat(" ", t.padding)

	result.WriteString(t.formatRow(t.headers, colWidths, sep))

	sepParts := make([]string, len(t.headers))
	for i, w := range colWidths {
		sepParts[i] = strings.Repeat("-", w)
	}
	result.WriteString(strings.Join(sepParts, sep))
	result.WriteString("\n")

	for _, row := range t.rows {
		result.WriteString(t.formatRow(row, colWidths, sep))
	}

	return result.String()
}

func (t *Table) formatRow(cells []string, colWidths []int, sep string) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if t.alignRight[i] {
			parts[i] = padLeft(cell, colWidths[i])
		} else {
			parts[i] = util.PadRight(cell, colWidths[i])
		}
	}
	return strings.Join(parts, sep) + "\n"
}

// padLeft pads a string with spaces on the left to reach the desired width.
func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
