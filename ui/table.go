package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows of plain cells under a header line.
type Table struct {
	Headers []string
	Rows    [][]string
}

func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render pads each column to its widest cell. An empty table renders
// nothing.
func (t *Table) Render() string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = style.Width(widths[i]).Render(cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var sb strings.Builder
	sb.WriteString(line(t.Headers, boldStyle))
	for _, row := range t.Rows {
		sb.WriteString("\n")
		sb.WriteString(line(row, lipgloss.NewStyle()))
	}
	return sb.String()
}
