package components

import (
	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

const maxColumnWidth = 28

// NewTable builds the focused, scrollable table for vm. Column widths fit the
// widest cell up to a cap; longer texts are truncated.
func NewTable(vm viewmodel.Table, theme themes.Theme, height int) table.Model {
	widths := columnWidths(vm)

	columns := make([]table.Column, len(vm.Columns))
	for i, title := range vm.Columns {
		columns[i] = table.Column{Title: title, Width: widths[i]}
	}

	rows := make([]table.Row, 0, len(vm.Rows))
	for _, r := range vm.Rows {
		// Cells stay unstyled; the table truncates escape codes as text.
		rows = append(rows, table.Row(plainCells(r, len(vm.Columns), widths)))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(1, min(height, len(rows)+1))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = theme.Selected
	t.SetStyles(s)

	return t
}

// StaticTable renders vm without selection. Status cells are colored by
// their category and unresolved references are dimmed.
func StaticTable(vm viewmodel.Table, theme themes.Theme) string {
	widths := columnWidths(vm)

	rows := make([][]string, 0, len(vm.Rows))
	for _, r := range vm.Rows {
		rows = append(rows, plainCells(r, len(vm.Columns), widths))
	}

	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(true).
		Headers(vm.Columns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == ltable.HeaderRow {
				return base.Bold(true)
			}
			if row < 0 || row >= len(vm.Rows) || col >= len(vm.Rows[row].Cells) {
				return base
			}
			c := vm.Rows[row].Cells[col]
			switch {
			case c.Unresolved:
				return base.Foreground(theme.Muted).Italic(true)
			case c.HasBadge():
				return base.Foreground(theme.Badge(c.Category).GetForeground())
			default:
				return base
			}
		})

	return TitledTable(vm, t.Render(), theme)
}

// TitledTable renders a table body under its title. A table without rows
// shows its title and a dash.
func TitledTable(vm viewmodel.Table, body string, theme themes.Theme) string {
	title := chartTitle(vm.Title, vm.Subtitle, theme)
	if vm.IsEmpty() {
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.Faint.Render("-"))
	}
	if vm.Title == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func plainCells(r viewmodel.Row, n int, widths []int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(r.Cells) {
			out[i] = viewmodel.TruncateString(r.Cells[i].Text, widths[i])
		}
	}
	return out
}

func columnWidths(vm viewmodel.Table) []int {
	widths := make([]int, len(vm.Columns))
	for i, title := range vm.Columns {
		widths[i] = lipgloss.Width(title)
		for _, c := range vm.Column(i) {
			widths[i] = max(widths[i], lipgloss.Width(c.Text))
		}
		widths[i] = min(widths[i], maxColumnWidth)
	}
	return widths
}
