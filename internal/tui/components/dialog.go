package components

import (
	"strings"

	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// Dialog renders a form dialog. Select fields list their menu options.
func Dialog(d viewmodel.DialogView, theme themes.Theme) string {
	lines := []string{
		theme.Title.Render(d.Title),
		theme.Faint.Render(d.Hint),
		"",
	}

	for _, f := range d.Fields {
		label := theme.Bold.Render(f.Label)
		switch {
		case f.IsSelect():
			opts := make([]string, 0, len(f.Options))
			for _, o := range f.Options {
				opts = append(opts, o.Label)
			}
			lines = append(lines, label+" "+theme.Faint.Render("▾ "+strings.Join(opts, " | ")))
		case f.Kind == viewmodel.FieldNote:
			lines = append(lines, label, theme.Faint.Render("[                              ]"))
		default:
			lines = append(lines, label+" "+theme.Faint.Render("[____________]"))
		}
	}

	lines = append(lines, "", theme.NavActive.Render(d.Submit)+"  "+theme.Faint.Render("esc"))
	return theme.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
