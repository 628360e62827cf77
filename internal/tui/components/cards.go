package components

import (
	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// Cards renders headline metrics side by side. When the row would exceed
// width the cards wrap onto further rows.
func Cards(cards []viewmodel.StatCard, theme themes.Theme, width int) string {
	if len(cards) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, card(c, theme))
	}

	var rows []string
	var line []string
	lineWidth := 0
	for _, r := range rendered {
		w := lipgloss.Width(r)
		if len(line) > 0 && width > 0 && lineWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineWidth = nil, 0
		}
		line = append(line, r)
		lineWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func card(c viewmodel.StatCard, theme themes.Theme) string {
	value := theme.Title.Render(c.Value)
	if c.Category != "" {
		value = theme.Badge(c.Category).Padding(0).Render(c.Value)
	}
	return theme.Card.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		theme.Subtitle.Render(viewmodel.TruncateString(c.Label, 20)),
		value,
	))
}
