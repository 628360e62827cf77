package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const (
	labelWidth  = 12
	minBarWidth = 10
	maxBarWidth = 40
)

// Bars renders a bar chart as one horizontal bar per point, scaled to the
// largest value.
func Bars(c viewmodel.BarChart, theme themes.Theme, width int) string {
	bar := newBar(theme.Primary, width)
	peak := c.Max()

	lines := []string{chartTitle(c.Title, c.Subtitle, theme)}
	for _, b := range c.Bars {
		line := fmt.Sprintf("%s %s %s",
			padLabel(b.Label),
			bar.ViewAs(b.Fraction(peak)),
			theme.Bold.Render(b.Display),
		)
		if b.Note != "" {
			line += " " + theme.Faint.Render(b.Note)
		}
		lines = append(lines, line)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Shares renders a distribution as percentage bars.
func Shares(c viewmodel.ShareChart, theme themes.Theme, width int) string {
	bar := newBar(theme.Secondary, width)

	lines := []string{chartTitle(c.Title, c.Subtitle, theme)}
	for _, s := range c.Shares {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			padLabel(s.Label),
			bar.ViewAs(s.Ratio()),
			theme.Bold.Render(s.Display),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func newBar(color lipgloss.Color, width int) progress.Model {
	w := width - labelWidth - 24
	w = max(minBarWidth, min(w, maxBarWidth))
	return progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(w),
		progress.WithoutPercentage(),
	)
}

func chartTitle(title, subtitle string, theme themes.Theme) string {
	if subtitle == "" {
		return theme.Title.Render(title)
	}
	return theme.Title.Render(title) + "  " + theme.Faint.Render(subtitle)
}

func padLabel(s string) string {
	s = viewmodel.TruncateString(s, labelWidth)
	if pad := labelWidth - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
