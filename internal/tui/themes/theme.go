package themes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Normal    lipgloss.Style
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	NavActive lipgloss.Style
	NavItem   lipgloss.Style
	Card      lipgloss.Style
	Box       lipgloss.Style
	Dialog    lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Foreground lipgloss.Color
	Background lipgloss.Color

	// Badge colors keyed by status category.
	Neutral   lipgloss.Color
	Warning   lipgloss.Color
	Info      lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Success   lipgloss.Color
}

// Badge returns the style for a status category as produced by the status
// classifier. Unknown categories render with the neutral color.
func (t Theme) Badge(category string) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	return base.Foreground(t.badgeColor(category))
}

func (t Theme) badgeColor(category string) lipgloss.Color {
	switch category {
	case "warning":
		return t.Warning
	case "info":
		return t.Info
	case "accent":
		return t.Accent
	case "highlight":
		return t.Highlight
	case "success":
		return t.Success
	default:
		return t.Neutral
	}
}

// Default is the default theme.
var Default = Theme{
	Primary:    lipgloss.Color("#2563eb"),
	Secondary:  lipgloss.Color("#60a5fa"),
	Muted:      lipgloss.Color("#737373"),
	Border:     lipgloss.Color("#404040"),
	Foreground: lipgloss.Color("#fafafa"),
	Background: lipgloss.Color("#1a1a1a"),

	Neutral:   lipgloss.Color("#a3a3a3"),
	Warning:   lipgloss.Color("#f59e0b"),
	Info:      lipgloss.Color("#3b82f6"),
	Accent:    lipgloss.Color("#ef4444"),
	Highlight: lipgloss.Color("#a855f7"),
	Success:   lipgloss.Color("#10b981"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	NavActive: lipgloss.NewStyle().
		Background(lipgloss.Color("#2563eb")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true).
		Padding(0, 1),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1).
		Width(22),
	Box: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#2563eb")).
		Padding(1, 2),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#2563eb")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
}

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = Theme{
	Primary:    lipgloss.Color("#cba6f7"),
	Secondary:  lipgloss.Color("#f5c2e7"),
	Muted:      lipgloss.Color("#6c7086"),
	Border:     lipgloss.Color("#313244"),
	Foreground: lipgloss.Color("#cdd6f4"),
	Background: lipgloss.Color("#1e1e2e"),

	Neutral:   lipgloss.Color("#a6adc8"),
	Warning:   lipgloss.Color("#f9e2af"),
	Info:      lipgloss.Color("#89dceb"),
	Accent:    lipgloss.Color("#f38ba8"),
	Highlight: lipgloss.Color("#cba6f7"),
	Success:   lipgloss.Color("#a6e3a1"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bac2de")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#cdd6f4")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#cdd6f4")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6c7086")),
	NavActive: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true).
		Padding(0, 1),
	NavItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#bac2de")).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#313244")).
		Padding(0, 1).
		Width(22),
	Box: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#313244")).
		Padding(0, 1),
	Dialog: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#cba6f7")).
		Padding(1, 2),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#cba6f7")).
		Foreground(lipgloss.Color("#1e1e2e")).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f38ba8")).
		Bold(true),
}

// Names returns the accepted theme names.
func Names() []string {
	return []string{"default", "catppuccin"}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch strings.ToLower(name) {
	case "catppuccin", "catppuccin-mocha", "mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
