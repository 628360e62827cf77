// Package components renders view model blocks as terminal widgets.
package components

import (
	"strings"

	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// appName is the product name shown in the header.
const appName = "LogisticsPro"

// Header renders the application bar: brand, subtitle, selectors and the
// section navigation.
func Header(h viewmodel.Header, theme themes.Theme) string {
	brand := lipgloss.JoinHorizontal(
		lipgloss.Bottom,
		theme.Title.Foreground(theme.Primary).Render(appName),
		"  ",
		theme.Subtitle.Render(h.Subtitle),
	)

	selectors := lipgloss.JoinHorizontal(
		lipgloss.Top,
		selector(h.Language, theme),
		"   ",
		selector(h.Currency, theme),
	)

	nav := make([]string, 0, len(h.Nav))
	for _, item := range h.Nav {
		if item.Active {
			nav = append(nav, theme.NavActive.Render(item.Label))
			continue
		}
		nav = append(nav, theme.NavItem.Render(item.Label))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		brand,
		selectors,
		lipgloss.JoinHorizontal(lipgloss.Top, nav...),
	)
}

func selector(s viewmodel.Selector, theme themes.Theme) string {
	parts := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		if o.Selected {
			parts = append(parts, theme.Bold.Foreground(theme.Primary).Render("["+o.Label+"]"))
			continue
		}
		parts = append(parts, theme.Faint.Render(o.Label))
	}
	return theme.Subtitle.Render(s.Label+":") + " " + strings.Join(parts, " ")
}
