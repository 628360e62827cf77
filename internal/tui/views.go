package tui

import (
	"github.com/Veraticus/logistics-pro/internal/tui/components"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/lipgloss"
)

// wideLayout is the width from which charts sit side by side.
const wideLayout = 110

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.page
	parts := []string{
		components.Header(p.Header, m.theme),
		"",
		m.theme.Title.Render(p.Title) + "  " + m.theme.Subtitle.Render(p.Description),
		"",
	}

	if p.HasDialog() {
		parts = append(parts, m.renderDialogs(p.Dialogs))
	} else {
		parts = append(parts, m.renderBody(p))
	}

	if m.lastError != nil {
		parts = append(parts, "", m.theme.Error.Render(m.lastError.Error()))
	}
	if m.showHelp {
		parts = append(parts, "", m.help.View(m.keymap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderBody(p viewmodel.Page) string {
	switch {
	case p.Dashboard != nil:
		return m.renderDashboard(*p.Dashboard)
	case p.Clients != nil:
		return m.renderTableSection(*p.Clients)
	case p.Suppliers != nil:
		return m.renderTableSection(*p.Suppliers)
	case p.Orders != nil:
		return m.renderTableSection(*p.Orders)
	case p.Products != nil:
		return m.renderTableSection(*p.Products)
	case p.Logistics != nil:
		return m.renderLogistics(*p.Logistics)
	case p.Finance != nil:
		return m.renderFinance(*p.Finance)
	case p.Analytics != nil:
		return m.renderAnalytics(*p.Analytics)
	default:
		return ""
	}
}

func (m Model) renderDashboard(v viewmodel.DashboardView) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.Cards(v.Cards, m.theme, m.width),
		"",
		m.pair(
			components.Bars(v.Dynamics, m.theme, m.chartWidth()),
			components.Shares(v.Services, m.theme, m.chartWidth()),
		),
		"",
		components.TitledTable(v.Recent, m.table.View(), m.theme),
	)
}

func (m Model) renderTableSection(v viewmodel.TableSection) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.NavActive.Render("+ "+v.Action),
		"",
		components.TitledTable(v.Table, m.table.View(), m.theme),
	)
}

func (m Model) renderLogistics(v viewmodel.LogisticsView) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.Cards(v.Cards, m.theme, m.width),
		"",
		components.TitledTable(v.Dispatch, m.table.View(), m.theme),
		m.theme.NavActive.Render(v.Action),
	)
}

func (m Model) renderFinance(v viewmodel.FinanceView) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		components.Cards(v.Cards, m.theme, m.width),
		"",
		components.Bars(v.Revenue, m.theme, m.width),
		"",
		components.TitledTable(v.Payments, m.table.View(), m.theme),
	)
}

func (m Model) renderAnalytics(v viewmodel.AnalyticsView) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.pair(
			components.TitledTable(v.TopClients, m.table.View(), m.theme),
			components.StaticTable(v.TopProducts, m.theme),
		),
		"",
		m.pair(
			components.StaticTable(v.Managers, m.theme),
			components.Shares(v.Services, m.theme, m.chartWidth()),
		),
	)
}

func (m Model) renderDialogs(dialogs []viewmodel.DialogView) string {
	rendered := make([]string, 0, len(dialogs))
	for _, d := range dialogs {
		rendered = append(rendered, components.Dialog(d, m.theme))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}

// pair places two blocks side by side on wide terminals and stacks them otherwise.
func (m Model) pair(left, right string) string {
	if m.width < wideLayout {
		return lipgloss.JoinVertical(lipgloss.Left, left, "", right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m Model) chartWidth() int {
	if m.width < wideLayout {
		return m.width
	}
	return m.width / 2
}
