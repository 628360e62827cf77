// Package tui runs the interactive terminal dashboard.
package tui

import (
	"context"
	"time"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/dashboard"
	"github.com/Veraticus/logistics-pro/internal/tui/components"
	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the main TUI state. Dashboard state lives in the controller;
// the model only keeps what the terminal needs on top of it.
type Model struct {
	ctx       context.Context
	ctrl      *dashboard.Controller
	lastError error
	theme     themes.Theme
	page      viewmodel.Page
	table     table.Model
	help      help.Model
	config    Config
	keymap    KeyMap
	errSeq    int
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

// New creates the dashboard model over ctrl.
func New(ctx context.Context, ctrl *dashboard.Controller, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		ctx:      ctx,
		ctrl:     ctrl,
		config:   cfg,
		keymap:   DefaultKeyMap(),
		theme:    cfg.Theme,
		help:     help.New(),
		width:    cfg.Width,
		height:   cfg.Height,
		showHelp: cfg.ShowHelp,
	}
	m.refresh(false)
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Page returns the frame currently on screen.
func (m Model) Page() viewmodel.Page {
	return m.page
}

// Err returns the error shown in the status line, if any.
func (m Model) Err() error {
	return m.lastError
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh(true)
		return m, nil

	case clearErrorMsg:
		if msg.seq == m.errSeq {
			m.lastError = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Close):
		open := m.ctrl.State().Dialogs.Open()
		if len(open) == 0 {
			return m, nil
		}
		return m.apply(m.ctrl.CloseDialog(open[len(open)-1]), true)

	case key.Matches(msg, m.keymap.NextSection):
		m.ctrl.NextSection()
		return m.apply(nil, false)

	case key.Matches(msg, m.keymap.PrevSection):
		m.ctrl.PrevSection()
		return m.apply(nil, false)

	case key.Matches(msg, m.keymap.Language):
		return m.apply(m.ctrl.CycleLocale(m.ctx), true)

	case key.Matches(msg, m.keymap.Currency):
		return m.apply(m.ctrl.CycleCurrency(m.ctx), true)

	case key.Matches(msg, m.keymap.NewClient):
		return m.apply(m.ctrl.OpenDialog(dashboard.DialogClient), true)

	case key.Matches(msg, m.keymap.NewSupplier):
		return m.apply(m.ctrl.OpenDialog(dashboard.DialogSupplier), true)

	case key.Matches(msg, m.keymap.NewOrder):
		return m.apply(m.ctrl.OpenDialog(dashboard.DialogOrder), true)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// apply re-renders after a controller call and surfaces err in the status
// line. The controller has already changed state when err is a persistence
// failure, so the frame is rebuilt in every case.
func (m Model) apply(err error, keepCursor bool) (tea.Model, tea.Cmd) {
	m.refresh(keepCursor)
	if err == nil {
		return m, nil
	}

	common.LogError(err, "Dashboard action failed", common.Fields{"session": m.ctrl.SessionID()})
	m.lastError = err
	m.errSeq++
	seq := m.errSeq
	return m, tea.Tick(m.config.ErrorTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// refresh rebuilds the page from the controller.
func (m *Model) refresh(keepCursor bool) {
	m.setPage(m.ctrl.View(), keepCursor)
}

// setPage shows page and rebuilds the focused table.
func (m *Model) setPage(page viewmodel.Page, keepCursor bool) {
	cursor := m.table.Cursor()
	m.page = page

	vm := primaryTable(page)
	m.table = components.NewTable(vm, m.theme, m.tableHeight())
	if keepCursor && cursor < len(vm.Rows) {
		m.table.SetCursor(cursor)
	}
}

// Frame renders page once, without key hints, the way the dashboard would
// show it at the configured size.
func Frame(page viewmodel.Page, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		config: cfg,
		keymap: DefaultKeyMap(),
		theme:  cfg.Theme,
		help:   help.New(),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.setPage(page, false)
	return m.View()
}

func (m Model) tableHeight() int {
	// header (3) + title (2) + cards (4) + help (2)
	return max(3, m.height-11)
}

// primaryTable returns the table that takes cursor keys in page's section.
func primaryTable(p viewmodel.Page) viewmodel.Table {
	switch {
	case p.Dashboard != nil:
		return p.Dashboard.Recent
	case p.Clients != nil:
		return p.Clients.Table
	case p.Suppliers != nil:
		return p.Suppliers.Table
	case p.Orders != nil:
		return p.Orders.Table
	case p.Products != nil:
		return p.Products.Table
	case p.Logistics != nil:
		return p.Logistics.Dispatch
	case p.Finance != nil:
		return p.Finance.Payments
	case p.Analytics != nil:
		return p.Analytics.TopClients
	default:
		return viewmodel.Table{}
	}
}
