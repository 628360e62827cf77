// Package dashboard holds the UI state of the dashboard and builds its view model.
package dashboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/currency"
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
)

// Section is one navigable page of the dashboard.
type Section string

// Sections.
const (
	SectionDashboard Section = viewmodel.SectionDashboard
	SectionClients   Section = viewmodel.SectionClients
	SectionSuppliers Section = viewmodel.SectionSuppliers
	SectionOrders    Section = viewmodel.SectionOrders
	SectionProducts  Section = viewmodel.SectionProducts
	SectionLogistics Section = viewmodel.SectionLogistics
	SectionFinance   Section = viewmodel.SectionFinance
	SectionAnalytics Section = viewmodel.SectionAnalytics
)

// Sections returns every section in navigation order.
func Sections() []Section {
	return []Section{
		SectionDashboard, SectionClients, SectionSuppliers, SectionOrders,
		SectionProducts, SectionLogistics, SectionFinance, SectionAnalytics,
	}
}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if sec.Valid() {
		return sec, nil
	}
	return SectionDashboard, fmt.Errorf("%w: %q", common.ErrUnknownSection, s)
}

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	return slices.Contains(Sections(), s)
}

// DialogKind names a form dialog.
type DialogKind string

// Dialogs.
const (
	DialogClient   DialogKind = "client"
	DialogSupplier DialogKind = "supplier"
	DialogOrder    DialogKind = "order"
)

// DialogKinds returns every dialog kind.
func DialogKinds() []DialogKind {
	return []DialogKind{DialogClient, DialogSupplier, DialogOrder}
}

// ParseDialogKind validates a dialog name.
func ParseDialogKind(s string) (DialogKind, error) {
	k := DialogKind(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(DialogKinds(), k) {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnknownDialog, s)
}

// Dialogs records which dialogs are open. Each flag is independent.
type Dialogs struct {
	Client   bool
	Supplier bool
	Order    bool
}

// IsOpen reports whether the dialog of kind k is open.
func (d Dialogs) IsOpen(k DialogKind) bool {
	switch k {
	case DialogClient:
		return d.Client
	case DialogSupplier:
		return d.Supplier
	case DialogOrder:
		return d.Order
	default:
		return false
	}
}

// Open returns the kinds of all open dialogs in DialogKinds order.
func (d Dialogs) Open() []DialogKind {
	var out []DialogKind
	for _, k := range DialogKinds() {
		if d.IsOpen(k) {
			out = append(out, k)
		}
	}
	return out
}

func (d Dialogs) with(k DialogKind, open bool) Dialogs {
	switch k {
	case DialogClient:
		d.Client = open
	case DialogSupplier:
		d.Supplier = open
	case DialogOrder:
		d.Order = open
	}
	return d
}

// State is the complete UI state. It is a value: transitions return a new
// State and never touch entity data.
type State struct {
	Section  Section
	Locale   i18n.Locale
	Currency currency.Currency
	Dialogs  Dialogs
}

// InitialState is the state before any preference is applied.
func InitialState() State {
	return State{
		Section:  SectionDashboard,
		Locale:   i18n.DefaultLocale,
		Currency: currency.Default,
	}
}

// WithSection returns s showing section. Unknown sections leave s unchanged.
func (s State) WithSection(section Section) State {
	if section.Valid() {
		s.Section = section
	}
	return s
}

// WithLocale returns s using locale l. Unknown locales leave s unchanged.
func (s State) WithLocale(l i18n.Locale) State {
	if l.Valid() {
		s.Locale = l
	}
	return s
}

// WithCurrency returns s displaying amounts in c. Unknown currencies leave s
// unchanged.
func (s State) WithCurrency(c currency.Currency) State {
	if c.Valid() {
		s.Currency = c
	}
	return s
}

// WithDialog returns s with dialog k opened or closed.
func (s State) WithDialog(k DialogKind, open bool) State {
	s.Dialogs = s.Dialogs.with(k, open)
	return s
}

// NextSection moves to the following section, wrapping around.
func (s State) NextSection() State {
	return s.WithSection(cycle(Sections(), s.Section, 1))
}

// PrevSection moves to the preceding section, wrapping around.
func (s State) PrevSection() State {
	return s.WithSection(cycle(Sections(), s.Section, -1))
}

// NextLocale returns the locale after the current one in selector order.
func (s State) NextLocale() i18n.Locale {
	return cycle(i18n.Locales(), s.Locale, 1)
}

// NextCurrency returns the currency after the current one in selector order.
func (s State) NextCurrency() currency.Currency {
	return cycle(currency.Currencies(), s.Currency, 1)
}

// cycle steps from cur through items, wrapping at both ends. A value not in
// items starts from the first element.
func cycle[T comparable](items []T, cur T, step int) T {
	i := slices.Index(items, cur)
	if i < 0 {
		return items[0]
	}
	n := len(items)
	return items[((i+step)%n+n)%n]
}
