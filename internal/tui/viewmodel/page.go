// Package viewmodel holds the render-ready description of one dashboard frame.
// Every string is already localized and every amount already formatted.
package viewmodel

// Section identifiers.
const (
	SectionDashboard = "dashboard"
	SectionClients   = "clients"
	SectionSuppliers = "suppliers"
	SectionOrders    = "orders"
	SectionProducts  = "products"
	SectionLogistics = "logistics"
	SectionFinance   = "finance"
	SectionAnalytics = "analytics"
)

// Page is the complete view model for one frame.
type Page struct {
	Dashboard   *DashboardView `json:"dashboard,omitempty"`
	Clients     *TableSection  `json:"clients,omitempty"`
	Suppliers   *TableSection  `json:"suppliers,omitempty"`
	Orders      *TableSection  `json:"orders,omitempty"`
	Products    *TableSection  `json:"products,omitempty"`
	Logistics   *LogisticsView `json:"logistics,omitempty"`
	Finance     *FinanceView   `json:"finance,omitempty"`
	Analytics   *AnalyticsView `json:"analytics,omitempty"`
	Header      Header         `json:"header"`
	Section     string         `json:"section"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Locale      string         `json:"locale"`
	Currency    string         `json:"currency"`
	Dialogs     []DialogView   `json:"dialogs,omitempty"`
}

// Header is the application bar with navigation and selectors.
type Header struct {
	Subtitle string    `json:"subtitle"`
	Nav      []NavItem `json:"nav"`
	Language Selector  `json:"language"`
	Currency Selector  `json:"currency"`
}

// NavItem is one entry of the section navigation.
type NavItem struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// Selector is a closed choice such as the language menu.
type Selector struct {
	Label   string   `json:"label"`
	Options []Option `json:"options"`
}

// Option is one choice of a selector, menu or select field.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

// DashboardView is the overview section.
type DashboardView struct {
	Cards    []StatCard `json:"cards"`
	Dynamics BarChart   `json:"dynamics"`
	Services ShareChart `json:"services"`
	Recent   Table      `json:"recent"`
}

// TableSection is a listing section with one primary action.
type TableSection struct {
	Action string `json:"action"`
	Table  Table  `json:"table"`
}

// LogisticsView is the shipping section.
type LogisticsView struct {
	Cards    []StatCard `json:"cards"`
	Dispatch Table      `json:"dispatch"`
	Action   string     `json:"action"`
}

// FinanceView is the payments section.
type FinanceView struct {
	Cards    []StatCard `json:"cards"`
	Revenue  BarChart   `json:"revenue"`
	Payments Table      `json:"payments"`
}

// AnalyticsView is the reports section.
type AnalyticsView struct {
	TopClients  Table      `json:"top_clients"`
	TopProducts Table      `json:"top_products"`
	Managers    Table      `json:"managers"`
	Services    ShareChart `json:"services"`
}

// DialogView is an open form dialog.
type DialogView struct {
	Kind   string  `json:"kind"`
	Title  string  `json:"title"`
	Hint   string  `json:"hint"`
	Fields []Field `json:"fields"`
	Submit string  `json:"submit"`
}

// FieldKind is the input widget a dialog field uses.
type FieldKind string

// Field kinds.
const (
	FieldText   FieldKind = "text"
	FieldNumber FieldKind = "number"
	FieldSelect FieldKind = "select"
	FieldDate   FieldKind = "date"
	FieldNote   FieldKind = "note"
)

// Field is one input of a dialog.
type Field struct {
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Options []Option  `json:"options,omitempty"`
}

// IsSelect reports whether the field offers a closed menu.
func (f Field) IsSelect() bool {
	return f.Kind == FieldSelect
}

// PayloadCount returns how many section payloads are set. A well-formed page
// has exactly one.
func (p Page) PayloadCount() int {
	n := 0
	for _, set := range []bool{
		p.Dashboard != nil,
		p.Clients != nil,
		p.Suppliers != nil,
		p.Orders != nil,
		p.Products != nil,
		p.Logistics != nil,
		p.Finance != nil,
		p.Analytics != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// HasDialog reports whether any dialog is open.
func (p Page) HasDialog() bool {
	return len(p.Dialogs) > 0
}

// ActiveNav returns the highlighted navigation entry.
func (h Header) ActiveNav() (NavItem, bool) {
	for _, item := range h.Nav {
		if item.Active {
			return item, true
		}
	}
	return NavItem{}, false
}

// Selected returns the selected option.
func (s Selector) Selected() (Option, bool) {
	for _, o := range s.Options {
		if o.Selected {
			return o, true
		}
	}
	return Option{}, false
}
