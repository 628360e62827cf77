package dashboard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Veraticus/logistics-pro/internal/analytics"
	"github.com/Veraticus/logistics-pro/internal/currency"
	"github.com/Veraticus/logistics-pro/internal/i18n"
	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/Veraticus/logistics-pro/internal/status"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// noSupplier fills the supplier column of logistics-only orders.
const noSupplier = "—"

var sectionText = map[Section]struct{ title, description i18n.Key }{
	SectionDashboard: {i18n.KeyDashboard, i18n.KeyOverview},
	SectionClients:   {i18n.KeyClients, i18n.KeyClientManagement},
	SectionSuppliers: {i18n.KeySuppliers, i18n.KeySupplierManagement},
	SectionOrders:    {i18n.KeyOrders, i18n.KeyOrderManagement},
	SectionProducts:  {i18n.KeyProducts, i18n.KeyProductCatalog},
	SectionLogistics: {i18n.KeyLogistics, i18n.KeyLogisticsManagement},
	SectionFinance:   {i18n.KeyFinance, i18n.KeyFinancialAnalytics},
	SectionAnalytics: {i18n.KeyAnalytics, i18n.KeyDetailedAnalytics},
}

var paymentCategory = map[model.PaymentStatus]status.Category{
	model.PaymentReceived: status.Success,
	model.PaymentExpected: status.Warning,
	model.PaymentOverdue:  status.Accent,
}

// renderer builds one page for a fixed state.
type renderer struct {
	tr    i18n.Translator
	money currency.Formatter
	store *store.Store
	snap  store.Snapshot
	cfg   Config
	state State
}

// View renders the current state. Aggregates are recomputed on every call.
func (c *Controller) View() viewmodel.Page {
	return Render(c.store, c.state, c.cfg)
}

// Preview renders state with the controller's settings. The controller's own
// state and the preference store are left untouched.
func (c *Controller) Preview(state State) viewmodel.Page {
	return Render(c.store, state, c.cfg)
}

// Render builds the page for state over st.
func Render(st *store.Store, state State, cfg Config) viewmodel.Page {
	r := renderer{
		tr:    i18n.For(state.Locale),
		money: currency.NewFormatter(state.Locale.Tag()),
		store: st,
		snap:  st.Snapshot(),
		cfg:   cfg,
		state: state,
	}
	return r.page()
}

func (r renderer) page() viewmodel.Page {
	text := sectionText[r.state.Section]
	p := viewmodel.Page{
		Header:      r.header(),
		Section:     string(r.state.Section),
		Title:       r.tr.T(text.title),
		Description: r.tr.T(text.description),
		Locale:      string(r.state.Locale),
		Currency:    string(r.state.Currency),
		Dialogs:     r.dialogs(),
	}

	switch r.state.Section {
	case SectionClients:
		p.Clients = r.clients()
	case SectionSuppliers:
		p.Suppliers = r.suppliers()
	case SectionOrders:
		p.Orders = r.orders()
	case SectionProducts:
		p.Products = r.products()
	case SectionLogistics:
		p.Logistics = r.logistics()
	case SectionFinance:
		p.Finance = r.finance()
	case SectionAnalytics:
		p.Analytics = r.analytics()
	default:
		p.Dashboard = r.dashboard()
	}
	return p
}

func (r renderer) header() viewmodel.Header {
	h := viewmodel.Header{
		Subtitle: r.tr.T(i18n.KeyAppSubtitle),
		Language: viewmodel.Selector{Label: r.tr.T(i18n.KeyLanguage)},
		Currency: viewmodel.Selector{Label: r.tr.T(i18n.KeyCurrency)},
	}
	for _, s := range Sections() {
		h.Nav = append(h.Nav, viewmodel.NavItem{
			ID:     string(s),
			Label:  r.tr.T(sectionText[s].title),
			Active: s == r.state.Section,
		})
	}
	for _, l := range i18n.Locales() {
		h.Language.Options = append(h.Language.Options, viewmodel.Option{
			Value:    string(l),
			Label:    l.SelectorLabel(),
			Selected: l == r.state.Locale,
		})
	}
	for _, c := range currency.Currencies() {
		h.Currency.Options = append(h.Currency.Options, viewmodel.Option{
			Value:    string(c),
			Label:    c.SelectorLabel(),
			Selected: c == r.state.Currency,
		})
	}
	return h
}

func (r renderer) price(home decimal.Decimal) string {
	return r.money.Price(home, r.state.Currency)
}

func count(n int) string {
	return strconv.Itoa(n)
}

func percent(p float64) string {
	return strconv.Itoa(int(math.Round(p))) + "%"
}

func (r renderer) statusCell(s model.Status) viewmodel.Cell {
	return viewmodel.Cell{Text: r.tr.Status(s), Category: string(status.Of(s))}
}

func (r renderer) unresolved() viewmodel.Cell {
	return viewmodel.Cell{Text: r.tr.T(i18n.KeyUnresolved), Unresolved: true}
}

func (r renderer) clientCell(id string) viewmodel.Cell {
	if c, ok := r.store.Client(id); ok {
		return viewmodel.Cell{Text: c.Name}
	}
	return r.unresolved()
}

func (r renderer) supplierCell(o model.Order) viewmodel.Cell {
	if !o.HasSupplier() {
		return viewmodel.Cell{Text: noSupplier}
	}
	if s, ok := r.store.Supplier(o.SupplierID); ok {
		return viewmodel.Cell{Text: s.Name}
	}
	return r.unresolved()
}

func (r renderer) cols(keys ...i18n.Key) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, r.tr.T(k))
	}
	return out
}

func (r renderer) revenueChart(title, subtitle i18n.Key) viewmodel.BarChart {
	chart := viewmodel.BarChart{Title: r.tr.T(title), Subtitle: r.tr.T(subtitle)}
	for _, m := range r.snap.MonthlyMetrics {
		chart.Bars = append(chart.Bars, viewmodel.Bar{
			Label:   r.tr.Month(m.Month),
			Display: r.price(m.Revenue),
			Note:    fmt.Sprintf("%s: %d", r.tr.T(i18n.KeyColOrderCount), m.Orders),
			Value:   m.Revenue.InexactFloat64(),
		})
	}
	return chart
}

func (r renderer) dashboard() *viewmodel.DashboardView {
	counters := analytics.Counters(r.snap)
	v := &viewmodel.DashboardView{
		Cards: []viewmodel.StatCard{
			{Label: r.tr.T(i18n.KeyActiveOrders), Value: count(counters.ActiveOrders), Category: string(status.Info)},
			{Label: r.tr.T(i18n.KeyTotalClients), Value: count(counters.TotalClients), Category: string(status.Success)},
			{Label: r.tr.T(i18n.KeyMonthRevenue), Value: r.price(counters.MonthRevenue), Category: string(status.Accent)},
			{Label: r.tr.T(i18n.KeyWarehouseChina), Value: count(counters.ChinaWarehouse), Category: string(status.Of(model.StatusAtChinaWarehouse))},
		},
		Dynamics: r.revenueChart(i18n.KeyOrderDynamics, i18n.KeyLastSixMonths),
		Services: viewmodel.ShareChart{
			Title:    r.tr.T(i18n.KeyServiceDistribution),
			Subtitle: r.tr.T(i18n.KeyServiceTypesOffered),
		},
		Recent: viewmodel.Table{
			Title:    r.tr.T(i18n.KeyRecentOrders),
			Subtitle: r.tr.T(i18n.KeyOrdersInWork),
			Columns:  r.cols(i18n.KeyColOrder, i18n.KeyColClient, i18n.KeyColStatus, i18n.KeyColAmount, i18n.KeyColDate),
			Rows:     []viewmodel.Row{},
		},
	}

	for _, share := range analytics.ReportedShares(r.snap) {
		v.Services.Shares = append(v.Services.Shares, viewmodel.Share{
			Label:   r.tr.Service(share.Service),
			Display: percent(share.Percent),
			Percent: share.Percent,
		})
	}
	for _, o := range analytics.RecentOrders(r.snap, r.cfg.RecentLimit) {
		v.Recent.Rows = append(v.Recent.Rows, viewmodel.Row{ID: o.ID, Cells: []viewmodel.Cell{
			{Text: o.ID},
			r.clientCell(o.ClientID),
			r.statusCell(o.Status),
			{Text: r.price(o.Total)},
			{Text: o.Date.Format(dateLayout)},
		}})
	}
	return v
}

func (r renderer) clients() *viewmodel.TableSection {
	t := viewmodel.Table{
		Columns: r.cols(i18n.KeyColName, i18n.KeyColCity, i18n.KeyColTheme, i18n.KeyColLegalType, i18n.KeyColCompany,
			i18n.KeyColService, i18n.KeyColCommission, i18n.KeyColManager, i18n.KeyColStatus),
		Rows: []viewmodel.Row{},
	}
	for _, c := range r.snap.Clients {
		t.Rows = append(t.Rows, viewmodel.Row{ID: c.ID, Cells: []viewmodel.Cell{
			{Text: c.Name},
			{Text: c.City},
			{Text: c.Theme},
			{Text: r.tr.LegalType(c.LegalType)},
			{Text: c.Company},
			{Text: r.tr.Service(c.ServiceType)},
			{Text: c.Commission.String() + "%"},
			{Text: c.Manager},
			r.statusCell(c.Status),
		}})
	}
	return &viewmodel.TableSection{Action: r.tr.T(i18n.KeyAddClient), Table: t}
}

func (r renderer) suppliers() *viewmodel.TableSection {
	t := viewmodel.Table{
		Columns: r.cols(i18n.KeyColName, i18n.KeyColCountry, i18n.KeyColCategory, i18n.KeyColContact,
			i18n.KeyColRating, i18n.KeyColPaymentTerms, i18n.KeyColStatus),
		Rows: []viewmodel.Row{},
	}
	for _, s := range r.snap.Suppliers {
		t.Rows = append(t.Rows, viewmodel.Row{ID: s.ID, Cells: []viewmodel.Cell{
			{Text: s.Name},
			{Text: s.Country},
			{Text: r.tr.SupplierCategory(s.Category)},
			{Text: s.Contact},
			{Text: strconv.FormatFloat(s.Rating, 'f', 1, 64)},
			{Text: r.tr.PaymentTerms(s.PaymentTerms)},
			r.statusCell(s.Status),
		}})
	}
	return &viewmodel.TableSection{Action: r.tr.T(i18n.KeyAddSupplier), Table: t}
}

func (r renderer) orders() *viewmodel.TableSection {
	t := viewmodel.Table{
		Columns: r.cols(i18n.KeyColOrder, i18n.KeyColClient, i18n.KeyColSupplier, i18n.KeyColStatus, i18n.KeyColAmount,
			i18n.KeyColItems, i18n.KeyColDate, i18n.KeyColShipping, i18n.KeyColService),
		Rows: []viewmodel.Row{},
	}
	for _, o := range r.snap.Orders {
		t.Rows = append(t.Rows, viewmodel.Row{ID: o.ID, Cells: []viewmodel.Cell{
			{Text: o.ID},
			r.clientCell(o.ClientID),
			r.supplierCell(o),
			r.statusCell(o.Status),
			{Text: r.price(o.Total)},
			{Text: count(o.Items)},
			{Text: o.Date.Format(dateLayout)},
			{Text: r.tr.Shipping(o.Shipping)},
			{Text: r.tr.Service(o.Service)},
		}})
	}
	return &viewmodel.TableSection{Action: r.tr.T(i18n.KeyCreateOrder), Table: t}
}

func (r renderer) products() *viewmodel.TableSection {
	t := viewmodel.Table{
		Columns: r.cols(i18n.KeyColSKU, i18n.KeyColName, i18n.KeyColPrice, i18n.KeyColUnit, i18n.KeyColWeight, i18n.KeyColMaterial),
		Rows:    []viewmodel.Row{},
	}
	for _, p := range r.snap.Products {
		name := p.Name
		if p.Glyph != "" {
			name = p.Glyph + " " + p.Name
		}
		t.Rows = append(t.Rows, viewmodel.Row{ID: p.ID, Cells: []viewmodel.Cell{
			{Text: p.SKU},
			{Text: name},
			{Text: r.price(p.Price)},
			{Text: p.Unit},
			{Text: strconv.FormatFloat(p.Weight, 'f', -1, 64)},
			{Text: p.Material},
		}})
	}
	return &viewmodel.TableSection{Action: r.tr.T(i18n.KeyAddProduct), Table: t}
}

func (r renderer) logistics() *viewmodel.LogisticsView {
	l := analytics.LogisticsBuckets(r.snap)
	v := &viewmodel.LogisticsView{
		Cards: []viewmodel.StatCard{
			{Label: r.tr.T(i18n.KeyAtWarehouse), Value: count(l.AtWarehouse), Category: string(status.Of(model.StatusAtChinaWarehouse))},
			{Label: r.tr.T(i18n.KeyInTransit), Value: count(l.InTransit), Category: string(status.Info)},
			{Label: r.tr.T(i18n.KeyReadyForPickup), Value: count(l.ReadyForPickup), Category: string(status.Success)},
		},
		Dispatch: viewmodel.Table{
			Title:    r.tr.T(i18n.KeyReadyToShipOrders),
			Subtitle: r.tr.T(i18n.KeyLogisticsOrders),
			Columns: r.cols(i18n.KeyColOrder, i18n.KeyColClient, i18n.KeyColStatus, i18n.KeyColItems,
				i18n.KeyColShipping, i18n.KeyColDate),
			Rows: []viewmodel.Row{},
		},
		Action: r.tr.T(i18n.KeyDispatch),
	}
	for _, o := range l.ReadyForDispatch {
		v.Dispatch.Rows = append(v.Dispatch.Rows, viewmodel.Row{ID: o.ID, Cells: []viewmodel.Cell{
			{Text: o.ID},
			r.clientCell(o.ClientID),
			r.statusCell(o.Status),
			{Text: count(o.Items)},
			{Text: r.tr.Shipping(o.Shipping)},
			{Text: o.Date.Format(dateLayout)},
		}})
	}
	return v
}

func (r renderer) finance() *viewmodel.FinanceView {
	f := analytics.FinanceTotals(r.snap)
	v := &viewmodel.FinanceView{
		Cards: []viewmodel.StatCard{
			{Label: r.tr.T(i18n.KeyTotalRevenue), Value: r.price(f.TotalRevenue), Category: string(status.Accent)},
			{Label: r.tr.T(i18n.KeyPendingPayments), Value: r.price(f.Pending), Category: string(status.Warning)},
			{Label: r.tr.T(i18n.KeyPaidThisMonth), Value: r.price(f.CollectedThisMonth), Category: string(status.Success)},
			{Label: r.tr.T(i18n.KeyDebts), Value: r.price(f.Overdue), Category: string(paymentCategory[model.PaymentOverdue])},
		},
		Revenue: r.revenueChart(i18n.KeyRevenueByMonth, i18n.KeyIncomeDynamics),
		Payments: viewmodel.Table{
			Title:    r.tr.T(i18n.KeyRecentPayments),
			Subtitle: r.tr.T(i18n.KeyPaymentHistory),
			Columns:  r.cols(i18n.KeyColClient, i18n.KeyColOrder, i18n.KeyColAmount, i18n.KeyColDate, i18n.KeyColStatus),
			Rows:     []viewmodel.Row{},
		},
	}
	for _, p := range analytics.RecentPayments(r.snap, r.cfg.RecentLimit) {
		v.Payments.Rows = append(v.Payments.Rows, viewmodel.Row{ID: p.ID, Cells: []viewmodel.Cell{
			r.clientCell(p.ClientID),
			{Text: p.OrderID},
			{Text: r.price(p.Amount)},
			{Text: p.Date.Format(dateLayout)},
			{Text: r.tr.PaymentStatus(p.Status), Category: string(paymentCategory[p.Status])},
		}})
	}
	return v
}

func (r renderer) analytics() *viewmodel.AnalyticsView {
	v := &viewmodel.AnalyticsView{
		TopClients: viewmodel.Table{
			Title:    r.tr.T(i18n.KeyTopClients),
			Subtitle: r.tr.T(i18n.KeyLastMonth),
			Columns:  r.cols(i18n.KeyColClient, i18n.KeyColOrderCount, i18n.KeyColRevenue),
			Rows:     []viewmodel.Row{},
		},
		TopProducts: viewmodel.Table{
			Title:    r.tr.T(i18n.KeyPopularProducts),
			Subtitle: r.tr.T(i18n.KeyMostOrdered),
			Columns:  r.cols(i18n.KeyColName, i18n.KeyColSKU, i18n.KeyColItems),
			Rows:     []viewmodel.Row{},
		},
		Managers: viewmodel.Table{
			Title:    r.tr.T(i18n.KeyManagerPerformance),
			Subtitle: r.tr.T(i18n.KeyTeamStats),
			Columns:  r.cols(i18n.KeyColManager, i18n.KeyColClientCount, i18n.KeyColOrderCount, i18n.KeyColRevenue),
			Rows:     []viewmodel.Row{},
		},
		Services: viewmodel.ShareChart{
			Title:    r.tr.T(i18n.KeyServiceDistribution),
			Subtitle: r.tr.T(i18n.KeyOrders),
		},
	}

	for _, c := range analytics.TopClientsByRevenue(r.snap, r.cfg.RankingLimit) {
		v.TopClients.Rows = append(v.TopClients.Rows, viewmodel.Row{ID: c.Client.ID, Cells: []viewmodel.Cell{
			{Text: c.Client.Name},
			{Text: count(c.Orders)},
			{Text: r.price(c.Revenue)},
		}})
	}
	for _, p := range analytics.TopProductsByCount(r.snap, r.cfg.RankingLimit) {
		v.TopProducts.Rows = append(v.TopProducts.Rows, viewmodel.Row{ID: p.Product.ID, Cells: []viewmodel.Cell{
			{Text: p.Product.Name},
			{Text: p.Product.SKU},
			{Text: count(p.Quantity)},
		}})
	}
	for _, m := range analytics.ManagerPerformance(r.snap) {
		v.Managers.Rows = append(v.Managers.Rows, viewmodel.Row{ID: m.Manager, Cells: []viewmodel.Cell{
			{Text: m.Manager},
			{Text: count(m.Clients)},
			{Text: count(m.Orders)},
			{Text: r.price(m.Revenue)},
		}})
	}
	for _, s := range analytics.ServiceDistribution(r.snap) {
		v.Services.Shares = append(v.Services.Shares, viewmodel.Share{
			Label:   r.tr.Service(s.Service),
			Display: percent(s.Percent),
			Percent: s.Percent,
		})
	}
	return v
}
