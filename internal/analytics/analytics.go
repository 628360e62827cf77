// Package analytics derives dashboard aggregates from a store snapshot.
//
// Every function is pure: the same snapshot always yields the same result and
// the snapshot is never modified.
package analytics

import (
	"cmp"
	"slices"

	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/shopspring/decimal"
)

// DashboardCounters are the four headline cards.
type DashboardCounters struct {
	MonthRevenue   decimal.Decimal
	ActiveOrders   int
	TotalClients   int
	ChinaWarehouse int
}

// Counters computes the headline cards. An order is active until it is ready
// for pickup; the month revenue is the latest point of the monthly series.
func Counters(s store.Snapshot) DashboardCounters {
	c := DashboardCounters{
		MonthRevenue: decimal.Zero,
		TotalClients: len(s.Clients),
	}
	for _, o := range s.Orders {
		if o.Status != model.StatusReadyForPickup {
			c.ActiveOrders++
		}
		if o.Status == model.StatusAtChinaWarehouse {
			c.ChinaWarehouse++
		}
	}
	if latest, ok := latestMetric(s); ok {
		c.MonthRevenue = latest.Revenue
	}
	return c
}

func latestMetric(s store.Snapshot) (model.MonthlyMetric, bool) {
	if len(s.MonthlyMetrics) == 0 {
		return model.MonthlyMetric{}, false
	}
	return s.MonthlyMetrics[len(s.MonthlyMetrics)-1], true
}

// ServiceSlice is one service type's share of orders.
type ServiceSlice struct {
	Service model.ServiceType
	Count   int
	Percent float64
}

// ServiceDistribution returns the share of orders per service type, one slice
// per type in menu order. Percentages are zero when there are no orders.
func ServiceDistribution(s store.Snapshot) []ServiceSlice {
	counts := make(map[model.ServiceType]int)
	for _, o := range s.Orders {
		counts[o.Service]++
	}

	out := make([]ServiceSlice, 0, len(model.ServiceTypes()))
	for _, st := range model.ServiceTypes() {
		slice := ServiceSlice{Service: st, Count: counts[st]}
		if len(s.Orders) > 0 {
			slice.Percent = float64(slice.Count) * 100 / float64(len(s.Orders))
		}
		out = append(out, slice)
	}
	return out
}

// ReportedShares returns the service distribution carried by the series
// fixture, ordered by service menu order.
func ReportedShares(s store.Snapshot) []model.ServiceShare {
	out := slices.Clone(s.ServiceShares)
	rank := make(map[model.ServiceType]int)
	for i, st := range model.ServiceTypes() {
		rank[st] = i
	}
	slices.SortStableFunc(out, func(a, b model.ServiceShare) int {
		return cmp.Compare(rank[a.Service], rank[b.Service])
	})
	return out
}

// Logistics groups orders for the logistics section.
type Logistics struct {
	ReadyForDispatch []model.Order
	AtWarehouse      int
	InTransit        int
	ReadyForPickup   int
}

// dispatchStatuses are the statuses of orders that can be shipped next.
var dispatchStatuses = []model.Status{model.StatusAtChinaWarehouse, model.StatusReadyToShip}

// LogisticsBuckets returns the orders ready for dispatch in store order along
// with per-stage counters.
func LogisticsBuckets(s store.Snapshot) Logistics {
	l := Logistics{ReadyForDispatch: store.ByStatus(s.Orders, dispatchStatuses...)}
	for _, o := range s.Orders {
		switch o.Status {
		case model.StatusAtChinaWarehouse:
			l.AtWarehouse++
		case model.StatusInTransit:
			l.InTransit++
		case model.StatusReadyForPickup:
			l.ReadyForPickup++
		}
	}
	return l
}

// Finance holds the finance cards.
type Finance struct {
	TotalRevenue       decimal.Decimal
	Pending            decimal.Decimal
	CollectedThisMonth decimal.Decimal
	Overdue            decimal.Decimal
}

// FinanceTotals sums the monthly series and the payment ledger. Collected
// covers received payments dated in the latest month of the series.
func FinanceTotals(s store.Snapshot) Finance {
	f := Finance{
		TotalRevenue:       decimal.Zero,
		Pending:            decimal.Zero,
		CollectedThisMonth: decimal.Zero,
		Overdue:            decimal.Zero,
	}
	for _, m := range s.MonthlyMetrics {
		f.TotalRevenue = f.TotalRevenue.Add(m.Revenue)
	}

	month := ""
	if latest, ok := latestMetric(s); ok {
		month = latest.Month
	}
	for _, p := range s.Payments {
		switch p.Status {
		case model.PaymentExpected:
			f.Pending = f.Pending.Add(p.Amount)
		case model.PaymentOverdue:
			f.Overdue = f.Overdue.Add(p.Amount)
		case model.PaymentReceived:
			if month != "" && p.Date.Format("2006-01") == month {
				f.CollectedThisMonth = f.CollectedThisMonth.Add(p.Amount)
			}
		}
	}
	return f
}

// ClientRevenue is one row of the top clients ranking.
type ClientRevenue struct {
	Client  model.Client
	Revenue decimal.Decimal
	Orders  int
}

// TopClientsByRevenue ranks clients by the total of their orders, highest
// first. Ties keep store order. At most n rows are returned; n <= 0 yields none.
func TopClientsByRevenue(s store.Snapshot, n int) []ClientRevenue {
	if n <= 0 {
		return []ClientRevenue{}
	}

	index := make(map[string]int, len(s.Clients))
	rows := make([]ClientRevenue, len(s.Clients))
	for i, c := range s.Clients {
		index[c.ID] = i
		rows[i] = ClientRevenue{Client: c, Revenue: decimal.Zero}
	}
	for _, o := range s.Orders {
		if i, ok := index[o.ClientID]; ok {
			rows[i].Revenue = rows[i].Revenue.Add(o.Total)
			rows[i].Orders++
		}
	}

	slices.SortStableFunc(rows, func(a, b ClientRevenue) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	return rows[:min(n, len(rows))]
}

// ProductCount is one row of the popular products ranking.
type ProductCount struct {
	Product  model.Product
	Quantity int
}

// TopProductsByCount ranks products by ordered quantity across all order
// lines, highest first. Ties keep store order.
func TopProductsByCount(s store.Snapshot, n int) []ProductCount {
	if n <= 0 {
		return []ProductCount{}
	}

	index := make(map[string]int, len(s.Products))
	rows := make([]ProductCount, len(s.Products))
	for i, p := range s.Products {
		index[p.ID] = i
		rows[i] = ProductCount{Product: p}
	}
	for _, o := range s.Orders {
		for _, line := range o.Lines {
			if i, ok := index[line.ProductID]; ok {
				rows[i].Quantity += line.Quantity
			}
		}
	}

	slices.SortStableFunc(rows, func(a, b ProductCount) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})
	return rows[:min(n, len(rows))]
}

// ManagerStats summarizes the clients one manager looks after.
type ManagerStats struct {
	Manager string
	Revenue decimal.Decimal
	Orders  int
	Clients int
}

// ManagerPerformance aggregates clients and their orders per manager, with
// managers in order of first appearance among clients.
func ManagerPerformance(s store.Snapshot) []ManagerStats {
	var out []ManagerStats
	byManager := make(map[string]int)
	clientManager := make(map[string]int, len(s.Clients))

	for _, c := range s.Clients {
		i, ok := byManager[c.Manager]
		if !ok {
			i = len(out)
			byManager[c.Manager] = i
			out = append(out, ManagerStats{Manager: c.Manager, Revenue: decimal.Zero})
		}
		out[i].Clients++
		clientManager[c.ID] = i
	}
	for _, o := range s.Orders {
		if i, ok := clientManager[o.ClientID]; ok {
			out[i].Orders++
			out[i].Revenue = out[i].Revenue.Add(o.Total)
		}
	}
	return out
}

// RecentOrders returns up to n orders, newest first. Orders on the same day
// keep store order.
func RecentOrders(s store.Snapshot, n int) []model.Order {
	if n <= 0 {
		return []model.Order{}
	}
	out := slices.Clone(s.Orders)
	slices.SortStableFunc(out, func(a, b model.Order) int {
		return b.Date.Compare(a.Date)
	})
	return out[:min(n, len(out))]
}

// RecentPayments returns up to n payments, newest first.
func RecentPayments(s store.Snapshot, n int) []model.Payment {
	if n <= 0 {
		return []model.Payment{}
	}
	out := slices.Clone(s.Payments)
	slices.SortStableFunc(out, func(a, b model.Payment) int {
		return b.Date.Compare(a.Date)
	})
	return out[:min(n, len(out))]
}
