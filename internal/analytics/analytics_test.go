package analytics

import (
	"testing"

	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/Veraticus/logistics-pro/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures(t *testing.T) store.Snapshot {
	t.Helper()
	s, err := store.Load()
	require.NoError(t, err)
	return s.Snapshot()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func orderIDs(orders []model.Order) []string {
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestCounters(t *testing.T) {
	c := Counters(fixtures(t))

	assert.Equal(t, 5, c.ActiveOrders)
	assert.Equal(t, 3, c.TotalClients)
	assert.Equal(t, 1, c.ChinaWarehouse)
	assert.True(t, c.MonthRevenue.Equal(dec("540000")), c.MonthRevenue.String())

	empty := Counters(store.Snapshot{})
	assert.Zero(t, empty.ActiveOrders)
	assert.True(t, empty.MonthRevenue.IsZero())
}

func TestServiceDistribution(t *testing.T) {
	got := ServiceDistribution(fixtures(t))
	require.Len(t, got, 3)

	total := 0.0
	for i, st := range model.ServiceTypes() {
		assert.Equal(t, st, got[i].Service)
		assert.Equal(t, 2, got[i].Count)
		total += got[i].Percent
	}
	assert.InDelta(t, 100, total, 0.001)

	for _, slice := range ServiceDistribution(store.Snapshot{}) {
		assert.Zero(t, slice.Percent)
	}
}

func TestReportedShares(t *testing.T) {
	snap := fixtures(t)
	snap.ServiceShares = []model.ServiceShare{
		{Service: model.ServiceBoth, Percent: 25},
		{Service: model.ServicePurchase, Percent: 45},
		{Service: model.ServiceLogistics, Percent: 30},
	}

	got := ReportedShares(snap)
	assert.Equal(t, []model.ServiceShare{
		{Service: model.ServicePurchase, Percent: 45},
		{Service: model.ServiceLogistics, Percent: 30},
		{Service: model.ServiceBoth, Percent: 25},
	}, got)
	assert.Equal(t, model.ServiceBoth, snap.ServiceShares[0].Service, "input must not be reordered")
}

func TestLogisticsBuckets(t *testing.T) {
	snap := fixtures(t)

	l := LogisticsBuckets(snap)
	assert.Equal(t, []string{"ORD-2024-001", "ORD-2024-004"}, orderIDs(l.ReadyForDispatch))
	assert.Equal(t, 1, l.AtWarehouse)
	assert.Equal(t, 1, l.InTransit)
	assert.Equal(t, 1, l.ReadyForPickup)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, l, LogisticsBuckets(snap))
	})

	t.Run("membership and order", func(t *testing.T) {
		orders := []model.Order{
			{ID: "1", Status: model.StatusReadyToShip},
			{ID: "2", Status: model.StatusInProgress},
			{ID: "3", Status: model.StatusAtChinaWarehouse},
			{ID: "4", Status: model.StatusLaunched},
			{ID: "5", Status: model.StatusReadyToShip},
		}
		got := LogisticsBuckets(store.Snapshot{Orders: orders})
		assert.Equal(t, []string{"1", "3", "5"}, orderIDs(got.ReadyForDispatch))
	})
}

func TestFinanceTotals(t *testing.T) {
	f := FinanceTotals(fixtures(t))

	assert.True(t, f.TotalRevenue.Equal(dec("3890000")), f.TotalRevenue.String())
	assert.True(t, f.Pending.Equal(dec("99000")), f.Pending.String())
	assert.True(t, f.CollectedThisMonth.Equal(dec("173000")), f.CollectedThisMonth.String())
	assert.True(t, f.Overdue.Equal(dec("54000")), f.Overdue.String())

	t.Run("no series means nothing collected", func(t *testing.T) {
		snap := fixtures(t)
		snap.MonthlyMetrics = nil
		got := FinanceTotals(snap)
		assert.True(t, got.CollectedThisMonth.IsZero())
		assert.True(t, got.TotalRevenue.IsZero())
	})
}

func TestTopClientsByRevenue(t *testing.T) {
	snap := fixtures(t)

	all := TopClientsByRevenue(snap, 10)
	require.Len(t, all, 3)
	assert.Equal(t, "2", all[0].Client.ID)
	assert.True(t, all[0].Revenue.Equal(dec("182000")))
	assert.Equal(t, 2, all[0].Orders)
	assert.Equal(t, "1", all[1].Client.ID)
	assert.Equal(t, "3", all[2].Client.ID)

	for _, n := range []int{-1, 0, 1, 2, 3, 4} {
		got := TopClientsByRevenue(snap, n)
		assert.LessOrEqual(t, len(got), max(n, 0), "n=%d", n)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Revenue.GreaterThanOrEqual(got[i].Revenue), "n=%d row %d", n, i)
		}
	}

	t.Run("ties keep client order", func(t *testing.T) {
		tied := store.Snapshot{
			Clients: []model.Client{{ID: "a"}, {ID: "b"}, {ID: "c"}},
			Orders: []model.Order{
				{ClientID: "c", Total: dec("10")},
				{ClientID: "b", Total: dec("10")},
				{ClientID: "a", Total: dec("5")},
			},
		}
		got := TopClientsByRevenue(tied, 3)
		assert.Equal(t, "b", got[0].Client.ID)
		assert.Equal(t, "c", got[1].Client.ID)
		assert.Equal(t, "a", got[2].Client.ID)
	})
}

func TestTopProductsByCount(t *testing.T) {
	got := TopProductsByCount(fixtures(t), 3)
	require.Len(t, got, 3)

	assert.Equal(t, "ELEC-001", got[0].Product.SKU)
	assert.Equal(t, 18, got[0].Quantity)
	assert.Equal(t, "TECH-123", got[1].Product.SKU)
	assert.Equal(t, 17, got[1].Quantity)
	assert.Equal(t, "TEXT-045", got[2].Product.SKU)
	assert.Equal(t, 9, got[2].Quantity)

	assert.Len(t, TopProductsByCount(fixtures(t), 1), 1)
	assert.Empty(t, TopProductsByCount(fixtures(t), 0))
}

func TestManagerPerformance(t *testing.T) {
	got := ManagerPerformance(fixtures(t))
	require.Len(t, got, 3)

	assert.Equal(t, "Иванов И.", got[0].Manager)
	assert.Equal(t, 1, got[0].Clients)
	assert.Equal(t, 2, got[0].Orders)
	assert.True(t, got[0].Revenue.Equal(dec("112000")))
	assert.Equal(t, "Петров П.", got[1].Manager)
	assert.True(t, got[1].Revenue.Equal(dec("182000")))

	shared := store.Snapshot{
		Clients: []model.Client{{ID: "1", Manager: "B"}, {ID: "2", Manager: "A"}, {ID: "3", Manager: "B"}},
		Orders:  []model.Order{{ClientID: "3", Total: dec("7")}, {ClientID: "404", Total: dec("100")}},
	}
	stats := ManagerPerformance(shared)
	require.Len(t, stats, 2)
	assert.Equal(t, "B", stats[0].Manager)
	assert.Equal(t, 2, stats[0].Clients)
	assert.Equal(t, 1, stats[0].Orders)
	assert.True(t, stats[0].Revenue.Equal(dec("7")))
}

func TestRecent(t *testing.T) {
	snap := fixtures(t)

	assert.Equal(t, []string{"ORD-2024-003", "ORD-2024-002", "ORD-2024-001"}, orderIDs(RecentOrders(snap, 3)))
	assert.Len(t, RecentOrders(snap, 100), len(snap.Orders))
	assert.Empty(t, RecentOrders(snap, 0))
	assert.Equal(t, "ORD-2024-001", snap.Orders[0].ID, "snapshot must not be reordered")

	payments := RecentPayments(snap, 2)
	require.Len(t, payments, 2)
	assert.Equal(t, "PAY-005", payments[0].ID)
	assert.Equal(t, "PAY-001", payments[1].ID)
}
