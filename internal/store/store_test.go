package store

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/Veraticus/logistics-pro/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureFS copies the embedded fixtures and applies overrides.
func fixtureFS(t *testing.T, overrides map[string]string) fstest.MapFS {
	t.Helper()
	sub, err := fs.Sub(embedded, "fixtures")
	require.NoError(t, err)

	m := fstest.MapFS{}
	for _, name := range []string{clientsFile, suppliersFile, productsFile, ordersFile, seriesFile, paymentsFile} {
		data, err := fs.ReadFile(sub, name)
		require.NoError(t, err)
		m[name] = &fstest.MapFile{Data: data}
	}
	for name, body := range overrides {
		m[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return m
}

func TestLoad_EmbeddedFixtures(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Len(t, s.Clients(), 3)
	assert.Len(t, s.Suppliers(), 3)
	assert.Len(t, s.Products(), 3)
	assert.Len(t, s.Orders(), 6)
	assert.Len(t, s.MonthlyMetrics(), 6)
	assert.Len(t, s.ServiceShares(), 3)
	assert.Len(t, s.Payments(), 5)

	orders := s.Orders()
	assert.Equal(t, "ORD-2024-001", orders[0].ID)
	assert.Equal(t, model.StatusAtChinaWarehouse, orders[0].Status)
	assert.Equal(t, "45000", orders[0].Total.String())
	assert.Equal(t, 8, orders[0].LineQuantity())
	assert.False(t, orders[4].HasSupplier())

	metrics := s.MonthlyMetrics()
	assert.Equal(t, "2024-12", metrics[len(metrics)-1].Month)
	assert.Equal(t, "540000", metrics[len(metrics)-1].Revenue.String())

	c, ok := s.Client("2")
	require.True(t, ok)
	assert.True(t, c.IsOrganization())
	assert.Equal(t, "ТехноПром", c.Company)
}

func TestStore_AccessorsReturnCopies(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	clients := s.Clients()
	clients[0].Name = "changed"
	assert.NotEqual(t, "changed", s.Clients()[0].Name)

	orders := s.Orders()
	orders[0].Lines[0].Quantity = 999
	assert.NotEqual(t, 999, s.Orders()[0].Lines[0].Quantity)

	snap := s.Snapshot()
	snap.Orders[0].Lines[0].Quantity = 999
	snap.Products = nil
	assert.NotEqual(t, 999, s.Snapshot().Orders[0].Lines[0].Quantity)
	assert.Len(t, s.Products(), 3)
}

func TestStore_Lookups(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	sup, ok := s.Supplier("3")
	require.True(t, ok)
	assert.Equal(t, "Beijing Tech Industries", sup.Name)

	p, ok := s.Product("1")
	require.True(t, ok)
	assert.Equal(t, "ELEC-001", p.SKU)

	_, ok = s.Client("404")
	assert.False(t, ok)
	_, ok = s.Supplier("")
	assert.False(t, ok)
	_, ok = s.Product("9")
	assert.False(t, ok)
}

func TestByStatus(t *testing.T) {
	orders := []model.Order{
		{ID: "a", Status: model.StatusReadyToShip},
		{ID: "b", Status: model.StatusInProgress},
		{ID: "c", Status: model.StatusAtChinaWarehouse},
		{ID: "d", Status: model.StatusReadyToShip},
	}

	tests := []struct {
		name     string
		statuses []model.Status
		want     []string
	}{
		{name: "single status keeps order", statuses: []model.Status{model.StatusReadyToShip}, want: []string{"a", "d"}},
		{name: "several statuses keep input order", statuses: []model.Status{model.StatusAtChinaWarehouse, model.StatusReadyToShip}, want: []string{"a", "c", "d"}},
		{name: "no statuses", statuses: nil, want: []string{}},
		{name: "no match", statuses: []model.Status{model.StatusLaunched}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByStatus(orders, tt.statuses...)
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	assert.Empty(t, ByStatus(nil, model.StatusReadyToShip))
}

func TestLoadFrom_RejectsInvalidFixtures(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		body     string
		contains string
	}{
		{
			name:     "rating out of range",
			file:     suppliersFile,
			body:     "suppliers:\n  - {id: \"1\", name: X, country: Китай, category: textile, contact: a@b, rating: 7, payment_terms: prepay, status: Active}\n",
			contains: "Rating",
		},
		{
			name:     "commission above 100",
			file:     clientsFile,
			body:     "clients:\n  - {id: \"1\", name: X, city: Y, legal_type: individual, commission: 150, service_type: both, status: Active, manager: M}\n",
			contains: "Commission",
		},
		{
			name:     "organization without company",
			file:     clientsFile,
			body:     "clients:\n  - {id: \"1\", name: X, city: Y, legal_type: organization, commission: 10, service_type: both, status: Active, manager: M}\n",
			contains: "Company",
		},
		{
			name:     "individual with company",
			file:     clientsFile,
			body:     "clients:\n  - {id: \"1\", name: X, city: Y, legal_type: individual, company: Z, commission: 10, service_type: both, status: Active, manager: M}\n",
			contains: "individual",
		},
		{
			name:     "negative total",
			file:     ordersFile,
			body:     "orders:\n  - {id: ORD-2024-001, client_id: \"1\", status: Launched, total: \"-5\", items: 0, date: \"2024-12-01\", shipping: auto, service: both}\n",
			contains: "Total",
		},
		{
			name:     "malformed order id",
			file:     ordersFile,
			body:     "orders:\n  - {id: ORDER-1, client_id: \"1\", status: Launched, total: \"5\", items: 0, date: \"2024-12-01\", shipping: auto, service: both}\n",
			contains: "order_id",
		},
		{
			name:     "unknown order status",
			file:     ordersFile,
			body:     "orders:\n  - {id: ORD-2024-001, client_id: \"1\", status: Lost, total: \"5\", items: 0, date: \"2024-12-01\", shipping: auto, service: both}\n",
			contains: "Lost",
		},
		{
			name:     "line sum mismatch",
			file:     ordersFile,
			body:     "orders:\n  - {id: ORD-2024-001, client_id: \"1\", status: Launched, total: \"5\", items: 3, date: \"2024-12-01\", shipping: auto, service: both, lines: [{product_id: \"1\", quantity: 2}]}\n",
			contains: "lines sum",
		},
		{
			name:     "duplicate sku",
			file:     productsFile,
			body:     "products:\n  - {id: \"1\", sku: A, name: X, price: \"1\", unit: шт}\n  - {id: \"2\", sku: A, name: Y, price: \"1\", unit: шт}\n",
			contains: "duplicate sku",
		},
		{
			name:     "months out of order",
			file:     seriesFile,
			body:     "monthly:\n  - {month: 2024-08, orders: 1, revenue: \"1\"}\n  - {month: 2024-07, orders: 1, revenue: \"1\"}\n",
			contains: "does not follow",
		},
		{
			name:     "unknown field",
			file:     paymentsFile,
			body:     "payments:\n  - {id: P, client_id: \"1\", amount: \"1\", date: \"2024-12-01\", status: received, memo: x}\n",
			contains: "memo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(fixtureFS(t, map[string]string{tt.file: tt.body}))
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidFixture)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	m := fixtureFS(t, nil)
	delete(m, paymentsFile)

	_, err := LoadFrom(m)
	assert.ErrorIs(t, err, common.ErrInvalidFixture)
}

func TestLoadFrom_DanglingReferencesAreKept(t *testing.T) {
	body := "orders:\n  - {id: ORD-2024-077, client_id: \"404\", supplier_id: \"404\", status: Launched, total: \"5\", items: 0, date: \"2024-12-01\", shipping: auto, service: both}\n"
	s, err := LoadFrom(fixtureFS(t, map[string]string{ordersFile: body}))
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 1)
	_, ok := s.Client(orders[0].ClientID)
	assert.False(t, ok)
}
