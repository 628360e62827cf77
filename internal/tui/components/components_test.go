package components

import (
	"strings"
	"testing"

	tuitest "github.com/Veraticus/logistics-pro/internal/tui/testing"
	"github.com/Veraticus/logistics-pro/internal/tui/themes"
	"github.com/Veraticus/logistics-pro/internal/tui/viewmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() viewmodel.Table {
	return viewmodel.Table{
		Title:    "Recent orders",
		Subtitle: "Current orders in progress",
		Columns:  []string{"Order", "Client", "Status"},
		Rows: []viewmodel.Row{
			{ID: "ORD-2024-001", Cells: []viewmodel.Cell{
				{Text: "ORD-2024-001"},
				{Text: "Анна Смирнова"},
				{Text: "At China warehouse", Category: "highlight"},
			}},
			{ID: "ORD-2024-002", Cells: []viewmodel.Cell{
				{Text: "ORD-2024-002"},
				{Text: "Unknown", Unresolved: true},
				{Text: "In progress", Category: "info"},
			}},
		},
	}
}

func TestHeader(t *testing.T) {
	h := viewmodel.Header{
		Subtitle: "Procurement management",
		Nav: []viewmodel.NavItem{
			{ID: "dashboard", Label: "Dashboard"},
			{ID: "clients", Label: "Clients", Active: true},
		},
		Language: viewmodel.Selector{Label: "Language", Options: []viewmodel.Option{
			{Value: "ru", Label: "Русский"},
			{Value: "en", Label: "English", Selected: true},
		}},
		Currency: viewmodel.Selector{Label: "Currency", Options: []viewmodel.Option{
			{Value: "USD", Label: "$ USD", Selected: true},
		}},
	}

	out := tuitest.StripANSI(Header(h, themes.Default))
	assert.True(t, tuitest.ContainsInOrder(out, "LogisticsPro", "Procurement management"))
	assert.Contains(t, out, "[English]")
	assert.Contains(t, out, "Русский")
	assert.Contains(t, out, "[$ USD]")
	assert.True(t, tuitest.ContainsInOrder(out, "Dashboard", "Clients"))
}

func TestCards(t *testing.T) {
	cards := []viewmodel.StatCard{
		{Label: "Active Orders", Value: "5"},
		{Label: "Total Clients", Value: "3"},
		{Label: "China Warehouse", Value: "1", Category: "highlight"},
	}

	t.Run("wide row", func(t *testing.T) {
		out := Cards(cards, themes.Default, 200)
		plain := tuitest.StripANSI(out)
		assert.True(t, tuitest.ContainsInOrder(plain, "Active Orders", "Total Clients", "China Warehouse"))
		assert.Len(t, strings.Split(out, "\n"), 4, "one row of bordered cards")
	})

	t.Run("wraps when narrow", func(t *testing.T) {
		out := Cards(cards, themes.Default, 30)
		assert.Len(t, strings.Split(out, "\n"), 12, "one card per row")
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Cards(nil, themes.Default, 80))
	})
}

func TestBarsAndShares(t *testing.T) {
	chart := viewmodel.BarChart{
		Title:    "Orders and revenue dynamics",
		Subtitle: "Last 6 months",
		Bars: []viewmodel.Bar{
			{Label: "July", Display: "$4,950", Note: "Orders: 12", Value: 4950},
			{Label: "November", Display: "$10,120", Note: "Orders: 28", Value: 10120},
		},
	}

	out := tuitest.StripANSI(Bars(chart, themes.Default, 100))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Last 6 months")
	assert.True(t, tuitest.ContainsInOrder(lines[1], "July", "$4,950", "Orders: 12"))
	assert.True(t, tuitest.ContainsInOrder(lines[2], "November", "$10,120"))

	shares := viewmodel.ShareChart{
		Title: "Service distribution",
		Shares: []viewmodel.Share{
			{Label: "Purchase", Display: "45%", Percent: 45},
			{Label: "Logistics", Display: "30%", Percent: 30},
		},
	}
	out = tuitest.StripANSI(Shares(shares, themes.Default, 100))
	assert.True(t, tuitest.ContainsInOrder(out, "Service distribution", "Purchase", "45%", "Logistics", "30%"))
}

func TestNewTable(t *testing.T) {
	vm := sampleTable()

	tbl := NewTable(vm, themes.Default, 10)
	assert.Len(t, tbl.Rows(), 2)
	assert.Len(t, tbl.Columns(), 3)
	assert.Equal(t, len("ORD-2024-001"), tbl.Columns()[0].Width)
	assert.Equal(t, len("At China warehouse"), tbl.Columns()[2].Width)

	out := tuitest.StripANSI(TitledTable(vm, tbl.View(), themes.Default))
	assert.True(t, tuitest.ContainsInOrder(out, "Recent orders", "Order", "ORD-2024-001", "Анна Смирнова", "At China warehouse"))
	assert.Contains(t, out, "Unknown")
}

func TestColumnWidths_Capped(t *testing.T) {
	vm := viewmodel.Table{
		Columns: []string{"Name"},
		Rows:    []viewmodel.Row{{Cells: []viewmodel.Cell{{Text: strings.Repeat("x", 60)}}}},
	}
	assert.Equal(t, []int{maxColumnWidth}, columnWidths(vm))
}

func TestStaticTable(t *testing.T) {
	out := tuitest.StripANSI(StaticTable(sampleTable(), themes.Default))
	assert.True(t, tuitest.ContainsInOrder(out,
		"Recent orders", "Order", "Client", "Status",
		"ORD-2024-001", "Анна Смирнова", "At China warehouse",
		"ORD-2024-002", "Unknown", "In progress",
	))
}

func TestStaticTable_Empty(t *testing.T) {
	vm := viewmodel.Table{Title: "Popular products", Columns: []string{"Product"}}
	out := tuitest.StripANSI(StaticTable(vm, themes.Default))
	assert.True(t, tuitest.ContainsInOrder(out, "Popular products", "-"))
}

func TestDialog(t *testing.T) {
	d := viewmodel.DialogView{
		Kind:   "order",
		Title:  "New order",
		Hint:   "Fill in the order details",
		Submit: "Create Order",
		Fields: []viewmodel.Field{
			{Label: "Client", Kind: viewmodel.FieldSelect, Options: []viewmodel.Option{
				{Value: "c1", Label: "Анна Смирнова"},
				{Value: "c2", Label: `ООО "ТехноПром"`},
			}},
			{Label: "Amount", Kind: viewmodel.FieldNumber},
			{Label: "Comment", Kind: viewmodel.FieldNote},
		},
	}

	out := tuitest.StripANSI(Dialog(d, themes.Default))
	assert.True(t, tuitest.ContainsInOrder(out,
		"New order", "Fill in the order details",
		"Client", "Анна Смирнова | ООО \"ТехноПром\"",
		"Amount", "Comment", "Create Order",
	))
}
