package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_PayloadCount(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want int
	}{
		{name: "empty", page: Page{}, want: 0},
		{name: "dashboard", page: Page{Dashboard: &DashboardView{}}, want: 1},
		{name: "table section", page: Page{Orders: &TableSection{}}, want: 1},
		{name: "two payloads", page: Page{Finance: &FinanceView{}, Analytics: &AnalyticsView{}}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.PayloadCount())
		})
	}
}

func TestHeader_ActiveNav(t *testing.T) {
	h := Header{Nav: []NavItem{{ID: "a"}, {ID: "b", Active: true}}}
	item, ok := h.ActiveNav()
	assert.True(t, ok)
	assert.Equal(t, "b", item.ID)

	_, ok = Header{}.ActiveNav()
	assert.False(t, ok)
}

func TestSelector_Selected(t *testing.T) {
	s := Selector{Options: []Option{{Value: "ru"}, {Value: "en", Selected: true}}}
	o, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, "en", o.Value)

	_, ok = Selector{Options: []Option{{Value: "ru"}}}.Selected()
	assert.False(t, ok)
}

func TestBar_Fraction(t *testing.T) {
	chart := BarChart{Bars: []Bar{{Value: 450000}, {Value: 920000}, {Value: 0}}}
	peak := chart.Max()
	assert.InDelta(t, 920000, peak, 0)

	tests := []struct {
		name string
		bar  Bar
		max  float64
		want float64
	}{
		{name: "largest", bar: chart.Bars[1], max: peak, want: 1},
		{name: "partial", bar: chart.Bars[0], max: peak, want: 450000.0 / 920000.0},
		{name: "zero value", bar: chart.Bars[2], max: peak, want: 0},
		{name: "zero max", bar: Bar{Value: 5}, max: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.bar.Fraction(tt.max), 1e-9)
		})
	}

	assert.Zero(t, BarChart{}.Max())
}

func TestShare_Ratio(t *testing.T) {
	assert.InDelta(t, 0.45, Share{Percent: 45}.Ratio(), 1e-9)
	assert.Zero(t, Share{Percent: -3}.Ratio())
	assert.InDelta(t, 1, Share{Percent: 130}.Ratio(), 0)
}

func TestTable_Helpers(t *testing.T) {
	table := Table{Rows: []Row{
		{Cells: []Cell{{Text: "ORD-1"}, {Text: "Active", Category: "success"}}},
		{Cells: []Cell{{Text: "ORD-2"}}},
	}}

	assert.False(t, table.IsEmpty())
	assert.True(t, Table{}.IsEmpty())

	status := table.Column(1)
	assert.Len(t, status, 1)
	assert.True(t, status[0].HasBadge())
	assert.Len(t, table.Column(0), 2)
	assert.Empty(t, table.Column(-1))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Shenzhen Electronics Ltd", 30, "Shenzhen Electronics Ltd"},
		{"Shenzhen Electronics Ltd", 10, "Shenzhen …"},
		{"Постельное белье сатин", 9, "Постельн…"},
		{"abc", 1, "a"},
		{"abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.in, tt.max))
		})
	}
}

func TestField_IsSelect(t *testing.T) {
	assert.True(t, Field{Kind: FieldSelect}.IsSelect())
	assert.False(t, Field{Kind: FieldText}.IsSelect())
}
