package viewmodel

// StatCard is a headline metric.
type StatCard struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Category string `json:"category,omitempty"` // Status category used for the accent color
}

// Table is a titled grid of pre-formatted cells.
type Table struct {
	Title    string   `json:"title,omitempty"`
	Subtitle string   `json:"subtitle,omitempty"`
	Columns  []string `json:"columns"`
	Rows     []Row    `json:"rows"`
}

// Row is one table line.
type Row struct {
	ID    string `json:"id"`
	Cells []Cell `json:"cells"`
}

// Cell is one table value. Cells with a category render as status badges.
type Cell struct {
	Text       string `json:"text"`
	Category   string `json:"category,omitempty"`
	Unresolved bool   `json:"unresolved,omitempty"`
}

// HasBadge reports whether the cell renders as a status badge.
func (c Cell) HasBadge() bool {
	return c.Category != ""
}

// IsEmpty reports whether the table has no rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Column returns the cells of column i, skipping rows too short to have one.
func (t Table) Column(i int) []Cell {
	var out []Cell
	for _, r := range t.Rows {
		if i >= 0 && i < len(r.Cells) {
			out = append(out, r.Cells[i])
		}
	}
	return out
}

// BarChart is a series of labelled values.
type BarChart struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Bars     []Bar  `json:"bars"`
}

// Bar is one point of a bar chart.
type Bar struct {
	Label   string  `json:"label"`
	Display string  `json:"display"`
	Note    string  `json:"note,omitempty"`
	Value   float64 `json:"value"`
}

// Max returns the largest bar value, or zero for an empty chart.
func (c BarChart) Max() float64 {
	m := 0.0
	for _, b := range c.Bars {
		if b.Value > m {
			m = b.Value
		}
	}
	return m
}

// Fraction returns b's length relative to max in [0, 1].
func (b Bar) Fraction(maxValue float64) float64 {
	if maxValue <= 0 || b.Value <= 0 {
		return 0
	}
	if b.Value >= maxValue {
		return 1
	}
	return b.Value / maxValue
}

// ShareChart is a distribution that sums to roughly 100 percent.
type ShareChart struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	Shares   []Share `json:"shares"`
}

// Share is one slice of a distribution.
type Share struct {
	Label   string  `json:"label"`
	Display string  `json:"display"`
	Percent float64 `json:"percent"`
}

// Ratio returns the share as a fraction in [0, 1].
func (s Share) Ratio() float64 {
	switch {
	case s.Percent <= 0:
		return 0
	case s.Percent >= 100:
		return 1
	default:
		return s.Percent / 100
	}
}
