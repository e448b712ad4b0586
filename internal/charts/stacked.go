// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

// FallbackLevelColor is used for cooking levels outside the palette.
const FallbackLevelColor = "#CCCCCC"

var levelColors = map[string]string{
	"Rare":      "#eab676",
	"Medium":    "#e28743",
	"Well-done": "#873e23",
}

// LevelColor returns the bar colour for a cooking level.
func LevelColor(level string) string {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return FallbackLevelColor
}

// MenuQuantityRow is one (menu, cooking level, quantity) aggregate.
type MenuQuantityRow struct {
	Menu     string  `json:"menu"`
	Level    string  `json:"level"`
	Quantity float64 `json:"quantity"`
}

// StackedMatrix is a dense menu x level quantity matrix. Menus and Levels
// keep first-appearance order from the input rows.
type StackedMatrix struct {
	Menus  []string    `json:"menus"`
	Levels []string    `json:"levels"`
	Values [][]float64 `json:"values"` // Values[menu][level]

	menuIdx  map[string]int
	levelIdx map[string]int
}

// Value returns the quantity for (menu, level); ok is false when either
// key was not observed.
func (m *StackedMatrix) Value(menu, level string) (float64, bool) {
	mi, ok := m.menuIdx[menu]
	if !ok {
		return 0, false
	}
	li, ok := m.levelIdx[level]
	if !ok {
		return 0, false
	}
	return m.Values[mi][li], true
}

// MenuTotal sums a menu's quantities across all levels.
func (m *StackedMatrix) MenuTotal(menu string) float64 {
	mi, ok := m.menuIdx[menu]
	if !ok {
		return 0
	}
	var total float64
	for _, v := range m.Values[mi] {
		total += v
	}
	return total
}

// NewStackedMatrix groups rows by (menu, level) and sums quantities.
// Combinations that never appear stay zero.
func NewStackedMatrix(rows []MenuQuantityRow) *StackedMatrix {
	m := &StackedMatrix{
		Menus:    []string{},
		Levels:   []string{},
		menuIdx:  make(map[string]int),
		levelIdx: make(map[string]int),
	}
	for _, r := range rows {
		if _, ok := m.menuIdx[r.Menu]; !ok {
			m.menuIdx[r.Menu] = len(m.Menus)
			m.Menus = append(m.Menus, r.Menu)
		}
		if _, ok := m.levelIdx[r.Level]; !ok {
			m.levelIdx[r.Level] = len(m.Levels)
			m.Levels = append(m.Levels, r.Level)
		}
	}

	m.Values = make([][]float64, len(m.Menus))
	for i := range m.Values {
		m.Values[i] = make([]float64, len(m.Levels))
	}
	for _, r := range rows {
		m.Values[m.menuIdx[r.Menu]][m.levelIdx[r.Level]] += r.Quantity
	}
	return m
}

// StackedQuantity builds the stacked bar chart of quantities by cooking level.
func StackedQuantity(rows []MenuQuantityRow) (*StackedMatrix, *Figure) {
	m := NewStackedMatrix(rows)

	data := make([]Trace, 0, len(m.Levels))
	for li, level := range m.Levels {
		y := make([]float64, len(m.Menus))
		for mi := range m.Menus {
			y[mi] = m.Values[mi][li]
		}
		data = append(data, BarTrace{
			Type:   "bar",
			Name:   level,
			X:      m.Menus,
			Y:      y,
			Marker: BarMarker{Color: LevelColor(level)},
		})
	}

	return m, &Figure{
		Data: data,
		Layout: Layout{
			Title:    Text{Text: "Stacked Bar Chart of Dog Menu Quantities by Cooking Level"},
			XAxis:    &Axis{Title: Text{Text: "Dog Menu Items"}},
			YAxis:    &Axis{Title: Text{Text: "Total Quantity"}},
			Legend:   &Legend{Title: Text{Text: "Cooking Level"}},
			BarMode:  "stack",
			AutoSize: true,
		},
	}
}
