// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

// PairCountRow is one (breed, drink) pairing count.
type PairCountRow struct {
	Breed string `json:"breed"`
	Drink string `json:"drink"`
	Count int64  `json:"count"`
}

// PairingColorScale runs purple through white to red.
var PairingColorScale = []ColorStop{
	{0.0, "rgb(64, 0, 75)"},
	{0.1, "rgb(118, 42, 131)"},
	{0.2, "rgb(153, 112, 171)"},
	{0.3, "rgb(194, 165, 207)"},
	{0.4, "rgb(231, 212, 232)"},
	{0.5, "rgb(247, 247, 247)"},
	{0.7, "rgb(254, 224, 144)"},
	{0.9, "rgb(253, 174, 97)"},
	{1.0, "rgb(215, 48, 39)"},
}

// PositivePairs returns the rows with a count above zero, order preserved.
func PositivePairs(rows []PairCountRow) []PairCountRow {
	out := make([]PairCountRow, 0, len(rows))
	for _, r := range rows {
		if r.Count > 0 {
			out = append(out, r)
		}
	}
	return out
}

// PairingHeatmap builds the breed x drink density heatmap.
func PairingHeatmap(rows []PairCountRow) ([]PairCountRow, *Figure) {
	kept := PositivePairs(rows)

	x := make([]string, len(kept))
	y := make([]string, len(kept))
	z := make([]float64, len(kept))
	for i, r := range kept {
		x[i], y[i], z[i] = r.Breed, r.Drink, float64(r.Count)
	}

	scale := make([]ColorStop, len(PairingColorScale))
	copy(scale, PairingColorScale)

	return kept, &Figure{
		Data: []Trace{Histogram2DTrace{
			Type:       "histogram2d",
			X:          x,
			Y:          y,
			Z:          z,
			HistFunc:   "sum",
			ColorScale: scale,
			ColorBar:   ColorBar{Title: Text{Text: "Pair Count"}},
			HoverTmpl:  "Dog Breed=%{x}<br>Drinks Menu=%{y}<br>Pair Count=%{z}<extra></extra>",
		}},
		Layout: Layout{
			Title:    Text{Text: "Heatmap of Pairing Count Between Dog Breed and Drinks Menu"},
			XAxis:    &Axis{Title: Text{Text: "Dog Breed"}},
			YAxis:    &Axis{Title: Text{Text: "Drinks Menu"}},
			AutoSize: true,
		},
	}
}
