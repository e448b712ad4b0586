// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairingHeatmap_FiltersNonPositive(t *testing.T) {
	rows := []PairCountRow{
		{Breed: "Beagle", Drink: "Cola", Count: 9},
		{Breed: "Poodle", Drink: "Water", Count: 0},
		{Breed: "Corgi", Drink: "Thai Tea", Count: 4},
		{Breed: "Husky", Drink: "Cola", Count: -2},
	}

	kept, fig := PairingHeatmap(rows)

	require.Len(t, kept, 2)
	for _, r := range kept {
		assert.Positive(t, r.Count)
	}

	tr := fig.Data[0].(Histogram2DTrace)
	assert.Equal(t, "histogram2d", tr.Type)
	assert.Equal(t, "sum", tr.HistFunc)
	assert.Equal(t, []string{"Beagle", "Corgi"}, tr.X)
	assert.Equal(t, []string{"Cola", "Thai Tea"}, tr.Y)
	assert.Equal(t, []float64{9, 4}, tr.Z)
	for _, z := range tr.Z {
		assert.Greater(t, z, 0.0)
	}
	assert.Equal(t, "Pair Count", tr.ColorBar.Title.Text)
	assert.Equal(t, "Dog Breed", fig.Layout.XAxis.Title.Text)
	assert.Equal(t, "Drinks Menu", fig.Layout.YAxis.Title.Text)
}

func TestPairingHeatmap_ColorScale(t *testing.T) {
	_, fig := PairingHeatmap(nil)
	tr := fig.Data[0].(Histogram2DTrace)

	require.Len(t, tr.ColorScale, 9)
	assert.Equal(t, ColorStop{0, "rgb(64, 0, 75)"}, tr.ColorScale[0])
	assert.Equal(t, ColorStop{0.5, "rgb(247, 247, 247)"}, tr.ColorScale[5])
	assert.Equal(t, ColorStop{1, "rgb(215, 48, 39)"}, tr.ColorScale[8])

	raw, err := json.Marshal(tr.ColorScale[:1])
	require.NoError(t, err)
	assert.JSONEq(t, `[[0, "rgb(64, 0, 75)"]]`, string(raw))
}
