// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/orderpulse/internal/geo"
)

func TestRegionalMap_JoinsAndDrops(t *testing.T) {
	table := geo.Default()
	rows := []RegionCountRow{
		{RegionID: "Region_1", Count: 12},
		{RegionID: "Region_99", Count: 5},
		{RegionID: "Region_3", Count: 4},
	}

	res, fig := RegionalMap(rows, table)

	require.Len(t, res.Points, 2)
	for _, p := range res.Points {
		want, ok := table.Lookup(p.RegionID)
		require.True(t, ok)
		assert.Equal(t, want.Province, p.Province)
		assert.Equal(t, want.Latitude, p.Latitude)
		assert.Equal(t, want.Longitude, p.Longitude)
	}
	assert.Equal(t, []RegionCountRow{{RegionID: "Region_99", Count: 5}}, res.Dropped)
	assert.Equal(t, int64(16), res.DisplayedTotal())

	tr := fig.Data[0].(ScatterGeoTrace)
	assert.Equal(t, "scattergeo", tr.Type)
	assert.Equal(t, []string{"Bangkok", "Phuket"}, tr.Text)
	assert.Equal(t, []float64{13.7563, 7.8804}, tr.Lat)
	assert.Equal(t, []float64{12, 4}, tr.Marker.Size)
	assert.Equal(t, tr.Marker.Size, tr.Marker.Color)
	assert.Equal(t, "area", tr.Marker.SizeMode)
	assert.InDelta(t, 2*12.0/400, tr.Marker.SizeRef, 1e-12)

	g := fig.Layout.Geo
	require.NotNil(t, g)
	assert.Equal(t, LatLon{Lat: 13.736717, Lon: 100.523186}, g.Center)
	assert.Equal(t, 6.5, g.Projection.Scale)
	assert.Equal(t, "Black", g.CountryColor)
	assert.Equal(t, "Gray", g.CoastlineColor)
	assert.Equal(t, "LightYellow", g.LandColor)
	assert.Equal(t, 50, g.Resolution)
}

func TestRegionalMap_AllUnknown(t *testing.T) {
	res, fig := RegionalMap([]RegionCountRow{{RegionID: "nowhere", Count: 3}}, geo.Default())

	assert.Empty(t, res.Points)
	assert.Len(t, res.Dropped, 1)
	assert.Zero(t, res.DisplayedTotal())

	tr := fig.Data[0].(ScatterGeoTrace)
	assert.Empty(t, tr.Lat)
	assert.Equal(t, 1.0, tr.Marker.SizeRef)
}

func TestFigureJSON(t *testing.T) {
	_, fig := RegionalMap([]RegionCountRow{{RegionID: "Region_2", Count: 1}}, geo.Default())

	raw, err := fig.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"scattergeo"`)
	assert.Contains(t, string(raw), `"projection":{"scale":6.5}`)
	assert.Contains(t, string(raw), `"Chiang Mai"`)
}
