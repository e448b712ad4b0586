// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

import "github.com/tomtom215/orderpulse/internal/geo"

// Map viewport.
const (
	mapCenterLat       = 13.736717
	mapCenterLon       = 100.523186
	mapProjectionScale = 6.5
	mapMaxMarkerPx     = 20
)

// RegionCountRow is one region's user count.
type RegionCountRow struct {
	RegionID string `json:"region_id"`
	Count    int64  `json:"count"`
}

// RegionPoint is a region count joined to its coordinates.
type RegionPoint struct {
	RegionID  string  `json:"region_id"`
	Province  string  `json:"province"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Count     int64   `json:"count"`
}

// RegionalResult holds the joined points and the rows that had no coordinates.
type RegionalResult struct {
	Points  []RegionPoint    `json:"points"`
	Dropped []RegionCountRow `json:"dropped,omitempty"`
}

// DisplayedTotal sums the counts of the joined points.
func (r *RegionalResult) DisplayedTotal() int64 {
	var total int64
	for _, p := range r.Points {
		total += p.Count
	}
	return total
}

// JoinRegions looks each row up in table. Rows whose id is unknown are
// collected in Dropped instead of failing the join.
func JoinRegions(rows []RegionCountRow, table geo.Lookuper) *RegionalResult {
	res := &RegionalResult{Points: make([]RegionPoint, 0, len(rows))}
	for _, r := range rows {
		region, ok := table.Lookup(r.RegionID)
		if !ok {
			res.Dropped = append(res.Dropped, r)
			continue
		}
		res.Points = append(res.Points, RegionPoint{
			RegionID:  r.RegionID,
			Province:  region.Province,
			Latitude:  region.Latitude,
			Longitude: region.Longitude,
			Count:     r.Count,
		})
	}
	return res
}

// RegionalMap builds the geo scatter of region counts.
func RegionalMap(rows []RegionCountRow, table geo.Lookuper) (*RegionalResult, *Figure) {
	res := JoinRegions(rows, table)

	n := len(res.Points)
	lat := make([]float64, n)
	lon := make([]float64, n)
	text := make([]string, n)
	ids := make([]string, n)
	counts := make([]float64, n)
	var maxCount float64
	for i, p := range res.Points {
		lat[i], lon[i] = p.Latitude, p.Longitude
		text[i], ids[i] = p.Province, p.RegionID
		counts[i] = float64(p.Count)
		maxCount = max(maxCount, counts[i])
	}

	// Area sizing: the largest count maps to a mapMaxMarkerPx diameter.
	sizeRef := 1.0
	if maxCount > 0 {
		sizeRef = 2 * maxCount / (mapMaxMarkerPx * mapMaxMarkerPx)
	}

	return res, &Figure{
		Data: []Trace{ScatterGeoTrace{
			Type:         "scattergeo",
			Mode:         "markers+text",
			Lat:          lat,
			Lon:          lon,
			Text:         text,
			TextPosition: "top center",
			CustomData:   ids,
			HoverTmpl:    "%{text}<br>Region=%{customdata}<br>Count=%{marker.color}<extra></extra>",
			Marker: GeoMarker{
				Size:       counts,
				SizeMode:   "area",
				SizeRef:    sizeRef,
				SizeMin:    0,
				Color:      counts,
				ColorScale: "Plasma",
				ShowScale:  true,
				ColorBar:   ColorBar{Title: Text{Text: "Count"}},
			},
		}},
		Layout: Layout{
			Title: Text{Text: "Thailand Region Counts"},
			Geo: &Geo{
				Visible:        true,
				Resolution:     50,
				ShowCountries:  true,
				CountryColor:   "Black",
				ShowCoastlines: true,
				CoastlineColor: "Gray",
				ShowLand:       true,
				LandColor:      "LightYellow",
				Center:         LatLon{Lat: mapCenterLat, Lon: mapCenterLon},
				Projection:     Projection{Scale: mapProjectionScale},
			},
			AutoSize: true,
		},
	}
}
