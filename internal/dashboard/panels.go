// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package dashboard

import (
	"context"

	"github.com/tomtom215/orderpulse/internal/charts"
	"github.com/tomtom215/orderpulse/internal/geo"
	"github.com/tomtom215/orderpulse/internal/logging"
	"github.com/tomtom215/orderpulse/internal/metrics"
	"github.com/tomtom215/orderpulse/internal/query"
)

// PanelID identifies a dashboard panel.
type PanelID string

// Panel identifiers, also used in URLs and metric labels.
const (
	PanelStacked     PanelID = "stacked"
	PanelLeaderboard PanelID = "leaderboard"
	PanelHeatmap     PanelID = "heatmap"
	PanelMap         PanelID = "map"
)

// renderOrder is the execution order of a full page render: column one top
// to bottom, then column two.
var renderOrder = []PanelID{PanelHeatmap, PanelLeaderboard, PanelStacked, PanelMap}

// layout maps each column to its panels, top first.
var layout = [2][]PanelID{
	{PanelHeatmap, PanelLeaderboard},
	{PanelStacked, PanelMap},
}

// buildFunc turns a result set into a figure plus the reshaped rows.
type buildFunc func(ctx context.Context, rs *query.ResultSet) (*charts.Figure, any, error)

// Panel is one fixed query and the builder that charts it.
type Panel struct {
	ID    PanelID
	Title string
	SQL   string
	build buildFunc
}

func newPanels(q Queries, table geo.Lookuper) map[PanelID]*Panel {
	return map[PanelID]*Panel{
		PanelStacked: {
			ID:    PanelStacked,
			Title: "Dog Menu Quantities by Cooking Level",
			SQL:   q.Stacked,
			build: func(_ context.Context, rs *query.ResultSet) (*charts.Figure, any, error) {
				rows, err := decodeMenuQuantities(rs)
				if err != nil {
					return nil, nil, err
				}
				m, fig := charts.StackedQuantity(rows)
				return fig, m, nil
			},
		},
		PanelLeaderboard: {
			ID:    PanelLeaderboard,
			Title: "Top Users by Total Orders",
			SQL:   q.Leaderboard,
			build: func(_ context.Context, rs *query.ResultSet) (*charts.Figure, any, error) {
				rows, err := decodeUserOrders(rs)
				if err != nil {
					return nil, nil, err
				}
				t, fig := charts.Leaderboard(rows)
				return fig, t, nil
			},
		},
		PanelHeatmap: {
			ID:    PanelHeatmap,
			Title: "Dog Breed and Drinks Pairings",
			SQL:   q.Heatmap,
			build: func(ctx context.Context, rs *query.ResultSet) (*charts.Figure, any, error) {
				rows, err := decodePairCounts(rs)
				if err != nil {
					return nil, nil, err
				}
				kept, fig := charts.PairingHeatmap(rows)
				if dropped := len(rows) - len(kept); dropped > 0 {
					logging.Ctx(ctx).Debug().Str("panel", string(PanelHeatmap)).Int("dropped", dropped).Msg("Ignored non-positive pair counts")
				}
				return fig, kept, nil
			},
		},
		PanelMap: {
			ID:    PanelMap,
			Title: "Users by Region",
			SQL:   q.Map,
			build: func(ctx context.Context, rs *query.ResultSet) (*charts.Figure, any, error) {
				rows, err := decodeRegionCounts(rs)
				if err != nil {
					return nil, nil, err
				}
				res, fig := charts.RegionalMap(rows, table)
				for _, d := range res.Dropped {
					metrics.RegionsDropped.Inc()
					logging.Ctx(ctx).Warn().
						Str("panel", string(PanelMap)).
						Str("region_id", d.RegionID).
						Int64("count", d.Count).
						Msg("Region has no coordinates, dropped from map")
				}
				return fig, res, nil
			},
		},
	}
}
