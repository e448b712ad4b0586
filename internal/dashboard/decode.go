// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package dashboard

import (
	"fmt"

	"github.com/tomtom215/orderpulse/internal/charts"
	"github.com/tomtom215/orderpulse/internal/query"
)

func decodeMenuQuantities(rs *query.ResultSet) ([]charts.MenuQuantityRow, error) {
	if err := rs.RequireColumns(3); err != nil {
		return nil, err
	}
	out := make([]charts.MenuQuantityRow, rs.Len())
	for i := range out {
		menu, err := rs.String(i, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d menu: %w", i, err)
		}
		level, err := rs.String(i, 1)
		if err != nil {
			return nil, fmt.Errorf("row %d cooking level: %w", i, err)
		}
		qty, err := rs.Float64(i, 2)
		if err != nil {
			return nil, fmt.Errorf("row %d quantity: %w", i, err)
		}
		out[i] = charts.MenuQuantityRow{Menu: menu, Level: level, Quantity: qty}
	}
	return out, nil
}

func decodeUserOrders(rs *query.ResultSet) ([]charts.UserOrdersRow, error) {
	if err := rs.RequireColumns(2); err != nil {
		return nil, err
	}
	out := make([]charts.UserOrdersRow, rs.Len())
	for i := range out {
		user, err := rs.String(i, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d user id: %w", i, err)
		}
		n, err := rs.Int64(i, 1)
		if err != nil {
			return nil, fmt.Errorf("row %d total orders: %w", i, err)
		}
		out[i] = charts.UserOrdersRow{UserID: user, TotalOrders: n}
	}
	return out, nil
}

func decodePairCounts(rs *query.ResultSet) ([]charts.PairCountRow, error) {
	if err := rs.RequireColumns(3); err != nil {
		return nil, err
	}
	out := make([]charts.PairCountRow, rs.Len())
	for i := range out {
		breed, err := rs.String(i, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d breed: %w", i, err)
		}
		drink, err := rs.String(i, 1)
		if err != nil {
			return nil, fmt.Errorf("row %d drink: %w", i, err)
		}
		n, err := rs.Int64(i, 2)
		if err != nil {
			return nil, fmt.Errorf("row %d pair count: %w", i, err)
		}
		out[i] = charts.PairCountRow{Breed: breed, Drink: drink, Count: n}
	}
	return out, nil
}

func decodeRegionCounts(rs *query.ResultSet) ([]charts.RegionCountRow, error) {
	if err := rs.RequireColumns(2); err != nil {
		return nil, err
	}
	out := make([]charts.RegionCountRow, rs.Len())
	for i := range out {
		region, err := rs.String(i, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d region id: %w", i, err)
		}
		n, err := rs.Int64(i, 1)
		if err != nil {
			return nil, fmt.Errorf("row %d total count: %w", i, err)
		}
		out[i] = charts.RegionCountRow{RegionID: region, Count: n}
	}
	return out, nil
}
