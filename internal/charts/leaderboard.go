// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

import "fmt"

// Leaderboard colours.
const (
	NeutralLeaderboardColor = "rgba(255, 255, 255, 0.8)"
	leaderboardHeaderColor  = "#074d89"
	leaderboardCellColor    = "white"
)

// UserOrdersRow is one user's order count.
type UserOrdersRow struct {
	UserID      string `json:"user_id"`
	TotalOrders int64  `json:"total_orders"`
}

// LeaderboardRow is a ranked, coloured leaderboard entry.
type LeaderboardRow struct {
	Rank        int     `json:"rank"`
	UserID      string  `json:"user_id"`
	TotalOrders int64   `json:"total_orders"`
	Normalized  float64 `json:"normalized"`
	Color       string  `json:"color"`
}

// LeaderboardTable is the ranked leaderboard.
type LeaderboardTable struct {
	Rows []LeaderboardRow `json:"rows"`
	// Uniform is true when every count was equal and the neutral colour was used.
	Uniform bool `json:"uniform"`
}

// GradientColor maps v in [0,1] onto the leaderboard gradient.
func GradientColor(v float64) string {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return fmt.Sprintf("rgba(%d, %d, %d, 0.8)", 255-int(255*v), int(200+55*v), int(255*v))
}

// RankUsers assigns rank 1..N in input order. Rows are expected to arrive
// sorted by count descending with ties already broken by the query.
func RankUsers(rows []UserOrdersRow) *LeaderboardTable {
	t := &LeaderboardTable{Rows: make([]LeaderboardRow, len(rows))}
	if len(rows) == 0 {
		return t
	}

	lo, hi := rows[0].TotalOrders, rows[0].TotalOrders
	for _, r := range rows[1:] {
		lo = min(lo, r.TotalOrders)
		hi = max(hi, r.TotalOrders)
	}
	t.Uniform = hi == lo

	for i, r := range rows {
		row := LeaderboardRow{
			Rank:        i + 1,
			UserID:      r.UserID,
			TotalOrders: r.TotalOrders,
		}
		if t.Uniform {
			row.Color = NeutralLeaderboardColor
		} else {
			row.Normalized = float64(r.TotalOrders-lo) / float64(hi-lo)
			row.Color = GradientColor(row.Normalized)
		}
		t.Rows[i] = row
	}
	return t
}

// Leaderboard builds the top users table.
func Leaderboard(rows []UserOrdersRow) (*LeaderboardTable, *Figure) {
	t := RankUsers(rows)

	n := len(t.Rows)
	ranks := make([]any, n)
	users := make([]any, n)
	totals := make([]any, n)
	gradient := make([]string, n)
	plain := make([]string, n)
	for i, r := range t.Rows {
		ranks[i] = r.Rank
		users[i] = r.UserID
		totals[i] = r.TotalOrders
		gradient[i] = r.Color
		plain[i] = leaderboardCellColor
	}

	return t, &Figure{
		Data: []Trace{TableTrace{
			Type: "table",
			Header: TableHeader{
				Values: []string{"<b>Rank</b>", "<b>UserID</b>", "<b>Total Orders</b>"},
				Fill:   Fill{Color: leaderboardHeaderColor},
				Font:   Font{Color: "white", Size: 14},
				Align:  "center",
			},
			Cells: TableCells{
				Values: [][]any{ranks, users, totals},
				Fill:   Fill{Color: [][]string{plain, plain, gradient}},
				Font:   Font{Size: 12},
				Align:  "center",
			},
		}},
		Layout: Layout{
			Title:    Text{Text: "Leaderboard of Top Users by Total Orders", X: float64Ptr(0.5)},
			AutoSize: true,
		},
	}
}
