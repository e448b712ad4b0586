// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboard_TiesKeepInputOrder(t *testing.T) {
	rows := []UserOrdersRow{
		{UserID: "u1", TotalOrders: 5},
		{UserID: "u2", TotalOrders: 5},
		{UserID: "u3", TotalOrders: 1},
	}

	table, fig := Leaderboard(rows)

	require.Len(t, table.Rows, 3)
	var ranks []int
	var totals []int64
	var users []string
	for _, r := range table.Rows {
		ranks = append(ranks, r.Rank)
		totals = append(totals, r.TotalOrders)
		users = append(users, r.UserID)
	}
	assert.Equal(t, []int{1, 2, 3}, ranks)
	assert.Equal(t, []int64{5, 5, 1}, totals)
	assert.Equal(t, []string{"u1", "u2", "u3"}, users)

	assert.False(t, table.Uniform)
	assert.Equal(t, "rgba(0, 255, 255, 0.8)", table.Rows[0].Color)
	assert.Equal(t, "rgba(255, 200, 0, 0.8)", table.Rows[2].Color)

	tr := fig.Data[0].(TableTrace)
	assert.Equal(t, "table", tr.Type)
	assert.Equal(t, "#074d89", tr.Header.Fill.Color)
	assert.Equal(t, []any{1, 2, 3}, tr.Cells.Values[0])
	fills := tr.Cells.Fill.Color.([][]string)
	require.Len(t, fills, 3)
	assert.Equal(t, []string{"white", "white", "white"}, fills[0])
	assert.Equal(t, []string{"rgba(0, 255, 255, 0.8)", "rgba(0, 255, 255, 0.8)", "rgba(255, 200, 0, 0.8)"}, fills[2])
	require.NotNil(t, fig.Layout.Title.X)
	assert.Equal(t, 0.5, *fig.Layout.Title.X)
}

func TestLeaderboard_RankProperties(t *testing.T) {
	rows := []UserOrdersRow{
		{UserID: "a", TotalOrders: 40},
		{UserID: "b", TotalOrders: 33},
		{UserID: "c", TotalOrders: 33},
		{UserID: "d", TotalOrders: 20},
		{UserID: "e", TotalOrders: 7},
	}

	table := RankUsers(rows)

	require.Len(t, table.Rows, len(rows))
	for i, r := range table.Rows {
		assert.Equal(t, i+1, r.Rank)
		assert.GreaterOrEqual(t, r.Normalized, 0.0)
		assert.LessOrEqual(t, r.Normalized, 1.0)
		if i > 0 {
			assert.LessOrEqual(t, r.TotalOrders, table.Rows[i-1].TotalOrders)
		}
	}
	assert.Equal(t, 1.0, table.Rows[0].Normalized)
	assert.Equal(t, 0.0, table.Rows[4].Normalized)
}

func TestLeaderboard_AllEqualUsesNeutral(t *testing.T) {
	for _, n := range []int{1, 2, 10} {
		rows := make([]UserOrdersRow, n)
		for i := range rows {
			rows[i] = UserOrdersRow{UserID: string(rune('a' + i)), TotalOrders: 3}
		}

		table, _ := Leaderboard(rows)

		assert.True(t, table.Uniform, "n=%d", n)
		for _, r := range table.Rows {
			assert.Equal(t, NeutralLeaderboardColor, r.Color, "n=%d", n)
			assert.Equal(t, 0.0, r.Normalized)
		}
	}
}

func TestLeaderboard_Empty(t *testing.T) {
	table, fig := Leaderboard(nil)
	assert.Empty(t, table.Rows)
	require.Len(t, fig.Data, 1)
	assert.Len(t, fig.Data[0].(TableTrace).Cells.Values[0], 0)
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "rgba(255, 200, 0, 0.8)"},
		{1, "rgba(0, 255, 255, 0.8)"},
		{0.5, "rgba(128, 227, 127, 0.8)"},
		{-1, "rgba(255, 200, 0, 0.8)"},
		{2, "rgba(0, 255, 255, 0.8)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradientColor(tt.v), "v=%v", tt.v)
	}
}
