// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/orderpulse/internal/config"
	"github.com/tomtom215/orderpulse/internal/query"
)

// testDBSemaphore serializes DuckDB usage across parallel tests; concurrent
// CGO connections have been seen to hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	}
	db, err := New(cfg, "TP3_dogmenu", "TP2_users")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return db
}

func insertOrders(t *testing.T, db *DB, rows [][]any) {
	t.Helper()
	for _, r := range rows {
		if _, err := db.Conn().Exec(
			"INSERT INTO TP3_dogmenu (ORDERID, USERID, DOG_MENU, COOK_LV, DOG_BREED, DRINKS_MENU, QUANTITY) VALUES (?, ?, ?, ?, ?, ?, ?)",
			r...); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
}

func TestDB_QueryAggregates(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	insertOrders(t, db, [][]any{
		{"o1", "u1", "Classic Dog", "Rare", "Beagle", "Cola", int64(2)},
		{"o2", "u1", "Classic Dog", "Rare", "Beagle", "Cola", int64(3)},
		{"o3", "u2", "Chili Dog", "Medium", "Poodle", "Water", int64(1)},
	})

	rs, err := db.Query(context.Background(),
		"SELECT DOG_MENU, COOK_LV, SUM(QUANTITY) AS total_quantity FROM TP3_dogmenu GROUP BY DOG_MENU, COOK_LV ORDER BY total_quantity DESC")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if rs.Len() != 2 {
		t.Fatalf("rows = %d, want 2", rs.Len())
	}
	if rs.Columns[2] != "total_quantity" {
		t.Errorf("column = %q", rs.Columns[2])
	}

	total, err := rs.Int64(0, 2)
	if err != nil {
		t.Fatalf("Int64: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if _, ok := rs.Rows[0][2].(int64); !ok {
		t.Errorf("sum should be normalised to int64, got %T", rs.Rows[0][2])
	}
}

func TestDB_QueryError(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	_, err := db.Query(context.Background(), "SELECT * FROM missing_table")
	if !errors.Is(err, query.ErrQueryFailed) {
		t.Errorf("err = %v, want ErrQueryFailed", err)
	}
}

func TestDB_SeedMockData(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)

	if err := db.SeedMockData(context.Background(), SeedOptions{Orders: 200, Users: 30}); err != nil {
		t.Fatalf("SeedMockData: %v", err)
	}

	rs, err := db.Query(context.Background(), "SELECT COUNT(*) FROM TP3_dogmenu")
	if err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if n, _ := rs.Int64(0, 0); n != 200 {
		t.Errorf("orders = %d, want 200", n)
	}

	rs, err = db.Query(context.Background(), "SELECT COUNT(*) FROM TP2_users WHERE regionid = '"+UnknownRegionID+"'")
	if err != nil {
		t.Fatalf("count unknown region: %v", err)
	}
	if n, _ := rs.Int64(0, 0); n == 0 {
		t.Error("expected at least one user in the unknown region")
	}
}

func TestDB_Ping(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestDB_SingleConnection(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	if got := db.Conn().Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}

	// Back-to-back queries reuse the one connection.
	for i := 0; i < 3; i++ {
		if _, err := db.Query(context.Background(), "SELECT 1"); err != nil {
			t.Fatalf("Query %d: %v", i, err)
		}
	}
	if got := db.Conn().Stats().OpenConnections; got > 1 {
		t.Errorf("OpenConnections = %d, want at most 1", got)
	}
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   any
		want any
	}{
		{[]byte("x"), "x"},
		{int16(4), int64(4)},
		{int64(9), int64(9)},
		{"s", "s"},
	}
	for _, tt := range tests {
		if got := normalizeValue(tt.in); got != tt.want {
			t.Errorf("normalizeValue(%#v) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
