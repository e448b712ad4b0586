// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package database

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/tomtom215/orderpulse/internal/logging"
)

// Mock catalogue used by SeedMockData.
var (
	mockMenus     = []string{"Classic Dog", "Chili Dog", "Cheese Dog", "Chicago Dog", "Corn Dog", "Sonoran Dog"}
	mockCookLevel = []string{"Rare", "Medium", "Well-done"}
	mockBreeds    = []string{"Beagle", "Poodle", "Shiba Inu", "Golden Retriever", "Bulldog", "Corgi", "Husky"}
	mockDrinks    = []string{"Thai Tea", "Cola", "Lemonade", "Iced Coffee", "Green Tea", "Water"}
	mockGenders   = []string{"MALE", "FEMALE", "OTHER"}
)

// UnknownRegionID is seeded for a handful of users so the map panel's
// drop-and-warn path is exercised in demo mode.
const UnknownRegionID = "Region_99"

// SeedOptions controls mock data generation.
type SeedOptions struct {
	Orders int
	Users  int
	// Seed makes the data reproducible; 0 picks a fixed default.
	Seed uint64
}

// SeedMockData fills the orders and users tables with generated rows.
// Existing rows are kept, so seeding twice doubles the data.
func (db *DB) SeedMockData(ctx context.Context, opts SeedOptions) error {
	if opts.Orders <= 0 {
		return nil
	}
	if opts.Users <= 0 {
		opts.Users = 40
	}
	if opts.Seed == 0 {
		opts.Seed = 20260101
	}

	logging.Info().Int("orders", opts.Orders).Int("users", opts.Users).Msg("Seeding DuckDB store with mock data")

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback() // best-effort on error path
		}
	}()

	userStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (userid, regionid, gender, registertime) VALUES (?, ?, ?, ?)", db.usersTable))
	if err != nil {
		return fmt.Errorf("prepare user insert: %w", err)
	}
	defer closeWithLog(userStmt, "user insert statement")

	users := make([]string, opts.Users)
	for i := range users {
		users[i] = fmt.Sprintf("User_%d", i+1)
		region := fmt.Sprintf("Region_%d", rng.IntN(10)+1)
		if i%15 == 14 {
			region = UnknownRegionID
		}
		registered := int64(1_700_000_000_000) + rng.Int64N(30*24*3600*1000)
		if _, err := userStmt.ExecContext(ctx, users[i], region, mockGenders[rng.IntN(len(mockGenders))], registered); err != nil {
			return fmt.Errorf("insert user %s: %w", users[i], err)
		}
	}

	orderStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (ORDERID, USERID, DOG_MENU, COOK_LV, DOG_BREED, DRINKS_MENU, QUANTITY) VALUES (?, ?, ?, ?, ?, ?, ?)",
		db.ordersTable))
	if err != nil {
		return fmt.Errorf("prepare order insert: %w", err)
	}
	defer closeWithLog(orderStmt, "order insert statement")

	for i := 0; i < opts.Orders; i++ {
		// Skew user choice so the leaderboard has a visible spread.
		user := users[min(rng.IntN(len(users)), rng.IntN(len(users)))]
		if _, err := orderStmt.ExecContext(ctx,
			uuid.New().String(),
			user,
			mockMenus[rng.IntN(len(mockMenus))],
			mockCookLevel[rng.IntN(len(mockCookLevel))],
			mockBreeds[rng.IntN(len(mockBreeds))],
			mockDrinks[rng.IntN(len(mockDrinks))],
			int64(rng.IntN(5)+1),
		); err != nil {
			return fmt.Errorf("insert order %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	committed = true

	logging.Info().Msg("Mock data seeded")
	return nil
}
