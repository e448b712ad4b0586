// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/orderpulse/internal/config"
	"github.com/tomtom215/orderpulse/internal/database"
	"github.com/tomtom215/orderpulse/internal/logging"
	"github.com/tomtom215/orderpulse/internal/pinot"
	"github.com/tomtom215/orderpulse/internal/query"
)

// openStore builds the query executor for the configured backend. The
// returned close function is never nil.
func openStore(ctx context.Context, cfg *config.Config) (query.Executor, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendPinot:
		return openPinot(cfg), func() {}, nil
	case config.BackendDuckDB:
		return openDuckDB(ctx, cfg)
	default:
		return nil, func() {}, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func openPinot(cfg *config.Config) query.Executor {
	client := pinot.NewClient(&cfg.Pinot)
	logging.Info().
		Str("broker", cfg.Pinot.QueryURL()).
		Float64("max_qps", cfg.Pinot.MaxQPS).
		Bool("breaker", cfg.Pinot.BreakerEnabled).
		Msg("Using Pinot broker")

	if !cfg.Pinot.BreakerEnabled {
		return client
	}
	return pinot.NewCircuitBreakerClient(client)
}

func openDuckDB(ctx context.Context, cfg *config.Config) (query.Executor, func(), error) {
	db, err := database.New(&cfg.Database, cfg.Dashboard.OrdersTable, cfg.Dashboard.UsersTable)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open duckdb store: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}

	if cfg.Database.SeedMockData {
		if err := db.SeedMockData(ctx, database.SeedOptions{Orders: cfg.Database.SeedOrders}); err != nil {
			closeDB()
			return nil, func() {}, fmt.Errorf("seed mock data: %w", err)
		}
	}

	logging.Info().
		Str("path", cfg.Database.Path).
		Bool("seeded", cfg.Database.SeedMockData).
		Msg("Using embedded DuckDB store")
	return db, closeDB, nil
}
