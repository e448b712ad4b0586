// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package main is the entry point for the OrderPulse dashboard server.
//
// OrderPulse serves a single read-only page of four charts computed from
// fixed SQL statements against an analytic store: a stacked bar of quantity
// by menu and cooking level, a top-user leaderboard, a breed and drink
// pairing heatmap and a regional user map.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Store: Pinot broker client (rate limited, circuit breaker) or an
//     embedded DuckDB store, optionally seeded with mock orders
//  4. Region table: built-in coordinates or REGIONS_FILE
//  5. Dashboard service and HTML renderer
//  6. Supervisor tree: store monitor and HTTP server
//
// # Configuration
//
// Common environment variables:
//   - STORE_BACKEND: pinot or duckdb (default: pinot)
//   - PINOT_HOST, PINOT_PORT, PINOT_TOKEN: broker connection
//   - SEED_MOCK_DATA: fill the DuckDB store with demo orders
//   - HTTP_PORT: listen port (default: 8501)
//   - LOG_LEVEL, LOG_FORMAT: logging
//
// # Example Usage
//
// Against a Pinot broker:
//
//	export PINOT_HOST=47.129.174.92
//	export PINOT_PORT=8099
//	./orderpulse
//
// Demo mode without Pinot:
//
//	export STORE_BACKEND=duckdb
//	export SEED_MOCK_DATA=true
//	./orderpulse
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
// in-flight renders for SHUTDOWN_TIMEOUT, then the store is closed.
package main
