// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package query defines the boundary between the dashboard and the analytic
// store. An Executor takes one plain-text SQL statement and returns a
// ResultSet; both the Pinot broker client and the embedded DuckDB store
// implement it. Statements are never parameterised or prepared.
package query
