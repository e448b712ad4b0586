// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package database provides the embedded DuckDB analytic store.

The store mirrors the two Pinot tables the dashboard reads (the orders table,
default TP3_dogmenu, and the users table, default TP2_users) so the dashboard
can run without a Pinot cluster. DB implements query.Executor; the only
writes are the schema creation and optional mock-data seeding at startup.

Result values are normalised before they leave the package: HUGEINT sums come
back from the driver as *big.Int and DECIMAL values as duckdb.Decimal, and
both are converted to plain int64/float64 so chart builders see the same value
shapes as with the Pinot client.
*/
package database
