// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package pinot is a minimal client for the Apache Pinot broker SQL endpoint.

The broker accepts POST {"sql": "..."} on /query/sql and answers with a
resultTable holding a dataSchema (column names and types) and row-major rows.
Broker-side failures come back with HTTP 200 and a non-empty exceptions list,
so both the HTTP status and the exceptions list are checked.

Client implements query.Executor. CircuitBreakerClient wraps it with
sony/gobreaker so a down broker fails fast instead of stalling every panel.
Neither retries: a failed panel stays failed until the next page load.
*/
package pinot
