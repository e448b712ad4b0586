// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with promauto on the default registry:
//   - store query latency and errors per dashboard panel
//   - dashboard renders, panel failures and regions dropped by the map join
//   - HTTP request count, latency and in-flight gauge
//   - circuit breaker state for the Pinot broker client
package metrics
