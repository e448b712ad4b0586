// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package api provides the HTTP surface of the dashboard using the Chi router.

Routes:

	GET /                       HTML dashboard (all four panels)
	GET /api/v1/dashboard       all panels as JSON, laid out in columns
	GET /api/v1/panels          panel ids, titles and SQL
	GET /api/v1/panels/{id}     one panel (404 unknown id, 502 failed query)
	GET /api/v1/regions         region coordinate table
	GET /api/v1/health/live     liveness probe
	GET /api/v1/health/ready    readiness probe (pings the store)
	GET /metrics                Prometheus metrics

Every JSON endpoint answers with models.APIResponse. Dashboard data is
recomputed on each request and is served with Cache-Control: no-store.
*/
package api
