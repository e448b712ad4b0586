// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package middleware provides HTTP middleware for the dashboard server.

All middleware uses the standard func(http.Handler) http.Handler shape so it
composes directly with chi's Use:

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    the chi route pattern rather than the raw path
  - Compression: gzip for clients that accept it
  - SecurityHeaders: static hardening headers for the HTML page and API

Typical stack (see internal/api):

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)
*/
package middleware
