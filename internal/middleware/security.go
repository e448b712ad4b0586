// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package middleware

import "net/http"

// PlotlyOrigin serves Plotly.js and the topojson base maps scattergeo
// fetches at runtime.
const PlotlyOrigin = "https://cdn.plot.ly"

// SecurityHeaders sets static hardening headers. script-src and connect-src
// both allow PlotlyOrigin.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self' 'unsafe-inline' "+PlotlyOrigin+"; "+
				"style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self' "+PlotlyOrigin)
		next.ServeHTTP(w, r)
	})
}
