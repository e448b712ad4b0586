// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package render draws a dashboard.Page. HTMLRenderer produces a single
// self-contained page: two flex columns, one container per panel, each
// figure handed to Plotly.js with responsive sizing so charts fit their
// column width.
package render
