// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package dashboard wires the fixed panel queries to the chart builders and
arranges the results into the two-column page.

A page render runs the four panels one after another on a single
query.Executor:

	heatmap -> leaderboard -> stacked -> map

Each panel's query error is captured in its PanelResult and never stops the
other panels. There is no retry and no caching: every render re-runs every
query.

Page layout:

	+-------------+-------------+
	| heatmap     | stacked bar |
	+-------------+-------------+
	| leaderboard | region map  |
	+-------------+-------------+
*/
package dashboard
