// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

/*
Package charts turns typed query rows into chart descriptions.

Every builder is a pure function: rows in, a reshaped intermediate value plus
a Figure out. Builders never touch the store or the renderer, so they are
tested with literal fixtures.

A Figure is a Plotly-compatible value. Marshalled to JSON it is exactly the
{data, layout} pair Plotly.newPlot accepts, which lets the HTML renderer hand
it to the browser without any further translation.

Builders:

  - StackedQuantity: menu x cooking-level matrix, one stacked bar series per level
  - Leaderboard: ranked table with a min-max colour gradient on order counts
  - PairingHeatmap: breed x drink density heatmap
  - RegionalMap: region counts joined to coordinates on a geo scatter map

Failure policy is local to each builder. Unknown cooking levels get the
fallback colour, equal leaderboard counts get the neutral colour, non-positive
pair counts are filtered, and unknown region ids are dropped and reported back
to the caller.
*/
package charts
