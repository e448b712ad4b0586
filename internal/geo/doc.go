// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package geo holds the static region coordinate table used by the map
// panel. A Table is built once at startup and never mutated, so it can be
// shared by concurrent page renders without locking.
package geo
