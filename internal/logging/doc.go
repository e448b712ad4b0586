// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package logging provides the zerolog-based structured logger shared by every
// OrderPulse component.
//
// The package keeps a single global logger that is safe to use before Init is
// called (it starts with JSON output at info level) and is reconfigured once the
// application configuration has been loaded:
//
//	logging.Init(logging.Config{
//	    Level:  cfg.Logging.Level,
//	    Format: cfg.Logging.Format,
//	    Caller: cfg.Logging.Caller,
//	})
//
//	logging.Info().Str("panel", "leaderboard").Msg("Panel rendered")
//	logging.Ctx(ctx).Warn().Str("region_id", id).Msg("Unknown region dropped")
//
// # Configuration
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Request Context
//
// HTTP middleware stores a request ID and a short correlation ID in the request
// context. Ctx(ctx) returns a logger that carries both fields so every log line
// emitted while rendering a dashboard can be tied back to the request.
//
// # slog Bridge
//
// NewSlogLogger returns a *slog.Logger backed by zerolog. The supervisor tree
// uses it through sutureslog so service restarts are logged in the same format.
package logging
