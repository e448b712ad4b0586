// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package api

import (
	"time"

	"github.com/tomtom215/orderpulse/internal/dashboard"
	"github.com/tomtom215/orderpulse/internal/geo"
	"github.com/tomtom215/orderpulse/internal/query"
	"github.com/tomtom215/orderpulse/internal/render"
)

// Version is reported by the health endpoints. Overridden at build time.
var Version = "dev"

// Handler serves the dashboard page, its JSON API and health probes.
type Handler struct {
	svc       *dashboard.Service
	renderer  render.Renderer
	regions   *geo.Table
	store     query.Executor
	backend   string
	startTime time.Time
}

// NewHandler creates a Handler. store is pinged by the readiness probe and
// may be the same executor the service queries.
func NewHandler(svc *dashboard.Service, renderer render.Renderer, regions *geo.Table, store query.Executor, backend string) *Handler {
	return &Handler{
		svc:       svc,
		renderer:  renderer,
		regions:   regions,
		store:     store,
		backend:   backend,
		startTime: time.Now(),
	}
}
