// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package api

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/orderpulse/internal/dashboard"
	"github.com/tomtom215/orderpulse/internal/geo"
	"github.com/tomtom215/orderpulse/internal/logging"
	"github.com/tomtom215/orderpulse/internal/models"
)

// Dashboard renders the HTML page. Broken panels are drawn in place, so the
// page itself answers 200 unless the template fails.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	page := h.svc.Render(r.Context())

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to render dashboard page")
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write dashboard page")
	}
}

// DashboardJSON returns every panel as JSON, column by column.
func (h *Handler) DashboardJSON(w http.ResponseWriter, r *http.Request) {
	page := h.svc.Render(r.Context())
	respondSuccess(w, r, page, page.DurationMS)
}

// Panels lists the panel ids, titles and SQL.
func (h *Handler) Panels(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, h.svc.PanelInfo(), 0)
}

// Panel renders a single panel by id.
func (h *Handler) Panel(w http.ResponseWriter, r *http.Request) {
	id := dashboard.PanelID(chi.URLParam(r, "id"))

	res, err := h.svc.Panel(r.Context(), id)
	if errors.Is(err, dashboard.ErrUnknownPanel) {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Unknown panel: "+string(id), nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeRenderFailed, "Failed to render panel", err)
		return
	}
	if res.Failed() {
		respondError(w, r, http.StatusBadGateway, models.ErrCodeQueryFailed, res.Error, res.Err)
		return
	}
	respondSuccess(w, r, res, res.DurationMS)
}

// Regions returns the region coordinate table in id order.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ids := h.regions.IDs()
	out := make([]geo.Region, 0, len(ids))
	for _, id := range ids {
		if region, ok := h.regions.Lookup(id); ok {
			out = append(out, region)
		}
	}
	respondSuccess(w, r, out, time.Since(start).Milliseconds())
}
