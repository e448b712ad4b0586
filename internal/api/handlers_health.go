// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/orderpulse/internal/models"
)

// HealthLive is the Kubernetes liveness probe. It never touches the store.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]interface{}{
		"status":  "alive",
		"uptime":  time.Since(h.startTime).Seconds(),
		"version": Version,
	}, 0)
}

// HealthReady is the readiness probe. It pings the analytic store and answers
// 503 when the store is unreachable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	health := models.HealthStatus{
		Status:         "healthy",
		Backend:        h.backend,
		StoreConnected: true,
		Uptime:         time.Since(h.startTime).Seconds(),
		Version:        Version,
	}

	if err := h.store.Ping(ctx); err != nil {
		health.Status = "unhealthy"
		health.StoreConnected = false
		health.StoreError = err.Error()
		respondJSON(w, r, http.StatusServiceUnavailable, &models.APIResponse{
			Status: models.StatusError,
			Data:   health,
			Metadata: models.Metadata{
				Timestamp:   time.Now().UTC(),
				QueryTimeMS: time.Since(start).Milliseconds(),
			},
			Error: &models.APIError{
				Code:    models.ErrCodeServiceNotReady,
				Message: "Analytic store unavailable",
			},
		})
		return
	}

	respondSuccess(w, r, health, time.Since(start).Milliseconds())
}
