// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// API error codes.
const (
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeQueryFailed     = "QUERY_FAILED"
	ErrCodeRenderFailed    = "RENDER_FAILED"
	ErrCodeServiceNotReady = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited     = "RATE_LIMITED"
)

// APIResponse is the envelope every JSON endpoint returns.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"id": "leaderboard", "figure": {...}},
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z", "query_time_ms": 45}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "QUERY_FAILED", "message": "leaderboard panel: ..."},
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable code plus a human-readable message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the readiness probe.
type HealthStatus struct {
	Status         string  `json:"status"`
	Backend        string  `json:"backend"`
	StoreConnected bool    `json:"store_connected"`
	StoreError     string  `json:"store_error,omitempty"`
	Uptime         float64 `json:"uptime_seconds"`
	Version        string  `json:"version"`
}

// PanelInfo describes a panel and the statement behind it.
type PanelInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	SQL   string `json:"sql"`
}
