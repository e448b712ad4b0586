// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package services

import (
	"context"
	"time"

	"github.com/tomtom215/orderpulse/internal/logging"
	"github.com/tomtom215/orderpulse/internal/metrics"
)

// Pinger is satisfied by every query.Executor.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StoreMonitorService periodically checks store reachability.
type StoreMonitorService struct {
	store    Pinger
	backend  string
	interval time.Duration
	timeout  time.Duration
	name     string

	// up is nil until the first check.
	up *bool
}

// NewStoreMonitorService creates a monitor. Non-positive intervals mean 30s.
func NewStoreMonitorService(store Pinger, backend string, interval time.Duration) *StoreMonitorService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	timeout := 5 * time.Second
	if interval < timeout {
		timeout = interval
	}
	return &StoreMonitorService{
		store:    store,
		backend:  backend,
		interval: interval,
		timeout:  timeout,
		name:     "store-monitor",
	}
}

// Serve implements suture.Service. It checks once immediately, then on every
// tick until ctx is canceled.
func (s *StoreMonitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

func (s *StoreMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}
	up := err == nil

	gauge := 0.0
	if up {
		gauge = 1.0
	}
	metrics.StoreUp.WithLabelValues(s.backend).Set(gauge)

	if s.up != nil && *s.up == up {
		return
	}
	s.up = &up

	log := logging.With().Str("service", s.name).Str("backend", s.backend).Logger()
	if up {
		log.Info().Msg("Analytic store reachable")
	} else {
		log.Warn().Err(err).Msg("Analytic store unreachable")
	}
}

// String names the service in supervisor logs.
func (s *StoreMonitorService) String() string {
	return s.name
}
