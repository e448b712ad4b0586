// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/orderpulse/internal/charts"
	"github.com/tomtom215/orderpulse/internal/geo"
	"github.com/tomtom215/orderpulse/internal/logging"
	"github.com/tomtom215/orderpulse/internal/metrics"
	"github.com/tomtom215/orderpulse/internal/models"
	"github.com/tomtom215/orderpulse/internal/query"
)

// ErrUnknownPanel is returned by Service.Panel for ids outside the fixed set.
var ErrUnknownPanel = errors.New("unknown panel")

// Config holds the dashboard settings.
type Config struct {
	Title       string
	OrdersTable string
	UsersTable  string
	TopN        int
	// Backend labels query metrics ("pinot" or "duckdb").
	Backend string
}

// PanelResult is the outcome of rendering one panel. Exactly one of Figure
// and Err is set.
type PanelResult struct {
	ID         PanelID        `json:"id"`
	Title      string         `json:"title"`
	Figure     *charts.Figure `json:"figure,omitempty"`
	Details    any            `json:"details,omitempty"`
	Error      string         `json:"error,omitempty"`
	Rows       int            `json:"rows"`
	DurationMS int64          `json:"duration_ms"`
	Err        error          `json:"-"`
}

// Failed reports whether the panel is broken.
func (p PanelResult) Failed() bool { return p.Err != nil }

// Page is a full dashboard render.
type Page struct {
	Title      string           `json:"title"`
	Columns    [2][]PanelResult `json:"columns"`
	RenderedAt time.Time        `json:"rendered_at"`
	DurationMS int64            `json:"duration_ms"`
}

// Panels returns every panel in render order.
func (p *Page) Panels() []PanelResult {
	out := make([]PanelResult, 0, len(p.Columns[0])+len(p.Columns[1]))
	out = append(out, p.Columns[0]...)
	out = append(out, p.Columns[1]...)
	return out
}

// Failures counts broken panels.
func (p *Page) Failures() int {
	n := 0
	for _, r := range p.Panels() {
		if r.Failed() {
			n++
		}
	}
	return n
}

// Service renders the dashboard against a single executor.
type Service struct {
	exec    query.Executor
	cfg     Config
	panels  map[PanelID]*Panel
	queries Queries
}

// NewService creates a dashboard service.
func NewService(exec query.Executor, table geo.Lookuper, cfg Config) *Service {
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
	q := BuildQueries(cfg.OrdersTable, cfg.UsersTable, cfg.TopN)
	return &Service{
		exec:    exec,
		cfg:     cfg,
		panels:  newPanels(q, table),
		queries: q,
	}
}

// Title returns the page title.
func (s *Service) Title() string { return s.cfg.Title }

// Queries returns the SQL the panels run.
func (s *Service) Queries() Queries { return s.queries }

// PanelIDs returns the panel ids in render order.
func (s *Service) PanelIDs() []PanelID {
	out := make([]PanelID, len(renderOrder))
	copy(out, renderOrder)
	return out
}

// PanelInfo returns id, title and SQL for each panel in render order.
func (s *Service) PanelInfo() []models.PanelInfo {
	out := make([]models.PanelInfo, 0, len(renderOrder))
	for _, id := range renderOrder {
		p := s.panels[id]
		out = append(out, models.PanelInfo{ID: string(p.ID), Title: p.Title, SQL: p.SQL})
	}
	return out
}

// Render runs every panel sequentially and lays out the results.
func (s *Service) Render(ctx context.Context) *Page {
	start := time.Now()
	results := make(map[PanelID]PanelResult, len(renderOrder))
	for _, id := range renderOrder {
		results[id] = s.renderPanel(ctx, s.panels[id])
	}

	page := &Page{Title: s.cfg.Title, RenderedAt: start.UTC()}
	for col, ids := range layout {
		page.Columns[col] = make([]PanelResult, len(ids))
		for i, id := range ids {
			page.Columns[col][i] = results[id]
		}
	}

	elapsed := time.Since(start)
	page.DurationMS = elapsed.Milliseconds()
	metrics.DashboardRenders.Inc()
	metrics.DashboardRenderDuration.Observe(elapsed.Seconds())

	logging.Ctx(ctx).Info().
		Int("failed_panels", page.Failures()).
		Dur("duration", elapsed).
		Msg("Dashboard rendered")

	return page
}

// Panel renders a single panel.
func (s *Service) Panel(ctx context.Context, id PanelID) (PanelResult, error) {
	p, ok := s.panels[id]
	if !ok {
		return PanelResult{}, fmt.Errorf("%w: %q", ErrUnknownPanel, id)
	}
	return s.renderPanel(ctx, p), nil
}

func (s *Service) renderPanel(ctx context.Context, p *Panel) PanelResult {
	log := logging.Ctx(ctx).With().Str("panel", string(p.ID)).Logger()
	res := PanelResult{ID: p.ID, Title: p.Title}

	start := time.Now()
	rs, err := s.exec.Query(ctx, p.SQL)
	elapsed := time.Since(start)
	res.DurationMS = elapsed.Milliseconds()
	metrics.RecordQuery(s.cfg.Backend, string(p.ID), elapsed, rs.Len(), err)

	if err == nil {
		res.Rows = rs.Len()
		res.Figure, res.Details, err = p.build(ctx, rs)
	}
	if err != nil {
		res.Err = fmt.Errorf("%s panel: %w", p.ID, err)
		res.Error = res.Err.Error()
		res.Figure, res.Details = nil, nil
		metrics.PanelFailures.WithLabelValues(string(p.ID)).Inc()
		log.Error().Err(err).Dur("duration", elapsed).Msg("Panel failed")
		return res
	}

	log.Debug().Int("rows", res.Rows).Dur("duration", elapsed).Msg("Panel rendered")
	return res
}
