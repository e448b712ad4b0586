// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/tomtom215/orderpulse/internal/dashboard"
)

// DefaultPlotlyURL is the Plotly.js bundle loaded by the page.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

//go:embed templates/dashboard.html.tmpl
var dashboardTemplate string

// Renderer writes a rendered page to w.
type Renderer interface {
	Render(w io.Writer, page *dashboard.Page) error
}

var _ Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders the dashboard as an HTML document.
type HTMLRenderer struct {
	tmpl      *template.Template
	plotlyURL string
}

type panelView struct {
	ID     string
	Title  string
	Figure string
	Error  string
}

type pageView struct {
	Title      string
	PlotlyURL  string
	Columns    [2][]panelView
	RenderedAt string
	DurationMS int64
}

// NewHTMLRenderer parses the embedded page template. An empty plotlyURL
// selects DefaultPlotlyURL.
func NewHTMLRenderer(plotlyURL string) (*HTMLRenderer, error) {
	if plotlyURL == "" {
		plotlyURL = DefaultPlotlyURL
	}
	tmpl, err := template.New("dashboard").Parse(dashboardTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl, plotlyURL: plotlyURL}, nil
}

// Render writes the page. Output is buffered so a template failure never
// leaves a half-written document.
func (r *HTMLRenderer) Render(w io.Writer, page *dashboard.Page) error {
	view := pageView{
		Title:      page.Title,
		PlotlyURL:  r.plotlyURL,
		RenderedAt: page.RenderedAt.Format("2006-01-02 15:04:05 MST"),
		DurationMS: page.DurationMS,
	}
	for col, panels := range page.Columns {
		view.Columns[col] = make([]panelView, len(panels))
		for i, p := range panels {
			pv := panelView{ID: string(p.ID), Title: p.Title, Error: p.Error}
			if !p.Failed() && p.Figure != nil {
				raw, err := p.Figure.JSON()
				if err != nil {
					pv.Error = fmt.Sprintf("encode figure: %v", err)
				} else {
					pv.Figure = string(raw)
				}
			}
			view.Columns[col][i] = pv
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("execute dashboard template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
