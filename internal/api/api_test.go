// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/orderpulse/internal/dashboard"
	"github.com/tomtom215/orderpulse/internal/geo"
	"github.com/tomtom215/orderpulse/internal/models"
	"github.com/tomtom215/orderpulse/internal/query"
	"github.com/tomtom215/orderpulse/internal/render"
)

// stubStore answers by matching a substring of the statement.
type stubStore struct {
	results map[string]*query.ResultSet
	failOn  string
	pingErr error
}

func (s *stubStore) Query(_ context.Context, sql string) (*query.ResultSet, error) {
	if s.failOn != "" && strings.Contains(sql, s.failOn) {
		return nil, errors.New("broker unavailable")
	}
	for key, rs := range s.results {
		if strings.Contains(sql, key) {
			return rs, nil
		}
	}
	return &query.ResultSet{}, nil
}

func (s *stubStore) Ping(context.Context) error { return s.pingErr }

func newStubStore() *stubStore {
	return &stubStore{results: map[string]*query.ResultSet{
		"SUM(QUANTITY)": {
			Columns: []string{"DOG_MENU", "COOK_LV", "total_quantity"},
			Rows:    [][]any{{"Hotdog", "Rare", int64(2)}},
		},
		"COUNT(ORDERID)": {
			Columns: []string{"USERID", "total_orders"},
			Rows:    [][]any{{"u1", int64(5)}, {"u2", int64(1)}},
		},
		"pair_count": {
			Columns: []string{"DOG_BREED", "DRINKS_MENU", "pair_count"},
			Rows:    [][]any{{"Beagle", "Cola", int64(3)}},
		},
		"regionid": {
			Columns: []string{"regionid", "total_count"},
			Rows:    [][]any{{"Region_1", int64(8)}},
		},
	}}
}

func newTestServer(t *testing.T, store *stubStore, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()

	regions := geo.Default()
	svc := dashboard.NewService(store, regions, dashboard.Config{
		Title:       "Real-Time Dashboard",
		OrdersTable: "TP3_dogmenu",
		UsersTable:  "TP2_users",
		TopN:        10,
		Backend:     "test",
	})
	renderer, err := render.NewHTMLRenderer("")
	require.NoError(t, err)

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.RateLimitDisabled = true
	}
	return NewRouter(NewHandler(svc, renderer, regions, store, "test"), mw).SetupChi()
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, models.APIResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp models.APIResponse
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestDashboardHTML(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	rec, _ := doGet(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	body := rec.Body.String()
	for _, id := range []string{"heatmap", "leaderboard", "stacked", "map"} {
		assert.Contains(t, body, `id="panel-`+id+`"`)
	}
}

func TestDashboardHTML_BrokenPanelStillServes(t *testing.T) {
	t.Parallel()
	store := newStubStore()
	store.failOn = "regionid"
	h := newTestServer(t, store, nil)

	rec, _ := doGet(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "panel-error")
	assert.Contains(t, rec.Body.String(), "broker unavailable")
}

func TestDashboardJSON(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	rec, resp := doGet(t, h, "/api/v1/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusSuccess, resp.Status)
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.NotEmpty(t, resp.Metadata.RequestID)

	// Figures hold interface-typed traces, so decode only the layout.
	var page struct {
		Title   string `json:"title"`
		Columns [2][]struct {
			ID dashboard.PanelID `json:"id"`
		} `json:"columns"`
	}
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &page))
	assert.Equal(t, "Real-Time Dashboard", page.Title)
	require.Len(t, page.Columns[0], 2)
	require.Len(t, page.Columns[1], 2)
	assert.Equal(t, dashboard.PanelHeatmap, page.Columns[0][0].ID)
	assert.Equal(t, dashboard.PanelLeaderboard, page.Columns[0][1].ID)
	assert.Equal(t, dashboard.PanelStacked, page.Columns[1][0].ID)
	assert.Equal(t, dashboard.PanelMap, page.Columns[1][1].ID)
}

func TestPanels(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	rec, resp := doGet(t, h, "/api/v1/panels")
	require.Equal(t, http.StatusOK, rec.Code)

	list, ok := resp.Data.([]interface{})
	require.True(t, ok, "data should be a list, got %T", resp.Data)
	assert.Len(t, list, 4)
}

func TestPanel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		failOn   string
		path     string
		wantCode int
		wantErr  string
	}{
		{name: "ok", path: "/api/v1/panels/leaderboard", wantCode: http.StatusOK},
		{name: "unknown id", path: "/api/v1/panels/pie", wantCode: http.StatusNotFound, wantErr: models.ErrCodeNotFound},
		{name: "query failure", failOn: "pair_count", path: "/api/v1/panels/heatmap", wantCode: http.StatusBadGateway, wantErr: models.ErrCodeQueryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newStubStore()
			store.failOn = tt.failOn
			h := newTestServer(t, store, nil)

			rec, resp := doGet(t, h, tt.path)
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr == "" {
				assert.Equal(t, models.StatusSuccess, resp.Status)
				assert.Nil(t, resp.Error)
				return
			}
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestRegions(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	rec, resp := doGet(t, h, "/api/v1/regions")
	require.Equal(t, http.StatusOK, rec.Code)

	list, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, list, geo.Default().Len())
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rec, resp := doGet(t, newTestServer(t, newStubStore(), nil), "/api/v1/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusSuccess, resp.Status)

	rec, resp = doGet(t, newTestServer(t, newStubStore(), nil), "/api/v1/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusSuccess, resp.Status)

	down := newStubStore()
	down.pingErr = errors.New("connection refused")
	rec, resp = doGet(t, newTestServer(t, down, nil), "/api/v1/health/ready")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrCodeServiceNotReady, resp.Error.Code)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitRequests = 2
	mw.RateLimitWindow = time.Minute
	h := newTestServer(t, newStubStore(), mw)

	for i := 0; i < 2; i++ {
		rec, _ := doGet(t, h, "/api/v1/panels")
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec, resp := doGet(t, h, "/api/v1/panels")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, models.ErrCodeRateLimited, resp.Error.Code)

	// Health probes use their own, more permissive limiter.
	rec, _ = doGet(t, h, "/api/v1/health/live")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	doGet(t, h, "/api/v1/panels")
	rec, _ := doGet(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "api_requests_total")
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\\x0ab", sanitizeLogValue("a\nb"))
	assert.Equal(t, "plain", sanitizeLogValue("plain"))
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()
	a := generateETag([]byte("one"))
	assert.True(t, strings.HasPrefix(a, `W/"`))
	assert.Equal(t, a, generateETag([]byte("one")))
	assert.NotEqual(t, a, generateETag([]byte("two")))
}

func TestDashboardHTML_CSPAllowsPlotlyGeoFetch(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	rec, _ := doGet(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "scattergeo")

	directives := map[string][]string{}
	for _, d := range strings.Split(rec.Header().Get("Content-Security-Policy"), ";") {
		fields := strings.Fields(d)
		if len(fields) > 0 {
			directives[fields[0]] = fields[1:]
		}
	}
	assert.Contains(t, directives["script-src"], "https://cdn.plot.ly")
	assert.Contains(t, directives["connect-src"], "https://cdn.plot.ly", "scattergeo loads its topojson base map by XHR")
}

func TestETag_StableAcrossResponses(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, newStubStore(), nil)

	first, _ := doGet(t, h, "/api/v1/regions")
	time.Sleep(2 * time.Millisecond)
	second, _ := doGet(t, h, "/api/v1/regions")

	require.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get("ETag"))
	assert.Equal(t, first.Header().Get("ETag"), second.Header().Get("ETag"))
	assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
}
