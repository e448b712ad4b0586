// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package pinot

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/orderpulse/internal/config"
	"github.com/tomtom215/orderpulse/internal/query"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*config.PinotConfig)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		t.Fatalf("split host: %v", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := &config.PinotConfig{
		Scheme:  "http",
		Host:    host,
		Port:    port,
		Path:    "/query/sql",
		Timeout: 5 * time.Second,
	}
	for _, m := range mutate {
		m(cfg)
	}
	return NewClient(cfg)
}

func TestClient_Query(t *testing.T) {
	t.Parallel()

	var gotSQL, gotAuth, gotDB string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/query/sql" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		gotSQL = req.SQL
		gotAuth = r.Header.Get("Authorization")
		gotDB = r.Header.Get("database")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"resultTable": {
				"dataSchema": {
					"columnNames": ["DOG_MENU", "COOK_LV", "total_quantity"],
					"columnDataTypes": ["STRING", "STRING", "LONG"]
				},
				"rows": [["Classic", "Rare", 42], ["Chili", "Well-done", 7]]
			},
			"exceptions": [],
			"timeUsedMs": 3
		}`)
	}, func(c *config.PinotConfig) {
		c.Token = "secret"
		c.Database = "orders"
	})

	rs, err := client.Query(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if gotSQL != "SELECT 1" {
		t.Errorf("sql = %q", gotSQL)
	}
	if gotAuth != "Bearer secret" || gotDB != "orders" {
		t.Errorf("headers: auth=%q database=%q", gotAuth, gotDB)
	}
	if rs.Len() != 2 || len(rs.Columns) != 3 {
		t.Fatalf("shape: %d rows, %d columns", rs.Len(), len(rs.Columns))
	}
	if n, err := rs.Int64(0, 2); err != nil || n != 42 {
		t.Errorf("Int64(0,2) = %d, %v", n, err)
	}
	if s, err := rs.String(1, 1); err != nil || s != "Well-done" {
		t.Errorf("String(1,1) = %q, %v", s, err)
	}
}

func TestClient_QueryExceptions(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"exceptions":[{"errorCode":150,"message":"SQLParsingError"}]}`)
	})

	_, err := client.Query(context.Background(), "SELEC")
	if !errors.Is(err, query.ErrQueryFailed) {
		t.Fatalf("err = %v, want ErrQueryFailed", err)
	}
	var be BrokerError
	if !errors.As(err, &be) || be.Code != 150 {
		t.Errorf("expected BrokerError 150, got %v", err)
	}
}

func TestClient_QueryHTTPError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "broker overloaded", http.StatusServiceUnavailable)
	})

	_, err := client.Query(context.Background(), "SELECT 1")
	if !errors.Is(err, query.ErrQueryFailed) {
		t.Fatalf("err = %v, want ErrQueryFailed", err)
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "broker overloaded") {
		t.Errorf("error should carry status and body: %v", err)
	}
}

func TestClient_QueryEmptyResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"resultTable":{"dataSchema":{"columnNames":["regionid","total_count"],"columnDataTypes":["STRING","LONG"]},"rows":[]},"exceptions":[]}`)
	})

	rs, err := client.Query(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if rs.Len() != 0 {
		t.Errorf("rows = %d, want 0", rs.Len())
	}
}

func TestClient_Ping(t *testing.T) {
	t.Parallel()

	healthy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "OK")
	})
	if err := healthy.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}

	unhealthy := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if err := unhealthy.Ping(context.Background()); err == nil {
		t.Error("expected Ping error")
	}
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"resultTable":{"dataSchema":{"columnNames":[],"columnDataTypes":[]},"rows":[]}}`)
	}, func(c *config.PinotConfig) {
		c.MaxQPS = 0.001
	})

	if _, err := client.Query(context.Background(), "SELECT 1"); err != nil {
		t.Fatalf("first query should use the burst token: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := client.Query(ctx, "SELECT 1"); err == nil {
		t.Error("expected rate limit error once the burst is spent")
	}
}
