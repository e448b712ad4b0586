// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package pinot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/orderpulse/internal/config"
	"github.com/tomtom215/orderpulse/internal/query"
)

// maxErrorBody caps how much of a non-200 response body is kept in errors.
const maxErrorBody = 512

var _ query.Executor = (*Client)(nil)

// Client talks to a single Pinot broker.
type Client struct {
	queryURL   string
	healthURL  string
	token      string
	database   string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// BrokerError is one entry of the broker's exceptions list.
type BrokerError struct {
	Code    int    `json:"errorCode"`
	Message string `json:"message"`
}

func (e BrokerError) Error() string {
	return fmt.Sprintf("broker error %d: %s", e.Code, e.Message)
}

type queryRequest struct {
	SQL string `json:"sql"`
}

type brokerResponse struct {
	ResultTable *struct {
		DataSchema struct {
			ColumnNames     []string `json:"columnNames"`
			ColumnDataTypes []string `json:"columnDataTypes"`
		} `json:"dataSchema"`
		Rows [][]any `json:"rows"`
	} `json:"resultTable"`
	Exceptions []BrokerError `json:"exceptions"`
	TimeUsedMs int64         `json:"timeUsedMs"`
}

// NewClient creates a broker client from configuration.
func NewClient(cfg *config.PinotConfig) *Client {
	c := &Client{
		queryURL:  cfg.QueryURL(),
		healthURL: cfg.BaseURL() + "/health",
		token:     cfg.Token,
		database:  cfg.Database,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	if cfg.MaxQPS > 0 {
		burst := int(cfg.MaxQPS)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.MaxQPS), burst)
	}
	return c
}

// Query runs one SQL statement on the broker.
func (c *Client) Query(ctx context.Context, sql string) (*query.ResultSet, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("pinot rate limit: %w", err)
		}
	}

	body, err := json.Marshal(queryRequest{SQL: sql})
	if err != nil {
		return nil, fmt.Errorf("encode pinot request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create pinot request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: pinot request: %w", query.ErrQueryFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: pinot returned status %d: %s",
			query.ErrQueryFailed, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	var br brokerResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&br); err != nil {
		return nil, fmt.Errorf("%w: decode pinot response: %w", query.ErrQueryFailed, err)
	}

	if len(br.Exceptions) > 0 {
		errs := make([]error, len(br.Exceptions))
		for i := range br.Exceptions {
			errs[i] = br.Exceptions[i]
		}
		return nil, fmt.Errorf("%w: %w", query.ErrQueryFailed, errors.Join(errs...))
	}

	if br.ResultTable == nil {
		return &query.ResultSet{Rows: [][]any{}}, nil
	}

	rows := br.ResultTable.Rows
	if rows == nil {
		rows = [][]any{}
	}
	return &query.ResultSet{
		Columns: br.ResultTable.DataSchema.ColumnNames,
		Types:   br.ResultTable.DataSchema.ColumnDataTypes,
		Rows:    rows,
	}, nil
}

// Ping checks the broker health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.healthURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create pinot health request: %w", err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("pinot health request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("pinot health returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.database != "" {
		req.Header.Set("database", c.database)
	}
}
