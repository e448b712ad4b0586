// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package pinot

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/orderpulse/internal/query"
)

type stubExecutor struct {
	calls atomic.Int32
	err   error
}

func (s *stubExecutor) Query(ctx context.Context, sql string) (*query.ResultSet, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &query.ResultSet{Columns: []string{"x"}, Rows: [][]any{{int64(1)}}}, nil
}

func (s *stubExecutor) Ping(ctx context.Context) error { return s.err }

func TestCircuitBreakerClient_PassThrough(t *testing.T) {
	t.Parallel()

	stub := &stubExecutor{}
	cbc := newCircuitBreakerClient(stub, "test-pass", time.Minute)

	rs, err := cbc.Query(context.Background(), "SELECT 1")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if rs.Len() != 1 {
		t.Errorf("rows = %d, want 1", rs.Len())
	}
	if cbc.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", cbc.State())
	}
}

func TestCircuitBreakerClient_OpensAndFailsFast(t *testing.T) {
	t.Parallel()

	stub := &stubExecutor{err: errors.New("connection refused")}
	cbc := newCircuitBreakerClient(stub, "test-open", time.Minute)

	for i := 0; i < 8; i++ {
		if _, err := cbc.Query(context.Background(), "SELECT 1"); err == nil {
			t.Fatal("expected error from failing executor")
		}
	}
	if cbc.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", cbc.State())
	}

	before := stub.calls.Load()
	_, err := cbc.Query(context.Background(), "SELECT 1")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
	if !errors.Is(err, query.ErrQueryFailed) {
		t.Errorf("rejection should wrap ErrQueryFailed: %v", err)
	}
	if stub.calls.Load() != before {
		t.Error("open breaker must not reach the executor")
	}
}

func TestCircuitBreakerClient_CanceledIsNotFailure(t *testing.T) {
	t.Parallel()

	stub := &stubExecutor{err: context.Canceled}
	cbc := newCircuitBreakerClient(stub, "test-cancel", time.Minute)

	for i := 0; i < 10; i++ {
		_, _ = cbc.Query(context.Background(), "SELECT 1")
	}
	if cbc.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", cbc.State())
	}
}

func TestStateHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		str   string
		val   float64
	}{
		{gobreaker.StateClosed, "closed", 0},
		{gobreaker.StateHalfOpen, "half-open", 1},
		{gobreaker.StateOpen, "open", 2},
	}
	for _, tt := range tests {
		if got := stateToString(tt.state); got != tt.str {
			t.Errorf("stateToString(%v) = %q", tt.state, got)
		}
		if got := stateToFloat(tt.state); got != tt.val {
			t.Errorf("stateToFloat(%v) = %v", tt.state, got)
		}
	}
}
