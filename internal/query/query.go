// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package query

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrQueryFailed is returned when the store rejects or cannot run a statement.
	ErrQueryFailed = errors.New("query failed")

	// ErrUnexpectedColumns is returned when a result set has the wrong shape.
	ErrUnexpectedColumns = errors.New("unexpected result columns")

	// ErrTypeMismatch is returned when a cell cannot be converted to the requested type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Executor runs a single SQL statement against the analytic store.
type Executor interface {
	Query(ctx context.Context, sql string) (*ResultSet, error)
	Ping(ctx context.Context) error
}

// ResultSet is a fully materialised, row-major query result.
type ResultSet struct {
	Columns []string `json:"columns"`
	Types   []string `json:"types,omitempty"`
	Rows    [][]any  `json:"rows"`
}

// Len returns the number of rows.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// RequireColumns checks that the result set has at least n columns.
func (rs *ResultSet) RequireColumns(n int) error {
	if len(rs.Columns) < n {
		return fmt.Errorf("%w: want %d, got %d (%s)", ErrUnexpectedColumns, n, len(rs.Columns), strings.Join(rs.Columns, ", "))
	}
	for i, row := range rs.Rows {
		if len(row) < n {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrUnexpectedColumns, i, len(row), n)
		}
	}
	return nil
}

func (rs *ResultSet) cell(row, col int) (any, error) {
	if row < 0 || row >= len(rs.Rows) {
		return nil, fmt.Errorf("%w: row %d out of range", ErrUnexpectedColumns, row)
	}
	if col < 0 || col >= len(rs.Rows[row]) {
		return nil, fmt.Errorf("%w: column %d out of range in row %d", ErrUnexpectedColumns, col, row)
	}
	return rs.Rows[row][col], nil
}

// String returns the cell as text. Numbers are formatted without exponent.
func (rs *ResultSet) String(row, col int) (string, error) {
	v, err := rs.cell(row, col)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int:
		return strconv.Itoa(t), nil
	case fmt.Stringer:
		return t.String(), nil
	default:
		return "", fmt.Errorf("%w: column %q holds %T, want text", ErrTypeMismatch, rs.column(col), v)
	}
}

// Float64 returns the cell as a float64.
func (rs *ResultSet) Float64(row, col int) (float64, error) {
	v, err := rs.cell(row, col)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case float64:
		return t, nil
	case float32:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case int32:
		return float64(t), nil
	case int:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case uint32:
		return float64(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: column %q: %v", ErrTypeMismatch, rs.column(col), err)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: column %q value %q is not numeric", ErrTypeMismatch, rs.column(col), t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: column %q holds %T, want number", ErrTypeMismatch, rs.column(col), v)
	}
}

// Int64 returns the cell as an int64. Whole-valued floats are accepted since
// JSON decoding and some aggregates yield floating point counts.
func (rs *ResultSet) Int64(row, col int) (int64, error) {
	v, err := rs.cell(row, col)
	if err != nil {
		return 0, err
	}
	switch t := v.(type) {
	case int64:
		return t, nil
	case int32:
		return int64(t), nil
	case int:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("%w: column %q value overflows int64", ErrTypeMismatch, rs.column(col))
		}
		return int64(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
	case string:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return i, nil
		}
	}

	f, err := rs.Float64(row, col)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: column %q value %v is not a whole number", ErrTypeMismatch, rs.column(col), f)
	}
	return int64(f), nil
}

func (rs *ResultSet) column(col int) string {
	if col >= 0 && col < len(rs.Columns) {
		return rs.Columns[col]
	}
	return strconv.Itoa(col)
}
