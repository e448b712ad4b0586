// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Store backends.
const (
	BackendPinot  = "pinot"
	BackendDuckDB = "duckdb"
)

// Config is the root configuration.
type Config struct {
	Store     StoreConfig     `koanf:"store"`
	Pinot     PinotConfig     `koanf:"pinot"`
	Database  DatabaseConfig  `koanf:"database"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Regions   RegionsConfig   `koanf:"regions"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// StoreConfig selects which analytic store answers the dashboard queries.
type StoreConfig struct {
	// Backend is "pinot" (broker HTTP endpoint) or "duckdb" (embedded, demo mode).
	Backend        string        `koanf:"backend" validate:"required,oneof=pinot duckdb"`
	// HealthInterval is how often the store monitor pings the backend.
	HealthInterval time.Duration `koanf:"health_interval" validate:"gte=0"`
}

// PinotConfig holds the Pinot broker connection settings.
//
// Environment Variables:
//   - PINOT_SCHEME, PINOT_HOST, PINOT_PORT, PINOT_PATH
//   - PINOT_TIMEOUT: per-query HTTP timeout (default: 30s)
//   - PINOT_TOKEN: optional bearer token sent as Authorization header
//   - PINOT_DATABASE: optional logical database sent as the "database" header
//   - PINOT_MAX_QPS: client-side query rate limit, 0 disables (default: 0)
//   - PINOT_BREAKER_ENABLED: wrap the client in a circuit breaker (default: true)
type PinotConfig struct {
	Scheme         string        `koanf:"scheme" validate:"required,oneof=http https"`
	Host           string        `koanf:"host" validate:"required"`
	Port           int           `koanf:"port" validate:"min=1,max=65535"`
	Path           string        `koanf:"path" validate:"required,startswith=/"`
	Timeout        time.Duration `koanf:"timeout" validate:"gt=0"`
	Token          string        `koanf:"token"`
	Database       string        `koanf:"database"`
	MaxQPS         float64       `koanf:"max_qps" validate:"gte=0"`
	BreakerEnabled bool          `koanf:"breaker_enabled"`
}

// BaseURL returns scheme://host:port.
func (p PinotConfig) BaseURL() string {
	u := url.URL{Scheme: p.Scheme, Host: net.JoinHostPort(p.Host, strconv.Itoa(p.Port))}
	return u.String()
}

// QueryURL returns the full SQL endpoint URL.
func (p PinotConfig) QueryURL() string {
	return p.BaseURL() + p.Path
}

// DatabaseConfig holds the embedded DuckDB store settings.
type DatabaseConfig struct {
	Path         string `koanf:"path" validate:"required"`
	MaxMemory    string `koanf:"max_memory"`
	Threads      int    `koanf:"threads" validate:"gte=0"`
	SeedMockData bool   `koanf:"seed_mock_data"`
	SeedOrders   int    `koanf:"seed_orders" validate:"gte=0"`
}

// DashboardConfig holds the page and query settings.
type DashboardConfig struct {
	Title       string `koanf:"title" validate:"required"`
	OrdersTable string `koanf:"orders_table" validate:"required,sqlident"`
	UsersTable  string `koanf:"users_table" validate:"required,sqlident"`
	TopN        int    `koanf:"top_n" validate:"min=1,max=1000"`
}

// RegionsConfig points at an optional YAML file replacing the built-in region table.
type RegionsConfig struct {
	File string `koanf:"file"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
