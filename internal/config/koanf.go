// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config file locations searched in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/orderpulse/config.yaml",
	"/etc/orderpulse/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:        BackendPinot,
			HealthInterval: 30 * time.Second,
		},
		Pinot: PinotConfig{
			Scheme:         "http",
			Host:           "localhost",
			Port:           8099,
			Path:           "/query/sql",
			Timeout:        30 * time.Second,
			MaxQPS:         0, // unlimited
			BreakerEnabled: true,
		},
		Database: DatabaseConfig{
			Path:         ":memory:",
			MaxMemory:    "512MB",
			Threads:      0, // 0 = runtime.NumCPU()
			SeedMockData: false,
			SeedOrders:   500,
		},
		Dashboard: DashboardConfig{
			Title:       "Real-Time Dashboard",
			OrdersTable: "TP3_dogmenu",
			UsersTable:  "TP2_users",
			TopN:        10,
		},
		Server: ServerConfig{
			Port:            8501,
			Host:            "0.0.0.0",
			Timeout:         60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{},
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration with the precedence ENV > File > Defaults.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	"store_backend":         "store.backend",
	"store_health_interval": "store.health_interval",

	"pinot_scheme":          "pinot.scheme",
	"pinot_host":            "pinot.host",
	"pinot_port":            "pinot.port",
	"pinot_path":            "pinot.path",
	"pinot_timeout":         "pinot.timeout",
	"pinot_token":           "pinot.token",
	"pinot_database":        "pinot.database",
	"pinot_max_qps":         "pinot.max_qps",
	"pinot_breaker_enabled": "pinot.breaker_enabled",

	"duckdb_path":         "database.path",
	"duckdb_max_memory":   "database.max_memory",
	"duckdb_threads":      "database.threads",
	"seed_mock_data":      "database.seed_mock_data",
	"seed_mock_orders":    "database.seed_orders",
	"dashboard_title":     "dashboard.title",
	"orders_table":        "dashboard.orders_table",
	"users_table":         "dashboard.users_table",
	"dashboard_top_n":     "dashboard.top_n",
	"regions_file":        "regions.file",
	"http_port":           "server.port",
	"http_host":           "server.host",
	"http_timeout":        "server.timeout",
	"shutdown_timeout":    "server.shutdown_timeout",
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps a known environment variable to its koanf path.
// Unknown variables return "" and are ignored by koanf.
//
//   - PINOT_HOST -> pinot.host
//   - HTTP_PORT -> server.port
//   - SEED_MOCK_DATA -> database.seed_mock_data
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
