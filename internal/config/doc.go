// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package config loads OrderPulse configuration with Koanf v2.
//
// Sources are layered, highest priority last:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/orderpulse/config.yaml)
//  3. Environment variables (PINOT_HOST, HTTP_PORT, LOG_LEVEL, ...)
//
// The resulting Config is validated with go-playground/validator struct tags
// plus a few cross-field rules in Validate.
//
// # Example config.yaml
//
//	store:
//	  backend: pinot
//	pinot:
//	  scheme: http
//	  host: 47.129.174.92
//	  port: 8099
//	  path: /query/sql
//	server:
//	  port: 8501
//	logging:
//	  level: debug
//	  format: console
package config
