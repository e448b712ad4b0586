// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/orderpulse/internal/validation"
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return err
	}

	if c.Store.Backend == BackendPinot && strings.Contains(c.Pinot.Host, "/") {
		return fmt.Errorf("pinot.host must be a bare host name, got %q", c.Pinot.Host)
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs <= 0 {
			return fmt.Errorf("security.rate_limit_reqs must be positive when rate limiting is enabled")
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive when rate limiting is enabled")
		}
	}

	return nil
}
