// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

// Package validation provides struct validation using go-playground/validator
// v10 with a thread-safe singleton validator shared by configuration and
// region-file loading.
//
// Field names are reported by their koanf tag, so errors read like the config
// keys a user wrote ("pinot.port", "regions[2].latitude").
//
// Custom validators:
//   - sqlident: an unquoted SQL identifier, for table names spliced into the
//     fixed dashboard statements
//
// Example usage:
//
//	type regionFile struct {
//	    Regions []geo.Region `koanf:"regions" validate:"required,dive"`
//	}
//
//	if err := validation.ValidateStruct(&rf); err != nil {
//	    return fmt.Errorf("invalid region file: %w", err)
//	}
package validation
