// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package geo

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/orderpulse/internal/validation"
)

// ErrEmptyTable is returned when a region file defines no regions.
var ErrEmptyTable = errors.New("region file defines no regions")

type regionFile struct {
	Regions []Region `koanf:"regions" validate:"required,min=1,dive"`
}

// Load returns the default table when path is empty, otherwise the table
// defined by the YAML file at path:
//
//	regions:
//	  - id: Region_1
//	    province: Bangkok
//	    lat: 13.7563
//	    lon: 100.5018
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load region file %s: %w", path, err)
	}

	var rf regionFile
	if err := k.UnmarshalWithConf("", &rf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse region file %s: %w", path, err)
	}
	if len(rf.Regions) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyTable)
	}

	if err := validation.ValidateStruct(&rf); err != nil {
		return nil, fmt.Errorf("invalid region file %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(rf.Regions))
	for _, r := range rf.Regions {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("invalid region file %s: duplicate region id %q", path, r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	return NewTable(rf.Regions), nil
}
