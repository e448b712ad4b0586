// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package geo

import (
	"sort"
)

// Region is one entry of the coordinate table.
type Region struct {
	ID        string  `json:"id" koanf:"id" validate:"required"`
	Province  string  `json:"province" koanf:"province" validate:"required"`
	Latitude  float64 `json:"lat" koanf:"lat" validate:"latitude"`
	Longitude float64 `json:"lon" koanf:"lon" validate:"longitude"`
}

// Lookuper resolves a region id to its coordinates.
type Lookuper interface {
	Lookup(id string) (Region, bool)
}

var _ Lookuper = (*Table)(nil)

// Table is an immutable region id to coordinate mapping.
type Table struct {
	byID map[string]Region
	ids  []string
}

// NewTable builds a table from regions. Later duplicates replace earlier ones.
func NewTable(regions []Region) *Table {
	t := &Table{byID: make(map[string]Region, len(regions))}
	for _, r := range regions {
		t.byID[r.ID] = r
	}
	t.ids = make([]string, 0, len(t.byID))
	for id := range t.byID {
		t.ids = append(t.ids, id)
	}
	sort.Strings(t.ids)
	return t
}

// Lookup returns the region for id. Missing ids report false.
func (t *Table) Lookup(id string) (Region, bool) {
	if t == nil {
		return Region{}, false
	}
	r, ok := t.byID[id]
	return r, ok
}

// Len returns the number of regions.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ids)
}

// IDs returns the region ids in sorted order.
func (t *Table) IDs() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Regions returns every region ordered by id.
func (t *Table) Regions() []Region {
	if t == nil {
		return nil
	}
	out := make([]Region, len(t.ids))
	for i, id := range t.ids {
		out[i] = t.byID[id]
	}
	return out
}

// DefaultRegions are the ten Thai provinces the users table refers to.
func DefaultRegions() []Region {
	return []Region{
		{ID: "Region_1", Province: "Bangkok", Latitude: 13.7563, Longitude: 100.5018},
		{ID: "Region_2", Province: "Chiang Mai", Latitude: 18.7883, Longitude: 98.9867},
		{ID: "Region_3", Province: "Phuket", Latitude: 7.8804, Longitude: 98.3923},
		{ID: "Region_4", Province: "Khon Kaen", Latitude: 16.4322, Longitude: 102.8236},
		{ID: "Region_5", Province: "Nakhon Ratchasima", Latitude: 14.9799, Longitude: 102.0977},
		{ID: "Region_6", Province: "Chonburi", Latitude: 13.3611, Longitude: 100.9847},
		{ID: "Region_7", Province: "Songkhla", Latitude: 7.1897, Longitude: 100.5953},
		{ID: "Region_8", Province: "Udon Thani", Latitude: 17.4138, Longitude: 102.7877},
		{ID: "Region_9", Province: "Surat Thani", Latitude: 9.1382, Longitude: 99.3214},
		{ID: "Region_10", Province: "Nakhon Si Thammarat", Latitude: 8.4333, Longitude: 99.9630},
	}
}

// Default returns a table of DefaultRegions.
func Default() *Table {
	return NewTable(DefaultRegions())
}
