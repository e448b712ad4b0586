// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

import (
	"github.com/goccy/go-json"
)

func marshalPair(a, b any) ([]byte, error) {
	return json.Marshal([2]any{a, b})
}

// JSON encodes the figure as a Plotly {data, layout} document.
func (f *Figure) JSON() ([]byte, error) {
	return json.Marshal(f)
}
