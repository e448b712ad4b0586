// OrderPulse - Real-Time Order Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/orderpulse

package charts

// Figure is a chart description: traces plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly trace. TraceType returns the Plotly "type" value.
type Trace interface {
	TraceType() string
}

// Text is a Plotly title object.
type Text struct {
	Text string   `json:"text"`
	X    *float64 `json:"x,omitempty"`
}

// Axis is an axis definition.
type Axis struct {
	Title Text `json:"title"`
}

// Legend is the legend definition.
type Legend struct {
	Title Text `json:"title"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// Layout is the subset of Plotly layout attributes the dashboard uses.
type Layout struct {
	Title    Text    `json:"title"`
	XAxis    *Axis   `json:"xaxis,omitempty"`
	YAxis    *Axis   `json:"yaxis,omitempty"`
	Legend   *Legend `json:"legend,omitempty"`
	BarMode  string  `json:"barmode,omitempty"`
	Geo      *Geo    `json:"geo,omitempty"`
	Margin   *Margin `json:"margin,omitempty"`
	AutoSize bool    `json:"autosize"`
}

// LatLon is a geographic point.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Projection sets the map zoom.
type Projection struct {
	Scale float64 `json:"scale"`
}

// Geo is the base map definition for scattergeo traces.
type Geo struct {
	Visible        bool       `json:"visible"`
	Resolution     int        `json:"resolution"`
	ShowCountries  bool       `json:"showcountries"`
	CountryColor   string     `json:"countrycolor"`
	ShowCoastlines bool       `json:"showcoastlines"`
	CoastlineColor string     `json:"coastlinecolor"`
	ShowLand       bool       `json:"showland"`
	LandColor      string     `json:"landcolor"`
	Center         LatLon     `json:"center"`
	Projection     Projection `json:"projection"`
}

// ColorBar labels a continuous colour scale.
type ColorBar struct {
	Title Text `json:"title"`
}

// ColorStop is one [position, colour] entry of a colour scale. It marshals
// as a two element JSON array.
type ColorStop struct {
	Pos   float64
	Color string
}

// MarshalJSON implements json.Marshaler.
func (c ColorStop) MarshalJSON() ([]byte, error) {
	return marshalPair(c.Pos, c.Color)
}

// BarMarker colours a bar series.
type BarMarker struct {
	Color string `json:"color"`
}

// BarTrace is a bar series.
type BarTrace struct {
	Type   string    `json:"type"`
	Name   string    `json:"name"`
	X      []string  `json:"x"`
	Y      []float64 `json:"y"`
	Marker BarMarker `json:"marker"`
}

func (BarTrace) TraceType() string { return "bar" }

// Font is a font definition.
type Font struct {
	Color string `json:"color,omitempty"`
	Size  int    `json:"size,omitempty"`
}

// Fill is a cell fill. Color is either a single colour or one list per column.
type Fill struct {
	Color any `json:"color"`
}

// TableHeader is the header row of a table trace.
type TableHeader struct {
	Values []string `json:"values"`
	Fill   Fill     `json:"fill"`
	Font   Font     `json:"font"`
	Align  string   `json:"align"`
}

// TableCells holds column-major cell values.
type TableCells struct {
	Values [][]any `json:"values"`
	Fill   Fill    `json:"fill"`
	Font   Font    `json:"font"`
	Align  string  `json:"align"`
}

// TableTrace is a table.
type TableTrace struct {
	Type   string      `json:"type"`
	Header TableHeader `json:"header"`
	Cells  TableCells  `json:"cells"`
}

func (TableTrace) TraceType() string { return "table" }

// Histogram2DTrace is a density heatmap over two categorical axes.
type Histogram2DTrace struct {
	Type       string      `json:"type"`
	X          []string    `json:"x"`
	Y          []string    `json:"y"`
	Z          []float64   `json:"z"`
	HistFunc   string      `json:"histfunc"`
	ColorScale []ColorStop `json:"colorscale"`
	ColorBar   ColorBar    `json:"colorbar"`
	HoverTmpl  string      `json:"hovertemplate,omitempty"`
}

func (Histogram2DTrace) TraceType() string { return "histogram2d" }

// GeoMarker sizes and colours scattergeo points.
type GeoMarker struct {
	Size       []float64 `json:"size"`
	SizeMode   string    `json:"sizemode"`
	SizeRef    float64   `json:"sizeref"`
	SizeMin    float64   `json:"sizemin"`
	Color      []float64 `json:"color"`
	ColorScale string    `json:"colorscale"`
	ShowScale  bool      `json:"showscale"`
	ColorBar   ColorBar  `json:"colorbar"`
}

// ScatterGeoTrace places markers on the base map.
type ScatterGeoTrace struct {
	Type         string    `json:"type"`
	Mode         string    `json:"mode"`
	Lat          []float64 `json:"lat"`
	Lon          []float64 `json:"lon"`
	Text         []string  `json:"text"`
	TextPosition string    `json:"textposition"`
	CustomData   []string  `json:"customdata"`
	HoverTmpl    string    `json:"hovertemplate"`
	Marker       GeoMarker `json:"marker"`
}

func (ScatterGeoTrace) TraceType() string { return "scattergeo" }

func float64Ptr(v float64) *float64 { return &v }
