// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

// ChartKind is the chart requested by a caller.
type ChartKind string

const (
	KindHistogram ChartKind = "histogram"
	KindLine      ChartKind = "line"
	KindBar       ChartKind = "bar"
	KindPie       ChartKind = "pie"
	KindScatter   ChartKind = "scatter"
	KindArea      ChartKind = "area"
)

// Kinds lists every supported chart kind.
var Kinds = []ChartKind{KindHistogram, KindLine, KindBar, KindPie, KindScatter, KindArea}

// ParseKind accepts a kind name and its legacy aliases.
func ParseKind(s string) (ChartKind, bool) {
	switch s {
	case "histogram", "enhanced_histogram":
		return KindHistogram, true
	case "line", "trend", "trend_analysis":
		return KindLine, true
	case "bar":
		return KindBar, true
	case "pie":
		return KindPie, true
	case "scatter":
		return KindScatter, true
	case "area":
		return KindArea, true
	}
	return "", false
}

// DataPoint is one entry of a chart's data series: a LabeledValue for
// bar/pie/histogram charts or an XYPoint for line/scatter/area charts.
type DataPoint interface {
	isDataPoint()
}

// LabeledValue is a {label, value} point.
type LabeledValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// XYPoint is an {x, y} point with an optional label.
type XYPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label,omitempty"`
}

func (LabeledValue) isDataPoint() {}
func (XYPoint) isDataPoint()      {}

// Styling carries rendering hints for the frontend.
type Styling struct {
	ColorScheme   string `json:"color_scheme,omitempty"`
	ShowTrend     bool   `json:"show_trend,omitempty"`
	GradientFill  bool   `json:"gradient_fill,omitempty"`
	ShowTrendLine bool   `json:"show_trend_line,omitempty"`
	SmoothCurves  bool   `json:"smooth_curves,omitempty"`
}

// Insights summarizes a trend series.
type Insights struct {
	Trend      string `json:"trend"`
	DataPoints int    `json:"data_points"`
	TimeRange  string `json:"time_range,omitempty"`
}

// Metadata records how a chart was derived.
type Metadata struct {
	OriginalSize   int    `json:"original_size"`          // Dataset row count
	DroppedRows    int    `json:"dropped_rows,omitempty"` // Rows removed for missing values
	ChartType      string `json:"chart_type,omitempty"`
	SamplingMethod string `json:"sampling_method,omitempty"`
	Optimization   string `json:"optimization,omitempty"`
}

// GridPosition places a chart in a two-column dashboard grid.
type GridPosition struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ChartRecord is the chart payload. Field names are consumed verbatim by the
// frontend.
type ChartRecord struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	XLabel   string        `json:"x_label,omitempty"`
	YLabel   string        `json:"y_label,omitempty"`
	Data     []DataPoint   `json:"data"`
	Styling  *Styling      `json:"styling,omitempty"`
	Insights *Insights     `json:"insights,omitempty"`
	Metadata *Metadata     `json:"metadata,omitempty"`
	Note     string        `json:"note,omitempty"`
	Position *GridPosition `json:"position,omitempty"`
	Size     string        `json:"size,omitempty"`
}

// Dashboard is the multi-chart envelope.
type Dashboard struct {
	Plots []*ChartRecord `json:"plots"`
}

// ColumnSpec names the columns a chart reads. Scatter takes Columns[0] as x
// and Columns[1] as y; line and area accept an optional numeric Columns[1]
// to sum per period.
type ColumnSpec struct {
	Columns []string
	GroupBy string
}

// Column returns the first target column, or "".
func (s ColumnSpec) Column() string {
	if len(s.Columns) == 0 {
		return ""
	}
	return s.Columns[0]
}

// Defaults for Options.
const (
	DefaultMaxPoints     = 50
	DefaultMaxBins       = 10
	DefaultMaxBytes      = 1000
	DefaultTopN          = 10
	DefaultPieSlices     = 8
	DefaultScatterPoints = 100
	DefaultTrendPoints   = 30
	DashboardPieSlices   = 6
	MaxDashboardCharts   = 4
	TruncatedPoints      = 10
)

// Options tunes chart derivation. Zero fields fall back to the engine's
// defaults.
type Options struct {
	Title         string
	MaxPoints     int    // Sampler output cap
	MaxBins       int    // Equal-width histogram bin cap
	MaxBytes      int    // Size guard budget
	TopN          int    // Bar categories
	PieSlices     int    // Pie categories before "Other"
	ScatterPoints int    // Scatter row sample size
	Seed          *int64 // nil draws a random seed per call
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxPoints:     DefaultMaxPoints,
		MaxBins:       DefaultMaxBins,
		MaxBytes:      DefaultMaxBytes,
		TopN:          DefaultTopN,
		PieSlices:     DefaultPieSlices,
		ScatterPoints: DefaultScatterPoints,
	}
}

// Merge fills the zero fields of o from base.
func (o Options) Merge(base Options) Options {
	if o.Title == "" {
		o.Title = base.Title
	}
	if o.MaxPoints <= 0 {
		o.MaxPoints = base.MaxPoints
	}
	if o.MaxBins <= 0 {
		o.MaxBins = base.MaxBins
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = base.MaxBytes
	}
	if o.TopN <= 0 {
		o.TopN = base.TopN
	}
	if o.PieSlices <= 0 {
		o.PieSlices = base.PieSlices
	}
	if o.ScatterPoints <= 0 {
		o.ScatterPoints = base.ScatterPoints
	}
	if o.Seed == nil {
		o.Seed = base.Seed
	}
	return o
}

// Seed returns a pointer to s, for Options literals.
func Seed(s int64) *int64 {
	return &s
}
