// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"sort"
	"time"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

// Trend tags reported in line chart insights.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// minTrendPoints is the shortest series that gets a direction.
const minTrendPoints = 4

// Histogram bins a numeric column into a bar chart of frequencies.
func (e *Engine) Histogram(ds *dataset.Dataset, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	col, err := requireColumn(ds, spec.Column(), KindHistogram)
	if err != nil {
		return nil, err
	}
	if class := dataset.Classify(col); class != dataset.ClassNumeric {
		return nil, unsupported("histogram requires a numeric column, %q is %s", col.Name, class)
	}

	values := col.Floats()
	bins, strategy := BinValues(values, opts.MaxBins)

	data := make([]DataPoint, len(bins))
	for i, b := range bins {
		data[i] = LabeledValue{Label: b.Label, Value: float64(b.Count)}
	}

	optimization := "equal_width_binning"
	if strategy == StrategyQuartile {
		optimization = "statistical_binning"
	}

	return &ChartRecord{
		Type:   "bar",
		Title:  titleOr(opts.Title, "Distribution of %s", col.Name),
		XLabel: col.Name,
		YLabel: "Frequency",
		Data:   data,
		Styling: &Styling{
			ColorScheme:  colorScheme(col.Name),
			ShowTrend:    true,
			GradientFill: true,
		},
		Metadata: &Metadata{
			OriginalSize: ds.RowCount(),
			DroppedRows:  ds.RowCount() - len(values),
			ChartType:    "enhanced_histogram",
			Optimization: optimization,
		},
	}, nil
}

// Line builds a trend series. Datetime columns are grouped by calendar
// month (row count per month, or the sum of an optional numeric second
// column); other columns are sampled down to 30 points.
func (e *Engine) Line(ds *dataset.Dataset, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	col, err := requireColumn(ds, spec.Column(), KindLine)
	if err != nil {
		return nil, err
	}

	rec := &ChartRecord{
		Type:   "line",
		Title:  titleOr(opts.Title, "%s Trend Analysis", col.Name),
		YLabel: col.Name,
		Styling: &Styling{
			ColorScheme:   "professional",
			ShowTrendLine: true,
			GradientFill:  true,
			SmoothCurves:  true,
		},
		Metadata: &Metadata{
			OriginalSize: ds.RowCount(),
			ChartType:    "trend_analysis",
		},
	}

	numeric := true
	if dataset.Classify(col) == dataset.ClassDatetime {
		series, used, label, err := monthlySeries(ds, col, spec)
		if err != nil {
			return nil, err
		}
		rec.XLabel = "Time Period"
		rec.Data = keepLast(series, opts.MaxPoints)
		if label != "" {
			rec.YLabel = label
		}
		rec.Metadata.DroppedRows = ds.RowCount() - used
		rec.Metadata.SamplingMethod = "time_based"
		if len(rec.Data) < len(series) {
			rec.Metadata.Optimization = "recent_months"
		}
	} else {
		points := DefaultTrendPoints
		if opts.MaxPoints < points {
			points = opts.MaxPoints
		}
		sampled, method := sample(col, points, newRand(opts.Seed))
		numeric = dataset.Classify(col) == dataset.ClassNumeric

		data := make([]DataPoint, len(sampled))
		for i, v := range sampled {
			y := float64(i + 1)
			if numeric {
				if f, ok := dataset.ToFloat(v); ok {
					y = f
				}
			}
			data[i] = XYPoint{X: float64(i), Y: y, Label: formatValue(v)}
		}
		rec.XLabel = "Index"
		rec.Data = data
		rec.Metadata.DroppedRows = ds.RowCount() - len(col.Present())
		rec.Metadata.SamplingMethod = "smart_sample"
		rec.Metadata.Optimization = method
	}

	rec.Insights = &Insights{
		Trend:      trendOf(rec.Data, numeric),
		DataPoints: len(rec.Data),
	}
	if n := len(rec.Data); n > 0 {
		first, last := rec.Data[0].(XYPoint), rec.Data[n-1].(XYPoint)
		rec.Insights.TimeRange = fmt.Sprintf("%s to %s", first.Label, last.Label)
	}
	return rec, nil
}

// Area is the running total of a monthly datetime series.
func (e *Engine) Area(ds *dataset.Dataset, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	col, err := requireColumn(ds, spec.Column(), KindArea)
	if err != nil {
		return nil, err
	}
	if class := dataset.Classify(col); class != dataset.ClassDatetime {
		return nil, unsupported("area chart requires a datetime column, %q is %s", col.Name, class)
	}

	series, used, label, err := monthlySeries(ds, col, spec)
	if err != nil {
		return nil, err
	}
	if label == "" {
		label = "Count"
	}

	var running float64
	for i, p := range series {
		pt := p.(XYPoint)
		running += pt.Y
		pt.Y = running
		series[i] = pt
	}
	months := len(series)
	series = keepLast(series, opts.MaxPoints)

	rec := &ChartRecord{
		Type:   "area",
		Title:  titleOr(opts.Title, "Cumulative %s Over Time", label),
		XLabel: "Time Period",
		YLabel: "Cumulative " + label,
		Data:   series,
		Styling: &Styling{
			ColorScheme:  colorScheme(label),
			GradientFill: true,
			SmoothCurves: true,
		},
		Metadata: &Metadata{
			OriginalSize:   ds.RowCount(),
			DroppedRows:    ds.RowCount() - used,
			ChartType:      "area",
			SamplingMethod: "time_based",
			Optimization:   "cumulative_sum",
		},
	}
	if len(series) < months {
		rec.Metadata.Optimization = "cumulative_sum_recent_months"
	}
	return rec, nil
}

// monthlySeries groups the rows of a datetime column by calendar month in
// chronological order. With a second column in spec it sums that column per
// month and returns "Total <name>" as the value label; otherwise it counts
// rows and the label is empty. used is the number of rows that contributed.
func monthlySeries(ds *dataset.Dataset, col *dataset.Column, spec ColumnSpec) ([]DataPoint, int, string, error) {
	var valueCol *dataset.Column
	label := ""
	if len(spec.Columns) > 1 && spec.Columns[1] != "" {
		vc, ok := ds.Column(spec.Columns[1])
		if !ok {
			return nil, 0, "", columnNotFound(ds.Name, spec.Columns[1])
		}
		if class := dataset.Classify(vc); class != dataset.ClassNumeric {
			return nil, 0, "", unsupported("value column %q must be numeric, got %s", vc.Name, class)
		}
		valueCol = vc
		label = "Total " + vc.Name
	}

	type month struct {
		key   time.Time
		total float64
	}
	byMonth := make(map[time.Time]*month)
	used := 0
	for i, v := range col.Values {
		t, ok := v.(time.Time)
		if !ok || t.IsZero() {
			continue
		}
		amount := 1.0
		if valueCol != nil {
			f, ok := valueCol.Float(i)
			if !ok {
				continue
			}
			amount = f
		}
		t = t.UTC()
		key := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		m, exists := byMonth[key]
		if !exists {
			m = &month{key: key}
			byMonth[key] = m
		}
		m.total += amount
		used++
	}

	months := make([]*month, 0, len(byMonth))
	for _, m := range byMonth {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].key.Before(months[j].key) })

	data := make([]DataPoint, len(months))
	for i, m := range months {
		data[i] = XYPoint{X: float64(i), Y: m.total, Label: m.key.Format("2006-01")}
	}
	return data, used, label, nil
}

// keepLast keeps the most recent n points of a month series, renumbering x
// from zero.
func keepLast(data []DataPoint, n int) []DataPoint {
	if n <= 0 || len(data) <= n {
		return data
	}
	tail := make([]DataPoint, n)
	for i, p := range data[len(data)-n:] {
		pt := p.(XYPoint)
		pt.X = float64(i)
		tail[i] = pt
	}
	return tail
}

// trendOf compares the last y to the first. Short or non-numeric series are
// stable.
func trendOf(data []DataPoint, numeric bool) string {
	if !numeric || len(data) < minTrendPoints {
		return TrendStable
	}
	first, ok1 := data[0].(XYPoint)
	last, ok2 := data[len(data)-1].(XYPoint)
	if !ok1 || !ok2 {
		return TrendStable
	}
	switch {
	case last.Y > first.Y:
		return TrendIncreasing
	case last.Y < first.Y:
		return TrendDecreasing
	}
	return TrendStable
}
