// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

func TestHistogram(t *testing.T) {
	ds := newDataset(t, dataset.NewIntColumn("sales", []int64{10, 20, 30, 40, 50}))
	e := NewEngine(Options{}, nil)

	rec, err := e.Histogram(ds, ColumnSpec{Columns: []string{"sales"}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, "bar", rec.Type)
	assert.Equal(t, "Distribution of sales", rec.Title)
	assert.Equal(t, "sales", rec.XLabel)
	assert.Equal(t, "Frequency", rec.YLabel)
	assert.Equal(t, []LabeledValue{{Label: "10-50", Value: 5}}, labeledValues(t, rec.Data))
	require.NotNil(t, rec.Styling)
	assert.Equal(t, "business", rec.Styling.ColorScheme)
	assert.Equal(t, "enhanced_histogram", rec.Metadata.ChartType)
	assert.Equal(t, 5, rec.Metadata.OriginalSize)
}

func TestHistogram_CountsMatchPresentValues(t *testing.T) {
	raw := make([]any, 0, 300)
	for i := 0; i < 300; i++ {
		if i%7 == 0 {
			raw = append(raw, nil)
			continue
		}
		raw = append(raw, float64(i%41))
	}
	col := dataset.NewColumn("v", dataset.TypeFloat, raw)
	ds := newDataset(t, col)

	rec, err := NewEngine(Options{}, nil).Histogram(ds, ColumnSpec{Columns: []string{"v"}}, Options{})
	require.NoError(t, err)

	total := 0.0
	for _, lv := range labeledValues(t, rec.Data) {
		total += lv.Value
	}
	present := len(col.Present())
	assert.Equal(t, float64(present), total)
	assert.Equal(t, 300-present, rec.Metadata.DroppedRows)
	assert.Equal(t, "statistical_binning", rec.Metadata.Optimization)
}

func TestHistogram_Errors(t *testing.T) {
	ds := newDataset(t, dataset.NewStringColumn("product", []string{"A", "B"}))
	e := NewEngine(Options{}, nil)

	_, err := e.Histogram(ds, ColumnSpec{Columns: []string{"product"}}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = e.Histogram(ds, ColumnSpec{Columns: []string{"price"}}, Options{})
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = e.Histogram(ds, ColumnSpec{}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}

func TestLine_Numeric(t *testing.T) {
	ds := newDataset(t, dataset.NewFloatColumn("revenue", floatRange(1, 10)))

	rec, err := NewEngine(Options{}, nil).Line(ds, ColumnSpec{Columns: []string{"revenue"}}, Options{})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, 10)
	for i, p := range points {
		assert.Equal(t, float64(i), p.X)
		assert.Equal(t, float64(i+1), p.Y)
	}
	assert.Equal(t, "line", rec.Type)
	assert.Equal(t, "Index", rec.XLabel)
	assert.Equal(t, TrendIncreasing, rec.Insights.Trend)
	assert.Equal(t, 10, rec.Insights.DataPoints)
	assert.Equal(t, "1 to 10", rec.Insights.TimeRange)
}

func TestLine_SamplesToThirtyPoints(t *testing.T) {
	ds := newDataset(t, dataset.NewFloatColumn("v", floatRange(1, 500)))

	rec, err := NewEngine(Options{}, nil).Line(ds, ColumnSpec{Columns: []string{"v"}}, Options{})
	require.NoError(t, err)
	assert.Len(t, rec.Data, 26)
	assert.Equal(t, SamplePercentile, rec.Metadata.Optimization)
}

func TestLine_CategoricalUsesRank(t *testing.T) {
	ds := newDataset(t, dataset.NewStringColumn("status", []string{"open", "closed", "open", "new", "open"}))

	rec, err := NewEngine(Options{}, nil).Line(ds, ColumnSpec{Columns: []string{"status"}}, Options{})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, 5)
	assert.Equal(t, XYPoint{X: 0, Y: 1, Label: "open"}, points[0])
	assert.Equal(t, XYPoint{X: 4, Y: 5, Label: "open"}, points[4])
	assert.Equal(t, TrendStable, rec.Insights.Trend)
}

func TestLine_TrendDirections(t *testing.T) {
	e := NewEngine(Options{}, nil)
	cases := []struct {
		values []float64
		want   string
	}{
		{[]float64{5, 4, 3, 1}, TrendDecreasing},
		{[]float64{1, 9, 2, 1}, TrendStable},
		{[]float64{1, 2, 3}, TrendStable},
	}
	for _, c := range cases {
		ds := newDataset(t, dataset.NewFloatColumn("v", c.values))
		rec, err := e.Line(ds, ColumnSpec{Columns: []string{"v"}}, Options{})
		require.NoError(t, err)
		assert.Equal(t, c.want, rec.Insights.Trend, "values %v", c.values)
	}
}

func orderDates() *dataset.Column {
	return dataset.NewTimeColumn("order_date", []time.Time{
		day("2024-03-10"), day("2024-01-05"), day("2024-03-11"),
		day("2024-02-03"), day("2024-01-20"), day("2024-03-12"),
	})
}

func TestLine_DatetimeGroupsByMonth(t *testing.T) {
	ds := newDataset(t, orderDates())

	rec, err := NewEngine(Options{}, nil).Line(ds, ColumnSpec{Columns: []string{"order_date"}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []XYPoint{
		{X: 0, Y: 2, Label: "2024-01"},
		{X: 1, Y: 1, Label: "2024-02"},
		{X: 2, Y: 3, Label: "2024-03"},
	}, xyPoints(t, rec.Data))
	assert.Equal(t, "Time Period", rec.XLabel)
	assert.Equal(t, "time_based", rec.Metadata.SamplingMethod)
	assert.Equal(t, TrendStable, rec.Insights.Trend)
	assert.Equal(t, "2024-01 to 2024-03", rec.Insights.TimeRange)
}

func TestLine_DatetimeSumsValueColumn(t *testing.T) {
	amount := dataset.NewColumn("amount", dataset.TypeFloat, []any{10.0, 1.0, 20.0, 5.0, nil, 30.0})
	ds := newDataset(t, orderDates(), amount)

	rec, err := NewEngine(Options{}, nil).Line(ds, ColumnSpec{Columns: []string{"order_date", "amount"}}, Options{})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, 3)
	assert.Equal(t, 1.0, points[0].Y)
	assert.Equal(t, 5.0, points[1].Y)
	assert.Equal(t, 60.0, points[2].Y)
	assert.Equal(t, "Total amount", rec.YLabel)
	assert.Equal(t, 1, rec.Metadata.DroppedRows)
}

func TestLine_DatetimeKeepsRecentMonths(t *testing.T) {
	ds := newDataset(t, dataset.NewTimeColumn("month", monthStarts(60)))

	rec, err := NewEngine(Options{}, nil).Line(ds, ColumnSpec{Columns: []string{"month"}}, Options{})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, DefaultMaxPoints)
	assert.Equal(t, "2020-11", points[0].Label)
	assert.Equal(t, 0.0, points[0].X)
	assert.Equal(t, "2024-12", points[len(points)-1].Label)
	assert.Equal(t, "recent_months", rec.Metadata.Optimization)
}

func TestArea_CumulativeSum(t *testing.T) {
	ds := newDataset(t, orderDates())

	rec, err := NewEngine(Options{}, nil).Area(ds, ColumnSpec{Columns: []string{"order_date"}}, Options{})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, 3)
	assert.Equal(t, []float64{2, 3, 6}, []float64{points[0].Y, points[1].Y, points[2].Y})
	assert.Equal(t, "area", rec.Type)
	assert.Equal(t, "Cumulative Count", rec.YLabel)
	assert.Equal(t, "cumulative_sum", rec.Metadata.Optimization)
}

func TestArea_RunningTotalSurvivesTrimming(t *testing.T) {
	ds := newDataset(t, dataset.NewTimeColumn("month", monthStarts(60)))

	rec, err := NewEngine(Options{}, nil).Area(ds, ColumnSpec{Columns: []string{"month"}}, Options{MaxPoints: 12})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, 12)
	assert.Equal(t, 49.0, points[0].Y)
	assert.Equal(t, 60.0, points[11].Y)
}

func TestArea_RequiresDatetime(t *testing.T) {
	ds := newDataset(t, dataset.NewFloatColumn("v", []float64{1, 2}))
	_, err := NewEngine(Options{}, nil).Area(ds, ColumnSpec{Columns: []string{"v"}}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
