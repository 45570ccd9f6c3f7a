// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

func pairDataset(t *testing.T, n int) *dataset.Dataset {
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i * 2)
	}
	return newDataset(t,
		dataset.NewFloatColumn("x", xs),
		dataset.NewFloatColumn("y", ys),
		dataset.NewStringColumn("name", labels(n, "r")),
	)
}

func TestScatter_RequiresTwoColumns(t *testing.T) {
	ds := pairDataset(t, 5)
	e := NewEngine(Options{}, nil)

	_, err := e.Scatter(ds, ColumnSpec{Columns: []string{"x"}}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = e.Scatter(ds, ColumnSpec{Columns: []string{"x", "y", "x"}}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = e.Scatter(ds, ColumnSpec{Columns: []string{"x", "name"}}, Options{})
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	_, err = e.Scatter(ds, ColumnSpec{Columns: []string{"x", "z"}}, Options{})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestScatter_Pairs(t *testing.T) {
	ds := pairDataset(t, 5)

	rec, err := NewEngine(Options{}, nil).Scatter(ds, ColumnSpec{Columns: []string{"x"}, GroupBy: "y"}, Options{})
	require.NoError(t, err)

	points := xyPoints(t, rec.Data)
	require.Len(t, points, 5)
	assert.Equal(t, XYPoint{X: 3, Y: 6}, points[3])
	assert.Equal(t, "x vs y", rec.Title)
	assert.Equal(t, "x", rec.XLabel)
	assert.Equal(t, "y", rec.YLabel)
	assert.Equal(t, "none", rec.Metadata.SamplingMethod)
}

func TestScatter_DropsIncompleteRows(t *testing.T) {
	ds := newDataset(t,
		dataset.NewColumn("a", dataset.TypeFloat, []any{1.0, nil, 3.0, 4.0}),
		dataset.NewColumn("b", dataset.TypeInt, []any{int64(10), int64(20), nil, int64(40)}),
	)

	rec, err := NewEngine(Options{}, nil).Scatter(ds, ColumnSpec{Columns: []string{"a", "b"}}, Options{})
	require.NoError(t, err)

	assert.Equal(t, []XYPoint{{X: 1, Y: 10}, {X: 4, Y: 40}}, xyPoints(t, rec.Data))
	assert.Equal(t, 2, rec.Metadata.DroppedRows)
}

func TestScatter_SeededSample(t *testing.T) {
	ds := pairDataset(t, 500)
	e := NewEngine(Options{}, nil)
	spec := ColumnSpec{Columns: []string{"x", "y"}}

	first, err := e.Scatter(ds, spec, Options{Seed: Seed(42)})
	require.NoError(t, err)
	second, err := e.Scatter(ds, spec, Options{Seed: Seed(42)})
	require.NoError(t, err)

	assert.Equal(t, first.Data, second.Data)
	points := xyPoints(t, first.Data)
	require.Len(t, points, DefaultScatterPoints)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].X, points[i].X)
	}
	assert.Equal(t, "random_sample", first.Metadata.SamplingMethod)
	assert.Equal(t, 500, first.Metadata.OriginalSize)
}
