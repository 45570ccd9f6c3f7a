// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

func newDataset(t *testing.T, cols ...*dataset.Column) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New("test", cols...)
	require.NoError(t, err)
	return ds
}

func floatRange(from, to int) []float64 {
	out := make([]float64, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, float64(i))
	}
	return out
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// monthStarts returns n first-of-month dates starting January 2020.
func monthStarts(n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0)
	}
	return out
}

func labels(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%02d", prefix, i)
	}
	return out
}

func labeledValues(t *testing.T, data []DataPoint) []LabeledValue {
	t.Helper()
	out := make([]LabeledValue, len(data))
	for i, p := range data {
		lv, ok := p.(LabeledValue)
		require.True(t, ok, "point %d is %T", i, p)
		out[i] = lv
	}
	return out
}

func xyPoints(t *testing.T, data []DataPoint) []XYPoint {
	t.Helper()
	out := make([]XYPoint, len(data))
	for i, p := range data {
		xy, ok := p.(XYPoint)
		require.True(t, ok, "point %d is %T", i, p)
		out[i] = xy
	}
	return out
}
