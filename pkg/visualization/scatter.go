// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"sort"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

// scatterColumns resolves the x and y column names. Columns [x, y] is the
// usual form; a single column with GroupBy is read as x against GroupBy.
func scatterColumns(spec ColumnSpec) (string, string, error) {
	switch {
	case len(spec.Columns) == 2:
		return spec.Columns[0], spec.Columns[1], nil
	case len(spec.Columns) == 1 && spec.GroupBy != "":
		return spec.Columns[0], spec.GroupBy, nil
	}
	return "", "", unsupported("scatter chart requires exactly two numeric columns, got %d", len(spec.Columns))
}

// Scatter pairs two numeric columns row by row. Rows missing either value
// are dropped; above ScatterPoints rows a seeded random subset is kept in
// row order.
func (e *Engine) Scatter(ds *dataset.Dataset, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	xName, yName, err := scatterColumns(spec)
	if err != nil {
		return nil, err
	}
	xCol, err := requireColumn(ds, xName, KindScatter)
	if err != nil {
		return nil, err
	}
	yCol, err := requireColumn(ds, yName, KindScatter)
	if err != nil {
		return nil, err
	}
	for _, c := range []*dataset.Column{xCol, yCol} {
		if class := dataset.Classify(c); class != dataset.ClassNumeric {
			return nil, unsupported("scatter chart requires numeric columns, %q is %s", c.Name, class)
		}
	}

	rows := make([]int, 0, ds.RowCount())
	for i := 0; i < ds.RowCount(); i++ {
		if xCol.IsMissing(i) || yCol.IsMissing(i) {
			continue
		}
		rows = append(rows, i)
	}
	complete := len(rows)

	method := "none"
	if len(rows) > opts.ScatterPoints {
		picked := pickIndexes(len(rows), opts.ScatterPoints, newRand(opts.Seed))
		sort.Ints(picked)
		subset := make([]int, len(picked))
		for i, p := range picked {
			subset[i] = rows[p]
		}
		rows = subset
		method = "random_sample"
	}

	data := make([]DataPoint, 0, len(rows))
	for _, i := range rows {
		x, okX := xCol.Float(i)
		y, okY := yCol.Float(i)
		if !okX || !okY {
			continue
		}
		data = append(data, XYPoint{X: x, Y: y})
	}

	return &ChartRecord{
		Type:   "scatter",
		Title:  titleOr(opts.Title, "%s vs %s", xCol.Name, yCol.Name),
		XLabel: xCol.Name,
		YLabel: yCol.Name,
		Data:   data,
		Metadata: &Metadata{
			OriginalSize:   ds.RowCount(),
			DroppedRows:    ds.RowCount() - complete,
			ChartType:      "scatter",
			SamplingMethod: method,
		},
	}, nil
}
