// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

const (
	autoNumericColumns     = 3
	autoCategoricalColumns = 2
	dashboardColumns       = 2
)

// AutoSelectColumns picks dashboard columns in declared order: up to three
// numeric columns followed by up to two categorical ones, capped at four.
// Datetime and unknown columns are never picked automatically.
func AutoSelectColumns(ds *dataset.Dataset) []string {
	var numeric, categorical []string
	for _, col := range ds.Columns() {
		switch dataset.Classify(col) {
		case dataset.ClassNumeric:
			if len(numeric) < autoNumericColumns {
				numeric = append(numeric, col.Name)
			}
		case dataset.ClassCategorical:
			if len(categorical) < autoCategoricalColumns {
				categorical = append(categorical, col.Name)
			}
		}
	}
	selected := append(numeric, categorical...)
	if len(selected) > MaxDashboardCharts {
		selected = selected[:MaxDashboardCharts]
	}
	return selected
}

// SmartDashboardKind is the chart type that expands one column into a
// dashboard of that column and the next three declared columns.
const SmartDashboardKind = "smart_dashboard"

// SmartDashboardColumns returns column followed by the first three other
// columns in declared order.
func SmartDashboardColumns(ds *dataset.Dataset, column string) ([]string, error) {
	if column == "" {
		return nil, unsupported("%s requires a column", SmartDashboardKind)
	}
	if _, ok := ds.Column(column); !ok {
		return nil, columnNotFound(ds.Name, column)
	}
	columns := []string{column}
	for _, name := range ds.ColumnNames() {
		if len(columns) == MaxDashboardCharts {
			break
		}
		if name != column {
			columns = append(columns, name)
		}
	}
	return columns, nil
}

// kindForClass maps a column class to its dashboard chart.
func kindForClass(class dataset.Class) ChartKind {
	switch class {
	case dataset.ClassNumeric:
		return KindHistogram
	case dataset.ClassDatetime:
		return KindLine
	}
	return KindPie
}

// Dashboard builds one chart per column, at most four, laid out on a
// two-column grid. An empty columns list is auto-selected. Columns that fail
// to chart are skipped and logged; the grid is packed over the charts that
// were produced.
func (e *Engine) Dashboard(ds *dataset.Dataset, columns []string, opts Options) (*Dashboard, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is nil")
	}
	if len(columns) == 0 {
		columns = AutoSelectColumns(ds)
	}
	if len(columns) > MaxDashboardCharts {
		columns = columns[:MaxDashboardCharts]
	}

	opts = e.options(opts)
	opts.Title = ""

	board := &Dashboard{Plots: make([]*ChartRecord, 0, len(columns))}
	for _, name := range columns {
		kind := KindPie
		if col, ok := ds.Column(name); ok {
			kind = kindForClass(dataset.Classify(col))
		}

		chartOpts := opts
		if kind == KindPie {
			chartOpts.PieSlices = DashboardPieSlices
		}
		rec, err := e.Chart(ds, kind, ColumnSpec{Columns: []string{name}}, chartOpts)
		if err != nil {
			e.logger.Warn("Skipping dashboard column",
				zap.String("dataset", ds.Name),
				zap.String("column", name),
				zap.Error(err))
			continue
		}

		out := *rec
		i := len(board.Plots)
		out.Position = &GridPosition{Row: i / dashboardColumns, Col: i % dashboardColumns}
		out.Size = "compact"
		board.Plots = append(board.Plots, &out)
	}

	e.logger.Debug("Dashboard built",
		zap.String("dataset", ds.Name),
		zap.Strings("columns", columns),
		zap.Int("charts", len(board.Plots)))
	return board, nil
}
