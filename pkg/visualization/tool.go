// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartkit/pkg/dataset"
	"github.com/teradata-labs/chartkit/pkg/shuttle"
)

// Tool error codes.
const (
	CodeInvalidParams        = "INVALID_PARAMS"
	CodeDatasetNotFound      = "DATASET_NOT_FOUND"
	CodeColumnNotFound       = "COLUMN_NOT_FOUND"
	CodeUnsupportedOperation = "UNSUPPORTED_OPERATION"
	CodeInternal             = "INTERNAL_ERROR"
)

// ChartTool exposes single chart creation over a dataset registry.
type ChartTool struct {
	datasets dataset.Registry
	engine   *Engine
	logger   *zap.Logger
}

// NewChartTool creates the create_enhanced_chart tool.
func NewChartTool(datasets dataset.Registry, engine *Engine, logger *zap.Logger) *ChartTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChartTool{datasets: datasets, engine: engine, logger: logger}
}

func (t *ChartTool) Name() string {
	return "create_enhanced_chart"
}

func (t *ChartTool) Description() string {
	return `Creates chart data for a loaded dataset, sized to fit the conversation.

Chart types: histogram, line, bar, pie, scatter, area, smart_dashboard.
- histogram bins a numeric column
- line groups a date column by month, or samples any other column
- bar and pie count values, or sum column per group_by
- scatter plots two numeric columns (column vs group_by)
- area accumulates a monthly date series
- smart_dashboard charts column and the next three columns of the dataset

The result contains a recharts code block the frontend renders directly.`
}

func (t *ChartTool) InputSchema() *shuttle.JSONSchema {
	return shuttle.NewObjectSchema(
		"Parameters for chart creation",
		map[string]*shuttle.JSONSchema{
			"dataset":    shuttle.NewStringSchema("Name of the loaded dataset (required)"),
			"chart_type": shuttle.NewStringSchema("Chart type: histogram, line, bar, pie, scatter, area, smart_dashboard (required)"),
			"column":     shuttle.NewStringSchema("Column to chart"),
			"columns": shuttle.NewArraySchema("Columns to chart, in place of column (scatter: [x, y])",
				shuttle.NewStringSchema("Column name")).WithItemCount(shuttle.Int(1), shuttle.Int(2)),
			"group_by":   shuttle.NewStringSchema("Column to group by (bar, pie) or the y column (scatter)"),
			"title":      shuttle.NewStringSchema("Custom chart title"),
			"max_points": shuttle.NewIntegerSchema("Maximum sampled points (default: 50)").WithRange(shuttle.Float(2), nil),
			"max_bins":   shuttle.NewIntegerSchema("Maximum equal-width histogram bins (default: 10)").WithRange(shuttle.Float(1), nil),
			"max_bytes":  shuttle.NewIntegerSchema("Encoded size budget in bytes (default: 1000)").WithRange(shuttle.Float(1), nil),
			"seed":       shuttle.NewIntegerSchema("Seed for random sampling, for reproducible output"),
		},
		[]string{"dataset", "chart_type"},
	)
}

func (t *ChartTool) Backend() string {
	return ""
}

func (t *ChartTool) Execute(ctx context.Context, params map[string]interface{}) (*shuttle.Result, error) {
	start := time.Now()
	invocationID := uuid.New().String()
	logger := t.logger.With(zap.String("tool", t.Name()), zap.String("invocation_id", invocationID))

	if err := shuttle.ValidateParams(t.InputSchema(), params); err != nil {
		return failure(start, CodeInvalidParams, err.Error(), "Provide dataset and chart_type"), nil
	}

	name, _ := params["dataset"].(string)
	kindName, _ := params["chart_type"].(string)
	if kindName == SmartDashboardKind {
		return t.smartDashboard(start, logger, invocationID, name, params), nil
	}
	kind, ok := ParseKind(kindName)
	if !ok {
		result := failure(start, CodeUnsupportedOperation, fmt.Sprintf("unsupported chart type %q", kindName), "Use one of: histogram, line, bar, pie, scatter, area, smart_dashboard")
		result.Data = UsageText
		return result, nil
	}

	ds, result := lookupDataset(t.datasets, name, start)
	if result != nil {
		return result, nil
	}

	spec := ColumnSpec{GroupBy: stringParam(params, "group_by")}
	if cols := stringsParam(params, "columns"); len(cols) > 0 {
		spec.Columns = cols
	} else if col := stringParam(params, "column"); col != "" {
		spec.Columns = []string{col}
	}

	opts := optionsFromParams(params)
	rec, err := t.engine.Chart(ds, kind, spec, opts)
	if err != nil {
		logger.Debug("Chart failed", zap.String("dataset", name), zap.Error(err))
		result := errorResult(start, err)
		if errors.Is(err, ErrUnsupportedOperation) {
			result.Data = UsageText
		}
		return result, nil
	}

	text, err := ChartText(rec)
	if err != nil {
		return failure(start, CodeInternal, err.Error(), ""), nil
	}

	logger.Info("Chart created",
		zap.String("dataset", name),
		zap.String("chart_type", string(kind)),
		zap.Int("points", len(rec.Data)),
		zap.Duration("duration", time.Since(start)))

	return &shuttle.Result{
		Success: true,
		Data:    text,
		Metadata: map[string]interface{}{
			"invocation_id": invocationID,
			"dataset":       name,
			"chart_type":    string(kind),
			"points":        len(rec.Data),
			"truncated":     rec.Note != "",
		},
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// smartDashboard builds a dashboard over column and the columns declared
// after it.
func (t *ChartTool) smartDashboard(start time.Time, logger *zap.Logger, invocationID, name string, params map[string]interface{}) *shuttle.Result {
	ds, result := lookupDataset(t.datasets, name, start)
	if result != nil {
		return result
	}
	column := stringParam(params, "column")
	if column == "" {
		if cols := stringsParam(params, "columns"); len(cols) > 0 {
			column = cols[0]
		}
	}
	columns, err := SmartDashboardColumns(ds, column)
	if err != nil {
		result := errorResult(start, err)
		if errors.Is(err, ErrUnsupportedOperation) {
			result.Data = UsageText
		}
		return result
	}

	board, err := t.engine.Dashboard(ds, columns, optionsFromParams(params))
	if err != nil {
		return errorResult(start, err)
	}
	text, err := DashboardText(board)
	if err != nil {
		return failure(start, CodeInternal, err.Error(), "")
	}

	logger.Info("Smart dashboard created",
		zap.String("dataset", name),
		zap.Strings("columns", columns),
		zap.Int("charts", len(board.Plots)))

	return &shuttle.Result{
		Success: true,
		Data:    text,
		Metadata: map[string]interface{}{
			"invocation_id": invocationID,
			"dataset":       name,
			"chart_type":    SmartDashboardKind,
			"charts":        len(board.Plots),
		},
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}
}

// DashboardTool exposes multi-chart dashboards over a dataset registry.
type DashboardTool struct {
	datasets dataset.Registry
	engine   *Engine
	logger   *zap.Logger
}

// NewDashboardTool creates the create_dashboard tool.
func NewDashboardTool(datasets dataset.Registry, engine *Engine, logger *zap.Logger) *DashboardTool {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardTool{datasets: datasets, engine: engine, logger: logger}
}

func (t *DashboardTool) Name() string {
	return "create_dashboard"
}

func (t *DashboardTool) Description() string {
	return `Creates a dashboard of up to four compact charts for a loaded dataset.

Numeric columns become histograms, date columns line charts and everything
else a pie of the top six values. Without columns, up to three numeric and
two categorical columns are picked in dataset order.`
}

func (t *DashboardTool) InputSchema() *shuttle.JSONSchema {
	return shuttle.NewObjectSchema(
		"Parameters for dashboard creation",
		map[string]*shuttle.JSONSchema{
			"dataset":   shuttle.NewStringSchema("Name of the loaded dataset (required)"),
			"columns":   shuttle.NewArraySchema("Columns to chart (optional, auto-selected when omitted)", shuttle.NewStringSchema("Column name")),
			"max_bytes": shuttle.NewIntegerSchema("Encoded size budget per chart in bytes (default: 1000)").WithRange(shuttle.Float(1), nil),
			"seed":      shuttle.NewIntegerSchema("Seed for random sampling"),
		},
		[]string{"dataset"},
	)
}

func (t *DashboardTool) Backend() string {
	return ""
}

func (t *DashboardTool) Execute(ctx context.Context, params map[string]interface{}) (*shuttle.Result, error) {
	start := time.Now()
	invocationID := uuid.New().String()
	logger := t.logger.With(zap.String("tool", t.Name()), zap.String("invocation_id", invocationID))

	if err := shuttle.ValidateParams(t.InputSchema(), params); err != nil {
		return failure(start, CodeInvalidParams, err.Error(), "Provide dataset and optionally columns"), nil
	}

	name, _ := params["dataset"].(string)
	ds, result := lookupDataset(t.datasets, name, start)
	if result != nil {
		return result, nil
	}

	board, err := t.engine.Dashboard(ds, stringsParam(params, "columns"), optionsFromParams(params))
	if err != nil {
		return errorResult(start, err), nil
	}
	text, err := DashboardText(board)
	if err != nil {
		return failure(start, CodeInternal, err.Error(), ""), nil
	}

	logger.Info("Dashboard created",
		zap.String("dataset", name),
		zap.Int("charts", len(board.Plots)),
		zap.Duration("duration", time.Since(start)))

	return &shuttle.Result{
		Success: true,
		Data:    text,
		Metadata: map[string]interface{}{
			"invocation_id": invocationID,
			"dataset":       name,
			"charts":        len(board.Plots),
		},
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

func lookupDataset(datasets dataset.Registry, name string, start time.Time) (*dataset.Dataset, *shuttle.Result) {
	if datasets == nil {
		return nil, failure(start, CodeInternal, "no dataset registry configured", "")
	}
	ds, err := datasets.Lookup(name)
	if err != nil {
		if errors.Is(err, dataset.ErrDatasetNotFound) {
			return nil, failure(start, CodeDatasetNotFound,
				fmt.Sprintf("Dataset '%s' not found", name),
				"Load the dataset first or check the name")
		}
		return nil, failure(start, CodeInternal, err.Error(), "")
	}
	return ds, nil
}

func errorResult(start time.Time, err error) *shuttle.Result {
	switch {
	case errors.Is(err, ErrColumnNotFound):
		return failure(start, CodeColumnNotFound, err.Error(), "Check the column names of the dataset")
	case errors.Is(err, ErrUnsupportedOperation):
		return failure(start, CodeUnsupportedOperation, err.Error(), "Check the chart type against the column types")
	}
	return failure(start, CodeInternal, err.Error(), "")
}

func failure(start time.Time, code, message, suggestion string) *shuttle.Result {
	return &shuttle.Result{
		Success: false,
		Error: &shuttle.Error{
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		},
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}
}

func optionsFromParams(params map[string]interface{}) Options {
	opts := Options{Title: stringParam(params, "title")}
	if v, ok := intParam(params, "max_points"); ok {
		opts.MaxPoints = int(v)
	}
	if v, ok := intParam(params, "max_bins"); ok {
		opts.MaxBins = int(v)
	}
	if v, ok := intParam(params, "max_bytes"); ok {
		opts.MaxBytes = int(v)
	}
	if v, ok := intParam(params, "seed"); ok {
		opts.Seed = Seed(v)
	}
	return opts
}

func stringParam(params map[string]interface{}, key string) string {
	s, _ := params[key].(string)
	return s
}

func stringsParam(params map[string]interface{}, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// intParam reads an integer that may arrive as a Go int or a decoded JSON
// number.
func intParam(params map[string]interface{}, key string) (int64, bool) {
	switch v := params[key].(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	}
	return 0, false
}
