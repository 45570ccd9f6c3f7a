// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

// Engine derives chart payloads from datasets. It holds no per-call state and
// is safe for concurrent use against datasets that are not being mutated.
type Engine struct {
	defaults Options
	logger   *zap.Logger
}

// NewEngine creates an engine. Zero fields of defaults take the package
// defaults; a nil logger discards output.
func NewEngine(defaults Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		defaults: defaults.Merge(DefaultOptions()),
		logger:   logger,
	}
}

// Defaults returns the engine's effective default options.
func (e *Engine) Defaults() Options {
	return e.defaults
}

func (e *Engine) options(opts Options) Options {
	return opts.Merge(e.defaults)
}

// Build runs the builder for kind without applying the size budget.
func (e *Engine) Build(ds *dataset.Dataset, kind ChartKind, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is nil")
	}
	switch kind {
	case KindHistogram:
		return e.Histogram(ds, spec, opts)
	case KindLine:
		return e.Line(ds, spec, opts)
	case KindBar:
		return e.Bar(ds, spec, opts)
	case KindPie:
		return e.Pie(ds, spec, opts)
	case KindScatter:
		return e.Scatter(ds, spec, opts)
	case KindArea:
		return e.Area(ds, spec, opts)
	}
	return nil, unsupported("chart kind %q", kind)
}

// Chart builds a chart and enforces the byte budget on the result.
func (e *Engine) Chart(ds *dataset.Dataset, kind ChartKind, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	rec, err := e.Build(ds, kind, spec, opts)
	if err != nil {
		e.logger.Debug("Chart build failed",
			zap.String("kind", string(kind)),
			zap.Strings("columns", spec.Columns),
			zap.Error(err))
		return nil, err
	}

	guarded, err := EnforceBudget(rec, opts.MaxBytes)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Chart built",
		zap.String("dataset", ds.Name),
		zap.String("kind", string(kind)),
		zap.Strings("columns", spec.Columns),
		zap.Int("points", len(guarded.Data)),
		zap.Bool("truncated", guarded.Note != ""))
	return guarded, nil
}

// requireColumn resolves a column name for a chart kind.
func requireColumn(ds *dataset.Dataset, name string, kind ChartKind) (*dataset.Column, error) {
	if name == "" {
		return nil, unsupported("%s chart requires a column", kind)
	}
	col, ok := ds.Column(name)
	if !ok {
		return nil, columnNotFound(ds.Name, name)
	}
	return col, nil
}

func titleOr(override, format string, args ...any) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf(format, args...)
}

func colorScheme(column string) string {
	if strings.Contains(strings.ToLower(column), "sales") {
		return "business"
	}
	return "default"
}
