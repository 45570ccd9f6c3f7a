// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teradata-labs/chartkit/internal/log"
	"github.com/teradata-labs/chartkit/pkg/dataset"
	"github.com/teradata-labs/chartkit/pkg/shuttle"
	"github.com/teradata-labs/chartkit/pkg/visualization"
)

// loadDataset reads the dataset named by a file argument, or runs the
// configured SQL query when no file is given.
func loadDataset(ctx context.Context, cfg *Config, args []string) (*dataset.Dataset, error) {
	if len(args) > 0 {
		ds, err := dataset.LoadFile(args[0], cfg.LoadOptions(args[0]))
		if err != nil {
			return nil, err
		}
		log.Info("Dataset loaded from file",
			zap.String("path", args[0]),
			zap.String("name", ds.Name),
			zap.Int("rows", ds.RowCount()))
		return ds, nil
	}

	src, ok := cfg.SQLSource()
	if !ok {
		return nil, fmt.Errorf("no dataset: pass a data file or --driver, --dsn and --query")
	}
	ds, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Dataset loaded from query",
		zap.String("driver", src.Driver),
		zap.String("name", ds.Name),
		zap.Int("rows", ds.RowCount()))
	return ds, nil
}

// newTools wires the chart tools over a registry holding datasets.
func newTools(cfg *Config, datasets ...*dataset.Dataset) (*shuttle.Registry, error) {
	registry := dataset.NewMemoryRegistry()
	for _, ds := range datasets {
		if err := registry.Register(ds); err != nil {
			return nil, err
		}
	}
	return toolsFor(cfg, registry), nil
}

func toolsFor(cfg *Config, registry dataset.Registry) *shuttle.Registry {
	logger := log.Logger()
	engine := visualization.NewEngine(cfg.ChartOptions(), logger)
	return shuttle.NewRegistry(
		visualization.NewChartTool(registry, engine, logger),
		visualization.NewDashboardTool(registry, engine, logger),
	)
}

// runTool executes a tool and turns a failed result into an error carrying
// the caller-facing text.
func runTool(ctx context.Context, tools *shuttle.Registry, name string, params map[string]interface{}) (string, error) {
	result, err := tools.Execute(ctx, name, params)
	if err != nil {
		return "", err
	}
	if !result.Success {
		return "", fmt.Errorf("%s", result.Text())
	}
	return result.Text(), nil
}
