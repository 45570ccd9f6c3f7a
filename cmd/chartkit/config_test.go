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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/chartkit/pkg/dataset"
	"github.com/teradata-labs/chartkit/pkg/visualization"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chartkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("CHARTKIT_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, visualization.DefaultOptions(), cfg.ChartOptions())
	assert.Equal(t, dataset.MaxRows, cfg.Data.MaxRows)
	assert.Equal(t, 500, cfg.Data.DebounceMs)
	_, ok := cfg.SQLSource()
	assert.False(t, ok)
}

func TestLoadConfig_File(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, `
logging:
  level: debug
  format: json
charts:
  max_points: 20
  max_bytes: 4000
  pie_slices: 5
  seed: 42
data:
  delimiter: ";"
  sheet: Orders
sql:
  driver: sqlite3
  dsn: file:orders.db
  query: SELECT * FROM orders
  name: orders
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	opts := cfg.ChartOptions()
	assert.Equal(t, 20, opts.MaxPoints)
	assert.Equal(t, 4000, opts.MaxBytes)
	assert.Equal(t, 5, opts.PieSlices)
	assert.Equal(t, visualization.DefaultTopN, opts.TopN)
	require.NotNil(t, opts.Seed)
	assert.Equal(t, int64(42), *opts.Seed)

	load := cfg.LoadOptions("/data/sales.csv")
	assert.Equal(t, "sales", load.Name)
	assert.Equal(t, ';', load.Delimiter)
	assert.Equal(t, "Orders", load.Sheet)

	src, ok := cfg.SQLSource()
	require.True(t, ok)
	assert.Equal(t, dataset.SQLSource{Driver: "sqlite3", DSN: "file:orders.db", Query: "SELECT * FROM orders", Name: "orders"}, src)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	viper.Reset()
	path := writeConfig(t, "charts:\n  max_bytes: 4000\n")
	t.Setenv("CHARTKIT_CHARTS_MAX_BYTES", "2500")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.Charts.MaxBytes)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "max points", body: "charts:\n  max_points: 1\n"},
		{name: "max bytes", body: "charts:\n  max_bytes: -5\n"},
		{name: "delimiter", body: "data:\n  delimiter: \"::\"\n"},
		{name: "yaml", body: "charts: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			_, err := LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_Example(t *testing.T) {
	viper.Reset()
	cfg, err := LoadConfig("../../examples/chartkit.yaml")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 3000, cfg.Charts.MaxBytes)
	require.NotNil(t, cfg.Charts.Seed)
	_, ok := cfg.SQLSource()
	assert.False(t, ok)

	path := filepath.Join("..", "..", "examples", "data", "sales.csv")
	ds, err := dataset.LoadFile(path, cfg.LoadOptions(path))
	require.NoError(t, err)
	assert.Equal(t, "sales", ds.Name)
	assert.Equal(t, 120, ds.RowCount())

	classes := map[string]dataset.Class{}
	for _, col := range ds.Columns() {
		classes[col.Name] = dataset.Classify(col)
	}
	assert.Equal(t, map[string]dataset.Class{
		"order_id":   dataset.ClassNumeric,
		"ordered_at": dataset.ClassDatetime,
		"region":     dataset.ClassCategorical,
		"product":    dataset.ClassCategorical,
		"quantity":   dataset.ClassNumeric,
		"amount":     dataset.ClassNumeric,
	}, classes)
}
