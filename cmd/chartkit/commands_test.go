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
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

const salesCSV = `ORDERDATE,PRODUCT,COUNTRY,SALES,QUANTITY
2024-01-05,A,US,10,1
2024-01-20,B,FR,20,2
2024-02-03,A,US,30,3
2024-03-10,C,DE,40,4
2024-03-11,A,US,50,5
`

func testConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Charts: ChartsConfig{
			MaxPoints: 50, MaxBins: 10, MaxBytes: 1000,
			TopN: 10, PieSlices: 8, ScatterPoints: 100,
		},
		Data: DataConfig{Dir: ".", MaxRows: 1000, DebounceMs: 50},
	}
}

func writeSales(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(salesCSV), 0o600))
	return path
}

func TestLoadDataset_File(t *testing.T) {
	path := writeSales(t, t.TempDir())

	ds, err := loadDataset(context.Background(), testConfig(), []string{path})
	require.NoError(t, err)
	assert.Equal(t, "sales", ds.Name)
	assert.Equal(t, 5, ds.RowCount())
}

func TestLoadDataset_NoSource(t *testing.T) {
	_, err := loadDataset(context.Background(), testConfig(), nil)
	assert.ErrorContains(t, err, "no dataset")
}

func TestLoadDataset_SQL(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "orders.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE orders (id INTEGER, region TEXT, amount REAL)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO orders VALUES (1, 'N', 9.5), (2, 'S', 3.25), (3, 'N', 1.0)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	cfg := testConfig()
	cfg.SQL = SQLConfig{Driver: "sqlite3", DSN: dbPath, Query: "SELECT * FROM orders", Name: "orders"}

	ds, err := loadDataset(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "orders", ds.Name)
	assert.Equal(t, 3, ds.RowCount())

	col, ok := ds.Column("amount")
	require.True(t, ok)
	assert.Equal(t, dataset.ClassNumeric, dataset.Classify(col))
}

func TestRunTool(t *testing.T) {
	ds, err := dataset.LoadFile(writeSales(t, t.TempDir()), dataset.LoadOptions{})
	require.NoError(t, err)
	tools, err := newTools(testConfig(), ds)
	require.NoError(t, err)
	ctx := context.Background()

	text, err := runTool(ctx, tools, "create_enhanced_chart", map[string]interface{}{
		"dataset": "sales", "chart_type": "bar", "column": "PRODUCT",
	})
	require.NoError(t, err)
	assert.Contains(t, text, `"label": "A"`)

	_, err = runTool(ctx, tools, "create_enhanced_chart", map[string]interface{}{
		"dataset": "other", "chart_type": "bar", "column": "PRODUCT",
	})
	assert.EqualError(t, err, "Dataset 'other' not found")
}

func TestDescribe(t *testing.T) {
	ds, err := dataset.LoadFile(writeSales(t, t.TempDir()), dataset.LoadOptions{})
	require.NoError(t, err)

	d := describe(ds)
	assert.Equal(t, 5, d.Rows)
	require.Len(t, d.Columns, 5)
	assert.Equal(t, dataset.ClassDatetime, d.Columns[0].Class)
	assert.Equal(t, []string{"SALES", "QUANTITY", "PRODUCT", "COUNTRY"}, d.Dashboard)
}

// lockedBuffer is a bytes.Buffer safe for the watcher's callbacks.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartWatch(t *testing.T) {
	dir := t.TempDir()
	writeSales(t, dir)
	cfg := testConfig()
	cfg.Data.Dir = dir

	var out lockedBuffer
	watcher, err := startWatch(context.Background(), cfg, &out, false)
	require.NoError(t, err)
	defer func() { _ = watcher.Stop() }()

	assert.Contains(t, out.String(), "# sales\nDashboard created for 4 key columns!")
}

func TestChartCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeSales(t, dir)
	cfgPath := filepath.Join(dir, "chartkit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("charts:\n  max_bytes: 100000\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", cfgPath, "chart", path, "--type", "line", "--column", "ORDERDATE"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	require.NoError(t, rootCmd.Execute())

	text := out.String()
	require.True(t, strings.HasPrefix(text, "Chart created successfully!"))
	body := text[strings.Index(text, "{"):strings.LastIndex(text, "}")+1]

	var chart map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &chart))
	assert.Equal(t, "line", chart["type"])
	assert.Equal(t, "Time Period", chart["x_label"])
	assert.Len(t, chart["data"], 3)
}
