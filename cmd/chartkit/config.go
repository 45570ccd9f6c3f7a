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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teradata-labs/chartkit/pkg/dataset"
	"github.com/teradata-labs/chartkit/pkg/visualization"
)

// DefaultConfigFileName is searched for without extension.
const DefaultConfigFileName = "chartkit"

// Config is the chartkit configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Charts  ChartsConfig  `mapstructure:"charts"`
	Data    DataConfig    `mapstructure:"data"`
	SQL     SQLConfig     `mapstructure:"sql"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // text, json
	File   string `mapstructure:"file"`   // File path for log output (optional, defaults to stderr)
}

// ChartsConfig holds the engine defaults.
type ChartsConfig struct {
	MaxPoints     int    `mapstructure:"max_points"`
	MaxBins       int    `mapstructure:"max_bins"`
	MaxBytes      int    `mapstructure:"max_bytes"`
	TopN          int    `mapstructure:"top_n"`
	PieSlices     int    `mapstructure:"pie_slices"`
	ScatterPoints int    `mapstructure:"scatter_points"`
	Seed          *int64 `mapstructure:"seed"` // Unset draws a fresh seed per chart
}

// DataConfig configures file loading and the watched directory.
type DataConfig struct {
	Dir        string `mapstructure:"dir"`
	Delimiter  string `mapstructure:"delimiter"`
	Sheet      string `mapstructure:"sheet"`
	MaxRows    int    `mapstructure:"max_rows"`
	DebounceMs int    `mapstructure:"debounce_ms"`
}

// SQLConfig names a query-backed dataset.
type SQLConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Query  string `mapstructure:"query"`
	Name   string `mapstructure:"name"`
}

// LoadConfig loads configuration from multiple sources with proper priority:
// 1. Command line flags (highest priority)
// 2. Environment variables (CHARTKIT_*)
// 3. Config file
// 4. Defaults (lowest priority)
func LoadConfig(cfgFile string) (*Config, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home := os.Getenv("CHARTKIT_HOME"); home != "" {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.AddConfigPath("/etc/chartkit/")
		viper.SetConfigName(DefaultConfigFileName)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", viper.ConfigFileUsed(), err)
		}
	}

	viper.SetEnvPrefix("CHARTKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("charts.max_points", visualization.DefaultMaxPoints)
	viper.SetDefault("charts.max_bins", visualization.DefaultMaxBins)
	viper.SetDefault("charts.max_bytes", visualization.DefaultMaxBytes)
	viper.SetDefault("charts.top_n", visualization.DefaultTopN)
	viper.SetDefault("charts.pie_slices", visualization.DefaultPieSlices)
	viper.SetDefault("charts.scatter_points", visualization.DefaultScatterPoints)

	viper.SetDefault("data.dir", ".")
	viper.SetDefault("data.max_rows", dataset.MaxRows)
	viper.SetDefault("data.debounce_ms", 500)
}

// Validate rejects settings the engine cannot honor.
func (c *Config) Validate() error {
	if c.Charts.MaxPoints < 2 {
		return fmt.Errorf("charts.max_points must be at least 2, got %d", c.Charts.MaxPoints)
	}
	if c.Charts.MaxBytes <= 0 {
		return fmt.Errorf("charts.max_bytes must be positive, got %d", c.Charts.MaxBytes)
	}
	if len([]rune(c.Data.Delimiter)) > 1 {
		return fmt.Errorf("data.delimiter must be a single character, got %q", c.Data.Delimiter)
	}
	return nil
}

// ChartOptions converts the chart settings to engine defaults.
func (c *Config) ChartOptions() visualization.Options {
	return visualization.Options{
		MaxPoints:     c.Charts.MaxPoints,
		MaxBins:       c.Charts.MaxBins,
		MaxBytes:      c.Charts.MaxBytes,
		TopN:          c.Charts.TopN,
		PieSlices:     c.Charts.PieSlices,
		ScatterPoints: c.Charts.ScatterPoints,
		Seed:          c.Charts.Seed,
	}
}

// LoadOptions converts the data settings for a file at path.
func (c *Config) LoadOptions(path string) dataset.LoadOptions {
	opts := dataset.LoadOptions{
		Name:    dataset.NameFromPath(path),
		Sheet:   c.Data.Sheet,
		MaxRows: c.Data.MaxRows,
	}
	if r := []rune(c.Data.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}

// SQLSource returns the configured query source, or false when no query is
// set.
func (c *Config) SQLSource() (dataset.SQLSource, bool) {
	if c.SQL.Query == "" {
		return dataset.SQLSource{}, false
	}
	name := c.SQL.Name
	if name == "" {
		name = "query"
	}
	return dataset.SQLSource{
		Driver: c.SQL.Driver,
		DSN:    c.SQL.DSN,
		Query:  c.SQL.Query,
		Name:   name,
	}, true
}

// dataDir returns the absolute watched directory.
func (c *Config) dataDir() (string, error) {
	return filepath.Abs(c.Data.Dir)
}
