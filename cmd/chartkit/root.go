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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartkit/internal/log"
	"github.com/teradata-labs/chartkit/internal/version"
)

var (
	cfgFile string
	config  *Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "chartkit",
	Short: "Chart data derivation for tabular datasets",
	Long: `chartkit turns CSV, TSV, Excel and SQL datasets into compact chart payloads
(histogram, line, bar, pie, scatter, area and dashboards) wrapped in a
recharts code block that chat frontends render directly.`,
	Version:       version.Get(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $CHARTKIT_HOME/chartkit.yaml)")

	// Logging flags
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")

	// Chart flags
	rootCmd.PersistentFlags().Int("max-points", 50, "Maximum sampled points per chart")
	rootCmd.PersistentFlags().Int("max-bins", 10, "Maximum equal-width histogram bins")
	rootCmd.PersistentFlags().Int("max-bytes", 1000, "Encoded size budget per chart in bytes")

	// Data source flags
	rootCmd.PersistentFlags().String("driver", "", "SQL driver (sqlite3, postgres, mysql)")
	rootCmd.PersistentFlags().String("dsn", "", "SQL data source name")
	rootCmd.PersistentFlags().String("query", "", "SQL query producing the dataset")
	rootCmd.PersistentFlags().String("sheet", "", "Excel sheet to read (default: first sheet)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.file", rootCmd.PersistentFlags().Lookup("log-file"))

	_ = viper.BindPFlag("charts.max_points", rootCmd.PersistentFlags().Lookup("max-points"))
	_ = viper.BindPFlag("charts.max_bins", rootCmd.PersistentFlags().Lookup("max-bins"))
	_ = viper.BindPFlag("charts.max_bytes", rootCmd.PersistentFlags().Lookup("max-bytes"))

	_ = viper.BindPFlag("sql.driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("sql.dsn", rootCmd.PersistentFlags().Lookup("dsn"))
	_ = viper.BindPFlag("sql.query", rootCmd.PersistentFlags().Lookup("query"))
	_ = viper.BindPFlag("data.sheet", rootCmd.PersistentFlags().Lookup("sheet"))
}

func initConfig() {
	var err error
	config, err = LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.New(config.Logging.Level, config.Logging.Format, config.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	log.SetLogger(logger)

	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("Config file loaded", zap.String("path", used))
	}
}
