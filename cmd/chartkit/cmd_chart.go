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

	"github.com/spf13/cobra"
)

var chartCmd = &cobra.Command{
	Use:   "chart [file]",
	Short: "Build one chart from a dataset",
	Long: `Build one chart and print it as a recharts block.

Examples:
  chartkit chart sales.csv --type histogram --column SALES
  chartkit chart sales.csv --type bar --column SALES --group-by COUNTRY
  chartkit chart sales.xlsx --type scatter --columns SALES,QUANTITYORDERED --seed 7
  chartkit chart --driver sqlite3 --dsn orders.db --query "SELECT * FROM orders" --type line --column ORDERDATE`,
	Args: cobra.MaximumNArgs(1),
	RunE: runChart,
}

func init() {
	chartCmd.Flags().StringP("type", "t", "", "Chart type: histogram, line, bar, pie, scatter, area (required)")
	chartCmd.Flags().StringP("column", "c", "", "Column to chart")
	chartCmd.Flags().StringSlice("columns", nil, "Columns to chart (scatter: x,y)")
	chartCmd.Flags().StringP("group-by", "g", "", "Grouping column (bar, pie) or y column (scatter)")
	chartCmd.Flags().String("title", "", "Chart title override")
	chartCmd.Flags().Int64("seed", 0, "Seed for random sampling")
	_ = chartCmd.MarkFlagRequired("type")
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ds, err := loadDataset(ctx, config, args)
	if err != nil {
		return err
	}
	tools, err := newTools(config, ds)
	if err != nil {
		return err
	}

	kind, _ := cmd.Flags().GetString("type")
	params := map[string]interface{}{
		"dataset":    ds.Name,
		"chart_type": kind,
	}
	if column, _ := cmd.Flags().GetString("column"); column != "" {
		params["column"] = column
	}
	if columns, _ := cmd.Flags().GetStringSlice("columns"); len(columns) > 0 {
		items := make([]interface{}, len(columns))
		for i, c := range columns {
			items[i] = c
		}
		params["columns"] = items
	}
	if groupBy, _ := cmd.Flags().GetString("group-by"); groupBy != "" {
		params["group_by"] = groupBy
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		params["title"] = title
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		params["seed"] = seed
	}

	text, err := runTool(ctx, tools, "create_enhanced_chart", params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
