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

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [file]",
	Short: "Build a dashboard of up to four charts",
	Long: `Build a dashboard and print it as a recharts block.

Without --columns, up to three numeric and two categorical columns are
picked in dataset order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringSlice("columns", nil, "Columns to chart (default: auto-selected)")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	ds, err := loadDataset(ctx, config, args)
	if err != nil {
		return err
	}
	tools, err := newTools(config, ds)
	if err != nil {
		return err
	}

	params := map[string]interface{}{"dataset": ds.Name}
	if columns, _ := cmd.Flags().GetStringSlice("columns"); len(columns) > 0 {
		items := make([]interface{}, len(columns))
		for i, c := range columns {
			items[i] = c
		}
		params["columns"] = items
	}

	text, err := runTool(ctx, tools, "create_dashboard", params)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
