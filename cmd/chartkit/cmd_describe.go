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
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/teradata-labs/chartkit/pkg/dataset"
	"github.com/teradata-labs/chartkit/pkg/visualization"
)

var describeCmd = &cobra.Command{
	Use:   "describe [file]",
	Short: "Show column classes and the dashboard auto-selection",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

// description is the describe command output.
type description struct {
	Name      string               `json:"name"`
	Rows      int                  `json:"rows"`
	Columns   []dataset.Descriptor `json:"columns"`
	Dashboard []string             `json:"dashboard_columns"`
}

func describe(ds *dataset.Dataset) description {
	return description{
		Name:      ds.Name,
		Rows:      ds.RowCount(),
		Columns:   ds.Descriptors(),
		Dashboard: visualization.AutoSelectColumns(ds),
	}
}

func runDescribe(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset(cmd.Context(), config, args)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(describe(ds))
}
