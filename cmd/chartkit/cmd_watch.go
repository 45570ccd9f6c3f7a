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
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/teradata-labs/chartkit/internal/log"
	"github.com/teradata-labs/chartkit/pkg/dataset"
	"github.com/teradata-labs/chartkit/pkg/shuttle"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep a directory of data files loaded and print a dashboard on every change",
	Long: `Watch a directory of CSV, TSV and Excel files. Every file is loaded as a
dataset named after the file; edits reload it and deletions drop it. A
dashboard is printed for each dataset as it is (re)loaded.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().String("dir", "", "Directory to watch (default: data.dir)")
	watchCmd.Flags().Bool("quiet", false, "Only log changes, do not print dashboards")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	if dir != "" {
		config.Data.Dir = dir
	}
	quiet, _ := cmd.Flags().GetBool("quiet")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := startWatch(ctx, config, cmd.OutOrStdout(), quiet)
	if err != nil {
		return err
	}
	<-ctx.Done()
	return watcher.Stop()
}

// startWatch loads the configured directory into a registry and keeps it in
// sync, writing a dashboard to out for each loaded dataset unless quiet.
func startWatch(ctx context.Context, cfg *Config, out io.Writer, quiet bool) (*dataset.Watcher, error) {
	dir, err := cfg.dataDir()
	if err != nil {
		return nil, err
	}

	registry := dataset.NewMemoryRegistry()
	tools := toolsFor(cfg, registry)

	var mu sync.Mutex
	onChange := func(name string, ds *dataset.Dataset, event string) {
		if event != dataset.EventLoaded || quiet {
			return
		}
		printDashboard(ctx, tools, name, out, &mu)
	}

	watcher, err := dataset.NewWatcher(registry, dataset.WatcherConfig{
		Dir:        dir,
		DebounceMs: cfg.Data.DebounceMs,
		Logger:     log.Logger(),
		OnChange:   onChange,
		Load:       cfg.LoadOptions(dir),
	})
	if err != nil {
		return nil, err
	}
	if err := watcher.Start(ctx); err != nil {
		return nil, err
	}
	log.Info("Watching data directory", zap.String("dir", dir), zap.Strings("datasets", registry.Names()))
	return watcher, nil
}

func printDashboard(ctx context.Context, tools *shuttle.Registry, name string, out io.Writer, mu *sync.Mutex) {
	text, err := runTool(ctx, tools, "create_dashboard", map[string]interface{}{"dataset": name})
	if err != nil {
		log.Warn("Dashboard failed", zap.String("dataset", name), zap.Error(err))
		return
	}
	mu.Lock()
	defer mu.Unlock()
	_, _ = fmt.Fprintf(out, "# %s\n%s\n", name, text)
}
