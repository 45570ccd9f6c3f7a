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

package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Change events passed to WatcherConfig.OnChange.
const (
	EventLoaded  = "loaded"
	EventRemoved = "removed"
)

// ChangeCallback is called after the registry has been updated. ds is nil for
// EventRemoved.
type ChangeCallback func(name string, ds *Dataset, event string)

// WatcherConfig configures directory hot-reload.
type WatcherConfig struct {
	Dir        string         // Directory holding data files
	DebounceMs int            // Debounce delay in milliseconds (default: 500ms)
	Logger     *zap.Logger    // Logger for events
	OnChange   ChangeCallback // Optional
	Load       LoadOptions    // Applied to every file; Name is always derived from the path
}

// Watcher keeps a MemoryRegistry in sync with the supported data files of a
// directory.
type Watcher struct {
	registry *MemoryRegistry
	watcher  *fsnotify.Watcher
	config   WatcherConfig
	logger   *zap.Logger

	debounceTimers map[string]*time.Timer
	debounceMu     sync.Mutex

	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	stopMu  sync.Mutex
}

// NewWatcher creates a watcher for config.Dir feeding registry.
func NewWatcher(registry *MemoryRegistry, config WatcherConfig) (*Watcher, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry is required")
	}
	info, err := os.Stat(config.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", config.Dir)
	}
	if config.DebounceMs <= 0 {
		config.DebounceMs = 500
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		registry:       registry,
		watcher:        fw,
		config:         config,
		logger:         config.Logger,
		debounceTimers: make(map[string]*time.Timer),
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}, nil
}

// LoadAll loads every supported file already present in the directory.
// Files that fail to load are logged and skipped.
func (w *Watcher) LoadAll() int {
	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		w.logger.Error("Failed to list data directory", zap.String("dir", w.config.Dir), zap.Error(err))
		return 0
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if w.load(filepath.Join(w.config.Dir, entry.Name())) {
			loaded++
		}
	}
	return loaded
}

// Start loads the existing files and begins watching for changes.
func (w *Watcher) Start(ctx context.Context) error {
	w.stopMu.Lock()
	defer w.stopMu.Unlock()
	if w.started || w.stopped {
		return fmt.Errorf("watcher already started")
	}

	if err := w.watcher.Add(w.config.Dir); err != nil {
		return fmt.Errorf("failed to watch data directory: %w", err)
	}

	loaded := w.LoadAll()
	w.logger.Info("Dataset hot-reload started",
		zap.String("directory", w.config.Dir),
		zap.Int("datasets", loaded),
		zap.Int("debounce_ms", w.config.DebounceMs))

	w.started = true
	go w.watchLoop(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.stopMu.Lock()
	defer w.stopMu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopCh)
	err := w.watcher.Close()
	if w.started {
		<-w.doneCh
	}

	w.debounceMu.Lock()
	for name, timer := range w.debounceTimers {
		timer.Stop()
		delete(w.debounceTimers, name)
	}
	w.debounceMu.Unlock()
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			w.logger.Debug("Dataset watcher stopped")
			return

		case <-ctx.Done():
			w.logger.Debug("Dataset watcher context cancelled")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Dataset watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	filename := filepath.Base(event.Name)
	if filename == "" || filename[0] == '.' || !SupportedFile(filename) {
		return
	}
	// A chmod alone never changes content, and letting it reach the
	// debouncer would replace a pending write for the same file.
	if event.Op == fsnotify.Chmod {
		return
	}
	w.debounceEvent(event)
}

// debounceEvent collapses bursts of writes (editor saves, partial copies)
// into one reload per file.
func (w *Watcher) debounceEvent(event fsnotify.Event) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, exists := w.debounceTimers[event.Name]; exists {
		timer.Stop()
	}

	w.debounceTimers[event.Name] = time.AfterFunc(
		time.Duration(w.config.DebounceMs)*time.Millisecond,
		func() {
			w.processEvent(event)

			w.debounceMu.Lock()
			delete(w.debounceTimers, event.Name)
			w.debounceMu.Unlock()
		},
	)
}

func (w *Watcher) processEvent(event fsnotify.Event) {
	switch {
	case event.Op&fsnotify.Remove == fsnotify.Remove, event.Op&fsnotify.Rename == fsnotify.Rename:
		w.remove(event.Name)
	case event.Op&fsnotify.Create == fsnotify.Create, event.Op&fsnotify.Write == fsnotify.Write:
		w.load(event.Name)
	}
}

func (w *Watcher) load(path string) bool {
	if !SupportedFile(path) {
		return false
	}
	opts := w.config.Load
	opts.Name = ""
	ds, err := LoadFile(path, opts)
	if err != nil {
		w.logger.Warn("Failed to load dataset", zap.String("path", path), zap.Error(err))
		return false
	}
	if err := w.registry.Register(ds); err != nil {
		w.logger.Warn("Failed to register dataset", zap.String("path", path), zap.Error(err))
		return false
	}

	w.logger.Info("Dataset loaded",
		zap.String("name", ds.Name),
		zap.String("path", path),
		zap.Int("rows", ds.RowCount()),
		zap.Int("columns", len(ds.ColumnNames())))

	if w.config.OnChange != nil {
		w.config.OnChange(ds.Name, ds, EventLoaded)
	}
	return true
}

func (w *Watcher) remove(path string) {
	name := NameFromPath(path)
	if !w.registry.Remove(name) {
		return
	}
	w.logger.Info("Dataset removed", zap.String("name", name), zap.String("path", path))
	if w.config.OnChange != nil {
		w.config.OnChange(name, nil, EventRemoved)
	}
}
