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
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDatasetNotFound is returned by Lookup for an unknown name.
var ErrDatasetNotFound = errors.New("dataset not found")

// Registry resolves datasets by name.
type Registry interface {
	Lookup(name string) (*Dataset, error)
}

// MemoryRegistry is an in-process Registry. Datasets are replaced wholesale,
// never mutated in place, so a Dataset handed out by Lookup stays consistent.
type MemoryRegistry struct {
	mu       sync.RWMutex
	datasets map[string]*Dataset
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		datasets: make(map[string]*Dataset),
	}
}

// Register stores ds under its name, replacing any previous dataset.
func (r *MemoryRegistry) Register(ds *Dataset) error {
	if ds == nil {
		return fmt.Errorf("dataset is nil")
	}
	if ds.Name == "" {
		return fmt.Errorf("dataset name is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.datasets[ds.Name] = ds
	return nil
}

// Lookup returns the dataset registered under name.
func (r *MemoryRegistry) Lookup(name string) (*Dataset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ds, ok := r.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}
	return ds, nil
}

// Remove drops a dataset. It reports whether one was registered.
func (r *MemoryRegistry) Remove(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.datasets[name]
	delete(r.datasets, name)
	return ok
}

// Names returns the registered dataset names, sorted.
func (r *MemoryRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.datasets))
	for name := range r.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered datasets.
func (r *MemoryRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.datasets)
}
