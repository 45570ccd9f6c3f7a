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

package shuttle

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Registry manages tool registration and lookup.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a registry holding tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool, replacing any tool with the same name.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns the registered tool names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered tools.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute validates params against the tool's schema and runs it. Unknown
// tools and invalid params come back as failed results, not errors.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]interface{}) (*Result, error) {
	start := time.Now()
	tool, ok := r.Get(name)
	if !ok {
		return &Result{
			Success: false,
			Error: &Error{
				Code:       "TOOL_NOT_FOUND",
				Message:    fmt.Sprintf("tool %q is not registered", name),
				Suggestion: fmt.Sprintf("Available tools: %v", r.List()),
			},
			ExecutionTimeMs: time.Since(start).Milliseconds(),
		}, nil
	}

	if err := ValidateParams(tool.InputSchema(), params); err != nil {
		return &Result{
			Success: false,
			Error: &Error{
				Code:       "INVALID_PARAMS",
				Message:    err.Error(),
				Suggestion: "Check the parameters against the tool's input schema",
			},
			ExecutionTimeMs: time.Since(start).Milliseconds(),
		}, nil
	}
	return tool.Execute(ctx, params)
}
