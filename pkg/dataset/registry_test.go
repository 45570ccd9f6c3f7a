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
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRegistry_RegisterLookup(t *testing.T) {
	reg := NewMemoryRegistry()
	ds := MustNew("df_1", NewFloatColumn("sales", []float64{1, 2}))

	require.NoError(t, reg.Register(ds))

	got, err := reg.Lookup("df_1")
	require.NoError(t, err)
	assert.Same(t, ds, got)
	assert.Equal(t, 1, reg.Len())
}

func TestMemoryRegistry_NotFound(t *testing.T) {
	reg := NewMemoryRegistry()

	_, err := reg.Lookup("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatasetNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestMemoryRegistry_RejectsInvalid(t *testing.T) {
	reg := NewMemoryRegistry()
	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(MustNew("")))
}

func TestMemoryRegistry_ReplaceAndRemove(t *testing.T) {
	reg := NewMemoryRegistry()
	first := MustNew("b", NewFloatColumn("x", []float64{1}))
	second := MustNew("b", NewFloatColumn("x", []float64{1, 2}))

	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(MustNew("a")))
	require.NoError(t, reg.Register(second))

	got, err := reg.Lookup("b")
	require.NoError(t, err)
	assert.Equal(t, 2, got.RowCount())
	assert.Equal(t, []string{"a", "b"}, reg.Names())

	assert.True(t, reg.Remove("a"))
	assert.False(t, reg.Remove("a"))
	assert.Equal(t, []string{"b"}, reg.Names())
}

func TestMemoryRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewMemoryRegistry()
	require.NoError(t, reg.Register(MustNew("shared", NewFloatColumn("x", []float64{1}))))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = reg.Lookup("shared")
		}()
		go func() {
			defer wg.Done()
			_ = reg.Register(MustNew("shared", NewFloatColumn("x", []float64{2})))
		}()
	}
	wg.Wait()

	_, err := reg.Lookup("shared")
	assert.NoError(t, err)
}
