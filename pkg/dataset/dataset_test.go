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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("bad", NewFloatColumn("a", []float64{1, 2}), NewFloatColumn("b", []float64{1}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 1 rows, expected 2")

	_, err = New("dup", NewFloatColumn("a", []float64{1}), NewIntColumn("a", []int64{1}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column")

	ds, err := New("ok", NewFloatColumn("a", []float64{1, 2}), NewStringColumn("b", []string{"x", "y"}))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.RowCount())
	assert.Equal(t, []string{"a", "b"}, ds.ColumnNames())

	col, ok := ds.Column("b")
	require.True(t, ok)
	assert.Equal(t, "b", col.Name)

	_, ok = ds.Column("missing")
	assert.False(t, ok)
}

func TestColumn_MissingValues(t *testing.T) {
	col := NewColumn("v", TypeFloat, []any{1.0, nil, math.NaN(), 4.0, math.Inf(1)})

	assert.Equal(t, []int{0, 3}, col.Present())
	assert.Equal(t, []float64{1, 4}, col.Floats())
	assert.True(t, col.IsMissing(1))
	assert.True(t, col.IsMissing(2))
	assert.False(t, col.IsMissing(3))

	_, ok := col.Float(4)
	assert.False(t, ok, "infinity must never surface as a value")
}

func TestColumn_Times(t *testing.T) {
	jan := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	col := NewTimeColumn("d", []time.Time{jan, {}, jan.AddDate(0, 1, 0)})

	times := col.Times()
	require.Len(t, times, 2)
	assert.Equal(t, jan, times[0])
	assert.Equal(t, []int{0, 2}, col.Present())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		col      *Column
		expected Class
	}{
		{"float", NewFloatColumn("f", []float64{1.5}), ClassNumeric},
		{"int", NewIntColumn("i", []int64{1}), ClassNumeric},
		{"string", NewStringColumn("s", []string{"a"}), ClassCategorical},
		{"bool", NewColumn("b", TypeBool, []any{true}), ClassCategorical},
		{"time", NewTimeColumn("t", []time.Time{time.Now()}), ClassDatetime},
		{"empty numeric keeps declared type", NewFloatColumn("f", nil), ClassNumeric},
		{"untyped defaults to categorical", NewColumn("u", TypeUntyped, []any{nil, nil}), ClassCategorical},
		{"mixed is unknown", NewColumn("m", TypeMixed, []any{1.0, "x"}), ClassUnknown},
		{"string of digits stays categorical", NewStringColumn("zip", []string{"02139"}), ClassCategorical},
		{"nil column", nil, ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.col))
		})
	}
}

func TestDescriptors(t *testing.T) {
	ds := MustNew("sales",
		NewFloatColumn("amount", []float64{1}),
		NewStringColumn("region", []string{"north"}),
		NewTimeColumn("date", []time.Time{time.Now()}),
	)

	desc := ds.Descriptors()
	require.Len(t, desc, 3)
	assert.Equal(t, Descriptor{Name: "amount", Type: TypeFloat, Class: ClassNumeric}, desc[0])
	assert.Equal(t, ClassCategorical, desc[1].Class)
	assert.Equal(t, ClassDatetime, desc[2].Class)
}
