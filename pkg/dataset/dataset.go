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

// Package dataset holds the tabular data model consumed by the chart engine:
// typed columns, structural classification, a name-keyed registry, and
// loaders for CSV, Excel and SQL sources.
package dataset

import (
	"fmt"
	"math"
	"time"
)

// DataType is the declared storage type of a column.
type DataType string

const (
	TypeUntyped DataType = ""      // No declared type (e.g. an empty column)
	TypeInt     DataType = "int"   // int64 values
	TypeFloat   DataType = "float" // float64 values
	TypeString  DataType = "string"
	TypeBool    DataType = "bool"
	TypeTime    DataType = "time"  // time.Time values
	TypeMixed   DataType = "mixed" // Cells of incompatible types
)

// Column is a named, ordered sequence of scalar values. A nil entry (or NaN
// in a float column) marks a missing value.
type Column struct {
	Name   string
	Type   DataType
	Values []any
}

// Len returns the number of rows, including missing ones.
func (c *Column) Len() int {
	return len(c.Values)
}

// IsMissing reports whether row i holds no usable value.
func (c *Column) IsMissing(i int) bool {
	return isMissing(c.Values[i])
}

// Present returns the indexes of all non-missing rows, in order.
func (c *Column) Present() []int {
	idx := make([]int, 0, len(c.Values))
	for i, v := range c.Values {
		if !isMissing(v) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Float returns row i as a float64. ok is false for missing or non-numeric
// values.
func (c *Column) Float(i int) (float64, bool) {
	return ToFloat(c.Values[i])
}

// Floats returns the non-missing numeric values in row order.
func (c *Column) Floats() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if f, ok := ToFloat(v); ok {
			out = append(out, f)
		}
	}
	return out
}

// Times returns the non-missing time values in row order.
func (c *Column) Times() []time.Time {
	out := make([]time.Time, 0, len(c.Values))
	for _, v := range c.Values {
		if t, ok := v.(time.Time); ok && !t.IsZero() {
			out = append(out, t)
		}
	}
	return out
}

// ToFloat converts a numeric scalar to float64. NaN and infinities are
// reported as missing so they never reach chart output.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x) || math.IsInf(x, 0)
	case float32:
		return math.IsNaN(float64(x)) || math.IsInf(float64(x), 0)
	case time.Time:
		return x.IsZero()
	}
	return false
}

// NewColumn creates a column with an explicit declared type.
func NewColumn(name string, typ DataType, values []any) *Column {
	return &Column{Name: name, Type: typ, Values: values}
}

// NewFloatColumn creates a float column. NaN entries are missing.
func NewFloatColumn(name string, values []float64) *Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return &Column{Name: name, Type: TypeFloat, Values: vals}
}

// NewIntColumn creates an integer column.
func NewIntColumn(name string, values []int64) *Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return &Column{Name: name, Type: TypeInt, Values: vals}
}

// NewStringColumn creates a string column. Empty strings are kept as values;
// use NewColumn with nil entries to express missing text.
func NewStringColumn(name string, values []string) *Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return &Column{Name: name, Type: TypeString, Values: vals}
}

// NewTimeColumn creates a time column. Zero times are missing.
func NewTimeColumn(name string, values []time.Time) *Column {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return &Column{Name: name, Type: TypeTime, Values: vals}
}

// Descriptor is the (name, class) pair reported for a column.
type Descriptor struct {
	Name  string   `json:"name"`
	Type  DataType `json:"type"`
	Class Class    `json:"class"`
}

// Dataset is an ordered collection of equally long named columns.
type Dataset struct {
	Name    string
	columns []*Column
	index   map[string]int
	rows    int
}

// New builds a dataset, checking that column names are unique and that all
// columns have the same length.
func New(name string, columns ...*Column) (*Dataset, error) {
	ds := &Dataset{
		Name:    name,
		columns: make([]*Column, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		if col == nil {
			return nil, fmt.Errorf("column %d is nil", i)
		}
		if _, dup := ds.index[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name)
		}
		if i == 0 {
			ds.rows = col.Len()
		} else if col.Len() != ds.rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, col.Len(), ds.rows)
		}
		ds.index[col.Name] = len(ds.columns)
		ds.columns = append(ds.columns, col)
	}
	return ds, nil
}

// MustNew is New for fixtures; it panics on invalid input.
func MustNew(name string, columns ...*Column) *Dataset {
	ds, err := New(name, columns...)
	if err != nil {
		panic(err)
	}
	return ds
}

// RowCount returns the number of rows.
func (d *Dataset) RowCount() int {
	return d.rows
}

// Column looks up a column by name.
func (d *Dataset) Column(name string) (*Column, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.columns[i], true
}

// Columns returns the columns in declared order.
func (d *Dataset) Columns() []*Column {
	out := make([]*Column, len(d.columns))
	copy(out, d.columns)
	return out
}

// ColumnNames returns the column names in declared order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, c := range d.columns {
		names[i] = c.Name
	}
	return names
}

// Descriptors classifies every column. The result is computed on each call.
func (d *Dataset) Descriptors() []Descriptor {
	out := make([]Descriptor, len(d.columns))
	for i, c := range d.columns {
		out[i] = Descriptor{Name: c.Name, Type: c.Type, Class: Classify(c)}
	}
	return out
}
