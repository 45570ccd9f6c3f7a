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

// Class is the chart-facing classification of a column.
type Class string

const (
	ClassNumeric     Class = "numeric"
	ClassCategorical Class = "categorical"
	ClassDatetime    Class = "datetime"
	ClassUnknown     Class = "unknown"
)

// Classify maps a column's declared storage type to a Class. It never looks
// at the values themselves, so an empty column classifies by its declared
// type and an untyped one is categorical.
func Classify(col *Column) Class {
	if col == nil {
		return ClassUnknown
	}
	switch col.Type {
	case TypeTime:
		return ClassDatetime
	case TypeInt, TypeFloat:
		return ClassNumeric
	case TypeString, TypeBool, TypeUntyped:
		return ClassCategorical
	default:
		return ClassUnknown
	}
}
