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
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadExcelFile loads one sheet of an .xlsx workbook. The first row holds the
// headers.
func ReadExcelFile(path string, opts LoadOptions) (*Dataset, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer file.Close()

	if opts.Name == "" {
		opts.Name = NameFromPath(path)
	}
	return readWorkbook(file, opts)
}

func readWorkbook(file *excelize.File, opts LoadOptions) (*Dataset, error) {
	sheet := opts.Sheet
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = MaxRows
	}
	data := rows[1:]
	if len(data) > maxRows {
		data = data[:maxRows]
	}
	return FromRecords(opts.Name, rows[0], data)
}
