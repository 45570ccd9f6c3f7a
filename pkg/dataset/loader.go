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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// MaxRows caps how many data rows a file loader reads.
const MaxRows = 1_000_000

// LoadOptions controls file loading.
type LoadOptions struct {
	Name      string // Dataset name (default: file base name without extensions)
	Delimiter rune   // CSV delimiter (default: ',' or '\t' for .tsv)
	Sheet     string // Excel sheet (default: first sheet)
	MaxRows   int    // Row cap (default: MaxRows)
}

// timeLayouts are tried in order when inferring time columns.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// missingTokens are cell values treated as missing.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	"none": true,
}

// SupportedFile reports whether LoadFile understands the file's extension.
func SupportedFile(path string) bool {
	_, ok := fileFormat(path)
	return ok
}

// NameFromPath derives a dataset name from a file path: "data/sales.csv.gz"
// becomes "sales".
func NameFromPath(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

// LoadFile reads a CSV, TSV (optionally gzip-compressed) or XLSX file.
func LoadFile(path string, opts LoadOptions) (*Dataset, error) {
	format, ok := fileFormat(path)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s (supported: .csv, .tsv, .csv.gz, .tsv.gz, .xlsx)", path)
	}
	if opts.Name == "" {
		opts.Name = NameFromPath(path)
	}

	if format == "xlsx" {
		return ReadExcelFile(path, opts)
	}

	// #nosec G304 -- path is supplied by the operator
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(format, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	if opts.Delimiter == 0 && strings.HasPrefix(format, "tsv") {
		opts.Delimiter = '\t'
	}
	return ReadCSV(r, opts)
}

func fileFormat(path string) (string, bool) {
	lower := strings.ToLower(path)
	for _, f := range []string{"csv.gz", "tsv.gz", "csv", "tsv", "xlsx"} {
		if strings.HasSuffix(lower, "."+f) {
			return f, true
		}
	}
	return "", false
}

// ReadCSV parses delimited text with a header row.
func ReadCSV(r io.Reader, opts LoadOptions) (*Dataset, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	maxRows := opts.MaxRows
	if maxRows <= 0 {
		maxRows = MaxRows
	}
	var rows [][]string
	for len(rows) < maxRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, record)
	}
	return FromRecords(opts.Name, headers, rows)
}

// FromRecords builds a dataset from text cells, inferring each column's
// declared type. Short rows are padded with missing values.
func FromRecords(name string, headers []string, rows [][]string) (*Dataset, error) {
	if len(headers) == 0 {
		return nil, fmt.Errorf("no columns")
	}
	columns := make([]*Column, len(headers))
	for j, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("column_%d", j+1)
		}
		cells := make([]string, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = row[j]
			}
		}
		columns[j] = inferColumn(header, cells)
	}
	return New(name, columns...)
}

// inferColumn picks the narrowest type every present cell satisfies:
// int, float, time, bool, then string.
func inferColumn(name string, cells []string) *Column {
	candidates := []DataType{TypeInt, TypeFloat, TypeTime, TypeBool}
	alive := map[DataType]bool{TypeInt: true, TypeFloat: true, TypeTime: true, TypeBool: true}
	present := 0

	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if isMissingToken(cell) {
			continue
		}
		present++
		for _, typ := range candidates {
			if alive[typ] {
				if _, ok := parseCell(cell, typ); !ok {
					alive[typ] = false
				}
			}
		}
	}

	typ := TypeString
	if present == 0 {
		typ = TypeUntyped
	} else {
		for _, c := range candidates {
			if alive[c] {
				typ = c
				break
			}
		}
	}

	values := make([]any, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if isMissingToken(cell) {
			continue
		}
		if typ == TypeString || typ == TypeUntyped {
			values[i] = cell
			continue
		}
		values[i], _ = parseCell(cell, typ)
	}
	return NewColumn(name, typ, values)
}

func isMissingToken(cell string) bool {
	return missingTokens[strings.ToLower(cell)]
}

func parseCell(cell string, typ DataType) (any, bool) {
	switch typ {
	case TypeInt:
		n, err := strconv.ParseInt(cell, 10, 64)
		return n, err == nil
	case TypeFloat:
		f, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case TypeTime:
		return parseTime(cell)
	case TypeBool:
		switch strings.ToLower(cell) {
		case "true", "yes":
			return true, true
		case "false", "no":
			return false, true
		}
		return nil, false
	}
	return cell, true
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
