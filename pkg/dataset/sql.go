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
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"                          // mysql
	_ "github.com/lib/pq"                                       // postgres
	_ "github.com/teradata-labs/chartkit/internal/sqlitedriver" // sqlite3
)

// SQLSource describes a query-backed dataset.
type SQLSource struct {
	Driver string // "sqlite3", "postgres" or "mysql"
	DSN    string
	Query  string
	Name   string
}

// Open connects to the source database and loads the query result.
func (s SQLSource) Open(ctx context.Context) (*Dataset, error) {
	driver := s.Driver
	if driver == "sqlite" {
		driver = "sqlite3"
	}
	switch driver {
	case "sqlite3", "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported driver: %s (supported: sqlite3, postgres, mysql)", s.Driver)
	}

	db, err := sql.Open(driver, s.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	return LoadSQL(ctx, db, s.Name, s.Query)
}

// LoadSQL runs query and converts the result set to a dataset. Declared
// column types come from the driver; columns without one are typed from the
// scanned values.
func LoadSQL(ctx context.Context, db *sql.DB, name, query string, args ...any) (*Dataset, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	colTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to read column types: %w", err)
	}

	raw := make([][]any, len(colTypes))
	for rows.Next() {
		dest := make([]any, len(colTypes))
		ptrs := make([]any, len(colTypes))
		for i := range dest {
			ptrs[i] = &dest[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range dest {
			raw[i] = append(raw[i], v)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	columns := make([]*Column, len(colTypes))
	for i, ct := range colTypes {
		typ := sqlDataType(ct.DatabaseTypeName())
		if typ == TypeUntyped {
			typ = typeFromValues(raw[i])
		}
		values := make([]any, len(raw[i]))
		for j, v := range raw[i] {
			values[j] = convertSQLValue(v, typ)
		}
		columns[i] = NewColumn(ct.Name(), typ, values)
	}
	return New(name, columns...)
}

// sqlDataType maps a driver type name (INTEGER, INT8, VARCHAR, TIMESTAMPTZ,
// ...) to a DataType.
func sqlDataType(dbType string) DataType {
	t := strings.ToUpper(dbType)
	switch {
	case t == "":
		return TypeUntyped
	case strings.Contains(t, "BOOL"):
		return TypeBool
	case strings.Contains(t, "INT") && !strings.Contains(t, "INTERVAL"):
		return TypeInt
	case strings.Contains(t, "REAL"), strings.Contains(t, "FLOA"), strings.Contains(t, "DOUB"),
		strings.Contains(t, "NUMERIC"), strings.Contains(t, "DECIMAL"):
		return TypeFloat
	case strings.Contains(t, "DATE"), strings.Contains(t, "TIME"):
		return TypeTime
	default:
		return TypeString
	}
}

func typeFromValues(values []any) DataType {
	typ := TypeUntyped
	for _, v := range values {
		var t DataType
		switch v.(type) {
		case nil:
			continue
		case int64:
			t = TypeInt
		case float64:
			t = TypeFloat
		case bool:
			t = TypeBool
		case time.Time:
			t = TypeTime
		case string, []byte:
			t = TypeString
		default:
			return TypeMixed
		}
		switch {
		case typ == TypeUntyped || typ == t:
			typ = t
		case (typ == TypeInt && t == TypeFloat) || (typ == TypeFloat && t == TypeInt):
			typ = TypeFloat
		default:
			return TypeMixed
		}
	}
	return typ
}

func convertSQLValue(v any, typ DataType) any {
	if v == nil {
		return nil
	}
	if b, ok := v.([]byte); ok {
		v = string(b)
	}
	switch typ {
	case TypeInt:
		switch n := v.(type) {
		case int64:
			return n
		case float64:
			return n
		case string:
			if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
				return i
			}
			return nil
		}
	case TypeFloat:
		switch n := v.(type) {
		case float64:
			return n
		case int64:
			return float64(n)
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
				return f
			}
			return nil
		}
	case TypeTime:
		switch t := v.(type) {
		case time.Time:
			return t
		case string:
			if parsed, ok := parseTime(strings.TrimSpace(t)); ok {
				return parsed
			}
			return nil
		}
	case TypeBool:
		switch b := v.(type) {
		case bool:
			return b
		case int64:
			return b != 0
		case string:
			if parsed, err := strconv.ParseBool(b); err == nil {
				return parsed
			}
			return nil
		}
	case TypeString:
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	}
	return v
}
