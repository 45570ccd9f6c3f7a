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

// Package sqlitedriver makes a SQLite database/sql driver available as
// "sqlite3" so dataset.SQLSource can read local database files. Builds with
// cgo get go-sqlcipher; builds without cgo get the pure-Go modernc driver.
//
//	import _ "github.com/teradata-labs/chartkit/internal/sqlitedriver"
package sqlitedriver
