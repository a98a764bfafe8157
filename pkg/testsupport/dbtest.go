// Package testsupport holds helpers shared by database-backed tests.
package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens an in-memory SQLite database. The shared cache
// keeps every connection in the process on the same database, so callers
// should cap the pool at a single connection when writing concurrently.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}
