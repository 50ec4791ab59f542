package driver

import (
	"database/sql"

	_ "modernc.org/sqlite"

	"sqlbench/internal/bench"
)

func init() {
	Register(&Driver{
		Name:        "sqlite",
		Placeholder: func(i int) string { return "?" },
		Open:        openSQLite,
	}, "sqlite3")
}

// openSQLite ignores user/password; SQLite files have no credentials.
func openSQLite(t bench.Target) (*sql.DB, error) {
	return sql.Open("sqlite", t.URL)
}
