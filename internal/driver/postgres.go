package driver

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"sqlbench/internal/bench"
)

func init() {
	Register(&Driver{
		Name:        "postgres",
		Placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
		Open:        openPostgres,
	}, "postgresql", "pgx", "pg")
}

// openPostgres builds a keyword/value DSN for the pgx stdlib driver.
// Separate user/password fields from the suite are appended as keywords
// when the DSN does not already carry them. URL-style DSNs
// (postgres://...) are passed through untouched.
func openPostgres(t bench.Target) (*sql.DB, error) {
	dsn := t.URL
	if t.User != "" && !strings.Contains(dsn, "user=") && !strings.HasPrefix(dsn, "postgres://") {
		dsn += fmt.Sprintf(" user=%s", t.User)
	}
	if t.Password != "" && !strings.Contains(dsn, "password=") && !strings.HasPrefix(dsn, "postgres://") {
		dsn += fmt.Sprintf(" password=%s", t.Password)
	}
	return sql.Open("pgx", dsn)
}
