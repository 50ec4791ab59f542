package driver

import (
	"database/sql"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"sqlbench/internal/bench"
)

func init() {
	Register(&Driver{
		Name:        "mysql",
		Placeholder: func(i int) string { return "?" },
		Open:        openMySQL,
	}, "mariadb")
}

// openMySQL prefixes suite credentials onto the go-sql-driver DSN.
// URLs of the form "tcp(host:port)/dbname" become
// "user:password@tcp(host:port)/dbname". DSNs that already carry an
// "@" are passed through untouched.
func openMySQL(t bench.Target) (*sql.DB, error) {
	dsn := t.URL
	if t.User != "" && !strings.Contains(dsn, "@") {
		cred := t.User
		if t.Password != "" {
			cred += ":" + t.Password
		}
		dsn = cred + "@" + dsn
	}
	return sql.Open("mysql", dsn)
}
