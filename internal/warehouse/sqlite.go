package warehouse

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

var _ Dialect = (*SQLite)(nil)

// SQLite runs the three statements against a local database file. Database
// and schema arguments are ignored; everything lives in "main".
type SQLite struct {
	dsn string
}

// NewSQLite returns a SQLite dialect for the given file path or DSN.
func NewSQLite(dsn string) *SQLite {
	return &SQLite{dsn: dsn}
}

// Name returns "sqlite".
func (s *SQLite) Name() string { return "sqlite" }

// Open opens a single-connection handle on the database file.
func (s *SQLite) Open(_ context.Context) (*sql.DB, error) {
	return openOne("sqlite", s.dsn)
}

// ListTablesQuery lists user tables from sqlite_master, with a constant
// schema column first so the name sits in the second column.
func (s *SQLite) ListTablesQuery(_, _ string) string {
	return `SELECT 'main' AS schema_name, name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name`
}

// DescribeTableQuery reads declared column names and types from
// pragma_table_info.
func (s *SQLite) DescribeTableQuery(_, _, table string) string {
	return "SELECT name, type FROM pragma_table_info(" + UnsafeLiteral(table) + ") ORDER BY cid"
}

// SelectQuery returns a SELECT * of table with a LIMIT clause.
func (s *SQLite) SelectQuery(_, _, table string, limit int) string {
	return "SELECT * FROM " + UnsafeQualify(table) + " LIMIT " + UnsafeLimit(limit)
}
