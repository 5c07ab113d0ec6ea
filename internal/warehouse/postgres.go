package warehouse

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ Dialect = (*Postgres)(nil)

// Postgres runs the three statements against PostgreSQL through pgx's
// database/sql driver. The database argument is ignored: PostgreSQL cannot
// address another database from a connection, so the DSN decides it.
type Postgres struct {
	dsn string
}

// NewPostgres returns a Postgres dialect for the given connection string.
func NewPostgres(dsn string) *Postgres {
	return &Postgres{dsn: dsn}
}

// Name returns "postgres".
func (p *Postgres) Name() string { return "postgres" }

// Open opens a single-connection handle through the pgx driver.
func (p *Postgres) Open(_ context.Context) (*sql.DB, error) {
	return openOne("pgx", p.dsn)
}

// ListTablesQuery compares schema names case-insensitively so the Snowflake
// default "PUBLIC" finds PostgreSQL's "public".
func (p *Postgres) ListTablesQuery(_, schema string) string {
	return `SELECT table_schema, table_name
		FROM information_schema.tables
		WHERE lower(table_schema) = lower(` + UnsafeLiteral(schema) + `)
		  AND table_type = 'BASE TABLE'
		ORDER BY table_name`
}

// DescribeTableQuery reads column names and data types from
// information_schema in ordinal order.
func (p *Postgres) DescribeTableQuery(_, schema, table string) string {
	return `SELECT column_name, data_type
		FROM information_schema.columns
		WHERE lower(table_schema) = lower(` + UnsafeLiteral(schema) + `)
		  AND table_name = ` + UnsafeLiteral(table) + `
		ORDER BY ordinal_position`
}

// SelectQuery returns a SELECT * of schema.table with a LIMIT clause.
func (p *Postgres) SelectQuery(_, schema, table string, limit int) string {
	return "SELECT * FROM " + UnsafeQualify(schema, table) + " LIMIT " + UnsafeLimit(limit)
}
