// Package warehouse defines the per-driver dialects the query adapter runs
// against: how to open a connection and the three statement templates.
//
// Snowflake is the production target. PostgreSQL and SQLite dialects exist
// for local development and for exercising the adapter end to end without a
// Snowflake account.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JamesPrial/snowflake-mcp/internal/config"
)

// Dialect is the contract every warehouse driver implements.
//
// Statement builders splice their arguments into SQL text without escaping;
// see unsafe_sql.go.
type Dialect interface {
	// Name returns the driver name used in config (e.g. "snowflake").
	Name() string

	// Open returns a new, unshared handle for a single tool call. The caller
	// owns it and must close it.
	Open(ctx context.Context) (*sql.DB, error)

	// ListTablesQuery returns a statement whose rows carry the table name in
	// the second column.
	ListTablesQuery(database, schema string) string

	// DescribeTableQuery returns a statement whose rows carry the column name
	// in the first column and its type in the second.
	DescribeTableQuery(database, schema, table string) string

	// SelectQuery returns a statement selecting every column of table, capped
	// at limit rows.
	SelectQuery(database, schema, table string, limit int) string
}

// New returns the dialect named by cfg.Driver.
//
// cfg is expected to have passed Validate; an unknown driver is still
// reported as an error.
func New(cfg config.Config) (Dialect, error) {
	switch cfg.Driver {
	case "snowflake", "":
		return NewSnowflake(cfg.Database, cfg.Schema, config.LoadCredentials), nil
	case "postgres":
		return NewPostgres(cfg.DSN), nil
	case "sqlite":
		return NewSQLite(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unknown warehouse driver: %q", cfg.Driver)
	}
}

// openOne opens a handle limited to a single physical connection with no
// idle retention, so closing the handle closes the connection.
func openOne(driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driverName, err)
	}
	limitToOne(db)
	return db, nil
}

func limitToOne(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
}
