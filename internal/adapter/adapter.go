// Package adapter implements the three read-only warehouse operations:
// list tables, describe a table, and sample a table's rows.
//
// Every call opens its own connection, runs exactly one statement, fetches
// the full result, formats it as text and closes the connection on every
// exit path. Nothing is shared or cached between calls, so an Adapter is
// safe for concurrent use.
package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JamesPrial/snowflake-mcp/internal/config"
	"github.com/JamesPrial/snowflake-mcp/internal/warehouse"
)

// Error prefixes, one per operation.
const (
	PrefixListTables = "Error fetching tables: "
	PrefixSchema     = "Error fetching schema: "
	PrefixQuery      = "Error querying table: "
)

// Opener returns a fresh database handle owned by a single call.
type Opener func(ctx context.Context) (*sql.DB, error)

// Adapter runs the three operations against one dialect.
type Adapter struct {
	cfg     config.Config
	dialect warehouse.Dialect
	open    Opener
	log     *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithOpener replaces the dialect's Open. Tests use it to inject a mock
// connection.
func WithOpener(open Opener) Option {
	return func(a *Adapter) { a.open = open }
}

// WithLogger sets the logger used for per-call debug output.
func WithLogger(log *slog.Logger) Option {
	return func(a *Adapter) { a.log = log }
}

// New returns an Adapter for cfg and dialect. cfg should already be
// validated; DefaultLimit falls back to config.DefaultLimit if unset.
func New(cfg config.Config, dialect warehouse.Dialect, opts ...Option) *Adapter {
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = config.DefaultLimit
	}
	a := &Adapter{
		cfg:     cfg,
		dialect: dialect,
		open:    dialect.Open,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultLimit returns the row limit QueryTable callers should use when
// none is supplied.
func (a *Adapter) DefaultLimit() int {
	return a.cfg.DefaultLimit
}

// ListTables lists the tables in the configured database and schema, one
// "- <name>" line per table. The name is taken from the second column of
// each row.
func (a *Adapter) ListTables(ctx context.Context) Result {
	query := a.dialect.ListTablesQuery(a.cfg.Database, a.cfg.Schema)

	res, err := a.fetch(ctx, query)
	if err != nil {
		return a.fail("list_tables", PrefixListTables, err)
	}
	if len(res.rows) == 0 {
		return success(fmt.Sprintf("No tables found in %s.%s", a.cfg.Database, a.cfg.Schema))
	}
	if err := res.requireColumns(2); err != nil {
		return a.fail("list_tables", PrefixListTables, err)
	}

	return success(formatTableList(res.rows))
}

// GetTableSchema describes table's columns as "- <name> (<type>)" lines
// under a header.
func (a *Adapter) GetTableSchema(ctx context.Context, table string) Result {
	if err := a.checkIdentifier(table); err != nil {
		return a.fail("get_table_schema", PrefixSchema, err)
	}

	query := a.dialect.DescribeTableQuery(a.cfg.Database, a.cfg.Schema, table)

	res, err := a.fetch(ctx, query)
	if err != nil {
		return a.fail("get_table_schema", PrefixSchema, err)
	}
	if len(res.rows) == 0 {
		return success(fmt.Sprintf("No schema found for table %s", table))
	}
	if err := res.requireColumns(2); err != nil {
		return a.fail("get_table_schema", PrefixSchema, err)
	}

	return success(formatSchema(table, res.rows))
}

// QueryTable returns up to limit rows of table with a header naming the
// table and limit, the column names, and one rendered line per row.
func (a *Adapter) QueryTable(ctx context.Context, table string, limit int) Result {
	if err := a.checkIdentifier(table); err != nil {
		return a.fail("query_table", PrefixQuery, err)
	}
	if a.cfg.StrictIdentifiers {
		if err := warehouse.ValidateLimit(limit); err != nil {
			return a.fail("query_table", PrefixQuery, &callError{kind: KindInvalidArgument, err: err})
		}
	}

	query := a.dialect.SelectQuery(a.cfg.Database, a.cfg.Schema, table, limit)

	res, err := a.fetch(ctx, query)
	if err != nil {
		return a.fail("query_table", PrefixQuery, err)
	}
	if len(res.rows) == 0 {
		return success(fmt.Sprintf("No data found in table %s", table))
	}

	return success(formatSample(table, limit, res.columns, res.rows))
}

func (a *Adapter) checkIdentifier(table string) error {
	if !a.cfg.StrictIdentifiers {
		return nil
	}
	if err := warehouse.ValidateIdentifier(table); err != nil {
		return &callError{kind: KindInvalidArgument, err: err}
	}
	return nil
}

func (a *Adapter) fail(op, prefix string, err error) Result {
	kind := KindExecution
	var ce *callError
	if errors.As(err, &ce) {
		kind = ce.kind
		err = ce.err
	}
	a.log.Debug("operation failed", "tool", op, "kind", string(kind), "error", err)
	return failure(prefix, kind, err)
}
