package warehouse

import (
	"context"
	"database/sql"

	"github.com/snowflakedb/gosnowflake"

	"github.com/JamesPrial/snowflake-mcp/internal/config"
)

var _ Dialect = (*Snowflake)(nil)

// Snowflake is the production dialect backed by gosnowflake.
type Snowflake struct {
	database    string
	schema      string
	credentials func() config.Credentials
}

// NewSnowflake returns a Snowflake dialect scoped to database and schema.
// credentials is called on every Open; pass config.LoadCredentials to read
// the process environment.
func NewSnowflake(database, schema string, credentials func() config.Credentials) *Snowflake {
	return &Snowflake{
		database:    database,
		schema:      schema,
		credentials: credentials,
	}
}

// Name returns "snowflake".
func (s *Snowflake) Name() string { return "snowflake" }

// Open builds a connector from freshly loaded credentials. No network I/O
// happens until the first connection is requested from the handle.
func (s *Snowflake) Open(_ context.Context) (*sql.DB, error) {
	connector := gosnowflake.NewConnector(gosnowflake.SnowflakeDriver{}, s.connectorConfig())
	db := sql.OpenDB(connector)
	limitToOne(db)
	return db, nil
}

func (s *Snowflake) connectorConfig() gosnowflake.Config {
	creds := s.credentials()
	return gosnowflake.Config{
		Account:   creds.Account,
		User:      creds.User,
		Password:  creds.Password,
		Warehouse: creds.Warehouse,
		Database:  s.database,
		Schema:    s.schema,
	}
}

// ListTablesQuery returns SHOW TABLES for the qualified schema. Snowflake
// puts the table name in the second column.
func (s *Snowflake) ListTablesQuery(database, schema string) string {
	return "SHOW TABLES IN " + UnsafeQualify(database, schema)
}

// DescribeTableQuery returns DESCRIBE TABLE for the fully qualified table.
func (s *Snowflake) DescribeTableQuery(database, schema, table string) string {
	return "DESCRIBE TABLE " + UnsafeQualify(database, schema, table)
}

// SelectQuery returns a SELECT * of the fully qualified table with a LIMIT
// clause.
func (s *Snowflake) SelectQuery(database, schema, table string, limit int) string {
	return "SELECT * FROM " + UnsafeQualify(database, schema, table) + " LIMIT " + UnsafeLimit(limit)
}
