package warehouse

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JamesPrial/snowflake-mcp/internal/config"
)

func Test_New_Drivers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantName string
		wantErr  bool
	}{
		{name: "default is snowflake", cfg: config.Config{}, wantName: "snowflake"},
		{name: "snowflake", cfg: config.Config{Driver: "snowflake"}, wantName: "snowflake"},
		{name: "postgres", cfg: config.Config{Driver: "postgres", DSN: "postgres://localhost/db"}, wantName: "postgres"},
		{name: "sqlite", cfg: config.Config{Driver: "sqlite", DSN: ":memory:"}, wantName: "sqlite"},
		{name: "unknown", cfg: config.Config{Driver: "mysql"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := require.New(t)

			got, err := New(tt.cfg)
			if tt.wantErr {
				r.Error(err)
				r.Nil(got)
				return
			}
			r.NoError(err)
			r.Equal(tt.wantName, got.Name())
		})
	}
}

func Test_Snowflake_Statements(t *testing.T) {
	r := require.New(t)
	d := NewSnowflake("LAUNDRYGO_LIVE", "PUBLIC", config.LoadCredentials)

	r.Equal("SHOW TABLES IN LAUNDRYGO_LIVE.PUBLIC", d.ListTablesQuery("LAUNDRYGO_LIVE", "PUBLIC"))
	r.Equal("DESCRIBE TABLE LAUNDRYGO_LIVE.PUBLIC.ORDERS", d.DescribeTableQuery("LAUNDRYGO_LIVE", "PUBLIC", "ORDERS"))
	r.Equal("SELECT * FROM LAUNDRYGO_LIVE.PUBLIC.ORDERS LIMIT 10", d.SelectQuery("LAUNDRYGO_LIVE", "PUBLIC", "ORDERS", 10))
	r.Equal("SELECT * FROM LAUNDRYGO_LIVE.PUBLIC.ORDERS LIMIT 5", d.SelectQuery("LAUNDRYGO_LIVE", "PUBLIC", "ORDERS", 5))
}

func Test_Snowflake_InterpolatesVerbatim(t *testing.T) {
	r := require.New(t)
	d := NewSnowflake("DB", "SC", config.LoadCredentials)

	// Names are not quoted or escaped; this is the documented behavior.
	r.Equal(`DESCRIBE TABLE DB.SC."Mixed Case"`, d.DescribeTableQuery("DB", "SC", `"Mixed Case"`))
	r.Equal("SELECT * FROM DB.SC.T; DROP TABLE X LIMIT -1", d.SelectQuery("DB", "SC", "T; DROP TABLE X", -1))
}

func Test_Snowflake_ConnectorConfig(t *testing.T) {
	r := require.New(t)

	calls := 0
	d := NewSnowflake("LAUNDRYGO_LIVE", "PUBLIC", func() config.Credentials {
		calls++
		return config.Credentials{User: "u", Password: "p", Account: "acct", Warehouse: "WH"}
	})

	cfg := d.connectorConfig()
	r.Equal("u", cfg.User)
	r.Equal("p", cfg.Password)
	r.Equal("acct", cfg.Account)
	r.Equal("WH", cfg.Warehouse)
	r.Equal("LAUNDRYGO_LIVE", cfg.Database)
	r.Equal("PUBLIC", cfg.Schema)

	db, err := d.Open(context.Background())
	r.NoError(err)
	r.NoError(db.Close())
	r.Equal(2, calls, "credentials must be loaded on every open")
}

func Test_Postgres_Statements(t *testing.T) {
	r := require.New(t)
	d := NewPostgres("postgres://localhost/db")

	r.Contains(d.ListTablesQuery("IGNORED", "PUBLIC"), "lower('PUBLIC')")
	r.Contains(d.DescribeTableQuery("IGNORED", "PUBLIC", "orders"), "table_name = 'orders'")
	r.Equal("SELECT * FROM PUBLIC.orders LIMIT 3", d.SelectQuery("IGNORED", "PUBLIC", "orders", 3))
}

func Test_SQLite_Statements(t *testing.T) {
	r := require.New(t)
	d := NewSQLite(":memory:")

	r.Contains(d.ListTablesQuery("DB", "SC"), "sqlite_master")
	r.Equal("SELECT name, type FROM pragma_table_info('orders') ORDER BY cid", d.DescribeTableQuery("DB", "SC", "orders"))
	r.Equal("SELECT * FROM orders LIMIT 7", d.SelectQuery("DB", "SC", "orders", 7))
}

func Test_ValidateIdentifier_Cases(t *testing.T) {
	valid := []string{"ORDERS", "orders", "_t", "T1", "PAY$MENTS", "a_b_c"}
	invalid := []string{"", "1T", "T-1", "T 1", "T;DROP", `"T"`, "db.T", "T'"}

	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			require.NoError(t, ValidateIdentifier(name))
		})
	}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			err := ValidateIdentifier(name)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidIdentifier))
		})
	}
}

func Test_ValidateLimit_Cases(t *testing.T) {
	r := require.New(t)
	r.NoError(ValidateLimit(0))
	r.NoError(ValidateLimit(10))
	r.ErrorIs(ValidateLimit(-1), ErrInvalidLimit)
}
