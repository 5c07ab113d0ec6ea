// Package config holds the server configuration and the environment-backed
// warehouse credentials.
//
// Configuration is an explicit value passed to the adapter at construction.
// Credentials are not part of it: they are read from the process environment
// each time a connection is opened and never cached.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/JamesPrial/snowflake-mcp/internal/pathutil"
)

// Defaults applied by Validate when a field is left empty.
const (
	DefaultDatabase = "LAUNDRYGO_LIVE"
	DefaultSchema   = "PUBLIC"
	DefaultLimit    = 10
	DefaultDriver   = "snowflake"
)

// Environment variables read by ApplyEnv and LoadCredentials.
const (
	EnvUser      = "SNOWFLAKE_USER"
	EnvPassword  = "SNOWFLAKE_PASSWORD"
	EnvAccount   = "SNOWFLAKE_ACCOUNT"
	EnvWarehouse = "SNOWFLAKE_WAREHOUSE"
	EnvDatabase  = "SNOWFLAKE_DATABASE"
	EnvSchema    = "SNOWFLAKE_SCHEMA"
	EnvDriver    = "WAREHOUSE_DRIVER"
	EnvDSN       = "WAREHOUSE_DSN"
)

// knownDrivers lists the values accepted for Config.Driver.
var knownDrivers = map[string]bool{
	"snowflake": true,
	"postgres":  true,
	"sqlite":    true,
}

// Config is the per-instance configuration of the query adapter.
type Config struct {
	// Database and Schema scope every statement.
	Database string
	Schema   string

	// DefaultLimit is used by query_table when the caller omits limit.
	DefaultLimit int

	// Driver selects the warehouse dialect: "snowflake", "postgres" or "sqlite".
	Driver string

	// DSN is the connection string for the postgres and sqlite drivers.
	// Snowflake builds its connection from Credentials instead.
	DSN string

	// StrictIdentifiers rejects table names that are not plain identifiers
	// and negative limits before any statement is built.
	StrictIdentifiers bool

	EnvFile     string
	MetricsAddr string
	Verbose     bool
}

// Default returns a Config with every default filled in.
func Default() Config {
	return Config{
		Database:     DefaultDatabase,
		Schema:       DefaultSchema,
		DefaultLimit: DefaultLimit,
		Driver:       DefaultDriver,
	}
}

// ApplyEnv overrides fields from the environment.
//
// Environment variables:
//   - WAREHOUSE_DRIVER: "snowflake" (default), "postgres" or "sqlite"
//   - WAREHOUSE_DSN: connection string for postgres and sqlite
//   - SNOWFLAKE_DATABASE: database override (default: LAUNDRYGO_LIVE)
//   - SNOWFLAKE_SCHEMA: schema override (default: PUBLIC)
//
// Unset or blank variables leave the field untouched.
func (c *Config) ApplyEnv() {
	if v := envValue(EnvDriver); v != "" {
		c.Driver = strings.ToLower(v)
	}
	if v := envValue(EnvDSN); v != "" {
		c.DSN = v
	}
	if v := envValue(EnvDatabase); v != "" {
		c.Database = v
	}
	if v := envValue(EnvSchema); v != "" {
		c.Schema = v
	}
}

// Validate fills empty fields with defaults and rejects invalid values.
func (c *Config) Validate() error {
	if c.Database == "" {
		c.Database = DefaultDatabase
	}
	if c.Schema == "" {
		c.Schema = DefaultSchema
	}
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	if c.DefaultLimit < 0 {
		return fmt.Errorf("default limit must not be negative, got %d", c.DefaultLimit)
	}
	if c.DefaultLimit == 0 {
		c.DefaultLimit = DefaultLimit
	}
	if !knownDrivers[c.Driver] {
		return fmt.Errorf("unknown warehouse driver: %q. Expected 'snowflake', 'postgres' or 'sqlite'", c.Driver)
	}
	if c.Driver != "snowflake" && c.DSN == "" {
		return fmt.Errorf("%s is required for the %s driver", EnvDSN, c.Driver)
	}
	return nil
}

// Credentials are the Snowflake login parameters.
type Credentials struct {
	User      string
	Password  string
	Account   string
	Warehouse string
}

// LoadCredentials reads the Snowflake credentials from the environment.
//
// Nothing is validated here; missing values surface as a connection
// failure from the driver.
func LoadCredentials() Credentials {
	return Credentials{
		User:      os.Getenv(EnvUser),
		Password:  os.Getenv(EnvPassword),
		Account:   os.Getenv(EnvAccount),
		Warehouse: os.Getenv(EnvWarehouse),
	}
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables already set are not overridden.
//
// With an empty path, ".env" in baseDir is loaded if present and a missing
// file is not an error. An explicit path must resolve inside baseDir and
// must exist.
func LoadEnvFile(baseDir, path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	resolved, err := pathutil.ResolveWithin(baseDir, path)
	if err != nil {
		return fmt.Errorf("invalid env file: %w", err)
	}

	if err := godotenv.Load(resolved); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", resolved, err)
	}
	return nil
}

func envValue(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
