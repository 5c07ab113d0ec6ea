package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// clearWarehouseEnv blanks every variable this package reads so tests start
// from a known state regardless of the developer's shell.
func clearWarehouseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvUser, EnvPassword, EnvAccount, EnvWarehouse,
		EnvDatabase, EnvSchema, EnvDriver, EnvDSN,
	} {
		t.Setenv(key, "")
	}
}

// ---------------------------------------------------------------------------
// Default / Validate
// ---------------------------------------------------------------------------

func Test_Default_Values(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Database != "LAUNDRYGO_LIVE" {
		t.Errorf("Database = %q, want %q", cfg.Database, "LAUNDRYGO_LIVE")
	}
	if cfg.Schema != "PUBLIC" {
		t.Errorf("Schema = %q, want %q", cfg.Schema, "PUBLIC")
	}
	if cfg.DefaultLimit != 10 {
		t.Errorf("DefaultLimit = %d, want 10", cfg.DefaultLimit)
	}
	if cfg.Driver != "snowflake" {
		t.Errorf("Driver = %q, want %q", cfg.Driver, "snowflake")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func Test_Validate_FillsZeroValues(t *testing.T) {
	t.Parallel()

	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Validate() on zero Config = %+v, want %+v", cfg, Default())
	}
}

func Test_Validate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantSub string
	}{
		{
			name:    "negative limit",
			cfg:     Config{DefaultLimit: -1},
			wantSub: "negative",
		},
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "oracle"},
			wantSub: "unknown warehouse driver",
		},
		{
			name:    "postgres without dsn",
			cfg:     Config{Driver: "postgres"},
			wantSub: EnvDSN,
		},
		{
			name:    "sqlite without dsn",
			cfg:     Config{Driver: "sqlite"},
			wantSub: EnvDSN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantSub)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// ApplyEnv
// ---------------------------------------------------------------------------

func Test_ApplyEnv_Overrides(t *testing.T) {
	clearWarehouseEnv(t)
	t.Setenv(EnvDriver, "  SQLite ")
	t.Setenv(EnvDSN, "file:test.db")
	t.Setenv(EnvDatabase, "ANALYTICS")
	t.Setenv(EnvSchema, "STAGING")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Driver != "sqlite" {
		t.Errorf("Driver = %q, want %q", cfg.Driver, "sqlite")
	}
	if cfg.DSN != "file:test.db" {
		t.Errorf("DSN = %q, want %q", cfg.DSN, "file:test.db")
	}
	if cfg.Database != "ANALYTICS" {
		t.Errorf("Database = %q, want %q", cfg.Database, "ANALYTICS")
	}
	if cfg.Schema != "STAGING" {
		t.Errorf("Schema = %q, want %q", cfg.Schema, "STAGING")
	}
}

func Test_ApplyEnv_BlankLeavesDefaults(t *testing.T) {
	clearWarehouseEnv(t)
	t.Setenv(EnvDatabase, "   ")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg != Default() {
		t.Errorf("ApplyEnv() with blank env changed config: %+v", cfg)
	}
}

// ---------------------------------------------------------------------------
// LoadCredentials
// ---------------------------------------------------------------------------

func Test_LoadCredentials_ReadsEachCall(t *testing.T) {
	clearWarehouseEnv(t)
	t.Setenv(EnvUser, "alice")
	t.Setenv(EnvPassword, "secret")
	t.Setenv(EnvAccount, "org-acct")
	t.Setenv(EnvWarehouse, "COMPUTE_WH")

	got := LoadCredentials()
	want := Credentials{User: "alice", Password: "secret", Account: "org-acct", Warehouse: "COMPUTE_WH"}
	if got != want {
		t.Errorf("LoadCredentials() = %+v, want %+v", got, want)
	}

	t.Setenv(EnvUser, "bob")
	if got := LoadCredentials().User; got != "bob" {
		t.Errorf("LoadCredentials().User after change = %q, want %q", got, "bob")
	}
}

// ---------------------------------------------------------------------------
// LoadEnvFile
// ---------------------------------------------------------------------------

func Test_LoadEnvFile_DefaultMissingIsNotError(t *testing.T) {
	dir := t.TempDir()
	if err := LoadEnvFile(dir, ""); err != nil {
		t.Errorf("LoadEnvFile() with no .env error = %v, want nil", err)
	}
}

func Test_LoadEnvFile_ExplicitMissingIsError(t *testing.T) {
	dir := t.TempDir()
	if err := LoadEnvFile(dir, "missing.env"); err == nil {
		t.Error("LoadEnvFile() with missing explicit file expected error, got nil")
	}
}

func Test_LoadEnvFile_LoadsDefaultFile(t *testing.T) {
	clearWarehouseEnv(t)
	// t.Setenv above registers restore; unset so godotenv can populate it.
	if err := os.Unsetenv(EnvWarehouse); err != nil {
		t.Fatalf("Unsetenv: %v", err)
	}

	dir := t.TempDir()
	content := EnvWarehouse + "=FROM_DOTENV\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := LoadEnvFile(dir, ""); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(EnvWarehouse); got != "FROM_DOTENV" {
		t.Errorf("%s = %q, want %q", EnvWarehouse, got, "FROM_DOTENV")
	}
}

func Test_LoadEnvFile_DoesNotOverrideExisting(t *testing.T) {
	clearWarehouseEnv(t)
	t.Setenv(EnvAccount, "from-shell")

	dir := t.TempDir()
	content := EnvAccount + "=from-file\n"
	if err := os.WriteFile(filepath.Join(dir, "local.env"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := LoadEnvFile(dir, "local.env"); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	if got := os.Getenv(EnvAccount); got != "from-shell" {
		t.Errorf("%s = %q, want %q", EnvAccount, got, "from-shell")
	}
}

func Test_LoadEnvFile_RejectsEscape(t *testing.T) {
	dir := t.TempDir()
	err := LoadEnvFile(dir, "../outside.env")
	if err == nil {
		t.Fatal("LoadEnvFile() expected error for path outside base, got nil")
	}
	if !strings.Contains(err.Error(), "invalid env file") {
		t.Errorf("LoadEnvFile() error = %q, want it to contain %q", err, "invalid env file")
	}
}
