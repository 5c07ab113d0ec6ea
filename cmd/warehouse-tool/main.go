// Package main implements warehouse-tool, a one-shot runner for the three
// warehouse operations.
//
// It reads a single tool invocation from stdin (JSON), runs it with the
// same configuration the MCP server uses, and prints the text result.
//
//	echo '{"tool_name":"query_table","tool_input":{"table_name":"ORDERS","limit":5}}' | warehouse-tool
//
// Exit codes:
//   - 0: Success (including empty-result messages)
//   - 1: Error (invalid input, configuration, connection or execution failure)
//
// Environment variables:
//   - SNOWFLAKE_USER, SNOWFLAKE_PASSWORD, SNOWFLAKE_ACCOUNT, SNOWFLAKE_WAREHOUSE
//   - SNOWFLAKE_DATABASE, SNOWFLAKE_SCHEMA: Optional target overrides.
//   - WAREHOUSE_DRIVER, WAREHOUSE_DSN: Optional. Select postgres or sqlite.
//   - DEBUG: Optional. Enable debug logging to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/JamesPrial/snowflake-mcp/internal/adapter"
	"github.com/JamesPrial/snowflake-mcp/internal/config"
	"github.com/JamesPrial/snowflake-mcp/internal/invocation"
	"github.com/JamesPrial/snowflake-mcp/internal/warehouse"
)

// run contains the main logic, returning an exit code.
//
// Process flow:
//  1. Load .env from the working directory if present
//  2. Build and validate configuration from defaults and environment
//  3. Read the invocation from stdin
//  4. Dispatch it to the adapter
//  5. Print the text to stdout on success, or to stderr on failure
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) int {
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{Level: level}))

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := config.LoadEnvFile(wd, ""); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg := config.Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	dialect, err := warehouse.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	inv, err := invocation.Read(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	a := adapter.New(cfg, dialect, adapter.WithLogger(logger))
	res := invocation.Dispatch(ctx, a, inv)
	if !res.OK() {
		logger.Debug("tool failed", "tool", inv.ToolName, "kind", string(res.Err.Kind))
		fmt.Fprintln(stderr, res.String())
		return 1
	}

	fmt.Fprintln(stdout, res.String())
	return 0
}

func main() {
	os.Exit(run(context.Background(), os.Stdin, os.Stdout, os.Stderr))
}
