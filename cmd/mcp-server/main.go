// Package main implements the Snowflake MCP server.
//
// The server exposes three read-only tools (list_tables, get_table_schema,
// query_table) over stdio JSON-RPC (Model Context Protocol). Stdout carries
// the protocol, so all logging goes to stderr.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/JamesPrial/snowflake-mcp/internal/adapter"
	"github.com/JamesPrial/snowflake-mcp/internal/config"
	"github.com/JamesPrial/snowflake-mcp/internal/mcpserver"
	"github.com/JamesPrial/snowflake-mcp/internal/metrics"
	"github.com/JamesPrial/snowflake-mcp/internal/warehouse"
)

// Set by LDFLAGS
var version = "dev"

type options struct {
	cfg         config.Config
	showVersion bool
}

func parseFlags(args []string) (options, error) {
	opts := options{cfg: config.Default()}

	fs := flag.NewFlagSet("mcp-server", flag.ContinueOnError)
	fs.StringVar(&opts.cfg.EnvFile, "env-file", "", "dotenv file to load, relative to the working directory (default: .env if present)")
	fs.BoolVarP(&opts.cfg.Verbose, "verbose", "v", false, "enable debug logging")
	fs.BoolVar(&opts.cfg.StrictIdentifiers, "strict-identifiers", false, "reject table names that are not plain identifiers")
	fs.IntVar(&opts.cfg.DefaultLimit, "default-limit", config.DefaultLimit, "row limit used by query_table when none is given")
	fs.StringVar(&opts.cfg.MetricsAddr, "metrics-addr", "", "address to serve prometheus metrics on (disabled if empty)")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "version: %s\n", version)
		return 0
	}

	logger := newLogger(stderr, opts.cfg.Verbose)

	wd, err := os.Getwd()
	if err != nil {
		logger.Error("failed to get working directory", "error", err)
		return 1
	}
	if err := config.LoadEnvFile(wd, opts.cfg.EnvFile); err != nil {
		logger.Error("failed to load env file", "error", err)
		return 1
	}

	cfg := opts.cfg
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	dialect, err := warehouse.New(cfg)
	if err != nil {
		logger.Error("failed to create warehouse dialect", "error", err)
		return 1
	}

	a := adapter.New(cfg, dialect, adapter.WithLogger(logger))
	srv, err := mcpserver.NewServer(a, mcpserver.Options{
		Version: version,
		Target:  cfg.Database + "." + cfg.Schema,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("failed to create MCP server", "error", err)
		return 1
	}

	if cfg.MetricsAddr != "" {
		metrics.BuildInfo.WithLabelValues(version, cfg.Driver).Set(1)
		if err := serveMetrics(logger, cfg.MetricsAddr); err != nil {
			logger.Error("failed to start metrics server", "error", err)
			return 1
		}
	}

	logger.Info("Starting Snowflake MCP server...", "driver", cfg.Driver, "target", cfg.Database+"."+cfg.Schema)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(log.New(stderr, "[mcp-server] ", log.LstdFlags))
	if err := stdio.Listen(ctx, stdin, stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server error", "error", err)
		return 1
	}

	return 0
}

func serveMetrics(logger *slog.Logger, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	logger.Info("prometheus metrics server listening", "address", listener.Addr().String())

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      logLevel,
		TimeFormat: time.RFC3339,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if s, ok := a.Value.Any().(string); ok && s == "" {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
