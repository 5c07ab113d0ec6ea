package mcpserver

import (
	"errors"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/JamesPrial/snowflake-mcp/internal/adapter"
)

// ServerName is the implementation name reported to MCP hosts.
const ServerName = "snowflake"

// Options configures NewServer.
type Options struct {
	// Version is reported to the host during initialization.
	Version string

	// Target names the database and schema in tool descriptions,
	// e.g. "LAUNDRYGO_LIVE.PUBLIC".
	Target string

	Logger *slog.Logger
}

// NewServer creates an MCP server with the three warehouse tools registered.
// Construction does not touch the warehouse; connections are opened per call.
func NewServer(a *adapter.Adapter, opts Options) (*server.MCPServer, error) {
	if a == nil {
		return nil, errors.New("adapter is required")
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}

	h := NewHandlers(a, opts.Logger)

	s := server.NewMCPServer(
		ServerName,
		opts.Version,
		server.WithToolCapabilities(true),
	)

	s.AddTool(listTablesTool(opts.Target), h.HandleListTables)
	s.AddTool(getTableSchemaTool(), h.HandleGetTableSchema)
	s.AddTool(queryTableTool(a.DefaultLimit()), h.HandleQueryTable)

	return s, nil
}
