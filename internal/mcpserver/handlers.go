package mcpserver

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/JamesPrial/snowflake-mcp/internal/adapter"
	"github.com/JamesPrial/snowflake-mcp/internal/metrics"
)

// Handlers adapts the query adapter to mcp-go tool handlers.
//
// Handlers never return a Go error to the runtime. Failures come back as a
// CallToolResult with IsError set and the operation's error prefix in the
// text.
type Handlers struct {
	adapter *adapter.Adapter
	log     *slog.Logger
}

// NewHandlers returns Handlers backed by a.
func NewHandlers(a *adapter.Adapter, log *slog.Logger) *Handlers {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handlers{adapter: a, log: log}
}

// HandleListTables lists the tables in the configured database and schema.
// Takes no parameters.
func (h *Handlers) HandleListTables(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return h.observe("list_tables", func() adapter.Result {
		return h.adapter.ListTables(ctx)
	}), nil
}

// HandleGetTableSchema describes a table's columns.
// Parameters:
//   - table_name (string, required): table to describe, used verbatim
func (h *Handlers) HandleGetTableSchema(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := request.RequireString("table_name")
	if err != nil {
		return mcp.NewToolResultError(adapter.PrefixSchema + "missing required parameter: table_name"), nil
	}

	return h.observe("get_table_schema", func() adapter.Result {
		return h.adapter.GetTableSchema(ctx, table)
	}), nil
}

// HandleQueryTable returns sample rows from a table.
// Parameters:
//   - table_name (string, required): table to query, used verbatim
//   - limit (integer, optional): maximum rows, defaults to the configured limit;
//     strings and fractional numbers are rejected
func (h *Handlers) HandleQueryTable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	table, err := request.RequireString("table_name")
	if err != nil {
		return mcp.NewToolResultError(adapter.PrefixQuery + "missing required parameter: table_name"), nil
	}
	limit := h.adapter.DefaultLimit()
	if raw, ok := request.GetArguments()["limit"]; ok && raw != nil {
		n, err := adapter.ParseLimit(raw)
		if err != nil {
			return h.observe("query_table", func() adapter.Result {
				return adapter.Invalid(adapter.PrefixQuery, err)
			}), nil
		}
		limit = n
	}

	return h.observe("query_table", func() adapter.Result {
		return h.adapter.QueryTable(ctx, table, limit)
	}), nil
}

// observe runs call, records metrics and converts the Result for the runtime.
func (h *Handlers) observe(tool string, call func() adapter.Result) *mcp.CallToolResult {
	start := time.Now()
	res := call()
	elapsed := time.Since(start)

	status := "success"
	if !res.OK() {
		status = string(res.Err.Kind)
	}
	metrics.ToolCallsTotal.WithLabelValues(tool, status).Inc()
	metrics.ToolCallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())

	h.log.Debug("mcp/tool: call finished", "tool", tool, "status", status, "duration", elapsed)

	return toCallToolResult(res)
}

func toCallToolResult(res adapter.Result) *mcp.CallToolResult {
	if !res.OK() {
		return mcp.NewToolResultError(res.String())
	}
	return mcp.NewToolResultText(res.String())
}
