// Package mcpserver exposes the warehouse query adapter as MCP tools.
package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// listTablesTool returns a tool definition for listing the tables in the
// configured database and schema.
func listTablesTool(target string) mcp.Tool {
	return mcp.NewTool("list_tables",
		mcp.WithDescription(fmt.Sprintf("Get list of tables in %s schema.", target)),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

// getTableSchemaTool returns a tool definition for describing a table's columns.
func getTableSchemaTool() mcp.Tool {
	return mcp.NewTool("get_table_schema",
		mcp.WithDescription("Get schema information for a specific table: one line per column with its type."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("table_name",
			mcp.Required(),
			mcp.Description("Name of the table to get schema for")),
	)
}

// queryTableTool returns a tool definition for sampling rows from a table.
func queryTableTool(defaultLimit int) mcp.Tool {
	return mcp.NewTool("query_table",
		mcp.WithDescription("Query data from a specific table. Returns the column names followed by up to limit rows."),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithString("table_name",
			mcp.Required(),
			mcp.Description("Name of the table to query")),
		mcp.WithNumber("limit",
			mcp.DefaultNumber(float64(defaultLimit)),
			mcp.Description(fmt.Sprintf("Maximum number of rows to return, as an integer (default: %d)", defaultLimit))),
	)
}
