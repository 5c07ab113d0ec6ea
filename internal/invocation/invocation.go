// Package invocation decodes a single tool invocation from JSON and runs it
// against the query adapter.
//
// The wire shape mirrors what an MCP host sends in tools/call:
//
//	{"tool_name": "query_table", "tool_input": {"table_name": "ORDERS", "limit": 5}}
//
// It backs the warehouse-tool CLI, which lets the three operations be run
// from a shell without an MCP host.
package invocation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/JamesPrial/snowflake-mcp/internal/adapter"
)

// Tool names accepted by Read.
const (
	ToolListTables     = "list_tables"
	ToolGetTableSchema = "get_table_schema"
	ToolQueryTable     = "query_table"
)

// Invocation is one decoded tool call.
type Invocation struct {
	// ToolName is one of the Tool* constants.
	ToolName string `json:"tool_name"`

	// ToolInput is the raw JSON object of arguments. May be absent.
	ToolInput json.RawMessage `json:"tool_input"`
}

// Arguments are the union of every tool's parameters. Nil distinguishes
// absent values from zero values. Limit is left undecoded so that
// adapter.ParseLimit applies the same rules as the MCP handler.
type Arguments struct {
	TableName *string `json:"table_name"`
	Limit     any     `json:"limit"`
}

// Read decodes an Invocation from r.
//
// Returns an error if the JSON is malformed or the tool name is not one of
// the three supported tools.
func Read(r io.Reader) (*Invocation, error) {
	var inv Invocation
	if err := json.NewDecoder(r).Decode(&inv); err != nil {
		return nil, fmt.Errorf("failed to decode tool invocation: %w", err)
	}

	switch inv.ToolName {
	case ToolListTables, ToolGetTableSchema, ToolQueryTable:
		return &inv, nil
	case "":
		return nil, errors.New("tool invocation is missing tool_name")
	default:
		return nil, fmt.Errorf("unknown tool: %q", inv.ToolName)
	}
}

// Arguments decodes ToolInput. Absent or null input yields empty Arguments.
func (inv *Invocation) Arguments() (Arguments, error) {
	var args Arguments
	if len(inv.ToolInput) == 0 || string(inv.ToolInput) == "null" {
		return args, nil
	}
	if err := json.Unmarshal(inv.ToolInput, &args); err != nil {
		return Arguments{}, fmt.Errorf("failed to decode tool_input: %w", err)
	}
	return args, nil
}

// Dispatch runs inv against a and returns the operation's Result.
// Argument errors are reported as KindInvalidArgument with the tool's
// error prefix.
func Dispatch(ctx context.Context, a *adapter.Adapter, inv *Invocation) adapter.Result {
	prefix := prefixFor(inv.ToolName)

	args, err := inv.Arguments()
	if err != nil {
		return adapter.Invalid(prefix, err)
	}

	switch inv.ToolName {
	case ToolListTables:
		return a.ListTables(ctx)

	case ToolGetTableSchema:
		if args.TableName == nil {
			return adapter.Invalid(prefix, errors.New("missing required parameter: table_name"))
		}
		return a.GetTableSchema(ctx, *args.TableName)

	case ToolQueryTable:
		if args.TableName == nil {
			return adapter.Invalid(prefix, errors.New("missing required parameter: table_name"))
		}
		limit := a.DefaultLimit()
		if args.Limit != nil {
			n, err := adapter.ParseLimit(args.Limit)
			if err != nil {
				return adapter.Invalid(prefix, err)
			}
			limit = n
		}
		return a.QueryTable(ctx, *args.TableName, limit)

	default:
		return adapter.Invalid(prefix, fmt.Errorf("unknown tool: %q", inv.ToolName))
	}
}

func prefixFor(tool string) string {
	switch tool {
	case ToolListTables:
		return adapter.PrefixListTables
	case ToolGetTableSchema:
		return adapter.PrefixSchema
	case ToolQueryTable:
		return adapter.PrefixQuery
	default:
		return "Error: "
	}
}
