// Package metrics defines the Prometheus collectors for tool calls. They are
// registered with the default registry and exposed only when the server is
// started with --metrics-addr.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BuildInfo is set to 1 at startup, labelled with the build version and
	// the configured warehouse driver.
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "snowflake_mcp_build_info",
			Help: "Build information of the Snowflake MCP server",
		},
		[]string{"version", "driver"},
	)

	// ToolCallsTotal counts finished tool calls. status is "success" or the
	// failure kind (connection, execution, invalid_argument).
	ToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "snowflake_mcp_tool_calls_total",
			Help: "Total number of tool calls by outcome",
		},
		[]string{"tool_name", "status"},
	)

	// ToolCallDuration observes wall time per tool call.
	ToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "snowflake_mcp_tool_call_duration_seconds",
			Help:    "Duration of tool calls, including connection setup",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 0.05s to ~102s
		},
		[]string{"tool_name"},
	)
)
