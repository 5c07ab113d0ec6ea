package adapter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

func formatTableList(rows [][]any) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = "- " + formatPlain(row[1])
	}
	return strings.Join(lines, "\n")
}

func formatSchema(table string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, fmt.Sprintf("Schema for table %s:", table))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("- %s (%s)", formatPlain(row[0]), formatPlain(row[1])))
	}
	return strings.Join(lines, "\n")
}

func formatSample(table string, limit int, columns []string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+4)
	lines = append(lines,
		fmt.Sprintf("Data from %s (first %d rows):", table, limit),
		"\nColumns:",
		strings.Join(columns, ", "),
		"\nRows:",
	)
	for _, row := range rows {
		lines = append(lines, formatRow(row))
	}
	return strings.Join(lines, "\n")
}

// formatRow renders a row as a parenthesised, comma-separated sequence.
// Strings are quoted so embedded commas stay unambiguous. A single-column
// row renders as "(1)", without a trailing comma.
func formatRow(row []any) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = formatValue(v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return strconv.Quote(val)
	case []byte:
		return strconv.Quote(string(val))
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(val)
	}
}

// formatPlain renders a descriptor cell (table name, column name, type)
// without quoting.
func formatPlain(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
