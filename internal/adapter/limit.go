package adapter

import (
	"encoding/json"
	"fmt"
	"math"
)

// ParseLimit converts a decoded limit argument into a row count.
//
// JSON numbers arrive as float64 (or json.Number); they are accepted only
// when integral. Strings, fractions, booleans and anything else are
// rejected rather than coerced, so the header never reports a limit the
// caller did not ask for. Range checks are left to strict mode.
func ParseLimit(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) ||
			n < math.MinInt32 || n > math.MaxInt32 {
			return 0, fmt.Errorf("limit must be an integer, got %v", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			return 0, fmt.Errorf("limit must be an integer, got %s", n)
		}
		return int(i), nil
	default:
		return 0, fmt.Errorf("limit must be an integer, got %T", v)
	}
}
