package proto

import (
	"fmt"
	"strconv"
	"strings"
)

// RawResult represents the raw parsed result from FalkorDB.
type RawResult struct {
	Headers  []string
	Data     [][]interface{}
	Metadata []string
}

// ParseResult parses the raw Redis reply into a RawResult.
//
// Headers may be plain names or [type, name] pairs; both are reduced to names.
func ParseResult(result interface{}) (*RawResult, error) {
	arr, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected query result format: %T", result)
	}

	rr := &RawResult{}

	switch len(arr) {
	case 1:
		// Only metadata (no results)
		metadata, err := toStringSlice(arr[0])
		if err != nil {
			return nil, err
		}
		rr.Metadata = metadata
	case 3:
		headers, ok := arr[0].([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected header array, got %T", arr[0])
		}
		rr.Headers = make([]string, len(headers))
		for i, h := range headers {
			rr.Headers[i] = headerName(h)
		}

		rows, ok := arr[1].([]interface{})
		if !ok {
			return nil, fmt.Errorf("expected row array, got %T", arr[1])
		}
		rr.Data = make([][]interface{}, 0, len(rows))
		for _, row := range rows {
			cells, ok := row.([]interface{})
			if !ok {
				return nil, fmt.Errorf("expected row, got %T", row)
			}
			rr.Data = append(rr.Data, cells)
		}

		metadata, err := toStringSlice(arr[2])
		if err != nil {
			return nil, err
		}
		rr.Metadata = metadata
	default:
		return nil, fmt.Errorf("unexpected query result length: %d", len(arr))
	}

	return rr, nil
}

// Rows returns the data as maps keyed by column name.
func (r *RawResult) Rows() []map[string]interface{} {
	rows := make([]map[string]interface{}, len(r.Data))
	for i, cells := range r.Data {
		row := make(map[string]interface{}, len(cells))
		for j, cell := range cells {
			name := fmt.Sprintf("column_%d", j)
			if j < len(r.Headers) {
				name = r.Headers[j]
			}
			row[name] = cell
		}
		rows[i] = row
	}
	return rows
}

// Stats returns the integer counters from the metadata lines, such as
// "Nodes created: 2". Lines with non-integer values (timings, flags) are skipped.
func (r *RawResult) Stats() map[string]int64 {
	stats := make(map[string]int64, len(r.Metadata))
	for _, line := range r.Metadata {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if n, ok := ToInt64(value); ok {
			stats[strings.TrimSpace(key)] = n
		}
	}
	return stats
}

func headerName(h interface{}) string {
	if pair, ok := h.([]interface{}); ok && len(pair) >= 2 {
		return ToString(pair[1])
	}
	return ToString(h)
}

func toStringSlice(v interface{}) ([]string, error) {
	arr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", v)
	}

	result := make([]string, len(arr))
	for i, item := range arr {
		result[i] = ToString(item)
	}
	return result, nil
}

// ToInt64 converts an interface{} to int64.
// ok is false when v is not an integer or integer string.
func ToInt64(v interface{}) (n int64, ok bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int64:
		return val, true
	case float64:
		return int64(val), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

// ToString converts an interface{} to string.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
