// Package proto handles FalkorDB protocol encoding and decoding.
package proto

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// BuildQueryArgs constructs the arguments for a GRAPH.QUERY or GRAPH.RO_QUERY command.
func BuildQueryArgs(cmd, graph, query string, params map[string]interface{}, timeout int) []interface{} {
	args := []interface{}{cmd, graph}

	if len(params) > 0 {
		query = fmt.Sprintf("CYPHER %s %s", paramsToString(params), query)
	}

	args = append(args, query)

	if timeout > 0 {
		args = append(args, "TIMEOUT", strconv.Itoa(timeout))
	}

	return args
}

// paramsToString converts query parameters to the CYPHER k=v prefix.
// Keys are sorted so the same parameters always produce the same query.
func paramsToString(params map[string]interface{}) string {
	parts := make([]string, 0, len(params))
	for _, key := range sortedKeys(params) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, ValueToString(params[key])))
	}
	return strings.Join(parts, " ")
}

// ValueToString converts a parameter value to its Cypher literal.
func ValueToString(param interface{}) string {
	if param == nil {
		return "null"
	}

	switch v := param.(type) {
	case string:
		escaped := strings.ReplaceAll(v, "\\", "\\\\")
		escaped = strings.ReplaceAll(escaped, "\"", "\\\"")
		return fmt.Sprintf("\"%s\"", escaped)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v)
	case float32, float64:
		return fmt.Sprint(v)
	case bool:
		return fmt.Sprint(v)
	case []string:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = ValueToString(item)
		}
		return fmt.Sprintf("[%s]", strings.Join(items, ","))
	case []interface{}:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = ValueToString(item)
		}
		return fmt.Sprintf("[%s]", strings.Join(items, ","))
	case map[string]interface{}:
		items := make([]string, 0, len(v))
		for _, key := range sortedKeys(v) {
			items = append(items, fmt.Sprintf("%s:%s", key, ValueToString(v[key])))
		}
		return fmt.Sprintf("{%s}", strings.Join(items, ","))
	default:
		return fmt.Sprint(v)
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
