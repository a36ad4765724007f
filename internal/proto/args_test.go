package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueToString(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, "null"},
		{"hello", `"hello"`},
		{42, "42"},
		{int64(-7), "-7"},
		{3.14, "3.14"},
		{true, "true"},
		{false, "false"},
		{[]interface{}{1, 2, 3}, "[1,2,3]"},
		{[]string{"a", "b"}, `["a","b"]`},
		{map[string]interface{}{"key": "value"}, `{key:"value"}`},
		{map[string]interface{}{"b": 2, "a": 1}, `{a:1,b:2}`},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ValueToString(tc.input), "ValueToString(%v)", tc.input)
	}
}

func TestValueToStringEscaping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`hello`, `"hello"`},
		{`hello "world"`, `"hello \"world\""`},
		{`path\to\file`, `"path\\to\\file"`},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, ValueToString(tc.input))
	}
}

func TestBuildQueryArgs(t *testing.T) {
	args := BuildQueryArgs("GRAPH.QUERY", "movies", "MATCH (label1) RETURN label1", nil, 0)
	require.Len(t, args, 3)
	assert.Equal(t, "GRAPH.QUERY", args[0])
	assert.Equal(t, "movies", args[1])
	assert.Equal(t, "MATCH (label1) RETURN label1", args[2])

	args = BuildQueryArgs("GRAPH.RO_QUERY", "movies", "MATCH (label1) RETURN label1",
		map[string]interface{}{"name": "Tom Hanks", "born": 1956}, 0)
	require.Len(t, args, 3)
	assert.Equal(t, `CYPHER born=1956 name="Tom Hanks" MATCH (label1) RETURN label1`, args[2])

	args = BuildQueryArgs("GRAPH.QUERY", "movies", "MATCH (label1) RETURN label1", nil, 5000)
	require.Len(t, args, 5)
	assert.Equal(t, "TIMEOUT", args[3])
	assert.Equal(t, "5000", args[4])
}
