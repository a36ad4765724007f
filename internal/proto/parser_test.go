package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt64(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected int64
		ok       bool
	}{
		{int(42), 42, true},
		{int64(42), 42, true},
		{float64(42.9), 42, true},
		{"42", 42, true},
		{" 7", 7, true},
		{"0.2 milliseconds", 0, false},
		{nil, 0, false},
	}

	for _, tc := range tests {
		n, ok := ToInt64(tc.input)
		assert.Equal(t, tc.expected, n, "ToInt64(%v)", tc.input)
		assert.Equal(t, tc.ok, ok, "ToInt64(%v)", tc.input)
	}
}

func TestStats(t *testing.T) {
	raw := &RawResult{Metadata: []string{
		"Nodes created: 2",
		"Relationships created: 1",
		"Cached execution: 0",
		"Query internal execution time: 0.2 milliseconds",
		"no separator",
	}}

	assert.Equal(t, map[string]int64{
		"Nodes created":         2,
		"Relationships created": 1,
		"Cached execution":      0,
	}, raw.Stats())
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "12", ToString(int64(12)))
}

func TestParseResultMetadataOnly(t *testing.T) {
	raw, err := ParseResult([]interface{}{
		[]interface{}{"Nodes created: 1", "Query internal execution time: 0.1 milliseconds"},
	})
	require.NoError(t, err)
	assert.Nil(t, raw.Headers)
	assert.Empty(t, raw.Rows())
	assert.Len(t, raw.Metadata, 2)
}

func TestParseResultRows(t *testing.T) {
	raw, err := ParseResult([]interface{}{
		[]interface{}{"relation1", []interface{}{int64(1), "label1"}},
		[]interface{}{
			[]interface{}{"r-a", "n-a"},
			[]interface{}{"r-b"},
		},
		[]interface{}{"Cached execution: 0"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"relation1", "label1"}, raw.Headers)

	rows := raw.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, map[string]interface{}{"relation1": "r-a", "label1": "n-a"}, rows[0])
	assert.Equal(t, map[string]interface{}{"relation1": "r-b"}, rows[1])
}

func TestParseResultExtraColumns(t *testing.T) {
	raw, err := ParseResult([]interface{}{
		[]interface{}{"a"},
		[]interface{}{[]interface{}{1, 2}},
		[]interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"a": 1, "column_1": 2}, raw.Rows()[0])
}

func TestParseResultErrors(t *testing.T) {
	_, err := ParseResult("OK")
	assert.Error(t, err)

	_, err = ParseResult([]interface{}{1, 2})
	assert.Error(t, err)

	_, err = ParseResult([]interface{}{"not-headers", []interface{}{}, []interface{}{}})
	assert.Error(t, err)
}
