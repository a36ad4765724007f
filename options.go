package cypherbuilder

import "math"

// NodeOptions configures a MATCH clause.
type NodeOptions struct {
	// Label is the node label. Empty matches any label.
	Label string

	// Data holds property filters rendered as {key:'value', ...}.
	// Entries are written in slice order.
	Data Properties
}

// LinkOptions configures a relationship fragment.
type LinkOptions struct {
	// Relations is a relationship-type expression such as ":KNOWS" or
	// ":ACTED_IN|:DIRECTED". It is uppercased before being written.
	// Empty matches any relationship type.
	Relations string

	// RelationLabel is the label of the node at the far end of the link.
	RelationLabel string
}

// BuildOptions configures the RETURN clause.
type BuildOptions struct {
	// Limit is written as LIMIT <Limit> when set.
	// Only integer, float and string values are used; zero, NaN and the
	// empty string mean no limit, and any other type is ignored.
	Limit interface{}
}

func (o BuildOptions) hasLimit() bool {
	switch v := o.Limit.(type) {
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0 && !math.IsNaN(float64(v))
	case float64:
		return v != 0 && !math.IsNaN(v)
	case string:
		return v != ""
	default:
		return false
	}
}
