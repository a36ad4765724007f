package cypherbuilder

import (
	"fmt"
	"strings"
)

// Direction is the arrow direction of a relationship fragment.
type Direction string

const (
	// DirectionBoth renders -[r]-(n).
	DirectionBoth Direction = "both"

	// DirectionForward renders -[r]->(n).
	DirectionForward Direction = "forward"

	// DirectionBackward renders <-[r]-(n).
	DirectionBackward Direction = "backward"
)

// ParseDirection converts a direction name into a Direction.
// The empty string is DirectionBoth.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(s)) {
	case "", DirectionBoth:
		return DirectionBoth, nil
	case DirectionForward:
		return DirectionForward, nil
	case DirectionBackward:
		return DirectionBackward, nil
	default:
		return "", fmt.Errorf("%w: direction %q", ErrInvalidParameter, s)
	}
}

func (d Direction) arrows() (left, right string) {
	switch d {
	case DirectionForward:
		return "-", "->"
	case DirectionBackward:
		return "<-", "-"
	default:
		return "-", "-"
	}
}

// Property is a single key/value filter on a node.
type Property struct {
	Key   string
	Value interface{}
}

// String returns the property as key:'value'.
func (p Property) String() string {
	return fmt.Sprintf("%s:'%v'", p.Key, p.Value)
}

// Properties is an ordered list of node property filters.
type Properties []Property

// Props builds Properties from alternating keys and values.
// A trailing key without a value is ignored.
//
// Example:
//
//	cypherbuilder.Props("name", "Tom Hanks", "born", 1956)
func Props(kv ...interface{}) Properties {
	props := make(Properties, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		props = append(props, Property{Key: fmt.Sprint(kv[i]), Value: kv[i+1]})
	}
	return props
}

// clause renders " {k1:'v1', k2:'v2'}", or "" when there are no properties.
// Values are not escaped.
func (p Properties) clause() string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, len(p))
	for i, prop := range p {
		parts[i] = prop.String()
	}
	return " {" + strings.Join(parts, ", ") + "}"
}
