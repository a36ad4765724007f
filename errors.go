package cypherbuilder

import "errors"

// ErrInvalidParameter is returned when a relationship-type expression is malformed.
var ErrInvalidParameter = errors.New("cypherbuilder: invalid parameter")
