package tree

import "errors"

// ErrPathConflict is returned when a dotted path descends through a segment that holds a scalar value.
var ErrPathConflict = errors.New("path conflict")

// ErrUnsupportedValue is returned when a Go value has no Value representation.
var ErrUnsupportedValue = errors.New("unsupported value")
