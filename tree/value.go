package tree

import (
	"fmt"
	"math"
	"strconv"
)

// Kind enumerates the scalar kinds a leaf can hold.
type Kind int

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a scalar stored at a leaf. The set of implementations is closed:
// String, Int, Float and Bool.
type Value interface {
	Kind() Kind
	// Interface returns the plain Go value (string, int64, float64 or bool).
	Interface() any
	String() string

	scalar()
}

// String is a text leaf.
type String string

// Int is a signed 64-bit integer leaf.
type Int int64

// Float is a 64-bit floating point leaf.
type Float float64

// Bool is a boolean leaf.
type Bool bool

func (String) Kind() Kind { return KindString }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (Bool) Kind() Kind   { return KindBool }

func (v String) Interface() any { return string(v) }
func (v Int) Interface() any    { return int64(v) }
func (v Float) Interface() any  { return float64(v) }
func (v Bool) Interface() any   { return bool(v) }

func (v String) String() string { return string(v) }
func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }

func (String) scalar() {}
func (Int) scalar()    {}
func (Float) scalar()  {}
func (Bool) scalar()   {}

// ValueOf converts a Go scalar into a Value.
// It accepts strings, booleans, every integer and float width, and Values themselves.
// Anything else, including nil and unsigned values above math.MaxInt64, yields ErrUnsupportedValue.
//
//nolint:cyclop // one case per accepted Go kind
func ValueOf(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case string:
		return String(v), nil
	case bool:
		return Bool(v), nil
	case int:
		return Int(v), nil
	case int8:
		return Int(v), nil
	case int16:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case uint:
		return uintValue(uint64(v))
	case uint8:
		return Int(v), nil
	case uint16:
		return Int(v), nil
	case uint32:
		return Int(v), nil
	case uint64:
		return uintValue(v)
	case float32:
		return Float(v), nil
	case float64:
		return Float(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

func uintValue(v uint64) (Value, error) {
	if v > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedValue, v)
	}

	return Int(int64(v)), nil
}
