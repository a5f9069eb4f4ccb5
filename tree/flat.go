package tree

import (
	"slices"
	"strconv"
	"strings"
)

// Flat is the collapsed form of a Node: dot-joined paths mapped to scalar values.
type Flat map[Key]Value

// Keys returns the keys of f ordered by their string form, plain keys before nominal
// keys with the same text.
func (f Flat) Keys() []Key {
	keys := make([]Key, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, compareKeys)

	return keys
}

// Get returns the value stored under the plain key path.
func (f Flat) Get(path string) (Value, bool) {
	v, ok := f[K(path)]

	return v, ok
}

// Len returns the number of leaves.
func (f Flat) Len() int {
	return len(f)
}

// String renders f as {path: value, ...} in Keys order. String values are quoted.
func (f Flat) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, k := range f.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(k.String())
		sb.WriteString(": ")
		sb.WriteString(render(f[k]))
	}

	sb.WriteByte('}')

	return sb.String()
}

func render(v Value) string {
	if s, ok := v.(String); ok {
		return strconv.Quote(string(s))
	}

	return v.String()
}

func compareKeys(a, b Key) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}

	switch {
	case a.nominal == b.nominal:
		return 0
	case a.nominal:
		return 1
	default:
		return -1
	}
}
