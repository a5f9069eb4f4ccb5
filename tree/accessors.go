package tree

// Typed accessors swallow path conflicts and kind mismatches and fall back to def.
// Use Get directly when those cases need to be told apart.

// GetString returns the String stored at path, or def.
func (n *Node) GetString(path string, def string) string {
	v, err := n.Get(path, nil)
	if err != nil {
		return def
	}

	if s, ok := v.(String); ok {
		return string(s)
	}

	return def
}

// GetInt returns the Int stored at path, or def. A Float is truncated.
func (n *Node) GetInt(path string, def int64) int64 {
	v, err := n.Get(path, nil)
	if err != nil {
		return def
	}

	switch val := v.(type) {
	case Int:
		return int64(val)
	case Float:
		return int64(val)
	default:
		return def
	}
}

// GetFloat returns the Float stored at path, or def. An Int is widened.
func (n *Node) GetFloat(path string, def float64) float64 {
	v, err := n.Get(path, nil)
	if err != nil {
		return def
	}

	switch val := v.(type) {
	case Float:
		return float64(val)
	case Int:
		return float64(val)
	default:
		return def
	}
}

// GetBool returns the Bool stored at path, or def.
func (n *Node) GetBool(path string, def bool) bool {
	v, err := n.Get(path, nil)
	if err != nil {
		return def
	}

	if b, ok := v.(Bool); ok {
		return bool(b)
	}

	return def
}
