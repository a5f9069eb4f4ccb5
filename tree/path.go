package tree

import "strings"

// Separator joins path segments.
const Separator = "."

// splitPath cuts a plain key at its first separator.
// Nominal keys and keys without a separator address the current level and report ok == false.
func splitPath(k Key) (head, rest Key, ok bool) {
	if k.nominal {
		return k, Key{}, false
	}

	first, remainder, found := strings.Cut(k.name, Separator)
	if !found {
		return k, Key{}, false
	}

	return K(first), K(remainder), true
}

func joinPath(prefix Key, sub Key) Key {
	return K(prefix.String() + Separator + sub.String())
}
