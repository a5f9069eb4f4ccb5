package tree

// Key identifies an entry within a Node.
// Two keys are equal when both their names and their kinds (plain or nominal) match,
// so Key values can be compared with == and used as map keys directly.
type Key struct {
	name    string
	nominal bool
}

// K returns a plain key. Used as a path, it is split on the "." separator.
func K(name string) Key {
	return Key{name: name}
}

// Nominal returns a nominal key: an identity token that never equals a plain key,
// even one with the same text, and that is never split into path segments.
func Nominal(name string) Key {
	return Key{name: name, nominal: true}
}

// Name returns the text the key was created with.
func (k Key) Name() string {
	return k.name
}

// IsNominal reports whether k was created by Nominal.
func (k Key) IsNominal() bool {
	return k.nominal
}

// String renders nominal keys in brackets so they stay distinguishable inside flattened paths.
func (k Key) String() string {
	if k.nominal {
		return "[" + k.name + "]"
	}

	return k.name
}
