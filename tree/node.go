package tree

import (
	"fmt"
	"slices"
)

// entry holds exactly one of value or child.
type entry struct {
	value Value
	child *Node
}

// Node is one level of a configuration tree. The zero value is an empty node ready to use.
//
// A parent exclusively owns its children; a Node must not be reachable from two places.
type Node struct {
	entries map[Key]entry
	order   []Key
}

// New returns an empty node.
func New() *Node {
	return &Node{entries: make(map[Key]entry)}
}

// Get returns the scalar stored at path, or def when path holds a node or nothing.
// Missing segments are created as empty nodes.
func (n *Node) Get(path string, def Value) (Value, error) {
	return n.GetKey(K(path), def)
}

// GetKey is Get for an arbitrary key; nominal keys address the current level only.
func (n *Node) GetKey(k Key, def Value) (Value, error) {
	found, err := n.lookup(k)
	if err != nil {
		return def, fmt.Errorf("get %q: %w", k.String(), err)
	}

	if found.child != nil {
		return def, nil
	}

	return found.value, nil
}

// Lookup returns the raw entry at path: either its scalar or its node, never both.
// An absent path is created as an empty node and returned as such.
func (n *Node) Lookup(path string) (Value, *Node, error) {
	return n.LookupKey(K(path))
}

// LookupKey is Lookup for an arbitrary key.
func (n *Node) LookupKey(k Key) (Value, *Node, error) {
	found, err := n.lookup(k)
	if err != nil {
		return nil, nil, fmt.Errorf("lookup %q: %w", k.String(), err)
	}

	return found.value, found.child, nil
}

// Sub returns the node at path, creating it when absent.
func (n *Node) Sub(path string) (*Node, error) {
	found, err := n.lookup(K(path))
	if err != nil {
		return nil, fmt.Errorf("sub %q: %w", path, err)
	}

	if found.child == nil {
		return nil, fmt.Errorf("sub %q: %w: value stored at path", path, ErrPathConflict)
	}

	return found.child, nil
}

// Set stores v at path, creating intermediate nodes as needed.
// Whatever the final segment held before, scalar or node, is replaced.
func (n *Node) Set(path string, v Value) error {
	return n.SetKey(K(path), v)
}

// SetKey is Set for an arbitrary key.
func (n *Node) SetKey(k Key, v Value) error {
	if v == nil {
		return fmt.Errorf("set %q: %w: nil", k.String(), ErrUnsupportedValue)
	}

	err := n.set(k, entry{value: v})
	if err != nil {
		return fmt.Errorf("set %q: %w", k.String(), err)
	}

	return nil
}

// SetNode stores child at path. The tree takes ownership of child.
func (n *Node) SetNode(path string, child *Node) error {
	if child == nil {
		return fmt.Errorf("set %q: %w: nil node", path, ErrUnsupportedValue)
	}

	if child.reaches(n) {
		return fmt.Errorf("set %q: %w: node would contain itself", path, ErrUnsupportedValue)
	}

	err := n.set(K(path), entry{child: child})
	if err != nil {
		return fmt.Errorf("set %q: %w", path, err)
	}

	return nil
}

// Delete removes the entry at path. Deleting something that does not exist is a no-op.
func (n *Node) Delete(path string) error {
	return n.DeleteKey(K(path))
}

// DeleteKey is Delete for an arbitrary key.
func (n *Node) DeleteKey(k Key) error {
	err := n.remove(k)
	if err != nil {
		return fmt.Errorf("delete %q: %w", k.String(), err)
	}

	return nil
}

// FlattenPrune collapses the tree into a Flat mapping keyed by dot-joined paths.
//
// Every child node that flattens to nothing is deleted from the tree on the way,
// so after the call no empty branch remains and a second call returns the same result.
func (n *Node) FlattenPrune() Flat {
	result := make(Flat)

	for _, k := range slices.Clone(n.order) {
		found := n.entries[k]
		if found.child == nil {
			result[k] = found.value

			continue
		}

		sub := found.child.FlattenPrune()
		if len(sub) == 0 {
			n.drop(k)

			continue
		}

		for subKey, v := range sub {
			result[joinPath(k, subKey)] = v
		}
	}

	return result
}

// Len returns the number of leaves reachable from n. It prunes like FlattenPrune.
func (n *Node) Len() int {
	return len(n.FlattenPrune())
}

// Contains reports whether path is a direct entry of n or a leaf path in its flattened form.
func (n *Node) Contains(path string) bool {
	return n.ContainsKey(K(path))
}

// ContainsKey is Contains for an arbitrary key.
func (n *Node) ContainsKey(k Key) bool {
	if _, ok := n.entries[k]; ok {
		return true
	}

	_, ok := n.FlattenPrune()[k]

	return ok
}

// Keys returns the direct keys of n in insertion order.
func (n *Node) Keys() []Key {
	return slices.Clone(n.order)
}

// Members lists the operation names Get, FlattenPrune and Update followed by the
// direct keys left after pruning. It serves completion and introspection tools.
func (n *Node) Members() []string {
	members := []string{"Get", "FlattenPrune", "Update"}

	n.FlattenPrune()

	for _, k := range n.order {
		members = append(members, k.String())
	}

	return members
}

// String renders the flattened form of n. It prunes like FlattenPrune.
func (n *Node) String() string {
	return n.FlattenPrune().String()
}

// ToMap returns the nested Go form of n, skipping branches without leaves.
// Unlike FlattenPrune it does not modify the tree.
func (n *Node) ToMap() map[string]any {
	out := make(map[string]any, len(n.order))

	for _, k := range n.order {
		found := n.entries[k]
		if found.child == nil {
			out[k.String()] = found.value.Interface()

			continue
		}

		if sub := found.child.ToMap(); len(sub) > 0 {
			out[k.String()] = sub
		}
	}

	return out
}

func (n *Node) lookup(k Key) (entry, error) {
	if head, rest, ok := splitPath(k); ok {
		child, err := n.branch(head)
		if err != nil {
			return entry{}, err
		}

		return child.lookup(rest)
	}

	found, ok := n.entries[k]
	if !ok {
		found = entry{child: New()}
		n.put(k, found)
	}

	return found, nil
}

func (n *Node) set(k Key, e entry) error {
	if head, rest, ok := splitPath(k); ok {
		child, err := n.branch(head)
		if err != nil {
			return err
		}

		return child.set(rest, e)
	}

	n.put(k, e)

	return nil
}

func (n *Node) remove(k Key) error {
	if _, ok := n.entries[k]; ok {
		n.drop(k)

		return nil
	}

	head, rest, ok := splitPath(k)
	if !ok {
		return nil
	}

	found, exists := n.entries[head]
	if !exists {
		return nil
	}

	if found.child == nil {
		return conflictAt(head)
	}

	return found.child.remove(rest)
}

// branch returns the child node at k, creating it when k is absent.
func (n *Node) branch(k Key) (*Node, error) {
	found, ok := n.entries[k]
	if !ok {
		child := New()
		n.put(k, entry{child: child})

		return child, nil
	}

	if found.child == nil {
		return nil, conflictAt(k)
	}

	return found.child, nil
}

func (n *Node) put(k Key, e entry) {
	if n.entries == nil {
		n.entries = make(map[Key]entry)
	}

	if _, exists := n.entries[k]; !exists {
		n.order = append(n.order, k)
	}

	n.entries[k] = e
}

func (n *Node) drop(k Key) {
	delete(n.entries, k)

	n.order = slices.DeleteFunc(n.order, func(existing Key) bool {
		return existing == k
	})
}

func (n *Node) reaches(target *Node) bool {
	if n == target {
		return true
	}

	for _, e := range n.entries {
		if e.child != nil && e.child.reaches(target) {
			return true
		}
	}

	return false
}

func conflictAt(segment Key) error {
	return fmt.Errorf("%w: %q holds a value", ErrPathConflict, segment.String())
}
