// Package tree provides a hierarchical configuration container addressed by dotted paths.
//
// A Node behaves like nested mappings but is read and written through flat paths
// such as "db.host". Intermediate levels are created on demand, both when writing
// and when reading, and the whole tree can be collapsed into a single Flat mapping
// keyed by dot-joined paths.
//
// # Keys
//
// Entries are keyed by Key. Plain keys come from K and are split on "." when used
// as a path. Nominal keys come from Nominal and are never split; a nominal key and
// a plain key with the same text are distinct entries.
//
//	node := tree.New()
//	_ = node.SetKey(tree.Nominal("k"), tree.Int(1))
//	_ = node.Set("k", tree.Int(2))
//	node.Len() // 2
//
// # Values
//
// Leaves hold a Value, a closed set of scalar kinds: String, Int, Float and Bool.
// ValueOf converts plain Go scalars.
//
// # Auto-vivification and pruning
//
// Reading a missing path creates empty nodes along the way and yields the supplied
// default. FlattenPrune drops those empty nodes again:
//
//	node := tree.New()
//	v, _ := node.Get("a.b.c", tree.Int(42)) // 42; "a" now exists
//	node.FlattenPrune()                    // {}; "a" is gone
//
// # Path conflicts
//
// Addressing a scalar as if it were a branch ("a.b" when "a" holds a value) fails
// with an error wrapping ErrPathConflict.
//
// A Node has no internal locking. FlattenPrune mutates the tree, so callers sharing
// a Node across goroutines must serialize every operation, reads included.
package tree
