package tree

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
)

// FromFlat builds a node by setting every entry of preset, in Keys order.
func FromFlat(preset Flat) (*Node, error) {
	n := New()

	err := n.UpdateFlat(preset)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// FromNode builds an independent copy of src from its flattened form.
// src is pruned as a side effect.
func FromNode(src *Node) (*Node, error) {
	if src == nil {
		return New(), nil
	}

	return FromFlat(src.FlattenPrune())
}

// FromMap builds a node from nested Go maps such as those produced by YAML or JSON decoders.
// Nested maps become child nodes, nil leaves are skipped, every other value goes through ValueOf.
// Keys are applied in sorted order; all conversion and conflict errors are reported together.
func FromMap(preset map[string]any) (*Node, error) {
	n := New()

	err := n.load("", preset)
	if err != nil {
		return nil, err
	}

	return n, nil
}

// Update merges other into n leaf by leaf. Leaves present in both take the value from other,
// every other leaf of n is kept. other is pruned as a side effect.
func (n *Node) Update(other *Node) error {
	if other == nil {
		return nil
	}

	return n.UpdateFlat(other.FlattenPrune())
}

// UpdateFlat sets every entry of flat in Keys order. A conflicting path does not stop
// the merge; all failures are returned combined.
func (n *Node) UpdateFlat(flat Flat) error {
	var errs error

	for _, k := range flat.Keys() {
		errs = multierr.Append(errs, n.SetKey(k, flat[k]))
	}

	return errs
}

func (n *Node) load(prefix string, raw map[string]any) error {
	var errs error

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		path := name
		if prefix != "" {
			path = prefix + Separator + name
		}

		switch v := raw[name].(type) {
		case nil:
			continue
		case map[string]any:
			errs = multierr.Append(errs, n.load(path, v))
		case map[any]any:
			errs = multierr.Append(errs, n.load(path, stringKeys(v)))
		default:
			value, err := ValueOf(v)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("load %q: %w", path, err))

				continue
			}

			errs = multierr.Append(errs, n.Set(path, value))
		}
	}

	return errs
}

func stringKeys(raw map[any]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[fmt.Sprint(k)] = v
	}

	return out
}
