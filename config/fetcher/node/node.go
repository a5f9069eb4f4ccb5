package node

import (
	"errors"
	"fmt"

	"github.com/0xalexb/hjarta-config/tree"

	"github.com/goccy/go-yaml"
)

// ErrNilNode is returned when the Fetcher is constructed without a tree.
var ErrNilNode = errors.New("nil configuration tree")

// Fetcher implements config.DataFetcher over an in-memory tree.Node.
// The tree is encoded as YAML once, at construction time.
type Fetcher struct {
	data []byte
}

// NewFetcher returns an Fx-friendly constructor that snapshots source as a YAML document.
// Later changes to source are not visible through the Fetcher.
func NewFetcher(source *tree.Node) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if source == nil {
			return nil, ErrNilNode
		}

		data, err := yaml.MarshalWithOptions(source.ToMap(), yaml.Indent(2))
		if err != nil {
			return nil, fmt.Errorf("encoding tree: %w", err)
		}

		return &Fetcher{data: data}, nil
	}
}

// Fetch returns a copy of the encoded tree.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
