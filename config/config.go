package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-config/tree"
)

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// NodeParser defines an interface for parsing configuration data into a tree.Node.
// The path parameter follows the same colon syntax as Parser.
type NodeParser interface {
	ParseNode(data []byte, path string) (*tree.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// TreeProvider returns a function that reads configuration data and parses the section at path
// into a tree.Node. The returned function is a valid Fx constructor.
func TreeProvider(path string) func(NodeParser, DataFetcher) (*tree.Node, error) {
	return func(parser NodeParser, dataSourcer DataFetcher) (*tree.Node, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		node, err := parser.ParseNode(data, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		slog.Debug("configuration tree loaded", slog.String("path", path), slog.Int("leaves", node.Len()))

		return node, nil
	}
}

// Overrides returns a function that merges flat into a tree leaf by leaf.
// It is meant for fx.Decorate, layering values such as command-line overrides over a loaded tree.
func Overrides(flat tree.Flat) func(*tree.Node) (*tree.Node, error) {
	return func(node *tree.Node) (*tree.Node, error) {
		if len(flat) == 0 {
			return node, nil
		}

		err := node.UpdateFlat(flat)
		if err != nil {
			return nil, fmt.Errorf("applying overrides: %w", err)
		}

		slog.Info("overrides applied", slog.Int("count", len(flat)))

		return node, nil
	}
}
