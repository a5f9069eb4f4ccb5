package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-config/tree"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrNotMapping is returned when a document or section parsed into a tree is not a mapping.
var ErrNotMapping = errors.New("not a mapping")

// Parser implements the config.Parser and config.NodeParser interfaces for YAML data.
// It uses goccy/go-yaml PathString for efficient path navigation.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if isKeyNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// ParseNode parses the mapping at path into a tree.Node.
// Nested mappings become child nodes; scalars become tree values.
// Sequences are rejected with tree.ErrUnsupportedValue, and a null section yields an empty node.
func (p *Parser) ParseNode(data []byte, path string) (*tree.Node, error) {
	var raw any

	err := p.Parse(data, &raw, path)
	if err != nil {
		return nil, err
	}

	switch section := raw.(type) {
	case nil:
		return tree.New(), nil
	case map[string]any:
		return buildNode(section, path)
	case map[any]any:
		converted := make(map[string]any, len(section))
		for k, v := range section {
			converted[fmt.Sprint(k)] = v
		}

		return buildNode(converted, path)
	default:
		return nil, fmt.Errorf("section %q: %w: got %T", path, ErrNotMapping, raw)
	}
}

// ParseScalar interprets text as a YAML scalar: "8080" becomes an Int, "true" a Bool,
// "0.5" a Float. Text that does not decode to a scalar is kept as a String.
func ParseScalar(text string) tree.Value {
	var raw any

	err := yaml.Unmarshal([]byte(text), &raw)
	if err != nil || raw == nil {
		return tree.String(text)
	}

	value, err := tree.ValueOf(raw)
	if err != nil {
		return tree.String(text)
	}

	return value
}

func buildNode(section map[string]any, path string) (*tree.Node, error) {
	node, err := tree.FromMap(section)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", path, err)
	}

	return node, nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}

// isKeyNotFoundError checks if the error indicates a key was not found.
func isKeyNotFoundError(err error) bool {
	return yaml.IsNotFoundNodeError(err)
}
