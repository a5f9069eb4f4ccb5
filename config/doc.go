// Package config loads configuration data into typed structs or into tree.Node values.
//
// The package uses an interface-based design with these extension points:
//   - DataFetcher: retrieves raw config data (file, in-memory tree, etc.)
//   - Parser: deserializes raw data into a config struct, with path navigation support
//   - NodeParser: deserializes raw data into a tree.Node
//   - Validator: validates a config struct after parsing
//   - Defaulter: applies default values before validation
//
// # Path Navigation
//
// Provider and TreeProvider accept a path parameter that targets a specific
// section within configuration files. Paths use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// Inside a loaded tree.Node, leaves are then addressed with dotted paths
// ("connection.host").
//
// # Example
//
// A struct section:
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(yamlparser.NewParser(), fetcher)
//
// A whole document as a tree, with overrides layered on top:
//
//	node, err := config.TreeProvider("")(yamlparser.NewParser(), fetcher)
//	node, err = config.Overrides(tree.Flat{tree.K("db.port"): tree.Int(5433)})(node)
package config
