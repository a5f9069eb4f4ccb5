// Package node provides a DataFetcher that serves an in-memory tree.Node as YAML.
//
// It lets config.Provider decode typed sections out of a tree that was assembled
// in code, merged from several sources, or patched with overrides:
//
//	fetcher, err := node.NewFetcher(root)()
//	cfg, err := config.Provider(&DBConfig{}, "db")(yamlparser.NewParser(), fetcher)
package node
