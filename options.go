package hjarta

import (
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/tree"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules     []fx.Option
	LogLevel    string
	ConfigFile  string
	FileOptions []filefetcher.Option
	ConfigTree  *tree.Node
	Overrides   tree.Flat
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithConfigFile loads a YAML file into a *tree.Node and provides it to the container.
// Pass filefetcher.Optional() to start from an empty tree when the file does not exist.
func WithConfigFile(path string, opts ...filefetcher.Option) Option {
	return func(o *Options) {
		o.ConfigFile = path
		o.FileOptions = append(o.FileOptions, opts...)
	}
}

// WithConfigTree provides an already built tree to the container. The application takes ownership of it.
// It cannot be combined with WithConfigFile.
func WithConfigTree(node *tree.Node) Option {
	return func(opts *Options) {
		opts.ConfigTree = node
	}
}

// WithConfigOverrides layers flat leaf values over the provided tree.
// Repeated calls accumulate; for the same path the last call wins.
func WithConfigOverrides(flat tree.Flat) Option {
	return func(opts *Options) {
		if opts.Overrides == nil {
			opts.Overrides = make(tree.Flat, len(flat))
		}

		for k, v := range flat {
			opts.Overrides[k] = v
		}
	}
}
