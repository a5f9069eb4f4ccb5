// hjarta-config loads a YAML configuration file into a dotted-path tree, layers
// command-line overrides on top, and prints either a single value or the whole
// tree.
//
//	hjarta-config --file config.yaml --set db.port=5433 --set debug=true
//	hjarta-config --file config.yaml --section services:api --get limits.rps --default 100
//	hjarta-config --set a.b=1 --format yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/logging"
	"github.com/0xalexb/hjarta-config/tree"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"
)

var (
	errInvalidOverride = errors.New("override must have the form path=value")
	errUnknownFormat   = errors.New("unknown output format")
	errNotSet          = errors.New("path not set")
)

type options struct {
	file         string
	optional     bool
	section      string
	overrides    []string
	get          string
	defaultValue string
	format       string
	logLevel     string
	version      bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options

	flagSet := pflag.NewFlagSet("hjarta-config", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.file, "file", "f", "", "YAML file to load (default: start from an empty tree)")
	flagSet.BoolVar(&opts.optional, "optional", false, "treat a missing --file as an empty document")
	flagSet.StringVar(&opts.section, "section", "", "colon-separated section of the file to load, e.g. services:api")
	flagSet.StringArrayVarP(&opts.overrides, "set", "s", nil, "override a leaf, path=value (repeatable)")
	flagSet.StringVarP(&opts.get, "get", "g", "", "print the value at this dotted path instead of the whole tree")
	flagSet.StringVar(&opts.defaultValue, "default", "", "value printed by --get when the path holds no value")
	flagSet.StringVar(&opts.format, "format", "flat", "output format for the whole tree: flat or yaml")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level (default: log.level from the file, then info)")
	flagSet.BoolVar(&opts.version, "version", false, "print version and exit")

	err := flagSet.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return 2
	}

	if opts.version {
		fmt.Fprintf(stdout, "hjarta-config %s (%s)\n", hjarta.Version, hjarta.CompiledAt)

		return 0
	}

	logger := logging.NewLogger(logging.LoggerConfig{Level: opts.logLevel}, stderr)

	node, err := load(opts)
	if err != nil {
		logger.Error("loading configuration", slog.String("file", opts.file), slog.Any("error", err))

		return 1
	}

	if opts.logLevel == "" {
		logger = logging.NewLogger(logging.ConfigFromNode(node), stderr)
	}

	err = apply(node, opts.overrides)
	if err != nil {
		logger.Error("applying overrides", slog.Any("error", err))

		return 1
	}

	logger.Debug("configuration ready", slog.Int("leaves", node.Len()))

	if opts.get != "" {
		err = printValue(stdout, node, opts, flagSet.Changed("default"))
	} else {
		err = printTree(stdout, node, opts.format)
	}

	if err != nil {
		logger.Error("printing configuration", slog.Any("error", err))

		return 1
	}

	return 0
}

func load(opts options) (*tree.Node, error) {
	if opts.file == "" {
		return tree.New(), nil
	}

	var fetchOpts []filefetcher.Option
	if opts.optional {
		fetchOpts = append(fetchOpts, filefetcher.Optional())
	}

	fetcher, err := filefetcher.NewFetcher(opts.file, fetchOpts...)()
	if err != nil {
		return nil, err
	}

	return config.TreeProvider(opts.section)(yamlparser.NewParser(), fetcher)
}

// apply sets every override in command-line order, so a later --set wins over an earlier one
// even when one path is a prefix of the other.
func apply(node *tree.Node, overrides []string) error {
	for _, override := range overrides {
		path, text, found := strings.Cut(override, "=")
		if !found || path == "" {
			return fmt.Errorf("%w: %q", errInvalidOverride, override)
		}

		err := node.Set(path, yamlparser.ParseScalar(text))
		if err != nil {
			return err
		}
	}

	return nil
}

func printValue(w io.Writer, node *tree.Node, opts options, hasDefault bool) error {
	var def tree.Value
	if hasDefault {
		def = yamlparser.ParseScalar(opts.defaultValue)
	}

	value, err := node.Get(opts.get, def)
	if err != nil {
		return err
	}

	if value == nil {
		return fmt.Errorf("%w: %s", errNotSet, opts.get)
	}

	_, err = fmt.Fprintln(w, value)

	return err
}

func printTree(w io.Writer, node *tree.Node, format string) error {
	switch format {
	case "flat":
		flat := node.FlattenPrune()
		for _, k := range flat.Keys() {
			_, err := fmt.Fprintf(w, "%s=%s\n", k, flat[k])
			if err != nil {
				return err
			}
		}

		return nil
	case "yaml":
		data, err := yaml.MarshalWithOptions(node.ToMap(), yaml.Indent(2))
		if err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}

		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
