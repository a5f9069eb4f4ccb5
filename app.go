package hjarta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/logging"
	"github.com/0xalexb/hjarta-config/tree"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var (
	errAppNotInitialized = errors.New("app not initialized")
	// ErrConflictingConfigSources is returned when both a config file and a config tree are given.
	ErrConflictingConfigSources = errors.New("config file and config tree are mutually exclusive")
)

// App is a configured starting point for application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	logger := createLogger(options.LogLevel, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel}),
		fx.Supply(logger),
		treeModule(options),
		fx.Options(options.Modules...),
	)
}

// treeModule provides the *tree.Node built from a file or a supplied tree, with overrides applied.
// Overrides alone are applied to an empty tree. With no source and no overrides it provides nothing.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func treeModule(options *Options) fx.Option {
	overrides := config.Overrides(options.Overrides)

	switch {
	case options.ConfigFile != "" && options.ConfigTree != nil:
		return fx.Error(ErrConflictingConfigSources)
	case options.ConfigTree != nil:
		node := options.ConfigTree

		return fx.Module("config",
			fx.Provide(func() (*tree.Node, error) {
				return overrides(node)
			}),
		)
	case options.ConfigFile != "":
		load := config.TreeProvider("")

		return fx.Module("config",
			fx.Provide(
				fx.Annotate(yamlparser.NewParser, fx.As(new(config.NodeParser))),
				fx.Private,
			),
			fx.Provide(
				fx.Annotate(
					filefetcher.NewFetcher(options.ConfigFile, options.FileOptions...),
					fx.As(new(config.DataFetcher)),
				),
				fx.Private,
			),
			fx.Provide(func(parser config.NodeParser, fetcher config.DataFetcher) (*tree.Node, error) {
				node, err := load(parser, fetcher)
				if err != nil {
					return nil, fmt.Errorf("loading %q: %w", options.ConfigFile, err)
				}

				return overrides(node)
			}),
		)
	case len(options.Overrides) > 0:
		return fx.Module("config",
			fx.Provide(func() (*tree.Node, error) {
				return overrides(tree.New())
			}),
		)
	default:
		return fx.Options()
	}
}

func createLogger(level string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level}

	return logging.NewLogger(config, w)
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
