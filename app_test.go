package hjarta_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	hjarta "github.com/0xalexb/hjarta-config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/logging"
	"github.com/0xalexb/hjarta-config/tree"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func startApp(t *testing.T, opts ...hjarta.Option) {
	t.Helper()

	app := hjarta.NewApp(append([]hjarta.Option{hjarta.WithLogLevel("error")}, opts...)...)
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
}

func captureTree(target **tree.Node) hjarta.Option {
	return hjarta.WithModules(fx.Module("capture",
		fx.Invoke(func(node *tree.Node) {
			*target = node
		}),
	))
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	startApp(t, hjarta.WithModules(fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)))

	require.True(t, invoked)
}

func TestNewApp_LoggerConfigIsSupplied(t *testing.T) {
	t.Parallel()

	var capturedConfig logging.LoggerConfig

	startApp(t,
		hjarta.WithLogLevel("warn"),
		hjarta.WithModules(fx.Invoke(func(config logging.LoggerConfig) {
			capturedConfig = config
		})),
	)

	require.Equal(t, "warn", capturedConfig.Level)
}

func TestNewApp_WithConfigFile(t *testing.T) {
	t.Parallel()

	var node *tree.Node

	startApp(t, hjarta.WithConfigFile("testdata/config.yaml"), captureTree(&node))

	require.NotNil(t, node)
	require.Equal(t, "db.example.com", node.GetString("db.host", ""))
	require.Equal(t, int64(9000), node.GetInt("server.port", 0))
	require.Equal(t, 5, node.Len())
}

func TestNewApp_WithConfigFileAndOverrides(t *testing.T) {
	t.Parallel()

	var node *tree.Node

	startApp(t,
		hjarta.WithConfigFile("testdata/config.yaml"),
		hjarta.WithConfigOverrides(tree.Flat{tree.K("db.port"): tree.Int(1)}),
		hjarta.WithConfigOverrides(tree.Flat{
			tree.K("db.port"):  tree.Int(5433),
			tree.K("db.name"): tree.String("app"),
		}),
		captureTree(&node),
	)

	require.Equal(t, int64(5433), node.GetInt("db.port", 0))
	require.Equal(t, "app", node.GetString("db.name", ""))
	require.Equal(t, "db.example.com", node.GetString("db.host", ""))
}

func TestNewApp_WithOptionalMissingFile(t *testing.T) {
	t.Parallel()

	var node *tree.Node

	missing := filepath.Join(t.TempDir(), "absent.yaml")

	startApp(t,
		hjarta.WithConfigFile(missing, filefetcher.Optional()),
		hjarta.WithConfigOverrides(tree.Flat{tree.K("name"): tree.String("fallback")}),
		captureTree(&node),
	)

	require.Equal(t, "fallback", node.GetString("name", ""))
	require.Equal(t, 1, node.Len())
}

func TestNewApp_WithConfigTree(t *testing.T) {
	t.Parallel()

	supplied := tree.New()
	require.NoError(t, supplied.Set("feature.enabled", tree.Bool(true)))

	var node *tree.Node

	startApp(t, hjarta.WithConfigTree(supplied), captureTree(&node))

	require.Same(t, supplied, node)
	require.True(t, node.GetBool("feature.enabled", false))
}

func TestNewApp_ConfigErrors(t *testing.T) {
	t.Parallel()

	badYAML := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(badYAML, []byte("items:\n  - a\n  - b\n"), 0o600))

	testCases := []struct {
		name string
		opts []hjarta.Option
	}{
		{
			name: "missing file",
			opts: []hjarta.Option{hjarta.WithConfigFile("testdata/absent.yaml")},
		},
		{
			name: "unsupported value",
			opts: []hjarta.Option{hjarta.WithConfigFile(badYAML)},
		},
		{
			name: "conflicting sources",
			opts: []hjarta.Option{
				hjarta.WithConfigFile("testdata/config.yaml"),
				hjarta.WithConfigTree(tree.New()),
			},
		},
		{
			name: "override conflict",
			opts: []hjarta.Option{
				hjarta.WithConfigFile("testdata/config.yaml"),
				hjarta.WithConfigOverrides(tree.Flat{tree.K("db.host.name"): tree.String("x")}),
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var node *tree.Node

			opts := append([]hjarta.Option{hjarta.WithLogLevel("error")}, testCase.opts...)
			opts = append(opts, captureTree(&node))

			app := hjarta.NewApp(opts...)

			err := app.Start()
			require.Error(t, err)
			require.Nil(t, node)
		})
	}
}

func TestNewApp_NoConfigSourceProvidesNoTree(t *testing.T) {
	t.Parallel()

	app := hjarta.NewApp(hjarta.WithLogLevel("error"), hjarta.WithModules(
		fx.Invoke(func(*tree.Node) {}),
	))

	err := app.Start()
	require.Error(t, err)
}

func TestNewApp_OverridesWithoutConfigSource(t *testing.T) {
	t.Parallel()

	var node *tree.Node

	startApp(t,
		hjarta.WithConfigOverrides(tree.Flat{
			tree.K("name"):    tree.String("api"),
			tree.K("db.port"): tree.Int(5433),
		}),
		captureTree(&node),
	)

	require.NotNil(t, node)
	require.Equal(t, "api", node.GetString("name", ""))
	require.Equal(t, int64(5433), node.GetInt("db.port", 0))
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					stopCalled = true

					return nil
				},
			})
		}),
	)

	app := hjarta.NewApp(hjarta.WithModules(module))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)

	err = app.Stop()
	require.NoError(t, err)
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var app *hjarta.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())
	require.NotPanics(t, func() {
		app.Run()
	})
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	module := fx.Module("test",
		fx.Invoke(func(shutdowner fx.Shutdowner) {
			go func() {
				_ = shutdowner.Shutdown()
			}()
		}),
	)

	app := hjarta.NewApp(hjarta.WithModules(module))
	require.NotNil(t, app)

	require.NotPanics(t, func() {
		app.Run()
	})
}
