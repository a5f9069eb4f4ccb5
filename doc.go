// Package hjarta wires a dotted-path configuration tree into an Fx application.
//
// NewApp sets up structured logging and, when asked to, loads a YAML file (or takes
// a prepared tree), applies overrides and provides the resulting *tree.Node to every
// module:
//
//	app := hjarta.NewApp(
//	    hjarta.WithConfigFile("config.yaml"),
//	    hjarta.WithConfigOverrides(tree.Flat{tree.K("db.port"): tree.Int(5433)}),
//	    hjarta.WithModules(fx.Invoke(func(cfg *tree.Node) {
//	        host := cfg.GetString("db.host", "localhost")
//	        _ = host
//	    })),
//	)
//
// The tree is not safe for concurrent use; modules sharing it must coordinate access.
package hjarta
