// Package registry exposes trees as process-wide shared state.
//
// A Container maps resource names to trees wrapped in Shared, which guards
// every tree operation with a read/write lock. The wrapped operations have
// exactly the semantics of the tree package; the registry adds locking and
// lookup by name, nothing else.
//
//	c := registry.Default()
//	cfg, err := registry.Register(c, "config", tree.New[string]("config"))
//
//	// elsewhere
//	cfg, err := registry.Resource[string](c, "config")
//	cfg.Add("db/host", "localhost")
package registry
