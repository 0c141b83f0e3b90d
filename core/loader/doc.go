// Package loader provides the plugin-like feature loading system.
//
// Each feature (team, inventory, bom, integrity) implements the Feature interface
// and mounts its own routes when loaded.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
package loader
