// Package loader provides the feature loading system.
//
// Each feature implements Feature and registers its own routes:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager keeps the registry. Register adds features; LoadAll loads the enabled
// ones in registration order. Features such as 'reconciliation' and
// 'integrity' are built and tested in isolation and only meet here.
package loader
