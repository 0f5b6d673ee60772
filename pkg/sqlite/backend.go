// Package sqlite provides the public API for the SQLite favorites store.
// This package exposes the factory function while keeping implementation
// details internal.
package sqlite

import (
	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/internal/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// NewStore creates a new SQLite favorites store.
// The store is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore(nil)
//	err := store.Attach(types.Config{Root: ".", Readme: "README.md"})
//	defer store.Detach()
func NewStore(logger logging.Logger) types.FavoriteStore {
	return sqlite.NewBackend(logger)
}
