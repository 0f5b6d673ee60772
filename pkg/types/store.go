package types

// FavoriteStore keeps the starred problems. Callers attach to a backend,
// read and write favorites, and detach when done.
type FavoriteStore interface {
	// Attach opens the store under config.DataDir, creating it if missing.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	Detach() error

	// Add stores f and returns it with FavoriteID and CreatedAt set.
	// Returns ErrAlreadyFavorite if the problem is already stored.
	Add(f Favorite) (Favorite, error)

	// Remove deletes the favorite for problemID.
	// Returns ErrNotFavorite if there is none.
	Remove(problemID uint) error

	// Get returns the favorite for problemID or ErrNotFavorite.
	Get(problemID uint) (Favorite, error)

	// List returns all favorites ordered by problem id.
	List() ([]Favorite, error)
}
