// Package sqlite implements the favorites store. favorites.jsonl in the data
// directory is the source of truth; an SQLite database rebuilt on Attach
// serves the queries.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

const dbFile = "favorites.db"

// Backend implements types.FavoriteStore.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	dataDir  string
	db       *sql.DB
	logger   logging.Logger
	now      func() time.Time
}

var _ types.FavoriteStore = (*Backend)(nil)

// NewBackend creates a detached backend. Call Attach before use.
func NewBackend(logger logging.Logger) *Backend {
	return &Backend{
		logger: logging.OrNoOp(logger),
		now:    time.Now,
	}
}

// Attach validates config, creates the data directory if needed, rebuilds
// the database and loads favorites.jsonl into it.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataPath()
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}
	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	favs, err := loadFavorites(dataDir)
	if err != nil {
		db.Close()
		return fmt.Errorf("load favorites: %w", err)
	}
	for _, f := range favs {
		if _, err := db.Exec(`INSERT OR IGNORE INTO favorites
			(favorite_id, problem_id, title, slug, difficulty, tags, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.FavoriteID, f.ProblemID, f.Title, f.Slug, f.Difficulty, f.Tags, f.CreatedAt); err != nil {
			db.Close()
			return fmt.Errorf("load favorite %d: %w", f.ProblemID, err)
		}
	}

	b.db = db
	b.dataDir = dataDir
	b.attached = true
	b.logger.Debug("favorites store attached", "data_dir", dataDir, "favorites", len(favs))
	return nil
}

// Detach closes the database. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// Add stores f. FavoriteID and CreatedAt are always assigned here.
func (b *Backend) Add(f types.Favorite) (types.Favorite, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.Favorite{}, types.ErrStoreDetached
	}
	if _, err := b.getLocked(f.ProblemID); err == nil {
		return types.Favorite{}, types.ErrAlreadyFavorite
	} else if !errors.Is(err, types.ErrNotFavorite) {
		return types.Favorite{}, err
	}

	f.FavoriteID = generateUUID()
	f.CreatedAt = b.now().UTC().Truncate(time.Second)
	j := favoriteToJSON(f)

	if _, err := b.db.Exec(`INSERT INTO favorites
		(favorite_id, problem_id, title, slug, difficulty, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.FavoriteID, j.ProblemID, j.Title, j.Slug, j.Difficulty, j.Tags, j.CreatedAt); err != nil {
		return types.Favorite{}, fmt.Errorf("insert favorite: %w", err)
	}
	if err := b.persistLocked(); err != nil {
		return types.Favorite{}, err
	}
	b.logger.Info("favorite added", "problem_id", f.ProblemID, "title", f.Title)
	return f, nil
}

// Remove deletes the favorite for problemID.
func (b *Backend) Remove(problemID uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	res, err := b.db.Exec(`DELETE FROM favorites WHERE problem_id = ?`, problemID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFavorite
	}
	if err := b.persistLocked(); err != nil {
		return err
	}
	b.logger.Info("favorite removed", "problem_id", problemID)
	return nil
}

// Get returns the favorite for problemID.
func (b *Backend) Get(problemID uint) (types.Favorite, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Favorite{}, types.ErrStoreDetached
	}
	j, err := b.getLocked(problemID)
	if err != nil {
		return types.Favorite{}, err
	}
	return j.toFavorite()
}

// List returns all favorites ordered by problem id.
func (b *Backend) List() ([]types.Favorite, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	rows, err := b.listLocked()
	if err != nil {
		return nil, err
	}
	out := make([]types.Favorite, 0, len(rows))
	for _, j := range rows {
		f, err := j.toFavorite()
		if err != nil {
			return nil, fmt.Errorf("favorite %d: %w", j.ProblemID, err)
		}
		out = append(out, f)
	}
	return out, nil
}

const selectFavorites = `SELECT favorite_id, problem_id, title, slug, difficulty, tags, created_at FROM favorites`

type scanner interface {
	Scan(dest ...any) error
}

func scanFavorite(s scanner) (favoriteJSON, error) {
	var j favoriteJSON
	err := s.Scan(&j.FavoriteID, &j.ProblemID, &j.Title, &j.Slug, &j.Difficulty, &j.Tags, &j.CreatedAt)
	return j, err
}

func (b *Backend) getLocked(problemID uint) (favoriteJSON, error) {
	j, err := scanFavorite(b.db.QueryRow(selectFavorites+` WHERE problem_id = ?`, problemID))
	if errors.Is(err, sql.ErrNoRows) {
		return favoriteJSON{}, types.ErrNotFavorite
	}
	if err != nil {
		return favoriteJSON{}, fmt.Errorf("query favorite: %w", err)
	}
	return j, nil
}

func (b *Backend) listLocked() ([]favoriteJSON, error) {
	rows, err := b.db.Query(selectFavorites + ` ORDER BY problem_id`)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	var out []favoriteJSON
	for rows.Next() {
		j, err := scanFavorite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// persistLocked rewrites favorites.jsonl from the database.
func (b *Backend) persistLocked() error {
	favs, err := b.listLocked()
	if err != nil {
		return err
	}
	if err := persistFavorites(b.dataDir, favs); err != nil {
		return fmt.Errorf("persist favorites: %w", err)
	}
	return nil
}

// generateUUID generates a new UUID v7 for favorite IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
