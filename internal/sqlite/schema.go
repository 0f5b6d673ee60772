package sqlite

// Schema DDL. The database is rebuilt from favorites.jsonl on every Attach.
const (
	createFavorites = `CREATE TABLE favorites (
    favorite_id TEXT PRIMARY KEY,
    problem_id INTEGER NOT NULL UNIQUE,
    title TEXT NOT NULL,
    slug TEXT NOT NULL,
    difficulty TEXT NOT NULL,
    tags TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	idxFavoritesSlug = `CREATE INDEX idx_favorites_slug ON favorites(slug);`
)

var schemaDDL = []string{
	createFavorites,
}

var indexDDL = []string{
	idxFavoritesSlug,
}
