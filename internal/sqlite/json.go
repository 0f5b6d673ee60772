package sqlite

import (
	"time"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// favoriteJSON is one line of favorites.jsonl.
type favoriteJSON struct {
	FavoriteID string `json:"favorite_id"`
	ProblemID  uint   `json:"problem_id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Difficulty string `json:"difficulty"`
	Tags       string `json:"tags"`
	CreatedAt  string `json:"created_at"`
}

func favoriteToJSON(f types.Favorite) favoriteJSON {
	return favoriteJSON{
		FavoriteID: f.FavoriteID,
		ProblemID:  f.ProblemID,
		Title:      f.Title,
		Slug:       f.Slug,
		Difficulty: f.Difficulty,
		Tags:       f.Tags,
		CreatedAt:  f.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (j favoriteJSON) toFavorite() (types.Favorite, error) {
	created, err := time.Parse(time.RFC3339, j.CreatedAt)
	if err != nil {
		return types.Favorite{}, err
	}
	return types.Favorite{
		FavoriteID: j.FavoriteID,
		ProblemID:  j.ProblemID,
		Title:      j.Title,
		Slug:       j.Slug,
		Difficulty: j.Difficulty,
		Tags:       j.Tags,
		CreatedAt:  created,
	}, nil
}
