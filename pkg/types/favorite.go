package types

import (
	"strings"
	"time"
)

// Favorite is a starred problem kept in the favorites store.
type Favorite struct {
	// FavoriteID is a UUID v7, generated on creation.
	FavoriteID string    `json:"favorite_id"`
	ProblemID  uint      `json:"problem_id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Difficulty string    `json:"difficulty"`
	Tags       string    `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

// FavoriteFromRow captures a row's metadata for the favorites store. The
// slug is recovered from the row URL's last path segment.
func FavoriteFromRow(r Row) Favorite {
	return Favorite{
		ProblemID:  r.ProblemID,
		Title:      r.Title,
		Slug:       slugFromURL(r.URL),
		Difficulty: r.Difficulty,
		Tags:       r.Tags,
	}
}

func slugFromURL(u string) string {
	u = strings.TrimRight(u, "/")
	if i := strings.LastIndex(u, "/"); i >= 0 {
		return u[i+1:]
	}
	return u
}
