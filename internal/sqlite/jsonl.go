package sqlite

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

const favoritesFile = "favorites.jsonl"

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped. A missing file reads as
// empty.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%s: %w", step, err)
	}

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			return fail("writing record", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// loadFavorites decodes favorites.jsonl. Lines that do not decode into a
// favorite are skipped like malformed JSON.
func loadFavorites(dataDir string) ([]favoriteJSON, error) {
	raw, err := readJSONL(filepath.Join(dataDir, favoritesFile))
	if err != nil {
		return nil, err
	}
	out := make([]favoriteJSON, 0, len(raw))
	for _, rec := range raw {
		var f favoriteJSON
		if err := json.Unmarshal(rec, &f); err != nil || f.FavoriteID == "" {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// persistFavorites writes all favorites to favorites.jsonl atomically.
func persistFavorites(dataDir string, favs []favoriteJSON) error {
	records := make([]json.RawMessage, 0, len(favs))
	for _, f := range favs {
		b, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("encoding favorite %d: %w", f.ProblemID, err)
		}
		records = append(records, b)
	}
	return writeJSONL(filepath.Join(dataDir, favoritesFile), records)
}
