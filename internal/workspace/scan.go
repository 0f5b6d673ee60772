package workspace

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

const frontMatterDelim = "---"

// problemMeta is the front matter block of a per-problem README.
type problemMeta struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Difficulty string   `yaml:"difficulty"`
	Tags       []string `yaml:"tags,flow"`
}

func problemMetaOf(p types.Problem) problemMeta {
	return problemMeta{ID: p.ID, Title: p.Title, Slug: p.Slug, Difficulty: p.Difficulty, Tags: p.Tags}
}

var (
	folderPattern  = regexp.MustCompile(`^(\d+)-(.+)$`)
	headingPattern = regexp.MustCompile(`(?m)^#\s+\d+\.\s+(.+)$`)
)

// ScanResult is one solution file found on disk.
type ScanResult struct {
	Problem  types.Problem
	Language string
	// RelPath is relative to the root, with forward slashes.
	RelPath string
}

// Scan walks the solutions folder and returns one result per solution file
// of every problem folder. Problem metadata comes from the README front
// matter; folders without it fall back to the NNNN-slug name and the README
// heading. Folders that match neither are skipped.
func (w *Workspace) Scan() ([]ScanResult, error) {
	dir := w.SolutionsDir()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading solutions folder: %w", err)
	}

	var out []ScanResult
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		folder := filepath.Join(dir, e.Name())
		p, ok, err := readProblem(folder, e.Name())
		if err != nil {
			return nil, err
		}
		if !ok {
			w.logger.Debug("skipping folder", "folder", folder)
			continue
		}

		files, err := solutionFiles(folder)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			rel, err := filepath.Rel(w.Root, filepath.Join(folder, f.name))
			if err != nil {
				return nil, fmt.Errorf("relative solution path: %w", err)
			}
			out = append(out, ScanResult{Problem: p, Language: f.lang, RelPath: filepath.ToSlash(rel)})
		}
	}
	return out, nil
}

// readProblem loads the problem metadata of one folder.
func readProblem(folder, name string) (types.Problem, bool, error) {
	var meta problemMeta
	var body []byte

	data, err := os.ReadFile(filepath.Join(folder, ProblemReadme))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return types.Problem{}, false, fmt.Errorf("reading problem readme: %w", err)
	default:
		body, err = frontmatter.Parse(bytes.NewReader(data), &meta)
		if err != nil {
			return types.Problem{}, false, fmt.Errorf("parse front matter in %s: %w", folder, err)
		}
	}

	if m := folderPattern.FindStringSubmatch(name); m != nil {
		if meta.ID == "" {
			meta.ID = m[1]
		}
		if meta.Slug == "" {
			meta.Slug = m[2]
		}
	}
	if meta.Title == "" {
		if m := headingPattern.FindSubmatch(body); m != nil {
			meta.Title = strings.TrimSpace(string(m[1]))
		}
	}
	if meta.ID == "" || meta.Title == "" {
		return types.Problem{}, false, nil
	}
	if _, err := types.ParseProblemID(meta.ID); err != nil {
		return types.Problem{}, false, nil
	}
	return types.Problem{
		ID:         meta.ID,
		Title:      meta.Title,
		Slug:       meta.Slug,
		Difficulty: meta.Difficulty,
		Tags:       meta.Tags,
	}, true, nil
}

type solutionFile struct {
	name string
	lang string
}

// solutionFiles lists solution.<ext> files with a known extension, in
// name order.
func solutionFiles(folder string) ([]solutionFile, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading problem folder: %w", err)
	}
	var out []solutionFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "solution.") {
			continue
		}
		if lang, ok := types.LanguageForExtension(strings.TrimPrefix(filepath.Ext(name), ".")); ok {
			out = append(out, solutionFile{name: name, lang: lang})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}
