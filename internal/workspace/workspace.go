// Package workspace lays out the solutions tree: the solutions folder, the
// root README, and one folder per problem holding its readme and solution
// files.
package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lantern/internal/index"
	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Folder names searched, in order, for an existing solutions folder.
var SolutionFolders = []string{"problemset", "solutions"}

// RootReadmeContent is written when the workspace has no README.
const RootReadmeContent = "# LeetCode Solutions\n\n"

// ProblemReadme is the per-problem readme file name.
const ProblemReadme = "README.md"

// Workspace is a solutions tree rooted at Root.
type Workspace struct {
	Root    string
	Readme  string
	BaseURL string
	logger  logging.Logger
}

// New returns a workspace for cfg. Nothing is created until Init.
func New(cfg types.Config, logger logging.Logger) *Workspace {
	base := cfg.ProblemBaseURL
	if base == "" {
		base = types.DefaultProblemBaseURL
	}
	return &Workspace{
		Root:    cfg.Root,
		Readme:  cfg.ReadmePath(),
		BaseURL: base,
		logger:  logging.OrNoOp(logger),
	}
}

// SolutionsDir returns the first existing folder in SolutionFolders, or the
// first entry when none exists.
func (w *Workspace) SolutionsDir() string {
	for _, name := range SolutionFolders {
		dir := filepath.Join(w.Root, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return filepath.Join(w.Root, SolutionFolders[0])
}

// Init creates the solutions folder and the root README if missing, and
// returns the solutions folder.
func (w *Workspace) Init() (string, error) {
	dir := w.SolutionsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating solutions folder: %w", err)
	}
	created, err := writeIfMissing(w.Readme, []byte(RootReadmeContent))
	if err != nil {
		return "", fmt.Errorf("creating readme: %w", err)
	}
	if created {
		w.logger.Info("readme created", "path", w.Readme)
	}
	return dir, nil
}

// Scaffold is what Prepare produced for one problem.
type Scaffold struct {
	Folder       string
	Readme       string
	SolutionFile string
	// RelPath is the solution file relative to the root, with forward slashes.
	RelPath string
	Created []string
}

// FolderName is the NNNN-slug folder name of a problem.
func FolderName(p types.Problem) (string, error) {
	id, err := types.ParseProblemID(p.ID)
	if err != nil {
		return "", err
	}
	return types.FormatProblemID(id) + "-" + p.Slug, nil
}

// Prepare creates the problem folder, its README and the solution file for
// lang. Existing files are left untouched.
func (w *Workspace) Prepare(p types.Problem, lang string) (Scaffold, error) {
	dir, err := w.Init()
	if err != nil {
		return Scaffold{}, err
	}
	name, err := FolderName(p)
	if err != nil {
		return Scaffold{}, err
	}

	s := Scaffold{Folder: filepath.Join(dir, name)}
	if err := os.MkdirAll(s.Folder, 0o755); err != nil {
		return Scaffold{}, fmt.Errorf("creating problem folder: %w", err)
	}

	readme, err := w.problemReadme(p)
	if err != nil {
		return Scaffold{}, err
	}
	s.Readme = filepath.Join(s.Folder, ProblemReadme)
	created, err := writeIfMissing(s.Readme, []byte(readme))
	if err != nil {
		return Scaffold{}, fmt.Errorf("writing problem readme: %w", err)
	}
	if created {
		s.Created = append(s.Created, s.Readme)
	}

	lang = types.ParseLanguage(lang)
	s.SolutionFile = filepath.Join(s.Folder, "solution."+types.LanguageExtension(lang))
	created, err = writeIfMissing(s.SolutionFile, []byte(SolutionHeader(lang, w.headerLines(p))))
	if err != nil {
		return Scaffold{}, fmt.Errorf("writing solution file: %w", err)
	}
	if created {
		s.Created = append(s.Created, s.SolutionFile)
	}

	rel, err := filepath.Rel(w.Root, s.SolutionFile)
	if err != nil {
		return Scaffold{}, fmt.Errorf("relative solution path: %w", err)
	}
	s.RelPath = filepath.ToSlash(rel)

	w.logger.Debug("problem scaffolded", "folder", s.Folder, "created", len(s.Created))
	return s, nil
}

func (w *Workspace) problemReadme(p types.Problem) (string, error) {
	meta, err := yaml.Marshal(problemMetaOf(p))
	if err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}
	var b strings.Builder
	b.WriteString(frontMatterDelim + "\n")
	b.Write(meta)
	b.WriteString(frontMatterDelim + "\n")
	fmt.Fprintf(&b, "# %s. %s\n\n", p.ID, p.Title)
	fmt.Fprintf(&b, "**Difficulty:** %s\n\n", p.Difficulty)
	fmt.Fprintf(&b, "**Tags:** %s\n\n", p.TopicTags())
	fmt.Fprintf(&b, "**Link:** %s\n", index.ProblemURL(w.BaseURL, p.Slug))
	return b.String(), nil
}

func (w *Workspace) headerLines(p types.Problem) []string {
	return []string{
		fmt.Sprintf("%s. %s", p.ID, p.Title),
		"Difficulty: " + p.Difficulty,
		"Tags: " + p.TopicTags(),
		"Link: " + index.ProblemURL(w.BaseURL, p.Slug),
	}
}

// SolutionHeader renders lines as a comment block in lang's style,
// followed by a blank line.
func SolutionHeader(lang string, lines []string) string {
	var b strings.Builder
	switch types.ParseLanguage(lang) {
	case types.LanguageJava:
		b.WriteString("/**\n")
		for _, l := range lines {
			b.WriteString(" * " + l + "\n")
		}
		b.WriteString(" */\n")
	case types.LanguageGo, types.LanguageCpp:
		for _, l := range lines {
			b.WriteString("// " + l + "\n")
		}
	default:
		for _, l := range lines {
			b.WriteString("# " + l + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// writeIfMissing creates path with data unless it already exists.
func writeIfMissing(path string, data []byte) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
