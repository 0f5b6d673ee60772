package types

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Submission is one new language/solution event to merge into the index.
// It is consumed by a single merge.
type Submission struct {
	ProblemID    uint   `json:"problem_id"`
	Title        string `json:"title"`
	Slug         string `json:"slug,omitempty"`
	URL          string `json:"url,omitempty"`
	Language     string `json:"language"`
	SolutionPath string `json:"solution_path"`
	Tags         string `json:"tags"`
	Difficulty   string `json:"difficulty"`
}

// Validate checks the fields a merge cannot do without.
func (s Submission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Language, validation.Required),
		validation.Field(&s.SolutionPath, validation.Required),
	)
}

// Label is the display label the submission's solution is linked under.
func (s Submission) Label() string {
	return DisplayLabel(s.Language)
}

// LinkPath returns the solution path as linked from the index: forward
// slashes, prefixed with "./".
func (s Submission) LinkPath() string {
	p := strings.ReplaceAll(s.SolutionPath, "\\", "/")
	p = strings.TrimPrefix(p, "./")
	return "./" + strings.TrimPrefix(p, "/")
}

// ParseProblemID converts the catalog's string id ("1", "0042") to a number.
func ParseProblemID(s string) (uint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrProblemIDInvalid
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, ErrProblemIDInvalid
	}
	return uint(n), nil
}

// FormatProblemID renders an id the way folder names and index rows show it:
// four digits zero-padded, wider ids unchanged.
func FormatProblemID(id uint) string {
	s := strconv.FormatUint(uint64(id), 10)
	if len(s) >= 4 {
		return s
	}
	return strings.Repeat("0", 4-len(s)) + s
}
