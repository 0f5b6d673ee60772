package types

import "strings"

// Problem is the metadata record returned by the problem catalog.
type Problem struct {
	ID         string   `json:"question_id"`
	Title      string   `json:"question_title"`
	Slug       string   `json:"question_slug"`
	Difficulty string   `json:"difficulty"`
	Tags       []string `json:"topic_tags"`
}

// TopicTags joins the tag names the way the index shows them.
func (p Problem) TopicTags() string {
	return strings.Join(p.Tags, ", ")
}

// Submission builds the index submission for a solution of this problem.
func (p Problem) Submission(lang, solutionPath string) (Submission, error) {
	id, err := ParseProblemID(p.ID)
	if err != nil {
		return Submission{}, err
	}
	return Submission{
		ProblemID:    id,
		Title:        p.Title,
		Slug:         p.Slug,
		Language:     lang,
		SolutionPath: solutionPath,
		Tags:         p.TopicTags(),
		Difficulty:   p.Difficulty,
	}, nil
}
