package index

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Merge folds sub into rows and returns the updated set sorted by id.
//
// A new id gets a fresh row; its url falls back to the canonical problem
// url when the submission only carries a slug. For a known id the solution link is appended
// unless a link with the same label exists, tags and difficulty take the
// submission's values, and title and url are left alone. The input slice
// is not modified.
//
// Rows sharing an id, as left behind by a hand edit, are folded into the
// first of them before the submission is applied.
func Merge(rows []types.Row, sub types.Submission) []types.Row {
	out := make([]types.Row, 0, len(rows)+1)
	seen := make(map[uint]int, len(rows))
	for _, r := range rows {
		if i, ok := seen[r.ProblemID]; ok {
			foldRow(&out[i], r)
			continue
		}
		seen[r.ProblemID] = len(out)
		out = append(out, r.Clone())
	}

	solution := types.Solution{Label: sub.Label(), Path: sub.LinkPath()}

	if i, ok := seen[sub.ProblemID]; ok {
		row := &out[i]
		if !row.HasLabel(solution.Label) {
			row.Solutions = append(row.Solutions, solution)
		}
		row.Tags = sub.Tags
		row.Difficulty = sub.Difficulty
	} else {
		out = append(out, types.Row{
			ProblemID:  sub.ProblemID,
			Title:      sub.Title,
			URL:        submissionURL(sub),
			Solutions:  []types.Solution{solution},
			Tags:       sub.Tags,
			Difficulty: sub.Difficulty,
		})
	}

	sortRows(out)
	return out
}

// submissionURL is the submission's url, or the canonical url for its slug.
func submissionURL(sub types.Submission) string {
	if sub.URL != "" {
		return sub.URL
	}
	return ProblemURL(types.DefaultProblemBaseURL, sub.Slug)
}

// foldRow merges a later row with the same id into dst: title and url stay,
// missing solution labels are appended, tags and difficulty are replaced.
func foldRow(dst *types.Row, later types.Row) {
	for _, sol := range later.Solutions {
		if !dst.HasLabel(sol.Label) {
			dst.Solutions = append(dst.Solutions, sol)
		}
	}
	dst.Tags = later.Tags
	dst.Difficulty = later.Difficulty
	dst.Starred = dst.Starred || later.Starred
}

func indexOf(rows []types.Row, id uint) int {
	for i := range rows {
		if rows[i].ProblemID == id {
			return i
		}
	}
	return -1
}

func sortRows(rows []types.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ProblemID < rows[j].ProblemID
	})
}

// ProblemURL builds the canonical problem url for a slug. The base url may
// omit its trailing slash.
func ProblemURL(baseURL, slug string) string {
	if slug == "" {
		return ""
	}
	if baseURL == "" {
		baseURL = types.DefaultProblemBaseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + slug + "/"
}
