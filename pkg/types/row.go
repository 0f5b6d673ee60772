package types

// Canonical index table header and divider. Other tools and humans editing
// the README must keep this exact pair for the table to be recognised.
const (
	TableHeader  = "| # | Title | Solution | Tags | Difficulty |"
	TableDivider = "|:----:|:--------:|:--------:|:-------:|:----------:|"
)

// StarMark is appended to a row title when the problem is a favorite.
const StarMark = "⭐"

// Region is the line span of the index table inside a document. Start is the
// header line, Start+1 the divider and [Start+2, End) the data rows.
type Region struct {
	Start int
	End   int
}

// AbsentRegion is returned when no header line matches.
var AbsentRegion = Region{Start: -1, End: -1}

// Absent reports whether the table was not found.
func (r Region) Absent() bool {
	return r.Start < 0
}

// DataStart returns the first data line index.
func (r Region) DataStart() int {
	return r.Start + 2
}

// Solution is one language link in a row.
type Solution struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Row is one problem's aggregated metadata and solution links.
type Row struct {
	ProblemID  uint       `json:"problem_id"`
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	Starred    bool       `json:"starred,omitempty"`
	Solutions  []Solution `json:"solutions"`
	Tags       string     `json:"tags"`
	Difficulty string     `json:"difficulty"`
}

// HasLabel reports whether the row already links a solution with label.
// The comparison is case-sensitive.
func (r Row) HasLabel(label string) bool {
	for _, s := range r.Solutions {
		if s.Label == label {
			return true
		}
	}
	return false
}

// Clone returns a copy of the row that shares no slice storage.
func (r Row) Clone() Row {
	out := r
	if r.Solutions != nil {
		out.Solutions = make([]Solution, len(r.Solutions))
		copy(out.Solutions, r.Solutions)
	}
	return out
}
