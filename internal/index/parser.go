package index

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// fieldCount is the number of cells in a table row: id, title, solutions,
// tags and difficulty.
const fieldCount = 5

var (
	digitsPattern = regexp.MustCompile(`\d+`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// link is one [text](target) occurrence inside a cell.
type link struct {
	text   string
	target string
}

// ParseRows converts the data section of region into rows. Lines that do
// not split into five cells or carry no numeric id are skipped.
func ParseRows(lines []string, region types.Region) []types.Row {
	if region.Absent() {
		return nil
	}

	var rows []types.Row
	for i := region.DataStart(); i < region.End && i < len(lines); i++ {
		row, ok := parseRow(lines[i])
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func parseRow(line string) (types.Row, bool) {
	cells, ok := splitRow(line)
	if !ok {
		return types.Row{}, false
	}

	id, ok := parseID(cells[0])
	if !ok {
		return types.Row{}, false
	}

	row := types.Row{
		ProblemID:  id,
		Tags:       cells[3],
		Difficulty: cells[4],
	}

	if links := extractLinks(cells[1]); len(links) > 0 {
		row.Title, row.URL = links[0].text, links[0].target
	} else {
		row.Title = cells[1]
	}
	row.Title, row.Starred = splitStar(row.Title)

	for _, l := range extractLinks(cells[2]) {
		row.Solutions = append(row.Solutions, types.Solution{Label: l.text, Path: l.target})
	}
	return row, true
}

// splitRow splits a pipe-delimited line into trimmed cells, dropping the
// empty fields produced by the leading and trailing pipes.
func splitRow(line string) ([]string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, rowPrefix) {
		return nil, false
	}

	parts := strings.Split(trimmed, "|")
	// A framed row "| a | b |" splits into ["", " a ", " b ", ""].
	parts = parts[1:]
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) < fieldCount {
		return nil, false
	}

	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells, true
}

// extractLinks returns every markdown link in s, left to right.
func extractLinks(s string) []link {
	matches := linkPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	links := make([]link, 0, len(matches))
	for _, m := range matches {
		links = append(links, link{text: m[1], target: m[2]})
	}
	return links
}

// parseID extracts the first run of digits from the id cell.
func parseID(cell string) (uint, bool) {
	digits := digitsPattern.FindString(cell)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(digits, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// splitStar strips a trailing favorite mark from a title.
func splitStar(title string) (string, bool) {
	stripped := strings.TrimSuffix(title, " "+types.StarMark)
	if stripped != title {
		return stripped, true
	}
	return title, false
}
