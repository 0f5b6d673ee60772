package index

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// HeaderLines is the two-line block that opens the index table.
var HeaderLines = []string{types.TableHeader, types.TableDivider}

// Render splices rows into lines at region. An absent region first gets
// headerLines appended to the document, separated by a blank line. A header
// with no table line after it gets the divider inserted, so rows always start
// two lines below the header. Lines outside the data section are kept
// verbatim.
func Render(lines []string, region types.Region, rows []types.Row, headerLines []string) []string {
	if region.Absent() {
		lines = appendHeader(lines, headerLines)
		region = Locate(lines, headerLines[0])
	}
	if next := region.Start + 1; next >= len(lines) || !isTableLine(lines[next]) {
		lines = insertLine(lines, next, headerLines[len(headerLines)-1])
		region = Locate(lines, headerLines[0])
	}

	dataStart := min(region.DataStart(), len(lines))
	end := max(region.End, dataStart)

	out := make([]string, 0, dataStart+len(rows)+len(lines)-end)
	out = append(out, lines[:dataStart]...)
	for _, r := range rows {
		out = append(out, RenderRow(r))
	}
	out = append(out, lines[end:]...)
	return out
}

// RenderRow formats one table line.
func RenderRow(r types.Row) string {
	title := r.Title
	if r.Starred {
		title += " " + types.StarMark
	}
	// A link with an empty target would not parse back as a link.
	if r.URL != "" {
		title = fmt.Sprintf("[%s](%s)", title, r.URL)
	}

	solutions := "-"
	if len(r.Solutions) > 0 {
		links := make([]string, len(r.Solutions))
		for i, s := range r.Solutions {
			links[i] = fmt.Sprintf("[%s](%s)", s.Label, s.Path)
		}
		solutions = strings.Join(links, ", ")
	}

	return fmt.Sprintf("| %s | %s | %s | %s | %s |",
		types.FormatProblemID(r.ProblemID), title, solutions, r.Tags, r.Difficulty)
}

func insertLine(lines []string, at int, line string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	return append(out, lines[at:]...)
}

// appendHeader adds the header block at the end of the document, keeping a
// trailing newline and one blank line before the table.
func appendHeader(lines []string, headerLines []string) []string {
	body := lines
	if n := len(body); n > 0 && body[n-1] == "" {
		// Drop the empty element a trailing newline leaves behind.
		body = body[:n-1]
	}

	out := make([]string, 0, len(body)+len(headerLines)+2)
	out = append(out, body...)
	if n := len(out); n > 0 && strings.TrimSpace(out[n-1]) != "" {
		out = append(out, "")
	}
	out = append(out, headerLines...)
	return append(out, "")
}
