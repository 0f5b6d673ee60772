package index

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Report is the outcome of Check.
type Report struct {
	Found     bool `json:"found"`
	DividerOK bool `json:"divider_ok"`
	// HeaderLine is 1-based; zero when the table is absent.
	HeaderLine int `json:"header_line"`
	Rows       int `json:"rows"`
	// Skipped holds 1-based line numbers of malformed data lines.
	Skipped    []int  `json:"skipped,omitempty"`
	Duplicates []uint `json:"duplicates,omitempty"`
	Unsorted   bool   `json:"unsorted"`
	// MarkdownRows is the data row count a GFM renderer sees, or -1 when
	// it finds no index table.
	MarkdownRows int `json:"markdown_rows"`
	// Digest fingerprints the checked document.
	Digest string `json:"digest"`
}

// OK reports whether the table is present and renders exactly as parsed.
func (r Report) OK() bool {
	return r.Found && r.DividerOK && len(r.Skipped) == 0 && len(r.Duplicates) == 0 &&
		!r.Unsorted && r.MarkdownRows == r.Rows
}

// Check inspects the index table of text. Unlike Sync it validates the
// divider strictly and reports lines the parser would drop.
func (s *Synchronizer) Check(text string) Report {
	lines := SplitLines(text)
	region := Locate(lines, s.header[0])
	report := Report{MarkdownRows: gfmRowCount(text, s.header[0]), Digest: Digest(text)}
	if region.Absent() {
		return report
	}

	report.Found = true
	report.HeaderLine = region.Start + 1
	divider := s.header[len(s.header)-1]
	report.DividerOK = region.Start+1 < len(lines) && lines[region.Start+1] == divider

	seen := make(map[uint]bool)
	var last uint
	for i := region.DataStart(); i < region.End && i < len(lines); i++ {
		row, ok := parseRow(lines[i])
		if !ok {
			report.Skipped = append(report.Skipped, i+1)
			continue
		}
		if seen[row.ProblemID] {
			report.Duplicates = append(report.Duplicates, row.ProblemID)
		}
		if report.Rows > 0 && row.ProblemID < last {
			report.Unsorted = true
		}
		seen[row.ProblemID] = true
		last = row.ProblemID
		report.Rows++
	}
	return report
}

// gfmRowCount parses text as GitHub-flavoured markdown and counts the body
// rows of the first table whose header cells match header.
func gfmRowCount(source, header string) int {
	want := splitHeader(header)
	src := []byte(source)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	count := -1
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != extast.KindTable {
			return ast.WalkContinue, nil
		}
		rows := 0
		matched := false
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			switch c.Kind() {
			case extast.KindTableHeader:
				matched = headerMatches(c, src, want)
			case extast.KindTableRow:
				rows++
			}
		}
		if matched {
			count = rows
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})
	return count
}

func headerMatches(h ast.Node, src []byte, want []string) bool {
	i := 0
	for c := h.FirstChild(); c != nil; c = c.NextSibling() {
		if i >= len(want) || strings.TrimSpace(string(c.Text(src))) != want[i] {
			return false
		}
		i++
	}
	return i == len(want)
}

func splitHeader(header string) []string {
	cells, ok := splitRow(header)
	if !ok {
		return nil
	}
	return cells
}
