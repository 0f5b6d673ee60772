// Package index keeps the markdown problem index in a README in sync with
// new solution submissions. The pipeline is one-way: locate the table,
// parse its rows, merge the submission, render the table back in place.
package index

import (
	"strings"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

// rowPrefix starts every table line.
const rowPrefix = "|"

// Locate finds the table whose header line equals header. The divider is
// expected on the following line but is not checked here; a malformed
// divider still yields a located region. The table ends at the first empty
// or non-pipe line after the divider, or at end of document.
func Locate(lines []string, header string) types.Region {
	start := -1
	for i, line := range lines {
		if line == header {
			start = i
			break
		}
	}
	if start == -1 {
		return types.AbsentRegion
	}

	end := len(lines)
	for i := start + 2; i < len(lines); i++ {
		if !isTableLine(lines[i]) {
			end = i
			break
		}
	}
	if end < start+2 {
		end = min(start+2, len(lines))
	}
	return types.Region{Start: start, End: end}
}

func isTableLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && strings.HasPrefix(trimmed, rowPrefix)
}
