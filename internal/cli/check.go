package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/internal/index"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the README index table",
		Long: "Report a missing table, a malformed divider, lines the parser would drop,\n" +
			"duplicate or unsorted ids, and rows a markdown renderer would not show.",
		Args: cobra.NoArgs,
		RunE: a.runCheck,
	}
}

var errCheckFailed = errors.New("index check failed")

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	path := a.cfg.ReadmePath()
	text, err := index.ReadDocument(path)
	if err != nil {
		return sysError(fmt.Errorf("read %s: %w", path, err))
	}
	report := a.synchronizer().Check(text)

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if err := writeJSON(out, checkOutput{Path: path, OK: report.OK(), Report: report}); err != nil {
			return err
		}
	} else {
		printReport(cmd, path, report)
	}
	if !report.OK() {
		return userError(errCheckFailed)
	}
	return nil
}

type checkOutput struct {
	Path string `json:"path"`
	OK   bool   `json:"ok"`
	index.Report
}

func printReport(cmd *cobra.Command, path string, r index.Report) {
	out := cmd.OutOrStdout()
	if !r.Found {
		fmt.Fprintf(out, "%s: index table not found\n", path)
		return
	}
	fmt.Fprintf(out, "%s: table at line %d, %d rows\n", path, r.HeaderLine, r.Rows)
	if !r.DividerOK {
		fmt.Fprintf(out, "  divider missing or malformed at line %d\n", r.HeaderLine+1)
	}
	for _, line := range r.Skipped {
		fmt.Fprintf(out, "  line %d: malformed row skipped\n", line)
	}
	for _, id := range r.Duplicates {
		fmt.Fprintf(out, "  duplicate problem id %d\n", id)
	}
	if r.Unsorted {
		fmt.Fprintln(out, "  rows are not sorted by id")
	}
	switch {
	case r.MarkdownRows < 0:
		fmt.Fprintln(out, "  markdown renderers do not see a table")
	case r.MarkdownRows != r.Rows:
		fmt.Fprintf(out, "  markdown renderers see %d rows\n", r.MarkdownRows)
	}
	if r.OK() {
		fmt.Fprintln(out, "  ok")
	}
}
