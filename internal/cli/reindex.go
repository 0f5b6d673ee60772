package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/internal/index"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

func newReindexCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the index from the solutions folder",
		Long: "Scan every problem folder and merge each solution file found into the\n" +
			"README index table. Existing rows and links are kept.",
		Args: cobra.NoArgs,
		RunE: a.runReindex,
	}
}

type reindexOutput struct {
	Readme    string `json:"readme"`
	Solutions int    `json:"solutions"`
	Changed   int    `json:"changed"`
	Rows      int    `json:"rows"`
}

func (a *app) runReindex(cmd *cobra.Command, args []string) error {
	results, err := a.workspace().Scan()
	if err != nil {
		return sysError(err)
	}

	sync := a.synchronizer()
	readme := a.cfg.ReadmePath()
	text, err := index.ReadDocument(readme)
	if err != nil {
		return sysError(fmt.Errorf("read %s: %w", readme, err))
	}
	existing := make(map[uint]types.Row)
	for _, r := range sync.Rows(text) {
		existing[r.ProblemID] = r
	}

	summary := reindexOutput{Readme: readme, Solutions: len(results)}
	if _, err := sync.BootstrapFile(readme); err != nil {
		return classify(err)
	}
	for _, r := range results {
		sub, err := r.Problem.Submission(r.Language, r.RelPath)
		if err != nil {
			return classify(err)
		}
		sub.URL = index.ProblemURL(a.cfg.ProblemBaseURL, r.Problem.Slug)
		// Folders without front matter carry no tags or difficulty; keep
		// what the index already has.
		if row, ok := existing[sub.ProblemID]; ok {
			if sub.Tags == "" {
				sub.Tags = row.Tags
			}
			if sub.Difficulty == "" {
				sub.Difficulty = row.Difficulty
			}
		}
		res, err := sync.SyncFile(readme, sub)
		if err != nil {
			return classify(err)
		}
		if res.Outcome == index.OutcomePersisted {
			summary.Changed++
		}
		summary.Rows = res.Rows
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d solutions, %d changed the index (%d rows) in %s\n",
		summary.Solutions, summary.Changed, summary.Rows, readme)
	return nil
}
