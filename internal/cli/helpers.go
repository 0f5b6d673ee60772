package cli

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/mesh-intelligence/lantern/internal/index"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// syncOutput is the --json shape of a sync result.
type syncOutput struct {
	ProblemID    uint   `json:"problem_id"`
	Title        string `json:"title"`
	Language     string `json:"language"`
	SolutionPath string `json:"solution_path"`
	Readme       string `json:"readme"`
	Outcome      string `json:"outcome"`
	Bootstrapped bool   `json:"bootstrapped"`
	Rows         int    `json:"rows"`
	Digest       string `json:"digest"`
}

func newSyncOutput(sub types.Submission, res index.Result) syncOutput {
	return syncOutput{
		ProblemID:    sub.ProblemID,
		Title:        sub.Title,
		Language:     sub.Label(),
		SolutionPath: sub.LinkPath(),
		Readme:       res.Path,
		Outcome:      res.Outcome.String(),
		Bootstrapped: res.Bootstrapped,
		Rows:         res.Rows,
		Digest:       res.Digest,
	}
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("encode output: %w", err))
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// printSync reports a sync result in text or JSON mode.
func (a *app) printSync(w io.Writer, sub types.Submission, res index.Result) error {
	if a.flags.jsonMode {
		return writeJSON(w, newSyncOutput(sub, res))
	}
	switch res.Outcome {
	case index.OutcomeUnchanged:
		fmt.Fprintf(w, "%s %s already indexed in %s\n", types.FormatProblemID(sub.ProblemID), sub.Label(), res.Path)
	default:
		fmt.Fprintf(w, "Indexed %s. %s (%s) in %s, %d rows\n",
			types.FormatProblemID(sub.ProblemID), sub.Title, sub.Label(), res.Path, res.Rows)
	}
	return nil
}

func parseProblemArg(s string) (uint, error) {
	id, err := types.ParseProblemID(s)
	if err != nil {
		return 0, userError(fmt.Errorf("%q: %w", s, err))
	}
	return id, nil
}
