package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/internal/index"
	"github.com/mesh-intelligence/lantern/internal/leetcode"
	"github.com/mesh-intelligence/lantern/internal/logging"
)

func newAddCmd(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "add <problem-url>",
		Short: "Scaffold a problem and add it to the index",
		Long: "Fetch the problem metadata, create its folder, README and solution file,\n" +
			"and add or update its row in the README index table.",
		Example: "  lantern add https://leetcode.com/problems/two-sum/ -l go",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdd(cmd, args[0], lang)
		},
	}
	cmd.Flags().StringVarP(&lang, "lang", "l", "", "solution language: python, go, java, cpp (default from config)")
	return cmd
}

func (a *app) runAdd(cmd *cobra.Command, url, lang string) error {
	if lang == "" {
		lang = a.cfg.Language
	}
	lang = resolveLanguage(cmd, lang)

	slug, err := leetcode.SlugFromURL(url)
	if err != nil {
		return classify(err)
	}

	fetcher := a.newFetcher(a.cfg, a.logger(logging.CatalogModule))
	problem, err := fetcher.FetchProblem(cmd.Context(), slug)
	if err != nil {
		return classify(err)
	}

	scaffold, err := a.workspace().Prepare(problem, lang)
	if err != nil {
		return classify(err)
	}
	sub, err := problem.Submission(lang, scaffold.RelPath)
	if err != nil {
		return classify(err)
	}
	sub.URL = index.ProblemURL(a.cfg.ProblemBaseURL, slug)

	res, err := a.synchronizer().SyncFile(a.cfg.ReadmePath(), sub)
	if err != nil {
		return classify(err)
	}

	if !a.flags.jsonMode {
		for _, path := range scaffold.Created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		}
	}
	return a.printSync(cmd.OutOrStdout(), sub, res)
}
