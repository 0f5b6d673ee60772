package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

type recordFlags struct {
	id         string
	title      string
	slug       string
	url        string
	lang       string
	path       string
	tags       string
	difficulty string
}

func newRecordCmd(a *app) *cobra.Command {
	var f recordFlags
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Add a solution to the index without fetching",
		Long: "Merge a submission given entirely on the command line into the README\n" +
			"index table. No files other than the README are touched.",
		Example: "  lantern record --id 1 --title 'Two Sum' --slug two-sum -l go \\\n" +
			"    --path problemset/0001-two-sum/solution.go --tags 'Array, Hash Table' --difficulty Easy",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRecord(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.id, "id", "", "problem id")
	fl.StringVar(&f.title, "title", "", "problem title")
	fl.StringVar(&f.slug, "slug", "", "problem slug, used to build the problem url")
	fl.StringVar(&f.url, "url", "", "problem url (overrides --slug)")
	fl.StringVarP(&f.lang, "lang", "l", "", "solution language (default from config)")
	fl.StringVar(&f.path, "path", "", "solution file path relative to the root")
	fl.StringVar(&f.tags, "tags", "", "comma separated topic tags")
	fl.StringVar(&f.difficulty, "difficulty", "", "problem difficulty")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (a *app) runRecord(cmd *cobra.Command, f recordFlags) error {
	id, err := parseProblemArg(f.id)
	if err != nil {
		return err
	}
	lang := f.lang
	if lang == "" {
		lang = a.cfg.Language
	}

	sub := types.Submission{
		ProblemID:    id,
		Title:        f.title,
		Slug:         f.slug,
		URL:          f.url,
		Language:     resolveLanguage(cmd, lang),
		SolutionPath: f.path,
		Tags:         f.tags,
		Difficulty:   f.difficulty,
	}
	res, err := a.synchronizer().SyncFile(a.cfg.ReadmePath(), sub)
	if err != nil {
		return classify(err)
	}
	return a.printSync(cmd.OutOrStdout(), sub, res)
}

// resolveLanguage maps an alias to its code. Unknown input falls back to
// the default language with a notice on stderr.
func resolveLanguage(cmd *cobra.Command, lang string) string {
	if code, ok := types.LookupLanguage(lang); ok {
		return code
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Unknown language %q, using %s\n", lang, types.DefaultLanguage)
	return types.DefaultLanguage
}
