package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

func newFavsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favs",
		Aliases: []string{"favorites"},
		Short:   "Manage favorite problems",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <problem-id>",
			Short: "Star an indexed problem",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runFavsAdd,
		},
		&cobra.Command{
			Use:     "remove <problem-id>",
			Aliases: []string{"rm"},
			Short:   "Unstar a problem",
			Args:    cobra.ExactArgs(1),
			RunE:    a.runFavsRemove,
		},
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "List favorite problems",
			Args:    cobra.NoArgs,
			RunE:    a.runFavsList,
		},
	)
	return cmd
}

func (a *app) runFavsAdd(cmd *cobra.Command, args []string) error {
	id, err := parseProblemArg(args[0])
	if err != nil {
		return err
	}
	sync := a.synchronizer()
	readme := a.cfg.ReadmePath()

	row, err := sync.Lookup(readme, id)
	if err != nil {
		return classify(err)
	}

	var added types.Favorite
	err = a.withStore(func(store types.FavoriteStore) error {
		added, err = store.Add(types.FavoriteFromRow(row))
		if err != nil {
			return classify(err)
		}
		if _, err := sync.SetStar(readme, id, true); err != nil {
			// Keep the store and the README in agreement.
			if rerr := store.Remove(id); rerr != nil {
				a.logger(logging.FavoritesModule).Error("favorite rollback failed", "problem_id", id, "error", rerr)
			}
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), added)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Starred %s. %s\n", types.FormatProblemID(id), added.Title)
	return nil
}

func (a *app) runFavsRemove(cmd *cobra.Command, args []string) error {
	id, err := parseProblemArg(args[0])
	if err != nil {
		return err
	}
	err = a.withStore(func(store types.FavoriteStore) error {
		return classify(store.Remove(id))
	})
	if err != nil {
		return err
	}

	// The row may have been removed from the README by hand.
	if _, err := a.synchronizer().SetStar(a.cfg.ReadmePath(), id, false); err != nil &&
		!errors.Is(err, types.ErrNotFound) && !errors.Is(err, types.ErrTableAbsent) {
		return classify(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unstarred %s\n", types.FormatProblemID(id))
	return nil
}

func (a *app) runFavsList(cmd *cobra.Command, args []string) error {
	var favs []types.Favorite
	err := a.withStore(func(store types.FavoriteStore) error {
		var err error
		favs, err = store.List()
		return classify(err)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		if favs == nil {
			favs = []types.Favorite{}
		}
		return writeJSON(out, favs)
	}
	if len(favs) == 0 {
		fmt.Fprintln(out, "No favorites yet")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tTAGS")
	for _, f := range favs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", types.FormatProblemID(f.ProblemID), f.Title, f.Difficulty, f.Tags)
	}
	return tw.Flush()
}
