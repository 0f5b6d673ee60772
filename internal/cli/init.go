package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a solutions repository",
		Long: "Write the default config.yaml if missing, create the solutions folder and\n" +
			"README, add the index table to the README and create the favorites store.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := a.configDir()
	if err != nil {
		return sysError(err)
	}
	configPath := filepath.Join(configDir, configFileExt)
	wrote, err := writeConfigIfMissing(configPath, defaultConfigFile(a.cfg))
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	dir, err := a.workspace().Init()
	if err != nil {
		return sysError(err)
	}
	res, err := a.synchronizer().BootstrapFile(a.cfg.ReadmePath())
	if err != nil {
		return classify(err)
	}
	if err := a.withStore(func(types.FavoriteStore) error { return nil }); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if wrote {
		fmt.Fprintf(out, "Wrote %s\n", configPath)
	}
	fmt.Fprintf(out, "Solutions folder: %s\n", dir)
	fmt.Fprintf(out, "Index: %s (%s)\n", res.Path, res.Outcome)
	fmt.Fprintln(out, "Lantern initialized successfully")
	return nil
}
