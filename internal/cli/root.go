// Package cli implements the lantern command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	goerrors "github.com/goliatone/go-errors"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lantern/internal/index"
	"github.com/mesh-intelligence/lantern/internal/leetcode"
	"github.com/mesh-intelligence/lantern/internal/logging"
	"github.com/mesh-intelligence/lantern/internal/workspace"
	pkgsqlite "github.com/mesh-intelligence/lantern/pkg/sqlite"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	root      string
	dataDir   string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by one command tree: flags, the resolved
// configuration and the collaborators the commands drive.
type app struct {
	flags rootFlags
	cfg   types.Config
	logs  *logging.Provider

	newFetcher func(types.Config, logging.Logger) leetcode.Fetcher
	newStore   func(logging.Logger) types.FavoriteStore
}

func newApp() *app {
	return &app{
		newFetcher: func(cfg types.Config, l logging.Logger) leetcode.Fetcher {
			return leetcode.NewClient(cfg.GraphQLURL, leetcode.WithLogger(l))
		},
		newStore: pkgsqlite.NewStore,
	}
}

// NewRootCmd creates the top-level "lantern" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lantern",
		Short: "Keep a catalog of LeetCode solutions",
		Long: "Lantern scaffolds solution folders for LeetCode problems and keeps the\n" +
			"problem index table in the repository README sorted and up to date.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/lantern)")
	pf.StringVar(&a.flags.root, "root", "", "solutions repository root (default: current directory)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: <root>/.lantern)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRecordCmd(a))
	root.AddCommand(newFavsCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newReindexCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(context.Background(), NewRootCmd(), os.Args[1:], os.Stderr))
}

func run(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// load resolves configuration and logging for the command about to run.
func (a *app) load() error {
	configDir, err := a.configDir()
	if err != nil {
		return sysError(err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	cfg, err := buildConfig(v, a.flags)
	if err != nil {
		return userError(fmt.Errorf("invalid configuration: %w", err))
	}
	logs, err := logging.NewProvider(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return userError(err)
	}
	a.cfg = cfg
	a.logs = logs
	a.logger(logging.RootModule).Debug("configuration loaded",
		"config_dir", configDir, "root", cfg.Root, "data_dir", cfg.DataDir)
	return nil
}

func (a *app) logger(module string) logging.Logger {
	return a.logs.GetLogger(module)
}

func (a *app) synchronizer() *index.Synchronizer {
	return index.NewSynchronizer(index.Options{
		ProblemBaseURL: a.cfg.ProblemBaseURL,
		Lock:           true,
		Logger:         a.logger(logging.IndexModule),
	})
}

func (a *app) workspace() *workspace.Workspace {
	return workspace.New(a.cfg, a.logger(logging.WorkspaceModule))
}

// withStore attaches the favorites store for the duration of fn.
func (a *app) withStore(fn func(types.FavoriteStore) error) (err error) {
	store := a.newStore(a.logger(logging.FavoritesModule))
	if err := store.Attach(a.cfg); err != nil {
		return sysError(fmt.Errorf("attach favorites store: %w", err))
	}
	defer func() {
		if derr := store.Detach(); derr != nil && err == nil {
			err = sysError(fmt.Errorf("detach favorites store: %w", derr))
		}
	}()
	return fn(store)
}

// cliError carries the exit code for an error returned by a command.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userError(err error) error { return &cliError{code: exitUserError, err: err} }
func sysError(err error) error  { return &cliError{code: exitSysError, err: err} }

// classify picks the exit code for an error from one of the engine
// packages. Input and lookup problems are user errors; I/O and remote
// failures are system errors.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return err
	}
	switch index.FailureOf(err) {
	case index.FailureRead, index.FailureWrite, index.FailureLock:
		return sysError(err)
	case index.FailureInvalid:
		return userError(err)
	}
	switch {
	case leetcode.IsNotFound(err),
		goerrors.IsCategory(err, goerrors.CategoryBadInput),
		goerrors.IsCategory(err, goerrors.CategoryValidation),
		errors.Is(err, types.ErrProblemIDInvalid),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrTableAbsent),
		errors.Is(err, types.ErrAlreadyFavorite),
		errors.Is(err, types.ErrNotFavorite):
		return userError(err)
	}
	return sysError(err)
}

func exitCode(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
