// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"watchlist/internal/config"
	"watchlist/internal/console"
	"watchlist/internal/logging"
	"watchlist/internal/logging/audit"
	"watchlist/internal/repository"
	"watchlist/internal/services"
	"watchlist/internal/shared"

	"github.com/spf13/cobra"
)

// Version of the watchlist binary.
var Version = "1.0.0"

const defaultConfigPath = "watchlist.toml"

type GlobalOptions struct {
	CfgFilePath  string
	DBPath       string
	LogLevel     string
	LogFile      string
	AuditEnabled bool

	Conf *config.Config

	logFile io.Closer
}

// NewRootCommand builds the watchlist command tree. Without a subcommand it
// runs the interactive menu on the command's input and output.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&GlobalOptions{})
}

func newRootCommand(globalOptions *GlobalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "watchlist",
		Short:         "Movie Watchlist CLI",
		Long:          "Catalogue movies and genres, register viewers and collect their reviews in a local SQLite file.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		// PersistentPreRunE loads the configuration before any command runs.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.initializeConfig(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.closeLogFile()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.runWatchlist(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	globalOptions.registerFlags(rootCmd)

	rootCmd.AddCommand(NewMigrateCommand(globalOptions))
	rootCmd.AddCommand(NewInitConfigCommand(globalOptions))
	rootCmd.AddCommand(NewHousekeepingCommand(globalOptions))

	return rootCmd
}

func (options *GlobalOptions) registerFlags(cmd *cobra.Command) {
	// flags that can be used for each command
	cmd.PersistentFlags().StringVar(&options.CfgFilePath, "config_path", defaultConfigPath, "Path to the configuration file. (Env: WATCHLIST_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&options.DBPath, "db-path", "", "Path of the SQLite store. (Env: WATCHLIST_DATABASE_PATH)")
	cmd.PersistentFlags().StringVar(&options.LogLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: WATCHLIST_LOGGING_LEVEL)")
	cmd.PersistentFlags().StringVar(&options.LogFile, "log-file", "", "Write logs to this rotating file instead of stderr. (Env: WATCHLIST_LOGGING_FILE)")
	cmd.PersistentFlags().BoolVar(&options.AuditEnabled, "audit-enabled", false, "Log every create and delete. (Env: WATCHLIST_LOGGING_AUDIT_ENABLED=true)")
}

// openRepository opens the configured store. Any failure is reported as
// shared.ErrStorageUnavailable.
func (options *GlobalOptions) openRepository() (*repository.Repository, error) {
	repo, err := repository.NewRepository(options.Conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrStorageUnavailable, options.Conf.Database.Path, err)
	}
	return repo, nil
}

// runWatchlist opens the store, makes sure the schema is current and runs
// the menu until the user leaves.
func (options *GlobalOptions) runWatchlist(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	repo, err := options.openRepository()
	if err != nil {
		logging.Log.Error(err)
		return err
	}
	defer repo.Close()

	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return fmt.Errorf("%w: %v", shared.ErrStorageUnavailable, err)
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return err
	}

	auditor := audit.NewLoggerAuditor(logging.Log, options.Conf.Logging.AuditEnabled)
	menu := console.NewMenu(in, out,
		services.NewMovieService(repo, auditor),
		services.NewUserService(repo, auditor),
		services.NewReviewService(repo, auditor),
	)

	logging.Log.Infof("Watchlist %s started on '%s'", Version, options.Conf.Database.Path)
	return menu.Run(ctx)
}

func Execute() {
	rootCmd := NewRootCommand()

	// Run the command based on os.Args
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
