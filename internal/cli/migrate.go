// filepath: internal/cli/migrate.go
package cli

import (
	"fmt"
	"io"

	"watchlist/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func NewMigrateCommand(globalOptions *GlobalOptions) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database schema versions. Use subcommands 'up', 'down', or 'status'.`,
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Migrate the database to the most recent version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.runMigration("up", cmd.OutOrStdout())
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the database by one version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.runMigration("down", cmd.OutOrStdout())
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Dump the migration status for the current DB",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return globalOptions.runMigration("status", cmd.OutOrStdout())
		},
	}

	// Add subcommands
	migrateCmd.AddCommand(upCmd)
	migrateCmd.AddCommand(downCmd)
	migrateCmd.AddCommand(statusCmd)

	return migrateCmd
}

// migrationLogger prints goose progress on out regardless of the configured
// log level.
func migrationLogger(out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return logger
}

func (options *GlobalOptions) runMigration(command string, out io.Writer) error {
	repo, err := options.openRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	repo.MigrationLogger = migrationLogger(out)
	logging.Log.Infof("Running migration command: %s", command)

	var migrateErr error
	switch command {
	case "up":
		migrateErr = repo.MigrateUp()
	case "down":
		migrateErr = repo.MigrateDown()
	case "status":
		migrateErr = repo.MigrationStatus()
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}

	if migrateErr != nil {
		return fmt.Errorf("migration failed: %w", migrateErr)
	}
	return nil
}

