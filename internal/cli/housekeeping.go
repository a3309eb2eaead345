// filepath: internal/cli/housekeeping.go
package cli

import (
	"fmt"

	"watchlist/internal/housekeeping"
	"watchlist/internal/logging"
	"watchlist/internal/logging/audit"
	"watchlist/internal/repository"

	"github.com/spf13/cobra"
)

var _ housekeeping.DBTX = (*repository.Repository)(nil)

func NewHousekeepingCommand(globalOptions *GlobalOptions) *cobra.Command {
	opts := housekeeping.Options{}
	var skipVacuum bool

	cmd := &cobra.Command{
		Use:   "housekeeping",
		Short: "Delete unused genres and compact the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := globalOptions.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.ValidateSchema(); err != nil {
				return err
			}

			opts.PruneGenres = true
			opts.Vacuum = !skipVacuum
			deps := housekeeping.Dependencies{
				DB:      repo,
				Auditor: audit.NewLoggerAuditor(logging.Log, globalOptions.Conf.Logging.AuditEnabled),
			}

			report, err := housekeeping.Run(cmd.Context(), deps, opts)
			if err != nil {
				return fmt.Errorf("housekeeping failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Message)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Only report what would be deleted")
	cmd.Flags().BoolVar(&skipVacuum, "no-vacuum", false, "Skip compacting the store file")
	return cmd
}
