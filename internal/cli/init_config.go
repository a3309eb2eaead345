// filepath: internal/cli/init_config.go
package cli

import (
	"fmt"
	"os"

	"watchlist/internal/config"

	"github.com/spf13/cobra"
)

func NewInitConfigCommand(globalOptions *GlobalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write a configuration file with every default filled in",
		Long:  "Write the effective configuration (defaults plus any env/flag overrides) to the file named by --config_path.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := globalOptions.CfgFilePath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveConfig(path, globalOptions.Conf); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
