package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/techcarewavehealth-wq/carewaveerp/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back the embedded schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRuntime(os.Stderr)
			if err != nil {
				return err
			}
			dir := database.Direction(args[0])
			if err := database.RunMigrations(cfg.DBDriver, migrationDSN(cfg), dir, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations %s applied (%s)\n", dir, cfg.DBDriver)
			return nil
		},
	}
}
