package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/seed"
)

func newSeedCommand() *cobra.Command {
	var scheme string
	var actor string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a chart-of-accounts template",
		Long:  "Creates every account of the chosen template. Codes that already exist are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := seed.LoadTemplate(scheme)
			if err != nil {
				return err
			}
			cfg, logger, err := loadRuntime(os.Stderr)
			if err != nil {
				return err
			}
			svc, closeStore, err := openServices(cmd.Context(), cfg, logger, cfg.RunMigrations)
			if err != nil {
				return err
			}
			defer closeStore()

			res, err := seed.Apply(cmd.Context(), svc.Account, tmpl, actor, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s chart: %d created, %d skipped\n", tmpl.Scheme, res.Created, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&scheme, "scheme", "ES", "chart template ("+strings.Join(seed.Schemes(), "|")+")")
	cmd.Flags().StringVar(&actor, "actor", "seed", "identity recorded as creator")

	return cmd
}
