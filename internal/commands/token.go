package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/techcarewavehealth-wq/carewaveerp/internal/middleware"
)

func newTokenCommand() *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the configured JWT secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadRuntime(os.Stderr)
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiryDuration
			}
			token, err := middleware.IssueToken(cfg.JWTSecret, cfg.JWTIssuer, subject, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "actor identity carried by the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (defaults to JWT_EXPIRY_DURATION)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
