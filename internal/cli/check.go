// ABOUTME: Check subcommand verifying WordPress API access
// ABOUTME: Issues a minimal list request and reports reachability and credentials
package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/pressroom/internal/config"
	"github.com/harper/pressroom/internal/logging"
	"github.com/harper/pressroom/internal/wp"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify WordPress API access",
	Long:  `Issue a minimal request against the configured WordPress site to verify that it is reachable and the credentials are accepted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		log, err := logging.New(cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		client := wp.NewClient(cfg.BaseURL, cfg.Username, cfg.AppPassword,
			wp.WithTimeout(cfg.Timeout),
			wp.WithLogger(log),
		)
		if err := client.Initialize(); err != nil {
			return err
		}
		defer client.Shutdown()

		ok, err := client.CheckAccess(cmd.Context())
		if err != nil {
			return fmt.Errorf("could not reach %s: %w", cfg.BaseURL, err)
		}
		if !ok {
			color.Red("✗ %s rejected the request; check WP_USERNAME and WP_APP_PASSWORD", cfg.BaseURL)
			return fmt.Errorf("credentials rejected")
		}

		color.Green("✓ %s is reachable and credentials are accepted", cfg.BaseURL)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
