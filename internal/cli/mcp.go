// ABOUTME: MCP subcommand for running the pressroom MCP server
// ABOUTME: Handles stdio transport initialization and server lifecycle
package cli

import (
	"github.com/spf13/cobra"

	"github.com/harper/pressroom/internal/config"
	"github.com/harper/pressroom/internal/logging"
	"github.com/harper/pressroom/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the pressroom MCP server",
	Long:  `Start the Model Context Protocol server exposing WordPress content tools over stdio.`,
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

		server := mcp.NewServer(cfg, log)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
