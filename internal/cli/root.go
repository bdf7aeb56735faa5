// ABOUTME: Root command definition and CLI setup
// ABOUTME: Handles command registration and execution
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pressroom",
	Short: "WordPress content tools over MCP",
	Long:  `Pressroom exposes a WordPress site's posts, authors, and taxonomy as schema-validated tools for AI assistants, plus a small CLI for checking access and listing posts.`,
}

func Execute() error {
	return rootCmd.Execute()
}
