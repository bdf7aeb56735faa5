// ABOUTME: List subcommand printing recent posts to the terminal
// ABOUTME: Fetches and normalizes posts through the same path as the MCP tools
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/pressroom/internal/config"
	"github.com/harper/pressroom/internal/logging"
	"github.com/harper/pressroom/internal/post"
	"github.com/harper/pressroom/internal/wp"
)

var (
	listLimit  int
	listStatus string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent posts",
	Long:  `Fetch recent posts from the configured WordPress site and print them with resolved author, category, and tag names.`,
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

		query := &wp.PostQuery{
			PerPage: listLimit,
			Status:  wp.StringList{listStatus},
			Search:  listSearch,
		}
		raws, err := client.FetchPosts(cmd.Context(), query)
		if err != nil {
			return err
		}

		normalizer := post.NewNormalizer(client)
		posts, err := normalizer.NormalizeAll(cmd.Context(), raws)
		if err != nil {
			return err
		}

		if len(posts) == 0 {
			fmt.Println(post.MessageNone)
			return nil
		}

		title := color.New(color.Bold)
		meta := color.New(color.Faint)
		for _, p := range posts {
			title.Printf("%s\n", p.Title)
			meta.Printf("  %s by %s [%s]\n", p.Date.Format("2006-01-02 15:04"), p.Author.Name, p.Status)
			if len(p.Categories) > 0 || len(p.Tags) > 0 {
				meta.Printf("  categories: %s  tags: %s\n", strings.Join(p.Categories, ", "), strings.Join(p.Tags, ", "))
			}
			meta.Printf("  %s\n\n", p.URL)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 10, "maximum number of posts to list")
	listCmd.Flags().StringVar(&listStatus, "status", "publish", "post status to filter by")
	listCmd.Flags().StringVar(&listSearch, "search", "", "full-text search keyword")
	rootCmd.AddCommand(listCmd)
}
