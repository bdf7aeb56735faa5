// ABOUTME: MCP prompt definitions for pressroom
// ABOUTME: Provides static context to AI assistants about the content tools
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerPrompts adds static prompts to the MCP server.
func (s *Server) registerPrompts() {
	prompt := &mcp.Prompt{
		Name:        "pressroom-getting-started",
		Description: "Introduction to pressroom and how AI assistants should use it",
	}

	handler := func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		content := `Pressroom exposes a WordPress site's content as callable tools.

When to use pressroom:
- User asks about published blog content ("what did we post about X?")
- User wants a specific post by ID or slug
- User wants to draft or publish a new post
- User asks to remove a post

Best practices:
- Use fetch_posts with a search keyword before fetching individual posts
- Keep per_page small (5-10) unless the user asks for more
- Create posts as drafts unless the user explicitly says to publish
- delete_post moves posts to trash by default; only pass force=true when
  the user clearly asks for permanent deletion

Every post returned has its author, categories, and tags resolved to
human-readable names, and all HTML stripped to plain text.`

		result := &mcp.GetPromptResult{
			Description: "Getting started with pressroom",
			Messages: []*mcp.PromptMessage{
				{
					Role: "user",
					Content: &mcp.TextContent{
						Text: content,
					},
				},
			},
		}

		return result, nil
	}

	s.mcpServer.AddPrompt(prompt, handler)
}
