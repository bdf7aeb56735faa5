// ABOUTME: MCP resource implementations for pressroom
// ABOUTME: Provides queryable context about the site's recent content
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/pressroom/internal/wp"
)

// registerResources adds all MCP resources to the server.
func (s *Server) registerResources() {
	recentPosts := &mcp.Resource{
		URI:         "pressroom://recent-posts",
		Name:        "Recent Posts",
		Description: "Last 10 published posts with resolved author, categories, and tags",
		MIMEType:    "application/json",
	}
	s.mcpServer.AddResource(recentPosts, s.handleRecentPosts)
}

// handleRecentPosts implements the recent-posts resource.
func (s *Server) handleRecentPosts(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	query := &wp.PostQuery{PerPage: 10}
	raws, err := s.client.FetchPosts(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent posts: %w", err)
	}

	posts, err := s.normalizer.NormalizeAll(ctx, raws)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize recent posts: %w", err)
	}

	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return nil, err
	}

	result := &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "pressroom://recent-posts",
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}

	return result, nil
}
