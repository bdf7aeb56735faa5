// ABOUTME: MCP tool implementations for pressroom
// ABOUTME: Five content operations over the WordPress client and normalizer
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/pressroom/internal/post"
	"github.com/harper/pressroom/internal/wp"
)

// FetchPostsInput defines the input for the fetch_posts tool.
type FetchPostsInput struct {
	Query *wp.PostQuery `json:"query,omitempty" jsonschema:"Filter options for the post list; omit for defaults"`
}

// GetPostByIDInput defines the input for the get_post_by_id tool.
type GetPostByIDInput struct {
	PostID int `json:"post_id" jsonschema:"ID of the post to fetch" jsonschema_extras:"required=true"`
}

// GetPostBySlugInput defines the input for the get_post_by_slug tool.
type GetPostBySlugInput struct {
	Slug string `json:"slug" jsonschema:"Slug of the post to fetch" jsonschema_extras:"required=true"`
}

// CreatePostInput defines the input for the create_post tool.
type CreatePostInput struct {
	Title   string `json:"title" jsonschema:"Title of the new post" jsonschema_extras:"required=true"`
	Content string `json:"content" jsonschema:"Body of the new post in HTML" jsonschema_extras:"required=true"`
	Status  string `json:"status,omitempty" jsonschema:"Post status, draft or publish; defaults to draft"`
}

// DeletePostInput defines the input for the delete_post tool.
type DeletePostInput struct {
	PostID int  `json:"post_id" jsonschema:"ID of the post to delete" jsonschema_extras:"required=true"`
	Force  bool `json:"force,omitempty" jsonschema:"Permanently delete instead of moving to trash; defaults to false"`
}

// registerTools adds all MCP tools to the server.
func (s *Server) registerTools() {
	fetchPostsTool := &mcp.Tool{
		Name:        "fetch_posts",
		Description: "List WordPress posts with optional filters for search keywords, categories, tags, authors, date ranges, and status. Each returned post includes its resolved author name, category and tag names, publication date, excerpt, and URL.",
	}
	mcp.AddTool(s.mcpServer, fetchPostsTool, s.handleFetchPosts)

	getPostByIDTool := &mcp.Tool{
		Name:        "get_post_by_id",
		Description: "Fetch a single WordPress post by its numeric ID, with author, categories, and tags resolved to names. Reports not-found when no post has the given ID.",
	}
	mcp.AddTool(s.mcpServer, getPostByIDTool, s.handleGetPostByID)

	getPostBySlugTool := &mcp.Tool{
		Name:        "get_post_by_slug",
		Description: "Fetch a single WordPress post by its URL slug, with author, categories, and tags resolved to names. Reports not-found when no post has the given slug.",
	}
	mcp.AddTool(s.mcpServer, getPostBySlugTool, s.handleGetPostBySlug)

	createPostTool := &mcp.Tool{
		Name:        "create_post",
		Description: "Create a new WordPress post with a title, HTML body, and status (draft or publish). Returns the created post with its assigned ID, slug, and URL.",
	}
	mcp.AddTool(s.mcpServer, createPostTool, s.handleCreatePost)

	deletePostTool := &mcp.Tool{
		Name:        "delete_post",
		Description: "Delete a WordPress post by ID. By default the post is moved to trash; set force to true to delete permanently. Returns the post's state before deletion.",
	}
	mcp.AddTool(s.mcpServer, deletePostTool, s.handleDeletePost)
}

// handleFetchPosts implements the fetch_posts tool.
func (s *Server) handleFetchPosts(ctx context.Context, req *mcp.CallToolRequest, input FetchPostsInput) (*mcp.CallToolResult, post.List, error) {
	raws, err := s.client.FetchPosts(ctx, input.Query)
	if err != nil {
		return nil, post.List{}, err
	}

	posts, err := s.normalizer.NormalizeAll(ctx, raws)
	if err != nil {
		return nil, post.List{}, err
	}

	list := post.NewList(posts)
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%s (count: %d)", list.Message, list.Count),
			},
		},
	}
	return result, list, nil
}

// handleGetPostByID implements the get_post_by_id tool.
func (s *Server) handleGetPostByID(ctx context.Context, req *mcp.CallToolRequest, input GetPostByIDInput) (*mcp.CallToolResult, post.Post, error) {
	raw, err := s.client.GetPostByID(ctx, input.PostID)
	if err != nil {
		return nil, post.Post{}, err
	}

	p, err := s.normalizer.Normalize(ctx, raw)
	if err != nil {
		return nil, post.Post{}, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Post %d: %s", p.ID, p.Title),
			},
		},
	}
	return result, p, nil
}

// handleGetPostBySlug implements the get_post_by_slug tool.
func (s *Server) handleGetPostBySlug(ctx context.Context, req *mcp.CallToolRequest, input GetPostBySlugInput) (*mcp.CallToolResult, post.Post, error) {
	raw, err := s.client.GetPostBySlug(ctx, input.Slug)
	if err != nil {
		return nil, post.Post{}, err
	}

	p, err := s.normalizer.Normalize(ctx, raw)
	if err != nil {
		return nil, post.Post{}, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Post %q: %s", p.Slug, p.Title),
			},
		},
	}
	return result, p, nil
}

// handleCreatePost implements the create_post tool.
func (s *Server) handleCreatePost(ctx context.Context, req *mcp.CallToolRequest, input CreatePostInput) (*mcp.CallToolResult, post.Post, error) {
	raw, err := s.client.CreatePost(ctx, input.Title, input.Content, input.Status)
	if err != nil {
		return nil, post.Post{}, err
	}

	p, err := s.normalizer.Normalize(ctx, raw)
	if err != nil {
		return nil, post.Post{}, err
	}

	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("Created post %d (%s) with status %s", p.ID, p.Slug, p.Status),
			},
		},
	}
	return result, p, nil
}

// handleDeletePost implements the delete_post tool.
func (s *Server) handleDeletePost(ctx context.Context, req *mcp.CallToolRequest, input DeletePostInput) (*mcp.CallToolResult, post.PreviousPost, error) {
	deleted, err := s.client.DeletePost(ctx, input.PostID, input.Force)
	if err != nil {
		return nil, post.PreviousPost{}, err
	}

	prev, err := s.normalizer.NormalizePrevious(ctx, deleted.Previous, deleted.Deleted)
	if err != nil {
		return nil, post.PreviousPost{}, err
	}

	verb := "Trashed"
	if prev.Deleted {
		verb = "Permanently deleted"
	}
	result := &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: fmt.Sprintf("%s post %d (%s)", verb, prev.ID, prev.Slug),
			},
		},
	}
	return result, prev, nil
}
