// ABOUTME: Tests for MCP server construction
// ABOUTME: Validates server initialization and tool input/output types
package mcp

import (
	"testing"

	"go.uber.org/zap"

	"github.com/harper/pressroom/internal/config"
	"github.com/harper/pressroom/internal/post"
	"github.com/harper/pressroom/internal/wp"
)

func TestNewServer(t *testing.T) {
	cfg := &config.Config{
		BaseURL:     "https://example.com",
		Username:    "admin",
		AppPassword: "secret",
		Timeout:     config.DefaultTimeout,
	}

	server := NewServer(cfg, zap.NewNop())
	if server == nil {
		t.Fatal("expected non-nil server")
	}
	if server.client == nil {
		t.Error("expected server to own a wordpress client")
	}
	if server.normalizer == nil {
		t.Error("expected server to hold a normalizer")
	}
}

func TestToolInputTypes(t *testing.T) {
	// Verify the query nests under the fetch_posts input the way callers
	// send it.
	input := FetchPostsInput{
		Query: &wp.PostQuery{PerPage: 5, Search: "golang"},
	}
	if input.Query.PerPage != 5 {
		t.Error("expected per_page on nested query")
	}

	del := DeletePostInput{PostID: 3}
	if del.Force {
		t.Error("force must default to false so deletes trash rather than destroy")
	}

	create := CreatePostInput{Title: "t", Content: "c"}
	if create.Status != "" {
		t.Error("status should be empty until the handler applies the draft default")
	}
}

func TestToolOutputTypes(t *testing.T) {
	list := post.NewList([]post.Post{{ID: 1}, {ID: 2}})
	if list.Count != 2 {
		t.Errorf("count = %d, want 2", list.Count)
	}

	prev := post.PreviousPost{ID: 9, Deleted: true}
	if !prev.Deleted {
		t.Error("expected deleted flag")
	}
}
