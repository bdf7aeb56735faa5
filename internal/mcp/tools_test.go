// ABOUTME: Tests for MCP tools against a fake WordPress site
// ABOUTME: Calls tool handlers directly the way the protocol runtime would
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/harper/pressroom/internal/config"
	"github.com/harper/pressroom/internal/post"
	"github.com/harper/pressroom/internal/wp"
)

// fakeWordPress is a minimal in-memory WordPress REST API.
type fakeWordPress struct {
	mu     sync.Mutex
	nextID int
	posts  map[int]map[string]any

	users      map[int]map[string]any
	categories map[int]map[string]any
	tags       map[int]map[string]any
}

func newFakeWordPress() *fakeWordPress {
	f := &fakeWordPress{
		nextID: 1,
		posts:  make(map[int]map[string]any),
		users: map[int]map[string]any{
			1: {"id": 1, "name": "Harper", "slug": "harper"},
		},
		categories: map[int]map[string]any{
			10: {"id": 10, "name": "News", "slug": "news"},
		},
		tags: map[int]map[string]any{
			20: {"id": 20, "name": "release", "slug": "release"},
		},
	}
	return f
}

func (f *fakeWordPress) addPost(title, content, status string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addPostLocked(title, content, status)
}

func (f *fakeWordPress) addPostLocked(title, content, status string) map[string]any {
	id := f.nextID
	f.nextID++
	p := map[string]any{
		"id":         id,
		"date":       fmt.Sprintf("2024-01-%02dT10:00:00", (id%27)+1),
		"slug":       fmt.Sprintf("post-%d", id),
		"status":     status,
		"type":       "post",
		"link":       fmt.Sprintf("https://example.com/post-%d", id),
		"title":      map[string]any{"rendered": title},
		"content":    map[string]any{"rendered": content},
		"excerpt":    map[string]any{"rendered": "<p>excerpt</p>"},
		"author":     1,
		"categories": []int{10},
		"tags":       []int{20},
	}
	f.posts[id] = p
	return p
}

func (f *fakeWordPress) collection(items map[int]map[string]any, include string) []map[string]any {
	var out []map[string]any
	if include == "" {
		for _, item := range items {
			out = append(out, item)
		}
		return out
	}
	for _, part := range strings.Split(include, ",") {
		id, _ := strconv.Atoi(part)
		if item, ok := items[id]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (f *fakeWordPress) handler() http.Handler {
	mux := http.NewServeMux()
	api := "/wp-json/wp/v2"

	mux.HandleFunc(api+"/posts", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			slug := r.URL.Query().Get("slug")
			status := r.URL.Query().Get("status")
			perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
			var out []map[string]any
			// Newest first, matching the default date/desc ordering.
			for id := f.nextID - 1; id >= 1; id-- {
				p, ok := f.posts[id]
				if !ok {
					continue
				}
				if slug != "" && p["slug"] != slug {
					continue
				}
				if status != "" && status != "any" && p["status"] != status {
					continue
				}
				out = append(out, p)
				if perPage > 0 && len(out) == perPage {
					break
				}
			}
			if out == nil {
				out = []map[string]any{}
			}
			writeJSON(w, http.StatusOK, out)
		case http.MethodPost:
			var body struct {
				Title   string `json:"title"`
				Content string `json:"content"`
				Status  string `json:"status"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			p := f.addPostLocked(body.Title, body.Content, body.Status)
			writeJSON(w, http.StatusCreated, p)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc(api+"/posts/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, api+"/posts/"))
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		p, ok := f.posts[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"code": "rest_post_invalid_id"})
			return
		}
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, p)
		case http.MethodDelete:
			force := r.URL.Query().Get("force") == "true"
			if force {
				delete(f.posts, id)
				writeJSON(w, http.StatusOK, map[string]any{"deleted": true, "previous": p})
				return
			}
			p["status"] = "trash"
			writeJSON(w, http.StatusOK, p)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc(api+"/users/", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, api+"/users/"))
		user, ok := f.users[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"code": "rest_user_invalid_id"})
			return
		}
		writeJSON(w, http.StatusOK, user)
	})

	mux.HandleFunc(api+"/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.collection(f.categories, r.URL.Query().Get("include")))
	})

	mux.HandleFunc(api+"/tags", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.collection(f.tags, r.URL.Query().Get("include")))
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestServer(t *testing.T) (*Server, *fakeWordPress) {
	t.Helper()
	fake := newFakeWordPress()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		BaseURL:     srv.URL,
		Username:    "admin",
		AppPassword: "secret",
		Timeout:     config.DefaultTimeout,
		LogLevel:    "info",
	}
	server := NewServer(cfg, zap.NewNop())
	if err := server.client.Initialize(); err != nil {
		t.Fatalf("initialize client: %v", err)
	}
	t.Cleanup(server.client.Shutdown)
	return server, fake
}

func TestFetchPostsCountMatchesLength(t *testing.T) {
	server, fake := newTestServer(t)
	for i := 0; i < 5; i++ {
		fake.addPost(fmt.Sprintf("<p>Post %d</p>", i), "<p>body</p>", "publish")
	}

	result, list, err := server.handleFetchPosts(context.Background(), nil, FetchPostsInput{})
	if err != nil {
		t.Fatalf("handleFetchPosts failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected non-nil result")
	}
	if list.Count != len(list.Posts) {
		t.Errorf("count %d != len(posts) %d", list.Count, len(list.Posts))
	}
	if list.Count != 5 {
		t.Errorf("count = %d, want 5", list.Count)
	}
	if list.Message != post.MessageRetrieved {
		t.Errorf("message = %q, want %q", list.Message, post.MessageRetrieved)
	}
	for i, p := range list.Posts {
		if p.Author.Name == "" {
			t.Errorf("posts[%d] has empty author name", i)
		}
		if i > 0 && list.Posts[i-1].Date.Before(p.Date) {
			t.Errorf("posts not ordered newest-first at index %d", i)
		}
	}
}

func TestFetchPostsEmpty(t *testing.T) {
	server, _ := newTestServer(t)

	_, list, err := server.handleFetchPosts(context.Background(), nil, FetchPostsInput{})
	if err != nil {
		t.Fatalf("handleFetchPosts failed: %v", err)
	}
	if list.Count != 0 {
		t.Errorf("count = %d, want 0", list.Count)
	}
	if list.Message != post.MessageNone {
		t.Errorf("message = %q, want %q", list.Message, post.MessageNone)
	}
}

func TestFetchPostsWithQuery(t *testing.T) {
	server, fake := newTestServer(t)
	fake.addPost("<p>Keep</p>", "<p>body</p>", "publish")
	fake.addPost("<p>Draft</p>", "<p>body</p>", "draft")

	query := &wp.PostQuery{PerPage: 5, Status: wp.StringList{"publish"}}
	_, list, err := server.handleFetchPosts(context.Background(), nil, FetchPostsInput{Query: query})
	if err != nil {
		t.Fatalf("handleFetchPosts failed: %v", err)
	}
	if list.Count != 1 {
		t.Errorf("count = %d, want 1 published post", list.Count)
	}
	if list.Count > 0 && list.Posts[0].Title != "Keep" {
		t.Errorf("title = %q, want Keep", list.Posts[0].Title)
	}
}

func TestGetPostByID(t *testing.T) {
	server, fake := newTestServer(t)
	created := fake.addPost("<p>Hello</p>", "<p>World</p>", "publish")
	id := created["id"].(int)

	_, p, err := server.handleGetPostByID(context.Background(), nil, GetPostByIDInput{PostID: id})
	if err != nil {
		t.Fatalf("handleGetPostByID failed: %v", err)
	}
	if p.ID != id {
		t.Errorf("id = %d, want %d", p.ID, id)
	}
	if p.Title != "Hello" {
		t.Errorf("title = %q, want Hello", p.Title)
	}
	if p.Author.Name != "Harper" {
		t.Errorf("author = %q, want Harper", p.Author.Name)
	}
	if len(p.Categories) != 1 || p.Categories[0] != "News" {
		t.Errorf("categories = %v, want [News]", p.Categories)
	}
}

func TestGetPostByIDNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	_, _, err := server.handleGetPostByID(context.Background(), nil, GetPostByIDInput{PostID: 999})
	if !errors.Is(err, wp.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	var rerr *wp.RequestError
	if errors.As(err, &rerr) {
		t.Error("missing post must be a logical not-found, not a request error")
	}
}

func TestGetPostBySlug(t *testing.T) {
	server, fake := newTestServer(t)
	created := fake.addPost("<p>Hello</p>", "<p>World</p>", "publish")
	slug := created["slug"].(string)

	_, p, err := server.handleGetPostBySlug(context.Background(), nil, GetPostBySlugInput{Slug: slug})
	if err != nil {
		t.Fatalf("handleGetPostBySlug failed: %v", err)
	}
	if p.Slug != slug {
		t.Errorf("slug = %q, want %q", p.Slug, slug)
	}
}

func TestGetPostBySlugNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	_, _, err := server.handleGetPostBySlug(context.Background(), nil, GetPostBySlugInput{Slug: "missing"})
	if !errors.Is(err, wp.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateThenDeletePost(t *testing.T) {
	server, _ := newTestServer(t)

	_, created, err := server.handleCreatePost(context.Background(), nil, CreatePostInput{
		Title:   "T",
		Content: "<p>C</p>",
		Status:  "draft",
	})
	if err != nil {
		t.Fatalf("handleCreatePost failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected non-zero created post ID")
	}
	if created.Status != "draft" {
		t.Errorf("status = %q, want draft", created.Status)
	}
	if created.Content != "C" {
		t.Errorf("content = %q, want C", created.Content)
	}

	_, prev, err := server.handleDeletePost(context.Background(), nil, DeletePostInput{
		PostID: created.ID,
		Force:  true,
	})
	if err != nil {
		t.Fatalf("handleDeletePost failed: %v", err)
	}
	if prev.ID != created.ID {
		t.Errorf("previous ID = %d, want %d", prev.ID, created.ID)
	}
	if !prev.Deleted {
		t.Error("expected deleted flag after forced delete")
	}
}

func TestDeletePostDefaultsToTrash(t *testing.T) {
	server, _ := newTestServer(t)

	_, created, err := server.handleCreatePost(context.Background(), nil, CreatePostInput{
		Title:   "Trash me",
		Content: "<p>soon gone</p>",
	})
	if err != nil {
		t.Fatalf("handleCreatePost failed: %v", err)
	}

	_, prev, err := server.handleDeletePost(context.Background(), nil, DeletePostInput{PostID: created.ID})
	if err != nil {
		t.Fatalf("handleDeletePost failed: %v", err)
	}
	if prev.Deleted {
		t.Error("delete without force must trash, not permanently delete")
	}
	if prev.Status != "trash" {
		t.Errorf("status = %q, want trash", prev.Status)
	}
}

func TestCreatePostDefaultsToDraft(t *testing.T) {
	server, _ := newTestServer(t)

	_, created, err := server.handleCreatePost(context.Background(), nil, CreatePostInput{
		Title:   "No status given",
		Content: "<p>body</p>",
	})
	if err != nil {
		t.Fatalf("handleCreatePost failed: %v", err)
	}
	if created.Status != "draft" {
		t.Errorf("status = %q, want draft", created.Status)
	}
}
