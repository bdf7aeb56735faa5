// ABOUTME: WordPress REST API client with basic auth and pooled connections
// ABOUTME: Sole owner of the HTTP connection; all requests flow through one helper
package wp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout is the per-request timeout when none is configured.
const DefaultTimeout = 10 * time.Second

// Client talks to a WordPress site through its REST API rooted at
// {base_url}/wp-json/wp/v2, authenticated with an application password.
// The underlying pooled connection is created by Initialize and released
// by Shutdown; no other component opens or closes it.
type Client struct {
	apiRoot     string
	username    string
	appPassword string
	timeout     time.Duration
	log         *zap.Logger

	mu         sync.Mutex
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the structured logger used for request logging.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the given site. The client is inert
// until Initialize is called.
func NewClient(baseURL, username, appPassword string, opts ...Option) *Client {
	c := &Client{
		apiRoot:     strings.TrimRight(baseURL, "/") + "/wp-json/wp/v2",
		username:    username,
		appPassword: appPassword,
		timeout:     DefaultTimeout,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize acquires the pooled HTTP connection. It is idempotent and
// a no-op when the client is already initialized.
func (c *Client) Initialize() error {
	if c.username == "" || c.appPassword == "" {
		return fmt.Errorf("wordpress credentials missing")
	}
	if _, err := url.ParseRequestURI(c.apiRoot); err != nil {
		return fmt.Errorf("invalid wordpress base url: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil {
		return nil
	}
	c.httpClient = &http.Client{Timeout: c.timeout}
	c.log.Info("initialized wordpress client", zap.String("api_root", c.apiRoot))
	return nil
}

// Shutdown releases the pooled connection. It is idempotent and safe to
// call on every exit path.
func (c *Client) Shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient == nil {
		return
	}
	c.httpClient.CloseIdleConnections()
	c.httpClient = nil
	c.log.Info("closed wordpress client")
}

func (c *Client) conn() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.httpClient
}

// request performs one authenticated API call and returns the response
// body. Failures are logged with method, URL, and parameters before
// they propagate.
func (c *Client) request(ctx context.Context, method, endpoint string, params url.Values, body any) ([]byte, error) {
	hc := c.conn()
	if hc == nil {
		return nil, fmt.Errorf("%s %s: %w", method, endpoint, ErrNotInitialized)
	}

	target := c.apiRoot + "/" + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.appPassword)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	c.log.Debug("wordpress request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("url", target),
		zap.String("params", params.Encode()),
	)

	resp, err := hc.Do(req)
	if err != nil {
		terr := &TransportError{Method: method, URL: target, Err: err}
		c.log.Error("wordpress transport failure",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", target),
			zap.String("params", params.Encode()),
			zap.Error(err),
		)
		return nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		terr := &TransportError{Method: method, URL: target, Err: err}
		c.log.Error("wordpress response read failure",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", target),
			zap.Error(err),
		)
		return nil, terr
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		rerr := &RequestError{Method: method, URL: target, StatusCode: resp.StatusCode, Body: string(respBody)}
		c.log.Error("wordpress request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("url", target),
			zap.String("params", params.Encode()),
			zap.Int("status", resp.StatusCode),
		)
		return nil, rerr
	}

	return respBody, nil
}

// get performs a GET and decodes the response into T.
func get[T any](ctx context.Context, c *Client, endpoint string, params url.Values) (T, error) {
	var result T
	body, err := c.request(ctx, http.MethodGet, endpoint, params, nil)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return result, fmt.Errorf("parse %s response: %w", endpoint, err)
	}
	return result, nil
}

// CheckAccess verifies reachability and credentials with a minimal list
// request. A 4xx response reports failure without an error; transport
// and server failures propagate.
func (c *Client) CheckAccess(ctx context.Context) (bool, error) {
	params := url.Values{}
	params.Set("per_page", "1")
	_, err := c.request(ctx, http.MethodGet, "posts", params, nil)
	if err == nil {
		return true, nil
	}
	if rerr, ok := requestErr(err); ok && rerr.StatusCode < http.StatusInternalServerError {
		c.log.Warn("wordpress rejected access check", zap.Int("status", rerr.StatusCode))
		return false, nil
	}
	return false, err
}

// FetchPosts lists posts matching the query. A nil query uses defaults.
// The raw records are returned in the order WordPress reports them.
func (c *Client) FetchPosts(ctx context.Context, q *PostQuery) ([]RawPost, error) {
	if q == nil {
		q = &PostQuery{}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return get[[]RawPost](ctx, c, "posts", q.Values())
}

// GetPostByID fetches a single post. A missing post is reported as
// ErrNotFound, distinct from transport or HTTP failures.
func (c *Client) GetPostByID(ctx context.Context, id int) (*RawPost, error) {
	post, err := get[*RawPost](ctx, c, "posts/"+strconv.Itoa(id), nil)
	if err != nil {
		if rerr, ok := requestErr(err); ok && rerr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return post, nil
}

// GetPostBySlug fetches the post with the given slug, or ErrNotFound
// when no post matches.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*RawPost, error) {
	params := url.Values{}
	params.Set("slug", slug)
	posts, err := get[[]RawPost](ctx, c, "posts", params)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return &posts[0], nil
}

// GetUserByID fetches a single user record.
func (c *Client) GetUserByID(ctx context.Context, id int) (*RawUser, error) {
	user, err := get[*RawUser](ctx, c, "users/"+strconv.Itoa(id), nil)
	if err != nil {
		if rerr, ok := requestErr(err); ok && rerr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

// FetchItemsByIDs batches a set of IDs for one collection into a single
// include-filtered request. An empty ID set returns immediately without
// touching the network.
func (c *Client) FetchItemsByIDs(ctx context.Context, itemType ItemType, ids []int) ([]NamedItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := url.Values{}
	params.Set("include", IntList(ids).join())
	perPage := len(ids)
	if perPage > 100 {
		perPage = 100
	}
	params.Set("per_page", strconv.Itoa(perPage))
	return get[[]NamedItem](ctx, c, string(itemType), params)
}

// CreatePost publishes a new post and returns the raw created record.
func (c *Client) CreatePost(ctx context.Context, title, content, status string) (*RawPost, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if status == "" {
		status = "draft"
	}
	if status != "draft" && status != "publish" {
		return nil, &ValidationError{Field: "status", Reason: "must be draft or publish"}
	}

	body := map[string]string{
		"title":   title,
		"content": content,
		"status":  status,
	}
	data, err := c.request(ctx, http.MethodPost, "posts", nil, body)
	if err != nil {
		return nil, err
	}
	var post RawPost
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("parse created post: %w", err)
	}
	return &post, nil
}

// DeletePost deletes a post. With force the post is removed permanently
// and WordPress reports its previous state; without force the post is
// trashed and the trashed record stands in as the previous state.
func (c *Client) DeletePost(ctx context.Context, id int, force bool) (*RawDeleteResult, error) {
	params := url.Values{}
	params.Set("force", strconv.FormatBool(force))
	data, err := c.request(ctx, http.MethodDelete, "posts/"+strconv.Itoa(id), params, nil)
	if err != nil {
		if rerr, ok := requestErr(err); ok && rerr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var result RawDeleteResult
	if err := json.Unmarshal(data, &result); err == nil && result.Previous != nil {
		return &result, nil
	}

	// Trash responses carry the post itself rather than {deleted, previous}.
	var trashed RawPost
	if err := json.Unmarshal(data, &trashed); err != nil {
		return nil, fmt.Errorf("parse delete response: %w", err)
	}
	return &RawDeleteResult{Deleted: false, Previous: &trashed}, nil
}

func requestErr(err error) (*RequestError, bool) {
	var rerr *RequestError
	if errors.As(err, &rerr) {
		return rerr, true
	}
	return nil, false
}
