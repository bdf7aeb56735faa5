// ABOUTME: MCP server implementation for pressroom
// ABOUTME: Owns the WordPress client lifecycle and registers content tools
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/harper/pressroom/internal/config"
	"github.com/harper/pressroom/internal/post"
	"github.com/harper/pressroom/internal/wp"
)

// Server wraps the MCP server with WordPress-specific functionality. It
// is the sole owner of the WordPress client's connection: the client is
// acquired when Run starts and released exactly once when Run returns,
// however the session ends.
type Server struct {
	mcpServer  *mcp.Server
	client     *wp.Client
	normalizer *post.Normalizer
	log        *zap.Logger
}

// NewServer creates a pressroom MCP server from configuration. Tools,
// prompts, and resources are registered once here; the protocol runtime
// dispatches calls into them by name.
func NewServer(cfg *config.Config, log *zap.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "pressroom",
		Version: "0.1.0",
	}

	client := wp.NewClient(cfg.BaseURL, cfg.Username, cfg.AppPassword,
		wp.WithTimeout(cfg.Timeout),
		wp.WithLogger(log),
	)

	server := &Server{
		mcpServer:  mcp.NewServer(impl, nil),
		client:     client,
		normalizer: post.NewNormalizer(client),
		log:        log,
	}

	// Register components
	server.registerPrompts()
	server.registerTools()
	server.registerResources()

	return server
}

// Run starts the MCP server with stdio transport. A failure to acquire
// the WordPress connection aborts startup and never reaches the
// transport loop.
func (s *Server) Run(ctx context.Context) error {
	if err := s.client.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize wordpress client: %w", err)
	}
	defer s.client.Shutdown()

	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
