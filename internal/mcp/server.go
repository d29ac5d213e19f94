// Package mcp provides the MCP (Model Context Protocol) server
// implementation.
//
// This package exposes agentctl functionality as tools callable by AI
// agents via MCP: quality checks, trend history, legal document
// generation, and command-guard pre-flighting.
package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/agentworks/agentctl/internal/config"
)

// Server wraps the MCP server with workspace state.
type Server struct {
	mcpServer *mcp.Server
	config    *config.WorkspaceConfig
	root      string
	version   string
}

// NewServer creates a new agentctl MCP server rooted at the nearest
// workspace.
//
// Parameters:
//   - version: The CLI version string
//
// Returns:
//   - *Server: A new server instance
//   - error: If no workspace configuration can be found
func NewServer(version string) (*Server, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, root, err := config.LoadNearest(wd)
	if err != nil {
		return nil, fmt.Errorf("no workspace found: run 'agentctl init' first: %w", err)
	}

	s := &Server{
		config:  cfg,
		root:    root,
		version: version,
	}

	s.mcpServer = mcp.NewServer(
		&mcp.Implementation{
			Name:    "agentctl",
			Version: version,
		},
		nil,
	)

	s.registerTools()
	return s, nil
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - error: Any error that occurred during execution
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// registerTools registers all agentctl tools with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "run_quality_check",
		Description: "Run the lint-and-format quality checks. Returns per-check results, top error codes, and gate status.",
	}, s.handleRunQualityCheck)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_quality_trend",
		Description: "Get recent quality run history: error counts per run and the delta versus the previous run.",
	}, s.handleGetQualityTrend)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_legal_docs",
		Description: "Render the privacy policy and terms of service from legal-config.json. Returns the written file paths.",
	}, s.handleGenerateLegalDocs)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "validate_legal_config",
		Description: "Validate legal-config.json and list any problems without generating documents.",
	}, s.handleValidateLegalConfig)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_command",
		Description: "Pre-flight a shell command against the workspace command guard. Returns whether it would be blocked and the guidance an agent would receive.",
	}, s.handleCheckCommand)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_assets",
		Description: "List the embedded agent, command, and skill assets and whether each is installed in this workspace.",
	}, s.handleListAssets)
}
