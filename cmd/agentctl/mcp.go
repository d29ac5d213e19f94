// Package main provides the MCP command for the agentctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/mcp"
	"github.com/agentworks/agentctl/internal/ui"
)

// mcpCmd is the parent command for MCP operations.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long: `MCP (Model Context Protocol) server commands.

The MCP server exposes agentctl to AI agents through the Model Context
Protocol, so assistants like Claude or Cursor can run quality checks,
read the trend history, and generate legal documents directly.

Commands:
  serve  - Start the MCP server over stdio`,
}

// mcpServeCmd starts the MCP server.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server over stdio",
	Long: `Start the agentctl MCP server over stdio.

This command starts an MCP server that communicates via JSON-RPC over
stdin/stdout. It's designed to be launched by AI hosts like Cursor or
Claude Desktop, from inside an initialized workspace.

The server exposes the following tools:
  - run_quality_check: Run the configured quality checks
  - get_quality_trend: Read recent run history
  - generate_legal_docs: Render privacy policy and terms of service
  - validate_legal_config: Validate legal-config.json
  - check_command: Pre-flight a shell command against the guard
  - list_assets: List embedded assets and install state

Example Cursor configuration:
  {
    "mcpServers": {
      "agentctl": {
        "command": "agentctl",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}

// runMCPServe starts the MCP server.
func runMCPServe(cmd *cobra.Command, args []string) error {
	server, err := mcp.NewServer(version)
	if err != nil {
		ui.PrintError("Failed to create MCP server: %v", err)
		return err
	}

	// Run the server (blocks until client disconnects)
	return server.Run(cmd.Context())
}
