// Package ui provides the ASCII banner and help text for agentctl.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for agentctl.
const banner = `
   █████╗  ██████╗ ███████╗███╗   ██╗████████╗ ██████╗████████╗██╗
  ██╔══██╗██╔════╝ ██╔════╝████╗  ██║╚══██╔══╝██╔════╝╚══██╔══╝██║
  ███████║██║  ███╗█████╗  ██╔██╗ ██║   ██║   ██║        ██║   ██║
  ██╔══██║██║   ██║██╔══╝  ██║╚██╗██║   ██║   ██║        ██║   ██║
  ██║  ██║╚██████╔╝███████╗██║ ╚████║   ██║   ╚██████╗   ██║   ███████╗
  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝   ╚═╝    ╚═════╝   ╚═╝   ╚══════╝`

// tagline is the product tagline.
const tagline = "Guardrails and housekeeping for AI-assisted codebases"

// PrintBanner prints the agentctl banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)
	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}

// GetHelpText returns the long help shown for the root command.
func GetHelpText() string {
	title := lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	return fmt.Sprintf(`%s

agentctl manages the workspace conventions of an AI coding assistant:
quality gates, legal document generation, command-guard hooks, and
agent/command markdown assets.

%s
  agentctl init                       Scaffold .agentctl/config.yaml
  agentctl quality check              Lint, format, and gate the workspace
  agentctl legal generate             Render privacy policy and terms
  agentctl assets install             Install agent/command markdown
  agentctl hook guard                 Run the command guard (hook mode)
  agentctl doctor                     Check workspace health

%s`,
		title.Render("agentctl — AI-assistant workspace toolkit"),
		title.Render("COMMON WORKFLOWS:"),
		dim.Render("Run 'agentctl <command> --help' for details on any command."))
}

// GetCondensedHelp returns a compact cheat-sheet for the 80/20 user
// journey. Shown when the user runs bare agentctl in a non-interactive
// context. No ASCII banner, no Cobra auto-generated command list.
func GetCondensedHelp() string {
	accent := lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	return fmt.Sprintf(`%s

%s
  %s                 Initialize workspace configuration
  %s          Run the lint-and-format quality gate
  %s       Render legal documents from config
  %s       Install agent and command assets

%s
  %s                Show quality trend history
  %s               Workspace health checks
  %s            Start the MCP server for AI hosts

%s
`,
		accent.Render("agentctl"),
		accent.Render("GET STARTED:"),
		accent.Render("init"),
		accent.Render("quality check"),
		accent.Render("legal generate"),
		accent.Render("assets install"),
		accent.Render("EVERYDAY:"),
		accent.Render("trend"),
		accent.Render("doctor"),
		accent.Render("mcp serve"),
		hint.Render(dim.Render("Run 'agentctl --help' for the full command list.")))
}
