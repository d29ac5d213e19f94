// Package tui provides the Bubble Tea TUI hub for agentctl.
//
// The TUI launches when a human runs bare `agentctl` in an interactive
// terminal. It is never activated for agents, CI/CD, or piped output --
// three independent gates (--json, --quiet, isatty) prevent it.
package tui

import (
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/trend"
)

// --- TTY gate ---

// ShouldRunTUI returns true if the TUI should be launched.
// Returns false when stdout is not a terminal, or --json/--quiet flags are set.
//
// Parameters:
//   - jsonOutput: whether --json was passed
//   - quiet: whether --quiet was passed
//
// Returns:
//   - bool: true if the TUI should run
func ShouldRunTUI(jsonOutput, quiet bool) bool {
	if jsonOutput || quiet {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// --- Brand colors (mirrors internal/ui/styles.go) ---

var (
	cyan    = lipgloss.Color("#22D3EE")
	teal    = lipgloss.Color("#14B8A6")
	red     = lipgloss.Color("#EF4444")
	amber   = lipgloss.Color("#F59E0B")
	green   = lipgloss.Color("#22C55E")
	gray    = lipgloss.Color("#6B7280")
	dimGray = lipgloss.Color("#9CA3AF")
	white   = lipgloss.Color("#E5E7EB")
)

// --- Shared TUI styles ---

var (
	// titleStyle renders the AGENTCTL header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cyan)

	// versionStyle renders the version badge.
	versionStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	// sectionStyle renders section headers (e.g. "Quality", "Assets").
	sectionStyle = lipgloss.NewStyle().
			Foreground(dimGray).
			Bold(true).
			MarginTop(1)

	// selectedStyle highlights the currently selected list item.
	selectedStyle = lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true)

	// normalStyle renders unselected list items.
	normalStyle = lipgloss.NewStyle().
			Foreground(white)

	// dimStyle renders low-priority text.
	dimStyle = lipgloss.NewStyle().
			Foreground(dimGray)

	// successStyle renders passed/success indicators.
	successStyle = lipgloss.NewStyle().
			Foreground(green)

	// errorStyle renders failed/error indicators.
	errorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	// warningStyle renders warning indicators.
	warningStyle = lipgloss.NewStyle().
			Foreground(amber)

	// helpStyle renders the bottom key hint bar.
	helpStyle = lipgloss.NewStyle().
			Foreground(gray)

	// separatorStyle renders horizontal rules.
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))
)

// separator returns a horizontal line of the given width.
func separator(width int) string {
	s := ""
	for i := 0; i < width; i++ {
		s += "─"
	}
	return separatorStyle.Render(s)
}

// helpKeyRender formats a key/description pair for the hint bar.
func helpKeyRender(key, desc string) string {
	return lipgloss.NewStyle().Foreground(cyan).Bold(true).Render(key) +
		" " + helpStyle.Render(desc)
}

// --- Shared message types ---

// WorkspaceMsg carries the loaded workspace configuration, or the error
// explaining why no workspace could be found.
type WorkspaceMsg struct {
	Config *config.WorkspaceConfig
	Root   string
	Err    error
}

// TrendMsg carries recent quality runs from the trend file.
type TrendMsg struct {
	Entries []trend.Entry
	Err     error
}

// AssetsMsg carries the embedded asset catalog with install state.
type AssetsMsg struct {
	Assets []AssetItem
	Err    error
}

// AssetItem is one embedded asset row on the dashboard.
type AssetItem struct {
	Name      string
	Kind      string
	Installed bool
}

// --- Shared spinner factory ---

// newSpinner creates a consistently styled braille spinner.
func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(teal)
	return s
}
