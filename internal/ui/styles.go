// Package ui provides terminal UI components using Charm libraries.
//
// This package contains all the styling and rendering helpers for the
// agentctl terminal interface. User-facing output goes through the
// Print* helpers in messages.go; commands never call fmt directly.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Brand colors for agentctl.
var (
	// Primary brand color
	Cyan = lipgloss.Color("#22D3EE")

	// Secondary colors
	Teal    = lipgloss.Color("#14B8A6")
	Red     = lipgloss.Color("#EF4444")
	Amber   = lipgloss.Color("#F59E0B")
	Green   = lipgloss.Color("#22C55E")
	Gray    = lipgloss.Color("#6B7280")
	DimGray = lipgloss.Color("#9CA3AF")
)

// Text styles.
var (
	// TitleStyle for main headings
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	// SubtitleStyle for secondary headings
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// WarningStyle for warning messages
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	// InfoStyle for informational messages
	InfoStyle = lipgloss.NewStyle().
			Foreground(Teal)

	// DimStyle for de-emphasized text
	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	// LinkStyle for URLs and file paths
	LinkStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Underline(true)

	// SpinnerStyle for the running spinner frame
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Cyan)
)

// Box styles.
var (
	// BoxStyle for bordered content blocks
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray).
			Padding(0, 1)

	// BoxTitleStyle for box titles
	BoxTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)
)

// Table styles.
var (
	// TableHeaderStyle for table header cells
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Cyan).
				PaddingRight(2)

	// TableCellStyle for table data cells
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// IsInteractive reports whether stdout is attached to a terminal.
// Piped and redirected output should stay plain and machine-friendly.
func IsInteractive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
