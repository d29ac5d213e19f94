// Package main provides the entry point for the agentctl CLI.
//
// agentctl is a toolkit for AI-assisted codebases: quality checks with
// error categorization, legal document generation, command guard hooks,
// and installable agent/command/skill assets.
package main

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/tui"
	"github.com/agentworks/agentctl/internal/ui"
)

// Version information set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "agentctl",
	Short: "Guardrails and housekeeping for AI-assisted codebases",
	Long:  ui.GetHelpText(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}

		// Set quiet mode from global flag
		quiet, _ := cmd.Flags().GetBool("quiet")
		ui.SetQuietMode(quiet)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput := boolFlag(cmd.Flags(), "json")
		quiet := boolFlag(cmd.Flags(), "quiet")
		if tui.ShouldRunTUI(jsonOutput, quiet) {
			return tui.RunHub(version)
		}
		// Non-interactive bare invocation: show the cheat sheet instead
		// of the full Cobra help tree.
		ui.PrintRaw(ui.GetCondensedHelp())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
//
// This function also handles "did you mean" suggestions when users type
// commands in the wrong order (e.g., "agentctl generate legal" instead of
// "agentctl legal generate").
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Check if this is an unknown command error and provide suggestions
		errStr := err.Error()
		if strings.Contains(errStr, "unknown command") {
			// Error format: unknown command "generate" for "agentctl"
			if start := strings.Index(errStr, `unknown command "`); start != -1 {
				start += len(`unknown command "`)
				if end := strings.Index(errStr[start:], `"`); end != -1 {
					unknownCmd := errStr[start : start+end]

					// Get the original args (skip program name)
					args := os.Args[1:]

					// Try to suggest a correct command
					if suggestion, found := suggestCorrectCommand(unknownCmd, args, rootCmd); found {
						printCommandSuggestion(suggestion)
					}
				}
			}
		}
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON (where supported)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(legalCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(mcpCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintBanner(version)
		ui.PrintInfo("Version: %s", version)
		ui.PrintInfo("Commit: %s", commit)
		ui.PrintInfo("Built: %s", date)
	},
}

func main() {
	Execute()
}
