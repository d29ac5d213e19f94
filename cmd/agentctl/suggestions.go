// Package main provides command suggestion functionality for the CLI.
//
// This file implements "did you mean" suggestions when users type commands
// in the wrong order (e.g., "agentctl generate legal" instead of
// "agentctl legal generate").
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/ui"
)

// subcommandMap maps subcommand names to their parent commands.
// This is used to suggest the correct command when users type commands
// in the wrong order.
//
// Example: "generate" -> ["legal"] means "generate" is a subcommand
// of "legal".
var subcommandMap = map[string][]string{
	"generate": {"legal"},
	"validate": {"legal", "config"},
	"get":      {"legal"},
	"set":      {"legal", "config"},
	"check":    {"quality"},
	"watch":    {"quality"},
	"show":     {"config", "trend", "assets"},
	"path":     {"config"},
	"clear":    {"trend"},
	"guard":    {"hook"},
	"install":  {"assets"},
	"list":     {"assets"},
	"serve":    {"mcp"},
}

// suggestCorrectCommand checks if the user typed a subcommand at the wrong level
// and returns a suggestion if found.
//
// This function analyzes the command line arguments to detect when a user has
// typed a subcommand before its parent command (e.g., "generate legal" instead
// of "legal generate") and constructs the correct command order.
//
// Parameters:
//   - unknownCmd: The command that was not recognized by Cobra
//   - allArgs: All command line arguments (excluding program name)
//   - rootCmd: The root command to search for valid parent commands
//
// Returns:
//   - string: A suggested command string with correct order, or empty if no suggestion found
//   - bool: True if a valid suggestion was found
//
// Example:
//
//	unknownCmd: "check"
//	allArgs: ["--json", "check", "quality", "backend"]
//	Returns: "agentctl --json quality check backend", true
func suggestCorrectCommand(unknownCmd string, allArgs []string, rootCmd *cobra.Command) (string, bool) {
	// Check if the unknown command is a known subcommand
	parentCmds, isSubcommand := subcommandMap[unknownCmd]
	if !isSubcommand {
		return "", false
	}

	// Find the position of the unknown command in args
	unknownCmdIdx := -1
	for i, arg := range allArgs {
		if arg == unknownCmd {
			unknownCmdIdx = i
			break
		}
	}

	if unknownCmdIdx == -1 {
		return "", false
	}

	// Check if any of the args after the unknown command is a valid parent command
	for i := unknownCmdIdx + 1; i < len(allArgs); i++ {
		arg := allArgs[i]

		// Skip flags and their values
		if strings.HasPrefix(arg, "-") {
			continue
		}

		for _, parentCmd := range parentCmds {
			if arg == parentCmd {
				// Verify the parent command exists
				for _, cmd := range rootCmd.Commands() {
					if cmd.Name() == parentCmd {
						// Build the suggested command:
						// 1. Keep flags before the unknown command
						// 2. Insert parent command, then subcommand
						// 3. Add remaining args (excluding the parent command we found)

						var parts []string
						parts = append(parts, "agentctl")

						// Add flags/args before the unknown command
						for j := 0; j < unknownCmdIdx; j++ {
							parts = append(parts, allArgs[j])
						}

						// Add parent command and subcommand
						parts = append(parts, parentCmd, unknownCmd)

						// Add args between unknown command and parent command (these are likely the target name)
						for j := unknownCmdIdx + 1; j < i; j++ {
							parts = append(parts, allArgs[j])
						}

						// Add args after the parent command
						for j := i + 1; j < len(allArgs); j++ {
							parts = append(parts, allArgs[j])
						}

						return strings.Join(parts, " "), true
					}
				}
			}
		}
	}

	return "", false
}

// printCommandSuggestion prints a "did you mean" suggestion to the user.
//
// Parameters:
//   - suggestion: The suggested command string to display
func printCommandSuggestion(suggestion string) {
	ui.Println()
	ui.PrintInfo("Did you mean:")
	ui.PrintDim("  %s", suggestion)
	ui.Println()
}
