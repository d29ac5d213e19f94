// Package main provides shared helper functions for CLI commands.
package main

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentworks/agentctl/internal/config"
)

// maxTargetNameLen is the maximum allowed length for check target names.
const maxTargetNameLen = 64

// reservedNames are subcommand names that cannot be used as target names
// because they collide with Cobra's command resolution.
var reservedNames = map[string]bool{
	"check": true, "watch": true, "generate": true, "validate": true,
	"show": true, "set": true, "get": true, "install": true, "list": true,
	"guard": true, "serve": true, "help": true,
}

// requireWorkspace finds and loads the nearest workspace configuration,
// returning a friendly error when none exists.
//
// Returns:
//   - *config.WorkspaceConfig: The loaded configuration
//   - string: The workspace root directory
//   - error: If no workspace is found or the config is invalid
func requireWorkspace() (*config.WorkspaceConfig, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, root, err := config.LoadNearest(wd)
	if err != nil {
		return nil, "", fmt.Errorf("no workspace found: run 'agentctl init' first: %w", err)
	}
	return cfg, root, nil
}

// jsonEnabled reports whether JSON output was requested via the local or
// the global --json flag.
func jsonEnabled(cmd *cobra.Command, local bool) bool {
	if local {
		return true
	}
	global, _ := cmd.Root().PersistentFlags().GetBool("json")
	return global
}

// boolFlag reads a boolean flag from a flag set, treating lookup errors
// as false. Useful when a flag may only exist on some commands.
func boolFlag(fs *pflag.FlagSet, name string) bool {
	v, err := fs.GetBool(name)
	if err != nil {
		return false
	}
	return v
}

// validateTargetName checks that a check target name is safe for use as
// a config key and CLI argument.
//
// Rules:
//   - Must be non-empty
//   - Max 64 characters
//   - No whitespace
//   - Only lowercase alphanumeric, hyphens, and underscores
//   - Cannot collide with a reserved subcommand name
//
// Parameters:
//   - name: The name to validate
//
// Returns:
//   - error: A descriptive error if validation fails, nil otherwise
func validateTargetName(name string) error {
	if name == "" {
		return fmt.Errorf("target name cannot be empty")
	}

	if len(name) > maxTargetNameLen {
		return fmt.Errorf("target name too long (%d chars, max %d)", len(name), maxTargetNameLen)
	}

	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("target name cannot contain spaces — use hyphens instead (e.g. 'web-frontend')")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("target name cannot contain path separators")
	}

	for _, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_') {
			return fmt.Errorf("target name contains invalid character '%c' — only lowercase letters, numbers, hyphens, and underscores are allowed", r)
		}
	}

	if reservedNames[name] {
		return fmt.Errorf("'%s' is a reserved command name and cannot be used as a target name", name)
	}

	return nil
}
