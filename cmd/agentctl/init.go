// Package main provides the init command for bootstrapping a workspace.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/legal"
	"github.com/agentworks/agentctl/internal/ui"
)

var (
	initName      string
	initForce     bool
	initWithLegal bool
	initYes       bool
)

// initCmd bootstraps a .agentctl/config.yaml in the current directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an agentctl workspace",
	Long: `Initialize an agentctl workspace in the current directory.

Creates .agentctl/config.yaml with default backend and frontend check
targets, a docker compose runner prefix, and a zero-tolerance quality
gate. Edit the file afterwards to match your services.

EXAMPLES:
  agentctl init                      # Interactive setup
  agentctl init --name myapp --yes   # Non-interactive
  agentctl init --with-legal         # Also write a starter legal-config.json`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initName, "name", "", "Project name (defaults to the directory name)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config")
	initCmd.Flags().BoolVar(&initWithLegal, "with-legal", false, "Also write a starter legal-config.json")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "Accept all defaults without prompting")
}

// runInit creates the workspace config and optional starter files.
func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, config.DirName, config.FileName)
	if _, err := os.Stat(configPath); err == nil && !initForce {
		ui.PrintError("Workspace already initialized: %s", configPath)
		ui.PrintDim("  Use --force to overwrite")
		return fmt.Errorf("config already exists")
	}

	name := initName
	if name == "" {
		name = filepath.Base(cwd)
	}

	interactive := ui.IsInteractive() && !initYes && !ui.QuietMode()
	if interactive && initName == "" {
		answer, err := ui.PromptDefault("Project name", name)
		if err == nil && answer != "" {
			name = answer
		}
	}

	cfg := config.DefaultConfig(name)
	if err := config.Write(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	ui.PrintSuccess("Created %s", configPath)

	withLegal := initWithLegal
	if interactive && !withLegal {
		withLegal, _ = ui.PromptConfirm("Write a starter legal-config.json?", false)
	}

	if withLegal {
		legalPath := filepath.Join(cwd, cfg.EffectiveLegalConfig())
		if _, err := os.Stat(legalPath); err == nil && !initForce {
			ui.PrintWarning("Skipping %s: already exists", legalPath)
		} else {
			if err := os.WriteFile(legalPath, []byte(legal.SampleConfigJSON), 0o644); err != nil {
				return fmt.Errorf("failed to write legal config: %w", err)
			}
			ui.PrintSuccess("Created %s", legalPath)
		}
	}

	ui.Println()
	ui.PrintBox("Next steps", fmt.Sprintf(
		"1. Edit %s to match your services\n"+
			"2. Run 'agentctl quality check' to verify the setup\n"+
			"3. Run 'agentctl assets install --all' to install agent assets",
		configPath))
	return nil
}
