// Package main provides the embedded asset commands.
package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/catalog"
	"github.com/agentworks/agentctl/internal/ui"
	"github.com/agentworks/agentctl/internal/util"
)

var (
	assetsTool   string
	assetsGlobal bool
	assetsForce  bool
	assetsAll    bool
	assetsCopy   bool
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage embedded agent, command, and skill assets",
	Long: `Manage the agent, command, and skill Markdown assets that ship
inside the agentctl binary.

Assets install into the tool-specific directories AI assistants read
(.claude/, .cursor/, .codex/), either in the current workspace or
globally in your home directory.

EXAMPLES:
  agentctl assets list
  agentctl assets install backend-engineer
  agentctl assets install --all --tool claude
  agentctl assets show agentctl --copy`,
}

var assetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List embedded assets and their install state",
	RunE:  runAssetsList,
}

var assetsInstallCmd = &cobra.Command{
	Use:   "install [names...]",
	Short: "Install assets into a tool's config directory",
	RunE:  runAssetsInstall,
}

var assetsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an asset's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetsShow,
}

func init() {
	assetsInstallCmd.Flags().StringVar(&assetsTool, "tool", "claude", "Target tool: claude, cursor, or codex")
	assetsInstallCmd.Flags().BoolVar(&assetsGlobal, "global", false, "Install in the home directory instead of the workspace")
	assetsInstallCmd.Flags().BoolVar(&assetsForce, "force", false, "Overwrite existing files")
	assetsInstallCmd.Flags().BoolVar(&assetsAll, "all", false, "Install every embedded asset")
	assetsShowCmd.Flags().BoolVar(&assetsCopy, "copy", false, "Copy the content to the clipboard")

	assetsCmd.AddCommand(assetsListCmd)
	assetsCmd.AddCommand(assetsInstallCmd)
	assetsCmd.AddCommand(assetsShowCmd)
}

func runAssetsList(cmd *cobra.Command, args []string) error {
	all, err := catalog.All()
	if err != nil {
		return err
	}

	root, _ := os.Getwd()
	if _, wsRoot, wsErr := requireWorkspace(); wsErr == nil {
		root = wsRoot
	}

	detected := catalog.DetectTools(root)
	if len(detected) > 0 {
		ui.PrintDim("Detected tools: %v", detected)
		ui.Println()
	}

	ui.PrintTableHeader("KIND", "NAME", "INSTALLED", "DESCRIPTION")
	for _, a := range all {
		installed := "-"
		if catalog.Installed(a, assetsTool, root) {
			installed = "yes"
		}
		ui.PrintTableRow(string(a.Kind), a.Name, installed, util.Truncate(a.Description, 60))
	}
	return nil
}

func runAssetsInstall(cmd *cobra.Command, args []string) error {
	if !assetsAll && len(args) == 0 {
		return fmt.Errorf("specify asset names or --all (see 'agentctl assets list')")
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	if _, wsRoot, wsErr := requireWorkspace(); wsErr == nil {
		root = wsRoot
	}

	// When several assistant tools are present and no --tool was given,
	// ask rather than silently picking one.
	if !cmd.Flags().Changed("tool") && ui.IsInteractive() && !ui.QuietMode() {
		if detected := catalog.DetectTools(root); len(detected) > 1 {
			idx, perr := ui.PromptSelect("Multiple tools detected. Install for which one?", detected)
			if perr != nil {
				return perr
			}
			assetsTool = detected[idx]
		}
	}

	var assets []catalog.Asset
	if assetsAll {
		assets, err = catalog.All()
		if err != nil {
			return err
		}
	} else {
		for _, name := range args {
			a, err := catalog.Get(name)
			if err != nil {
				return err
			}
			assets = append(assets, a)
		}
	}

	installed := 0
	for _, a := range assets {
		dir, err := catalog.InstallTarget(assetsTool, a.Kind, root, assetsGlobal)
		if err != nil {
			// Not every tool supports every asset kind; skip quietly on
			// --all, fail loudly on an explicit request.
			if assetsAll {
				ui.PrintDim("Skipping %s: %v", a.Name, err)
				continue
			}
			return err
		}

		path, err := catalog.Install(a, dir, assetsForce)
		if err != nil {
			if assetsAll {
				ui.PrintWarning("Skipping %s: %v", a.Name, err)
				continue
			}
			return err
		}
		ui.PrintSuccess("Installed %s → %s", a.Name, path)
		installed++
	}

	if installed == 0 {
		ui.PrintWarning("Nothing installed")
	}
	return nil
}

func runAssetsShow(cmd *cobra.Command, args []string) error {
	a, err := catalog.Get(args[0])
	if err != nil {
		return err
	}

	if assetsCopy {
		if err := clipboard.WriteAll(a.Content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		ui.PrintSuccess("Copied %s to clipboard (%d bytes)", a.Name, len(a.Content))
		return nil
	}

	ui.PrintRaw(a.Content)
	return nil
}
