package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentworks/agentctl/assets"
	"github.com/agentworks/agentctl/internal/util"
)

// Supported AI tools and where each kind of asset lives for them.
// Project-level paths are relative to the workspace root; user-level
// paths are relative to the home directory.
var toolDirs = map[string]map[Kind]string{
	"claude": {
		KindAgent:   ".claude/agents",
		KindCommand: ".claude/commands",
		KindSkill:   ".claude/skills",
	},
	"cursor": {
		KindCommand: ".cursor/commands",
		KindSkill:   ".cursor/skills",
	},
	"codex": {
		KindSkill: ".codex/skills",
	},
}

// Tools returns the supported tool names in stable order.
func Tools() []string {
	return []string{"claude", "cursor", "codex"}
}

// DetectTools probes for tool configuration directories in the
// workspace root and the home directory, returning the tools that
// appear installed.
//
// Parameters:
//   - root: The workspace root directory
//
// Returns:
//   - []string: Detected tool names, in Tools() order
func DetectTools(root string) []string {
	home, _ := os.UserHomeDir()

	var detected []string
	for _, tool := range Tools() {
		probe := "." + tool
		if dirExists(filepath.Join(root, probe)) || (home != "" && dirExists(filepath.Join(home, probe))) {
			detected = append(detected, tool)
		}
	}
	return detected
}

// InstallTarget resolves the directory an asset installs into.
//
// Parameters:
//   - tool: The tool name ("claude", "cursor", "codex")
//   - kind: The asset kind
//   - root: The workspace root (project-level installs)
//   - global: Install to the user-level directory instead
//
// Returns:
//   - string: The target directory
//   - error: If the tool is unknown or doesn't support the kind
func InstallTarget(tool string, kind Kind, root string, global bool) (string, error) {
	dirs, ok := toolDirs[tool]
	if !ok {
		return "", fmt.Errorf("unknown tool %q (supported: claude, cursor, codex)", tool)
	}
	rel, ok := dirs[kind]
	if !ok {
		return "", fmt.Errorf("%s does not support %s assets", tool, kind)
	}

	base := root
	if global {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		base = home
	}
	return filepath.Join(base, rel), nil
}

// Install writes an asset into dir. Agents and commands install as
// <name>.md; skills install as <name>/SKILL.md. Existing files are
// only overwritten with force.
//
// Parameters:
//   - asset: The asset to install
//   - dir: The target directory from InstallTarget
//   - force: Overwrite an existing installation
//
// Returns:
//   - string: The path written
//   - error: If the target exists without force, or on filesystem errors
func Install(asset Asset, dir string, force bool) (string, error) {
	fileName := util.SanitizeForFilename(asset.Name) + ".md"

	var target string
	if asset.Kind == KindSkill {
		target = filepath.Join(dir, util.SanitizeForFilename(asset.Name), assets.SkillFileName)
	} else {
		target = filepath.Join(dir, fileName)
	}

	if _, err := os.Stat(target); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", target)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(target), err)
	}

	if err := os.WriteFile(target, []byte(asset.Content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	return target, nil
}

// Installed reports whether an asset appears installed for a tool at
// the project level.
//
// Parameters:
//   - asset: The asset to check
//   - tool: The tool name
//   - root: The workspace root
//
// Returns:
//   - bool: True when the installed file exists
func Installed(asset Asset, tool, root string) bool {
	dir, err := InstallTarget(tool, asset.Kind, root, false)
	if err != nil {
		return false
	}

	name := util.SanitizeForFilename(asset.Name)
	if asset.Kind == KindSkill {
		return fileExists(filepath.Join(dir, name, assets.SkillFileName))
	}
	return fileExists(filepath.Join(dir, name+".md"))
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
