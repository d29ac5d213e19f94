// Package main provides workspace settings commands for .agentctl/config.yaml.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit workspace settings",
	Long: `View and edit workspace settings in .agentctl/config.yaml.

EXAMPLES:
  agentctl config path
  agentctl config show
  agentctl config set runner.prefix ""
  agentctl config set gate.max-lint-errors 25`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show workspace config path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show workspace settings",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate workspace settings",
	Long: `Validate .agentctl/config.yaml beyond what loading checks:
required fields, service definitions, guard pattern syntax, and gate
thresholds. Warnings do not fail validation.`,
	RunE: runConfigValidate,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a workspace setting",
	Long: `Set a workspace setting.

Supported keys:
  runner.prefix          command prefix for containerized tooling
  gate.max-lint-errors   non-negative integer
  gate.max-type-errors   non-negative integer
  gate.require-tests     true|false
  trend.max-entries      non-negative integer (0 = unlimited)
  legal.config           path to legal-config.json
  legal.output           directory for rendered documents`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	_, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	path := filepath.Join(root, config.DirName, config.FileName)
	result := config.ValidateConfigFile(path)

	for _, e := range result.Errors {
		ui.PrintError("%s", e)
	}
	for _, w := range result.Warnings {
		ui.PrintWarning("%s", w)
	}

	if !result.Valid {
		return fmt.Errorf("%s is invalid", path)
	}
	if len(result.Warnings) > 0 {
		ui.PrintSuccess("%s is valid (with warnings)", path)
	} else {
		ui.PrintSuccess("%s is valid", path)
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	_, root, err := requireWorkspace()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(root, config.DirName, config.FileName))
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	if jsonEnabled(cmd, false) {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	ui.PrintTitle("Workspace: %s", cfg.Project.Name)
	ui.PrintDim("  Root: %s", root)
	ui.Println()
	ui.PrintInfo("Runner prefix: %q", cfg.EffectivePrefix())
	ui.PrintInfo("Trend file:    %s", cfg.EffectiveTrendFile())
	ui.PrintInfo("Legal config:  %s", cfg.EffectiveLegalConfig())
	ui.PrintInfo("Gate: max lint %d, max type %d, require tests %v",
		cfg.EffectiveMaxLintErrors(), cfg.EffectiveMaxTypeErrors(), cfg.EffectiveRequireTests())
	ui.Println()

	ui.PrintTableHeader("TARGET", "SERVICE", "LINT", "TYPECHECK", "TEST")
	for name, svc := range cfg.Services {
		ui.PrintTableRow(name, svc.Service, svc.Lint, svc.TypeCheck, svc.Test)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "runner.prefix":
		cfg.Runner.Prefix = value

	case "gate.max-lint-errors":
		n, err := parseNonNegative(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.Gate.MaxLintErrors = &n

	case "gate.max-type-errors":
		n, err := parseNonNegative(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.Gate.MaxTypeErrors = &n

	case "gate.require-tests":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected true or false", key)
		}
		cfg.Gate.RequireTests = &b

	case "trend.max-entries":
		n, err := parseNonNegative(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		cfg.Trend.MaxEntries = n

	case "legal.config":
		cfg.Legal.ConfigPath = value

	case "legal.output":
		cfg.Legal.OutputDir = value

	default:
		return fmt.Errorf("unknown setting '%s' (see 'agentctl config set --help')", key)
	}

	configPath := filepath.Join(root, config.DirName, config.FileName)
	if err := config.Write(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	ui.PrintSuccess("Set %s = %s", key, value)
	return nil
}

// parseNonNegative parses a non-negative integer setting value.
func parseNonNegative(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", value)
	}
	if n < 0 {
		return 0, fmt.Errorf("must be non-negative, got %d", n)
	}
	return n, nil
}
