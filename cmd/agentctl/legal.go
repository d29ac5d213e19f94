// Package main provides legal document generation commands.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/legal"
	"github.com/agentworks/agentctl/internal/ui"
)

var (
	legalOnly       string
	legalConfigPath string
	legalOutputDir  string
)

var legalCmd = &cobra.Command{
	Use:   "legal",
	Short: "Generate legal documents from legal-config.json",
	Long: `Generate a privacy policy and terms of service from legal-config.json.

Rendering is deterministic: the same config always produces the same
Markdown, and sections only appear when their config flags are set.
The effective date comes from the config, never from the clock.

EXAMPLES:
  agentctl legal generate
  agentctl legal generate --only privacy
  agentctl legal validate
  agentctl legal set compliance.gdpr true`,
}

var legalGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the privacy policy and terms of service",
	RunE:  runLegalGenerate,
}

var legalValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate legal-config.json without generating documents",
	RunE:  runLegalValidate,
}

var legalGetCmd = &cobra.Command{
	Use:   "get <field>",
	Short: "Read a config field (dotted path, e.g. compliance.gdpr)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLegalGet,
}

var legalSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a config field (dotted path, e.g. compliance.gdpr true)",
	Args:  cobra.ExactArgs(2),
	RunE:  runLegalSet,
}

func init() {
	legalGenerateCmd.Flags().StringVar(&legalOnly, "only", "", "Generate only one document: privacy or terms")
	legalGenerateCmd.Flags().StringVar(&legalOutputDir, "output", "", "Output directory (overrides config)")
	legalCmd.PersistentFlags().StringVar(&legalConfigPath, "config", "", "Path to legal-config.json (overrides workspace config)")

	legalCmd.AddCommand(legalGenerateCmd)
	legalCmd.AddCommand(legalValidateCmd)
	legalCmd.AddCommand(legalGetCmd)
	legalCmd.AddCommand(legalSetCmd)
}

// resolveLegalConfigPath returns the legal config path, honoring the
// --config flag over the workspace setting.
func resolveLegalConfigPath() (string, error) {
	if legalConfigPath != "" {
		return legalConfigPath, nil
	}
	cfg, root, err := requireWorkspace()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, cfg.EffectiveLegalConfig()), nil
}

func runLegalGenerate(cmd *cobra.Command, args []string) error {
	path, err := resolveLegalConfigPath()
	if err != nil {
		return err
	}

	cfg, err := legal.Load(path)
	if err != nil {
		return err
	}

	issues := legal.Validate(cfg)
	for _, issue := range issues {
		if issue.Severity == "warning" {
			ui.PrintWarning("%s: %s", issue.Field, issue.Message)
		}
	}
	if legal.HasErrors(issues) {
		for _, issue := range issues {
			if issue.Severity == "error" {
				ui.PrintError("%s: %s", issue.Field, issue.Message)
			}
		}
		return fmt.Errorf("legal config is invalid")
	}

	outputDir := legalOutputDir
	if outputDir == "" {
		wsCfg, root, wsErr := requireWorkspace()
		if wsErr == nil && wsCfg.Legal.OutputDir != "" {
			outputDir = filepath.Join(root, wsCfg.Legal.OutputDir)
		} else {
			outputDir = "docs/legal"
		}
	}

	var written []string
	err = ui.WithSpinner("Rendering legal documents...", func() error {
		var werr error
		written, werr = legal.WriteDocs(cfg, outputDir, legalOnly)
		return werr
	})
	if err != nil {
		return err
	}

	ui.PrintSuccess("Generated %d document(s)", len(written))
	for _, p := range written {
		ui.PrintLink("Wrote", p)
	}
	return nil
}

func runLegalValidate(cmd *cobra.Command, args []string) error {
	path, err := resolveLegalConfigPath()
	if err != nil {
		return err
	}

	cfg, err := legal.Load(path)
	if err != nil {
		return err
	}

	issues := legal.Validate(cfg)
	if len(issues) == 0 {
		ui.PrintSuccess("%s is valid", path)
		return nil
	}

	for _, issue := range issues {
		if issue.Severity == "error" {
			ui.PrintError("%s: %s", issue.Field, issue.Message)
		} else {
			ui.PrintWarning("%s: %s", issue.Field, issue.Message)
		}
	}

	if legal.HasErrors(issues) {
		return fmt.Errorf("legal config is invalid")
	}
	ui.PrintSuccess("%s is valid (with warnings)", path)
	return nil
}

func runLegalGet(cmd *cobra.Command, args []string) error {
	path, err := resolveLegalConfigPath()
	if err != nil {
		return err
	}

	value, err := legal.GetField(path, args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runLegalSet(cmd *cobra.Command, args []string) error {
	path, err := resolveLegalConfigPath()
	if err != nil {
		return err
	}

	if err := legal.SetField(path, args[0], args[1]); err != nil {
		return err
	}
	ui.PrintSuccess("Set %s = %s", args[0], args[1])
	return nil
}
