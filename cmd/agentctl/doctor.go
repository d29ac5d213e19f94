// Package main provides the doctor command for workspace diagnostics.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/catalog"
	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/legal"
	"github.com/agentworks/agentctl/internal/trend"
	"github.com/agentworks/agentctl/internal/ui"
)

// DoctorCheck represents a single diagnostic check result.
type DoctorCheck struct {
	// Name is the check name (e.g., "Workspace", "Runner").
	Name string `json:"name"`

	// Status is the check status: "ok", "warning", "error".
	Status string `json:"status"`

	// Message is the human-readable result message.
	Message string `json:"message"`

	// Details contains additional information (optional).
	Details string `json:"details,omitempty"`
}

// DoctorResult contains all diagnostic check results.
type DoctorResult struct {
	// Checks contains all individual check results.
	Checks []DoctorCheck `json:"checks"`

	// Issues is the count of checks with status "error" or "warning".
	Issues int `json:"issues"`

	// Healthy is true if no errors were found.
	Healthy bool `json:"healthy"`
}

var doctorOutputJSON bool

// doctorCmd runs diagnostic checks on the workspace.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check workspace health",
	Long: `Run diagnostic checks on the agentctl workspace.

CHECKS PERFORMED:
  - Workspace configuration (.agentctl/config.yaml exists and valid?)
  - Runner binary (is the configured command prefix executable?)
  - Service commands (does each target define at least one check?)
  - Legal configuration (valid legal-config.json, if present)
  - Trend file (readable, not corrupt)
  - Assets (which embedded assets are installed)

OUTPUT:
  Human-readable by default, JSON with --json flag.

EXAMPLES:
  agentctl doctor              # Run all checks
  agentctl doctor --json       # Output as JSON for scripting`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorOutputJSON, "json", false, "Output results as JSON")
}

// runDoctor executes all diagnostic checks.
func runDoctor(cmd *cobra.Command, args []string) error {
	jsonOutput := jsonEnabled(cmd, doctorOutputJSON)

	result := DoctorResult{
		Checks:  make([]DoctorCheck, 0),
		Healthy: true,
	}

	if !jsonOutput {
		ui.PrintBanner(version)
		ui.PrintInfo("Running diagnostic checks...")
		ui.Println()
	}

	cfg, root := checkWorkspace(&result)
	if cfg != nil {
		checkRunner(&result, cfg)
		checkServices(&result, cfg)
		checkLegal(&result, cfg, root)
		checkTrend(&result, cfg, root)
		checkAssets(&result, root)
	}

	for _, c := range result.Checks {
		if c.Status != "ok" {
			result.Issues++
		}
		if c.Status == "error" {
			result.Healthy = false
		}
	}

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(data))
	} else {
		for _, c := range result.Checks {
			ui.PrintCheck(c.Status, c.Name, c.Message)
			if c.Details != "" {
				ui.PrintDim("      %s", c.Details)
			}
		}
		ui.Println()
		if result.Healthy {
			ui.PrintSuccess("Workspace is healthy (%d checks, %d warnings)", len(result.Checks), result.Issues)
		} else {
			ui.PrintError("Found %d issue(s)", result.Issues)
		}
	}

	if !result.Healthy {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// checkWorkspace verifies the workspace config exists and parses.
func checkWorkspace(result *DoctorResult) (*config.WorkspaceConfig, string) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	cfg, root, err := config.LoadNearest(wd)
	if err != nil {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Workspace",
			Status:  "error",
			Message: "No workspace configuration found",
			Details: "Run 'agentctl init' to create .agentctl/config.yaml",
		})
		return nil, ""
	}

	result.Checks = append(result.Checks, DoctorCheck{
		Name:    "Workspace",
		Status:  "ok",
		Message: fmt.Sprintf("%s (%s)", cfg.Project.Name, root),
	})
	return cfg, root
}

// checkRunner verifies the configured runner binary is on PATH.
func checkRunner(result *DoctorResult, cfg *config.WorkspaceConfig) {
	prefix := cfg.EffectivePrefix()
	if prefix == "" {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Runner",
			Status:  "ok",
			Message: "Commands run directly on the host (no prefix)",
		})
		return
	}

	binary := strings.Fields(prefix)[0]
	if _, err := exec.LookPath(binary); err != nil {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Runner",
			Status:  "error",
			Message: fmt.Sprintf("'%s' not found on PATH", binary),
			Details: fmt.Sprintf("The runner prefix %q cannot execute", prefix),
		})
		return
	}

	result.Checks = append(result.Checks, DoctorCheck{
		Name:    "Runner",
		Status:  "ok",
		Message: fmt.Sprintf("%q", prefix),
	})
}

// checkServices verifies each target defines at least one check command.
func checkServices(result *DoctorResult, cfg *config.WorkspaceConfig) {
	if len(cfg.Services) == 0 {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Services",
			Status:  "warning",
			Message: "No services configured",
			Details: "Add targets under 'services:' in .agentctl/config.yaml",
		})
		return
	}

	var empty []string
	for name, svc := range cfg.Services {
		if svc.Lint == "" && svc.Format == "" && svc.TypeCheck == "" && svc.Test == "" {
			empty = append(empty, name)
		}
	}

	if len(empty) > 0 {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Services",
			Status:  "warning",
			Message: fmt.Sprintf("%d target(s) define no check commands", len(empty)),
			Details: strings.Join(empty, ", "),
		})
		return
	}

	result.Checks = append(result.Checks, DoctorCheck{
		Name:    "Services",
		Status:  "ok",
		Message: fmt.Sprintf("%d target(s) configured", len(cfg.Services)),
	})
}

// checkLegal validates legal-config.json when it exists.
func checkLegal(result *DoctorResult, cfg *config.WorkspaceConfig, root string) {
	path := filepath.Join(root, cfg.EffectiveLegalConfig())
	if _, err := os.Stat(path); err != nil {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Legal config",
			Status:  "warning",
			Message: "No legal-config.json",
			Details: "Run 'agentctl init --with-legal' to create a starter config",
		})
		return
	}

	legalCfg, err := legal.Load(path)
	if err != nil {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Legal config",
			Status:  "error",
			Message: "legal-config.json failed to parse",
			Details: err.Error(),
		})
		return
	}

	issues := legal.Validate(legalCfg)
	if legal.HasErrors(issues) {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Legal config",
			Status:  "error",
			Message: fmt.Sprintf("%d validation issue(s)", len(issues)),
			Details: "Run 'agentctl legal validate' for details",
		})
		return
	}

	status := "ok"
	message := "Valid"
	if len(issues) > 0 {
		status = "warning"
		message = fmt.Sprintf("Valid with %d warning(s)", len(issues))
	}
	result.Checks = append(result.Checks, DoctorCheck{
		Name:    "Legal config",
		Status:  status,
		Message: message,
	})
}

// checkTrend verifies the trend file is readable.
func checkTrend(result *DoctorResult, cfg *config.WorkspaceConfig, root string) {
	store := trend.NewStore(filepath.Join(root, cfg.EffectiveTrendFile()), cfg.Trend.MaxEntries)
	entries, err := store.Load()
	if err != nil {
		if errors.Is(err, trend.ErrCorrupt) {
			result.Checks = append(result.Checks, DoctorCheck{
				Name:    "Trend file",
				Status:  "warning",
				Message: "Corrupt trend file",
				Details: "It will be replaced on the next 'agentctl quality check'",
			})
			return
		}
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Trend file",
			Status:  "error",
			Message: "Trend file is unreadable",
			Details: err.Error(),
		})
		return
	}

	result.Checks = append(result.Checks, DoctorCheck{
		Name:    "Trend file",
		Status:  "ok",
		Message: fmt.Sprintf("%d run(s) recorded", len(entries)),
	})
}

// checkAssets reports how many embedded assets are installed.
func checkAssets(result *DoctorResult, root string) {
	all, err := catalog.All()
	if err != nil {
		result.Checks = append(result.Checks, DoctorCheck{
			Name:    "Assets",
			Status:  "error",
			Message: "Embedded asset catalog failed to load",
			Details: err.Error(),
		})
		return
	}

	installed := 0
	for _, a := range all {
		if catalog.Installed(a, "claude", root) {
			installed++
		}
	}

	status := "ok"
	details := ""
	if installed == 0 {
		status = "warning"
		details = "Run 'agentctl assets install --all' to install them"
	}
	result.Checks = append(result.Checks, DoctorCheck{
		Name:    "Assets",
		Status:  status,
		Message: fmt.Sprintf("%d of %d installed", installed, len(all)),
		Details: details,
	})
}
