// Package main provides the quality check commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/quality"
	"github.com/agentworks/agentctl/internal/trend"
	"github.com/agentworks/agentctl/internal/ui"
)

var (
	qualityFix       bool
	qualitySkipTests bool
	qualityTopN      int
	qualityNoGate    bool
	qualityNoTrend   bool
	qualityJSON      bool
	qualityVerbose   bool
)

var qualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Run lint, format, type, and test checks",
	Long: `Run quality checks across configured services and categorize the
errors they report.

Each service's lint, format, type-check, and test commands run inside
its container (via the runner prefix). Error codes are counted across
all output and ranked by frequency; ties rank by first appearance, so
the output is stable for a given input.

Every run appends an entry to the trend file so error counts can be
compared over time.

EXAMPLES:
  agentctl quality check                 # Check all services
  agentctl quality check backend         # Check one service
  agentctl quality check --fix           # Auto-fix then re-check
  agentctl quality check --skip-tests    # Lint and types only
  agentctl quality watch                 # Re-check on file changes`,
}

var qualityCheckCmd = &cobra.Command{
	Use:   "check [targets...]",
	Short: "Run quality checks and rank error codes",
	RunE:  runQualityCheck,
}

var qualityWatchCmd = &cobra.Command{
	Use:   "watch [targets...]",
	Short: "Re-run quality checks when source files change",
	RunE:  runQualityWatch,
}

func init() {
	qualityCheckCmd.Flags().BoolVar(&qualityFix, "fix", false, "Apply auto-fixes before checking")
	qualityCheckCmd.Flags().BoolVar(&qualitySkipTests, "skip-tests", false, "Skip test commands")
	qualityCheckCmd.Flags().IntVar(&qualityTopN, "top", 10, "Number of ranked error codes to show")
	qualityCheckCmd.Flags().BoolVar(&qualityNoGate, "no-gate", false, "Report results without failing on gate violations")
	qualityCheckCmd.Flags().BoolVar(&qualityNoTrend, "no-trend", false, "Do not record this run in the trend file")
	qualityCheckCmd.Flags().BoolVar(&qualityJSON, "json", false, "Output results as JSON")
	qualityCheckCmd.Flags().BoolVarP(&qualityVerbose, "verbose", "v", false, "Stream tool output while checks run")

	qualityWatchCmd.Flags().BoolVar(&qualitySkipTests, "skip-tests", false, "Skip test commands")

	qualityCmd.AddCommand(qualityCheckCmd)
	qualityCmd.AddCommand(qualityWatchCmd)
}

// runQualityCheck executes one quality run and reports the outcome.
func runQualityCheck(cmd *cobra.Command, args []string) error {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	for _, target := range args {
		if err := validateTargetName(target); err != nil {
			return err
		}
	}

	jsonOutput := jsonEnabled(cmd, qualityJSON)
	runner := quality.NewRunner(root, cfg.EffectivePrefix())

	opts := quality.RunOptions{
		PlanOptions: quality.PlanOptions{
			Targets:   args,
			Fix:       qualityFix,
			SkipTests: qualitySkipTests,
		},
		TopN: qualityTopN,
	}

	if !jsonOutput {
		opts.OnCheckDone = func(result quality.CheckResult) {
			ui.StopSpinner()
			if result.Passed() {
				ui.PrintSuccess("%s %s", result.Target, result.Kind)
			} else {
				ui.PrintError("%s %s (%d findings, exit %d)", result.Target, result.Kind, result.ErrorCount, result.ExitCode)
			}
			if !qualityVerbose {
				ui.StartSpinner("Running checks...")
			}
		}
		if qualityVerbose {
			opts.OnLine = func(check quality.Check, line string) {
				ui.PrintRaw(line)
			}
		} else {
			ui.StartSpinner("Running checks...")
		}
	}

	report, err := quality.Execute(cmd.Context(), cfg, runner, opts)
	ui.StopSpinner()
	if err != nil {
		return err
	}

	if !qualityNoGate {
		quality.EvaluateGate(report, cfg)
	}

	if !qualityNoTrend {
		entry := trend.NewEntry()
		entry.LintErrors = report.LintErrors
		entry.TypeErrors = report.TypeErrors
		entry.TestsFailed = report.TestsFailed
		entry.GatePassed = report.GatePassed()
		entry.Targets = args
		store := trend.NewStore(filepath.Join(root, cfg.EffectiveTrendFile()), cfg.Trend.MaxEntries)
		if err := store.Append(entry); err != nil {
			ui.PrintWarning("Failed to record trend entry: %v", err)
		}
	}

	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printReport(report)
	}

	if !report.GatePassed() {
		return fmt.Errorf("quality gate failed")
	}
	return nil
}

// printReport renders the human-readable summary. Failed checks get
// their captured output dumped verbatim first; with --verbose the
// lines were already streamed live, so they are not repeated.
func printReport(report *quality.Report) {
	if !qualityVerbose {
		for _, r := range report.Results {
			if r.Passed() || len(r.Output) == 0 {
				continue
			}
			ui.Println()
			ui.PrintError("%s %s failed (exit %d): %s", r.Target, r.Kind, r.ExitCode, r.Command)
			for _, line := range r.Output {
				ui.PrintRaw(line)
			}
		}
	}

	ui.Println()
	if len(report.TopCounts) > 0 {
		ui.PrintTitle("Top error codes")
		for _, c := range report.TopCounts {
			ui.PrintInfo("  %4d  %-36s %s", c.Count, c.Code, ui.DimStyle.Render(quality.SuggestFix(c.Code)))
		}
		ui.Println()
	}

	ui.PrintInfo("Lint errors: %d", report.LintErrors)
	ui.PrintInfo("Type errors: %d", report.TypeErrors)
	if report.TestsFailed {
		ui.PrintError("Tests failed")
	}

	if len(report.GateViolations) > 0 {
		ui.Println()
		for _, v := range report.GateViolations {
			ui.PrintError("Gate: %s", v)
		}
	} else if report.TotalErrors() == 0 && !report.TestsFailed {
		ui.PrintSuccess("All checks passed")
	}
}

// runQualityWatch re-runs checks whenever watched source files change.
func runQualityWatch(cmd *cobra.Command, args []string) error {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	for _, target := range args {
		if err := validateTargetName(target); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := quality.NewRunner(root, cfg.EffectivePrefix())
	runOnce := func() {
		report, err := quality.Execute(ctx, cfg, runner, quality.RunOptions{
			PlanOptions: quality.PlanOptions{Targets: args, SkipTests: qualitySkipTests},
			TopN:        10,
		})
		if err != nil {
			ui.PrintError("Check run failed: %v", err)
			return
		}
		printReport(report)
		ui.PrintDim("Watching for changes... (ctrl+c to stop)")
	}

	ui.PrintInfo("Initial check run")
	runOnce()

	return quality.Watch(ctx, cfg, root, args, runOnce)
}
