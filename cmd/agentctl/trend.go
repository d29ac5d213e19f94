// Package main provides the quality trend commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/trend"
	"github.com/agentworks/agentctl/internal/ui"
)

var (
	trendLast int
	trendJSON bool
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "View quality trend history",
	Long: `View the quality trend history recorded by 'agentctl quality check'.

Each run appends an entry with its lint and type error counts, so the
trend shows whether the codebase is getting cleaner or dirtier over
time.

EXAMPLES:
  agentctl trend show
  agentctl trend show --last 20
  agentctl trend clear`,
}

var trendShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recent quality runs",
	RunE:  runTrendShow,
}

var trendClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the trend history",
	RunE:  runTrendClear,
}

func init() {
	trendShowCmd.Flags().IntVar(&trendLast, "last", 10, "Number of most recent runs to show")
	trendShowCmd.Flags().BoolVar(&trendJSON, "json", false, "Output results as JSON")

	trendCmd.AddCommand(trendShowCmd)
	trendCmd.AddCommand(trendClearCmd)
}

func runTrendShow(cmd *cobra.Command, args []string) error {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	store := trend.NewStore(filepath.Join(root, cfg.EffectiveTrendFile()), cfg.Trend.MaxEntries)
	entries, err := store.Last(trendLast)
	if err != nil {
		if errors.Is(err, trend.ErrCorrupt) {
			ui.PrintWarning("Trend file is corrupt and will be replaced on the next run")
			entries = nil
		} else {
			return err
		}
	}

	if jsonEnabled(cmd, trendJSON) {
		if entries == nil {
			entries = []trend.Entry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode trend: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		ui.PrintInfo("No quality runs recorded yet")
		ui.PrintDim("  Run 'agentctl quality check' to record the first one")
		return nil
	}

	ui.PrintTitle("Quality trend (%d runs, oldest first)", len(entries))
	ui.PrintTableHeader("WHEN", "LINT", "TYPE", "TESTS", "GATE", "DELTA")
	for i, e := range entries {
		delta := ""
		if i > 0 {
			d := e.DeltaFrom(entries[i-1])
			delta = fmt.Sprintf("%+d lint, %+d type", d.Lint, d.Type)
		}

		tests := "passed"
		if e.TestsFailed {
			tests = "failed"
		}
		gate := "passed"
		if !e.GatePassed {
			gate = "failed"
		}

		when := e.Timestamp
		if ts, perr := time.Parse(time.RFC3339, e.Timestamp); perr == nil {
			when = ts.Local().Format("2006-01-02 15:04")
		}

		ui.PrintTableRow(when,
			fmt.Sprintf("%d", e.LintErrors),
			fmt.Sprintf("%d", e.TypeErrors),
			tests, gate, delta)
	}
	return nil
}

func runTrendClear(cmd *cobra.Command, args []string) error {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return err
	}

	path := filepath.Join(root, cfg.EffectiveTrendFile())
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			ui.PrintInfo("No trend history to clear")
			return nil
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	ui.PrintSuccess("Cleared trend history: %s", path)
	return nil
}
