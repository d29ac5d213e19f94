package quality

import (
	"context"
	"fmt"

	"github.com/agentworks/agentctl/internal/config"
)

// CheckResult is the outcome of one tool invocation.
type CheckResult struct {
	// Target is the config service key.
	Target string `json:"target"`

	// Kind classifies the check.
	Kind CheckKind `json:"kind"`

	// Command is the tool command that ran (without runner prefix).
	Command string `json:"command"`

	// ExitCode is the tool exit code.
	ExitCode int `json:"exit_code"`

	// ErrorCount is the number of findings extracted from output.
	ErrorCount int `json:"error_count"`

	// Output is the captured combined output, kept so a failed check
	// can be shown verbatim without re-running the tool.
	Output []string `json:"output,omitempty"`
}

// Passed reports whether the check succeeded.
func (r CheckResult) Passed() bool {
	return r.ExitCode == 0
}

// Report is the aggregate outcome of a quality run.
type Report struct {
	// Results holds per-check outcomes in execution order.
	Results []CheckResult `json:"results"`

	// TopCounts is the ranked error code frequency list.
	TopCounts []Count `json:"top_counts"`

	// LintErrors is the total finding count across lint and format checks.
	LintErrors int `json:"lint_errors"`

	// TypeErrors is the total finding count across type checks.
	TypeErrors int `json:"type_errors"`

	// TestsFailed reports whether any test-runner check failed.
	TestsFailed bool `json:"tests_failed"`

	// GateViolations lists human-readable threshold breaches. Empty
	// when the gate passes.
	GateViolations []string `json:"gate_violations,omitempty"`
}

// GatePassed reports whether the run satisfied all gate thresholds.
func (r *Report) GatePassed() bool {
	return len(r.GateViolations) == 0
}

// TotalErrors returns the combined lint and type error count.
func (r *Report) TotalErrors() int {
	return r.LintErrors + r.TypeErrors
}

// RunOptions controls a quality run.
type RunOptions struct {
	// PlanOptions selects and shapes the checks.
	PlanOptions

	// TopN limits the ranked code list (0 = all).
	TopN int

	// OnLine receives every captured output line (may be nil).
	OnLine func(check Check, line string)

	// OnCheckDone is called after each check completes (may be nil).
	OnCheckDone func(result CheckResult)
}

// Execute runs all planned checks sequentially and builds a report.
// Tools run one at a time and each failure is final; there is no retry
// and no distinction between transient and permanent failures.
//
// Parameters:
//   - ctx: Context for cancellation
//   - cfg: The workspace configuration
//   - runner: The tool runner
//   - opts: Run options
//
// Returns:
//   - *Report: The aggregate report (gate not yet evaluated)
//   - error: Infrastructure errors only; tool failures live in the report
func Execute(ctx context.Context, cfg *config.WorkspaceConfig, runner *Runner, opts RunOptions) (*Report, error) {
	checks, err := Plan(cfg, opts.PlanOptions)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	categorizer := NewCategorizer()

	for _, check := range checks {
		onLine := func(line string) {
			if opts.OnLine != nil {
				opts.OnLine(check, line)
			}
		}

		lines, exitCode, err := runner.Run(ctx, check.Service, check.Command, onLine)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", check.Name(), err)
		}

		checkCat := NewCategorizer()
		checkCat.ConsumeLines(lines)
		categorizer.ConsumeLines(lines)

		result := CheckResult{
			Target:     check.Target,
			Kind:       check.Kind,
			Command:    check.Command,
			ExitCode:   exitCode,
			ErrorCount: checkCat.Total(),
			Output:     lines,
		}

		switch check.Kind {
		case KindLint, KindFormat:
			report.LintErrors += result.ErrorCount
			// A failing linter with no parsable codes still counts as
			// at least one finding so the gate cannot pass on noise.
			if exitCode != 0 && result.ErrorCount == 0 {
				report.LintErrors++
			}
		case KindTypeCheck:
			report.TypeErrors += result.ErrorCount
			if exitCode != 0 && result.ErrorCount == 0 {
				report.TypeErrors++
			}
		case KindTest:
			if exitCode != 0 {
				report.TestsFailed = true
			}
		}

		report.Results = append(report.Results, result)
		if opts.OnCheckDone != nil {
			opts.OnCheckDone(result)
		}
	}

	report.TopCounts = categorizer.TopN(opts.TopN)
	return report, nil
}

// EvaluateGate checks a report against the workspace gate thresholds
// and records violations on the report.
//
// Parameters:
//   - report: The report to evaluate (mutated in place)
//   - cfg: The workspace configuration holding thresholds
func EvaluateGate(report *Report, cfg *config.WorkspaceConfig) {
	report.GateViolations = nil

	if max := cfg.EffectiveMaxLintErrors(); report.LintErrors > max {
		report.GateViolations = append(report.GateViolations,
			fmt.Sprintf("lint errors: %d (budget %d)", report.LintErrors, max))
	}
	if max := cfg.EffectiveMaxTypeErrors(); report.TypeErrors > max {
		report.GateViolations = append(report.GateViolations,
			fmt.Sprintf("type errors: %d (budget %d)", report.TypeErrors, max))
	}
	if cfg.EffectiveRequireTests() && report.TestsFailed {
		report.GateViolations = append(report.GateViolations, "test suite failed")
	}
}
