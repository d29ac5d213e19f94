package quality

import (
	"fmt"
	"sort"

	"github.com/agentworks/agentctl/internal/config"
)

// CheckKind classifies a quality check for categorization and gating.
type CheckKind string

const (
	// KindLint is a linter run (ruff, eslint).
	KindLint CheckKind = "lint"

	// KindFormat is a formatter check (ruff format, prettier).
	KindFormat CheckKind = "format"

	// KindTypeCheck is a type checker run (vue-tsc, mypy).
	KindTypeCheck CheckKind = "typecheck"

	// KindTest is a test runner (pytest, vitest).
	KindTest CheckKind = "test"
)

// Check is one planned tool invocation.
type Check struct {
	// Target is the config service key ("backend", "frontend").
	Target string

	// Service is the compose service name the command runs in.
	Service string

	// Kind classifies the check.
	Kind CheckKind

	// Command is the tool command to run.
	Command string
}

// Name returns a stable display name like "backend lint".
func (c Check) Name() string {
	return fmt.Sprintf("%s %s", c.Target, c.Kind)
}

// PlanOptions controls which checks Plan produces.
type PlanOptions struct {
	// Targets restricts checks to these config service keys. Empty
	// means all configured services.
	Targets []string

	// Fix selects the auto-fix command variants where configured.
	Fix bool

	// SkipTests omits test-runner checks (used by watch mode and the
	// quality-guard error probe).
	SkipTests bool
}

// Plan builds the ordered list of checks for a quality run. Targets
// run in sorted order so output and trend entries are stable across
// runs regardless of map iteration.
//
// Parameters:
//   - cfg: The workspace configuration
//   - opts: Plan options
//
// Returns:
//   - []Check: The checks to run, in execution order
//   - error: If a requested target is not configured
func Plan(cfg *config.WorkspaceConfig, opts PlanOptions) ([]Check, error) {
	targets := opts.Targets
	if len(targets) == 0 {
		for name := range cfg.Services {
			targets = append(targets, name)
		}
	}
	sort.Strings(targets)

	var checks []Check
	for _, target := range targets {
		svc, ok := cfg.Services[target]
		if !ok {
			return nil, fmt.Errorf("service %q is not configured in %s/%s", target, config.DirName, config.FileName)
		}

		lint := svc.Lint
		format := svc.Format
		if opts.Fix {
			if svc.LintFix != "" {
				lint = svc.LintFix
			}
			if svc.FormatFix != "" {
				format = svc.FormatFix
			}
		}

		if lint != "" {
			checks = append(checks, Check{Target: target, Service: svc.Service, Kind: KindLint, Command: lint})
		}
		if format != "" {
			checks = append(checks, Check{Target: target, Service: svc.Service, Kind: KindFormat, Command: format})
		}
		if svc.TypeCheck != "" {
			checks = append(checks, Check{Target: target, Service: svc.Service, Kind: KindTypeCheck, Command: svc.TypeCheck})
		}
		if svc.Test != "" && !opts.SkipTests {
			checks = append(checks, Check{Target: target, Service: svc.Service, Kind: KindTest, Command: svc.Test})
		}
	}

	if len(checks) == 0 {
		return nil, fmt.Errorf("no quality checks configured; add lint/format/test commands to %s/%s", config.DirName, config.FileName)
	}

	return checks, nil
}
