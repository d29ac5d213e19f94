package quality

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/agentworks/agentctl/internal/config"
)

// testConfig builds a workspace config whose "tools" are plain shell
// snippets, so runs execute on the host without any container runtime.
func testConfig() *config.WorkspaceConfig {
	return &config.WorkspaceConfig{
		Project: config.Project{Name: "test"},
		Runner:  config.RunnerConfig{Prefix: ""},
		Services: map[string]*config.ServiceConfig{
			"backend": {
				Service: "django",
				Lint:    `printf "a.py:1:1: F401 x\na.py:2:1: F401 y\n"; exit 1`,
				Test:    "true",
			},
			"frontend": {
				Service:   "node",
				TypeCheck: `printf "src/a.ts:1:1 - error TS2339: nope.\n"; exit 2`,
			},
		},
	}
}

func TestPlanOrdersTargets(t *testing.T) {
	checks, err := Plan(testConfig(), PlanOptions{})
	if err != nil {
		t.Fatalf("Plan(): %v", err)
	}

	// backend sorts before frontend; lint precedes test within a target
	if checks[0].Target != "backend" || checks[0].Kind != KindLint {
		t.Errorf("first check = %+v, want backend lint", checks[0])
	}
	last := checks[len(checks)-1]
	if last.Target != "frontend" || last.Kind != KindTypeCheck {
		t.Errorf("last check = %+v, want frontend typecheck", last)
	}
}

func TestPlanUnknownTarget(t *testing.T) {
	if _, err := Plan(testConfig(), PlanOptions{Targets: []string{"mobile"}}); err == nil {
		t.Fatal("Plan() with unknown target should fail")
	}
}

func TestPlanFixVariants(t *testing.T) {
	cfg := testConfig()
	cfg.Services["backend"].LintFix = "echo fixed"

	checks, err := Plan(cfg, PlanOptions{Targets: []string{"backend"}, Fix: true})
	if err != nil {
		t.Fatalf("Plan(): %v", err)
	}
	if checks[0].Command != "echo fixed" {
		t.Errorf("fix plan command = %q, want the lint_fix variant", checks[0].Command)
	}
}

func TestPlanSkipTests(t *testing.T) {
	checks, err := Plan(testConfig(), PlanOptions{Targets: []string{"backend"}, SkipTests: true})
	if err != nil {
		t.Fatalf("Plan(): %v", err)
	}
	for _, c := range checks {
		if c.Kind == KindTest {
			t.Errorf("SkipTests plan still contains %+v", c)
		}
	}
}

func TestPlanNothingConfigured(t *testing.T) {
	cfg := &config.WorkspaceConfig{Services: map[string]*config.ServiceConfig{}}
	if _, err := Plan(cfg, PlanOptions{}); err == nil {
		t.Fatal("Plan() with no checks should fail")
	}
}

func TestExecuteBuildsReport(t *testing.T) {
	cfg := testConfig()
	runner := NewRunner(t.TempDir(), cfg.Runner.Prefix)

	report, err := Execute(context.Background(), cfg, runner, RunOptions{TopN: 5})
	if err != nil {
		t.Fatalf("Execute(): %v", err)
	}

	if len(report.Results) != 3 {
		t.Fatalf("got %d results, want 3 (backend lint+test, frontend typecheck)", len(report.Results))
	}
	if report.LintErrors != 2 {
		t.Errorf("LintErrors = %d, want 2", report.LintErrors)
	}
	if report.TypeErrors != 1 {
		t.Errorf("TypeErrors = %d, want 1", report.TypeErrors)
	}
	if report.TestsFailed {
		t.Error("TestsFailed = true, want false (backend test is 'true')")
	}

	if len(report.TopCounts) == 0 || report.TopCounts[0].Code != "F401" {
		t.Errorf("TopCounts = %+v, want F401 first", report.TopCounts)
	}
}

func TestExecuteCleanRun(t *testing.T) {
	cfg := &config.WorkspaceConfig{
		Services: map[string]*config.ServiceConfig{
			"backend": {Service: "x", Lint: "true", Test: "true"},
		},
	}
	runner := NewRunner(t.TempDir(), "")

	report, err := Execute(context.Background(), cfg, runner, RunOptions{})
	if err != nil {
		t.Fatalf("Execute(): %v", err)
	}
	if report.TotalErrors() != 0 || report.TestsFailed {
		t.Errorf("clean run reported errors: %+v", report)
	}
	if len(report.TopCounts) != 0 {
		t.Errorf("clean run TopCounts = %+v, want empty", report.TopCounts)
	}

	EvaluateGate(report, cfg)
	if !report.GatePassed() {
		t.Errorf("clean run should pass the gate: %v", report.GateViolations)
	}
}

func TestExecuteFailingToolWithoutCodes(t *testing.T) {
	cfg := &config.WorkspaceConfig{
		Services: map[string]*config.ServiceConfig{
			"backend": {Service: "x", Lint: "exit 1"},
		},
	}
	runner := NewRunner(t.TempDir(), "")

	report, err := Execute(context.Background(), cfg, runner, RunOptions{})
	if err != nil {
		t.Fatalf("Execute(): %v", err)
	}
	// A failing linter with unparsable output still registers a finding
	if report.LintErrors != 1 {
		t.Errorf("LintErrors = %d, want 1", report.LintErrors)
	}
}

func TestReportJSONCarriesOutput(t *testing.T) {
	report := &Report{
		Results: []CheckResult{{
			Target:     "backend",
			Kind:       KindLint,
			Command:    "ruff check .",
			ExitCode:   1,
			ErrorCount: 1,
			Output:     []string{"app/models.py:10:1: F401 'os' imported but unused"},
		}},
		LintErrors: 1,
	}

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal(): %v", err)
	}
	if !strings.Contains(string(data), "F401 'os' imported but unused") {
		t.Errorf("JSON report should carry the captured tool output, got %s", data)
	}
}

func TestEvaluateGate(t *testing.T) {
	cfg := testConfig()
	runner := NewRunner(t.TempDir(), "")

	report, err := Execute(context.Background(), cfg, runner, RunOptions{})
	if err != nil {
		t.Fatalf("Execute(): %v", err)
	}

	EvaluateGate(report, cfg)
	if report.GatePassed() {
		t.Fatal("gate should fail with zero-tolerance defaults")
	}
	if len(report.GateViolations) != 2 {
		t.Errorf("violations = %v, want lint and type entries", report.GateViolations)
	}

	// Raise the budgets and the same report passes
	lint, typ := 10, 10
	cfg.Gate = config.GateConfig{MaxLintErrors: &lint, MaxTypeErrors: &typ}
	EvaluateGate(report, cfg)
	if !report.GatePassed() {
		t.Errorf("gate should pass within budgets: %v", report.GateViolations)
	}
}

func TestEvaluateGateTestFailure(t *testing.T) {
	cfg := &config.WorkspaceConfig{
		Services: map[string]*config.ServiceConfig{
			"backend": {Service: "x", Test: "exit 1"},
		},
	}
	runner := NewRunner(t.TempDir(), "")

	report, err := Execute(context.Background(), cfg, runner, RunOptions{})
	if err != nil {
		t.Fatalf("Execute(): %v", err)
	}
	if !report.TestsFailed {
		t.Fatal("TestsFailed should be true")
	}

	EvaluateGate(report, cfg)
	if report.GatePassed() {
		t.Error("gate should fail on test failure by default")
	}

	noTests := false
	cfg.Gate.RequireTests = &noTests
	EvaluateGate(report, cfg)
	if !report.GatePassed() {
		t.Error("gate should ignore test failures when require_tests is false")
	}
}
