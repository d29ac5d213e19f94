package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/agentworks/agentctl/internal/quality"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe(): %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("reading captured output: %v", err)
	}
	return string(data)
}

func TestPrintReportShowsFailedCheckOutput(t *testing.T) {
	report := &quality.Report{
		Results: []quality.CheckResult{
			{
				Target:   "backend",
				Kind:     quality.KindTest,
				Command:  "pytest",
				ExitCode: 0,
				Output:   []string{"12 passed in 0.3s"},
			},
			{
				Target:     "backend",
				Kind:       quality.KindLint,
				Command:    "ruff check .",
				ExitCode:   1,
				ErrorCount: 1,
				Output:     []string{"app/models.py:10:1: F401 'os' imported but unused"},
			},
		},
		LintErrors:     1,
		GateViolations: []string{"lint errors: 1 (budget 0)"},
	}

	out := captureStdout(t, func() { printReport(report) })

	if !strings.Contains(out, "app/models.py:10:1: F401 'os' imported but unused") {
		t.Errorf("failed check output should be printed verbatim, got:\n%s", out)
	}
	if !strings.Contains(out, "ruff check .") {
		t.Errorf("failed check command should be named, got:\n%s", out)
	}
	if strings.Contains(out, "12 passed in 0.3s") {
		t.Errorf("passing check output should not be dumped, got:\n%s", out)
	}
}
