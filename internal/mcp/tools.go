package mcp

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/agentworks/agentctl/internal/catalog"
	"github.com/agentworks/agentctl/internal/hook"
	"github.com/agentworks/agentctl/internal/legal"
	"github.com/agentworks/agentctl/internal/quality"
	"github.com/agentworks/agentctl/internal/trend"
)

// RunQualityCheckInput is the input for the run_quality_check tool.
type RunQualityCheckInput struct {
	// Targets restricts the run to these services (empty = all).
	Targets []string `json:"targets,omitempty" jsonschema:"services to check, e.g. backend or frontend; empty checks everything"`

	// Fix applies auto-fix variants before checking.
	Fix bool `json:"fix,omitempty" jsonschema:"apply auto-fixes (ruff --fix, eslint --fix, prettier --write)"`

	// Gate evaluates threshold violations.
	Gate bool `json:"gate,omitempty" jsonschema:"evaluate gate thresholds and report violations"`

	// TopN limits the ranked error code list (default 10).
	TopN int `json:"top_n,omitempty" jsonschema:"maximum number of ranked error codes to return"`
}

// CheckSummary is one check outcome in the tool output.
type CheckSummary struct {
	Name       string `json:"name"`
	ExitCode   int    `json:"exit_code"`
	ErrorCount int    `json:"error_count"`
	Passed     bool   `json:"passed"`
}

// RunQualityCheckOutput is the output of the run_quality_check tool.
type RunQualityCheckOutput struct {
	Success        bool            `json:"success"`
	Checks         []CheckSummary  `json:"checks,omitempty"`
	TopCounts      []quality.Count `json:"top_counts,omitempty"`
	LintErrors     int             `json:"lint_errors"`
	TypeErrors     int             `json:"type_errors"`
	TestsFailed    bool            `json:"tests_failed"`
	GateViolations []string        `json:"gate_violations,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// handleRunQualityCheck executes a quality run.
func (s *Server) handleRunQualityCheck(ctx context.Context, req *mcp.CallToolRequest, input RunQualityCheckInput) (*mcp.CallToolResult, RunQualityCheckOutput, error) {
	topN := input.TopN
	if topN <= 0 {
		topN = 10
	}

	runner := quality.NewRunner(s.root, s.config.EffectivePrefix())
	report, err := quality.Execute(ctx, s.config, runner, quality.RunOptions{
		PlanOptions: quality.PlanOptions{Targets: input.Targets, Fix: input.Fix},
		TopN:        topN,
	})
	if err != nil {
		return nil, RunQualityCheckOutput{Error: err.Error()}, nil
	}

	if input.Gate {
		quality.EvaluateGate(report, s.config)
	}

	out := RunQualityCheckOutput{
		Success:        report.TotalErrors() == 0 && !report.TestsFailed && report.GatePassed(),
		TopCounts:      report.TopCounts,
		LintErrors:     report.LintErrors,
		TypeErrors:     report.TypeErrors,
		TestsFailed:    report.TestsFailed,
		GateViolations: report.GateViolations,
	}
	for _, r := range report.Results {
		out.Checks = append(out.Checks, CheckSummary{
			Name:       string(r.Kind) + " (" + r.Target + ")",
			ExitCode:   r.ExitCode,
			ErrorCount: r.ErrorCount,
			Passed:     r.Passed(),
		})
	}

	// Record the run like the CLI does, best effort
	entry := trend.NewEntry()
	entry.LintErrors = report.LintErrors
	entry.TypeErrors = report.TypeErrors
	entry.TestsFailed = report.TestsFailed
	entry.GatePassed = report.GatePassed()
	entry.Targets = input.Targets
	store := trend.NewStore(filepath.Join(s.root, s.config.EffectiveTrendFile()), s.config.Trend.MaxEntries)
	_ = store.Append(entry)

	return nil, out, nil
}

// GetQualityTrendInput is the input for the get_quality_trend tool.
type GetQualityTrendInput struct {
	// Last limits the history to the newest n entries (default 10).
	Last int `json:"last,omitempty" jsonschema:"number of most recent runs to return"`
}

// GetQualityTrendOutput is the output of the get_quality_trend tool.
type GetQualityTrendOutput struct {
	Entries []trend.Entry `json:"entries"`
	Error   string        `json:"error,omitempty"`
}

// handleGetQualityTrend returns recent trend entries.
func (s *Server) handleGetQualityTrend(ctx context.Context, req *mcp.CallToolRequest, input GetQualityTrendInput) (*mcp.CallToolResult, GetQualityTrendOutput, error) {
	last := input.Last
	if last <= 0 {
		last = 10
	}

	store := trend.NewStore(filepath.Join(s.root, s.config.EffectiveTrendFile()), s.config.Trend.MaxEntries)
	entries, err := store.Last(last)
	if err != nil && !errors.Is(err, trend.ErrCorrupt) {
		return nil, GetQualityTrendOutput{Error: err.Error()}, nil
	}

	return nil, GetQualityTrendOutput{Entries: entries}, nil
}

// GenerateLegalDocsInput is the input for the generate_legal_docs tool.
type GenerateLegalDocsInput struct {
	// Only restricts generation to one document ("privacy" or "terms").
	Only string `json:"only,omitempty" jsonschema:"generate only this document: privacy or terms"`
}

// GenerateLegalDocsOutput is the output of the generate_legal_docs tool.
type GenerateLegalDocsOutput struct {
	Success bool     `json:"success"`
	Written []string `json:"written,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// handleGenerateLegalDocs renders the legal documents.
func (s *Server) handleGenerateLegalDocs(ctx context.Context, req *mcp.CallToolRequest, input GenerateLegalDocsInput) (*mcp.CallToolResult, GenerateLegalDocsOutput, error) {
	cfgPath := filepath.Join(s.root, s.config.EffectiveLegalConfig())
	cfg, err := legal.Load(cfgPath)
	if err != nil {
		return nil, GenerateLegalDocsOutput{Error: err.Error()}, nil
	}

	if issues := legal.Validate(cfg); legal.HasErrors(issues) {
		return nil, GenerateLegalDocsOutput{Error: formatIssues(issues)}, nil
	}

	outputDir := s.config.Legal.OutputDir
	if outputDir == "" {
		outputDir = "docs/legal"
	}

	written, err := legal.WriteDocs(cfg, filepath.Join(s.root, outputDir), input.Only)
	if err != nil {
		return nil, GenerateLegalDocsOutput{Error: err.Error()}, nil
	}

	return nil, GenerateLegalDocsOutput{Success: true, Written: written}, nil
}

// ValidateLegalConfigInput is the (empty) input for the
// validate_legal_config tool.
type ValidateLegalConfigInput struct{}

// ValidateLegalConfigOutput is the output of the validate_legal_config
// tool.
type ValidateLegalConfigOutput struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// handleValidateLegalConfig validates legal-config.json.
func (s *Server) handleValidateLegalConfig(ctx context.Context, req *mcp.CallToolRequest, input ValidateLegalConfigInput) (*mcp.CallToolResult, ValidateLegalConfigOutput, error) {
	cfgPath := filepath.Join(s.root, s.config.EffectiveLegalConfig())
	cfg, err := legal.Load(cfgPath)
	if err != nil {
		return nil, ValidateLegalConfigOutput{Error: err.Error()}, nil
	}

	issues := legal.Validate(cfg)
	out := ValidateLegalConfigOutput{Valid: !legal.HasErrors(issues)}
	for _, issue := range issues {
		out.Issues = append(out.Issues, issue.Severity+": "+issue.Field+": "+issue.Message)
	}
	return nil, out, nil
}

// CheckCommandInput is the input for the check_command tool.
type CheckCommandInput struct {
	// Command is the shell command to pre-flight.
	Command string `json:"command" jsonschema:"the shell command to check against the command guard"`
}

// CheckCommandOutput is the output of the check_command tool.
type CheckCommandOutput struct {
	Allowed  bool   `json:"allowed"`
	Guidance string `json:"guidance,omitempty"`
	Error    string `json:"error,omitempty"`
}

// handleCheckCommand evaluates a command against the guard without
// running it.
func (s *Server) handleCheckCommand(ctx context.Context, req *mcp.CallToolRequest, input CheckCommandInput) (*mcp.CallToolResult, CheckCommandOutput, error) {
	guard, err := hook.NewGuard(s.config.Guard, s.config.Runner.Local)
	if err != nil {
		return nil, CheckCommandOutput{Error: err.Error()}, nil
	}

	decision := guard.Evaluate(input.Command)
	return nil, CheckCommandOutput{
		Allowed:  !decision.Block,
		Guidance: decision.Reason,
	}, nil
}

// ListAssetsInput is the (empty) input for the list_assets tool.
type ListAssetsInput struct{}

// AssetInfo is one catalog entry in the list_assets output.
type AssetInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Installed   bool   `json:"installed"`
}

// ListAssetsOutput is the output of the list_assets tool.
type ListAssetsOutput struct {
	Assets []AssetInfo `json:"assets"`
	Error  string      `json:"error,omitempty"`
}

// handleListAssets lists the embedded assets and their install state
// for the claude tool at the project level.
func (s *Server) handleListAssets(ctx context.Context, req *mcp.CallToolRequest, input ListAssetsInput) (*mcp.CallToolResult, ListAssetsOutput, error) {
	all, err := catalog.All()
	if err != nil {
		return nil, ListAssetsOutput{Error: err.Error()}, nil
	}

	var out ListAssetsOutput
	for _, a := range all {
		out.Assets = append(out.Assets, AssetInfo{
			Name:        a.Name,
			Kind:        string(a.Kind),
			Description: a.Description,
			Installed:   catalog.Installed(a, "claude", s.root),
		})
	}
	return nil, out, nil
}

// formatIssues joins validation issues into a single error string.
func formatIssues(issues []legal.ValidationIssue) string {
	msg := "legal config is invalid:"
	for _, issue := range issues {
		if issue.Severity == "error" {
			msg += "\n  " + issue.Field + ": " + issue.Message
		}
	}
	return msg
}
