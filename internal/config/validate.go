package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ValidationResult contains the result of config validation.
//
// Fields:
//   - Valid: Whether the config is valid
//   - Errors: List of validation errors
//   - Warnings: List of validation warnings (non-fatal issues)
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// ValidateConfig checks a workspace configuration for structural
// problems beyond what YAML parsing catches:
//   - Required fields (project.name)
//   - Service definitions (compose service name, at least one command)
//   - Fix commands without a matching check command
//   - Guard patterns that fail to compile as regular expressions
//   - Negative gate and retention values
//
// Parameters:
//   - cfg: The parsed configuration
//
// Returns:
//   - *ValidationResult: Validation result with errors/warnings
func ValidateConfig(cfg *WorkspaceConfig) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if cfg.Project.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: project.name")
	}

	if len(cfg.Services) == 0 {
		result.Warnings = append(result.Warnings, "No services configured - 'agentctl quality check' will have nothing to run")
	}

	prefix := cfg.EffectivePrefix()
	for name, svc := range cfg.Services {
		if svc == nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Service '%s' is empty", name))
			continue
		}

		if prefix != "" && svc.Service == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Service '%s': missing 'service' (compose service name) while a runner prefix is set", name))
		}

		if svc.Lint == "" && svc.Format == "" && svc.TypeCheck == "" && svc.Test == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Service '%s' defines no check commands", name))
		}

		if svc.LintFix != "" && svc.Lint == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Service '%s': lint_fix is set but lint is not", name))
		}
		if svc.FormatFix != "" && svc.Format == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Service '%s': format_fix is set but format is not", name))
		}

		for _, dir := range svc.SourceDirs {
			if strings.HasPrefix(dir, "/") {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Service '%s': source dir %q is absolute - watch paths should be relative to the workspace root", name, dir))
			}
		}
	}

	for _, pattern := range cfg.Guard.Allowed {
		if _, err := regexp.Compile(pattern); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("guard.allowed pattern %q does not compile: %v", pattern, err))
		}
	}
	for _, pattern := range cfg.Guard.Blocked {
		if _, err := regexp.Compile(pattern); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("guard.blocked pattern %q does not compile: %v", pattern, err))
		}
	}

	if cfg.Gate.MaxLintErrors != nil && *cfg.Gate.MaxLintErrors < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("gate.max_lint_errors must be non-negative, got %d", *cfg.Gate.MaxLintErrors))
	}
	if cfg.Gate.MaxTypeErrors != nil && *cfg.Gate.MaxTypeErrors < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("gate.max_type_errors must be non-negative, got %d", *cfg.Gate.MaxTypeErrors))
	}
	if cfg.Trend.MaxEntries < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("trend.max_entries must be non-negative, got %d", cfg.Trend.MaxEntries))
	}

	if cfg.Legal.ConfigPath != "" && !strings.HasSuffix(cfg.Legal.ConfigPath, ".json") {
		result.Warnings = append(result.Warnings, fmt.Sprintf("legal.config_path %q does not end in .json", cfg.Legal.ConfigPath))
	}

	return result
}

// ValidateConfigFile reads and validates a config file from disk.
// A file that fails to read or parse produces a result with the error
// recorded rather than a Go error, so callers can display all problems
// uniformly.
//
// Parameters:
//   - path: Path to the config file
//
// Returns:
//   - *ValidationResult: Validation result with errors/warnings
func ValidateConfigFile(path string) *ValidationResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("Cannot read file: %v", err)},
		}
	}

	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf("YAML parse error: %v", err)},
		}
	}

	return ValidateConfig(&cfg)
}
