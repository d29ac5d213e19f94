// Package config provides workspace configuration management.
//
// This package handles reading and writing .agentctl/config.yaml files:
// the per-project description of how quality tooling runs (which
// container services exist, which lint/format/test commands they use),
// where the legal document config lives, and which extra command-guard
// patterns apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DirName is the workspace configuration directory name.
const DirName = ".agentctl"

// FileName is the configuration file name inside DirName.
const FileName = "config.yaml"

// DefaultRunnerPrefix is the command prefix used to execute tooling
// inside containerized services.
const DefaultRunnerPrefix = "docker compose run --rm"

// DefaultTrendFile is the default quality trend file path, relative to
// the workspace root.
const DefaultTrendFile = ".agentctl/quality-trend.json"

// DefaultLegalConfig is the default legal document config path,
// relative to the workspace root.
const DefaultLegalConfig = "legal-config.json"

// WorkspaceConfig represents the .agentctl/config.yaml file.
type WorkspaceConfig struct {
	// Project contains project identification.
	Project Project `yaml:"project"`

	// Runner contains subprocess execution settings.
	Runner RunnerConfig `yaml:"runner,omitempty"`

	// Services maps service names ("backend", "frontend") to their
	// quality tooling configuration.
	Services map[string]*ServiceConfig `yaml:"services,omitempty"`

	// Legal contains legal document generation settings.
	Legal LegalConfig `yaml:"legal,omitempty"`

	// Trend contains quality trend history settings.
	Trend TrendConfig `yaml:"trend,omitempty"`

	// Gate contains quality gate thresholds.
	Gate GateConfig `yaml:"gate,omitempty"`

	// Guard contains command guard pattern extensions.
	Guard GuardConfig `yaml:"guard,omitempty"`
}

// Project contains project identification.
type Project struct {
	// Name is the human-readable project name.
	Name string `yaml:"name"`
}

// RunnerConfig contains subprocess execution settings.
type RunnerConfig struct {
	// Prefix is prepended to every service command so tooling runs
	// inside the containerized service (e.g. "docker compose run --rm").
	// An empty prefix runs commands directly on the host.
	Prefix string `yaml:"prefix,omitempty"`

	// Local lists commands that are permitted to run outside
	// containers even when a prefix is configured.
	Local []string `yaml:"local,omitempty"`
}

// ServiceConfig describes quality tooling for one containerized service.
type ServiceConfig struct {
	// Service is the compose service name the tools run inside.
	Service string `yaml:"service"`

	// Lint is the lint command (e.g. "ruff check .").
	Lint string `yaml:"lint,omitempty"`

	// LintFix is the lint command with auto-fix enabled.
	LintFix string `yaml:"lint_fix,omitempty"`

	// Format is the format-check command (e.g. "ruff format --check .").
	Format string `yaml:"format,omitempty"`

	// FormatFix is the formatter in write mode.
	FormatFix string `yaml:"format_fix,omitempty"`

	// TypeCheck is the type-check command (e.g. "npm run type-check").
	TypeCheck string `yaml:"typecheck,omitempty"`

	// Test is the test runner command.
	Test string `yaml:"test,omitempty"`

	// SourceDirs lists directories watched in watch mode, relative to
	// the workspace root.
	SourceDirs []string `yaml:"source_dirs,omitempty"`
}

// LegalConfig contains legal document generation settings.
type LegalConfig struct {
	// ConfigPath is the path to legal-config.json.
	ConfigPath string `yaml:"config_path,omitempty"`

	// OutputDir is where rendered documents are written.
	OutputDir string `yaml:"output_dir,omitempty"`
}

// TrendConfig contains quality trend history settings.
type TrendConfig struct {
	// File is the trend history file path.
	File string `yaml:"file,omitempty"`

	// MaxEntries caps how many runs are retained (0 = unlimited).
	MaxEntries int `yaml:"max_entries,omitempty"`
}

// GateConfig contains quality gate thresholds.
type GateConfig struct {
	// MaxLintErrors is the maximum lint error count before the gate
	// fails. Nil means zero tolerance.
	MaxLintErrors *int `yaml:"max_lint_errors,omitempty"`

	// MaxTypeErrors is the maximum type error count before the gate
	// fails. Nil means zero tolerance.
	MaxTypeErrors *int `yaml:"max_type_errors,omitempty"`

	// RequireTests controls whether test failures fail the gate.
	// Nil defaults to true.
	RequireTests *bool `yaml:"require_tests,omitempty"`
}

// GuardConfig contains command guard pattern extensions. Patterns are
// Go regular expressions matched against the whole command string.
type GuardConfig struct {
	// Allowed lists extra patterns that are always permitted.
	Allowed []string `yaml:"allowed,omitempty"`

	// Blocked lists extra patterns that are denied.
	Blocked []string `yaml:"blocked,omitempty"`
}

// EffectivePrefix returns the runner prefix, falling back to the
// default when unset.
func (c *WorkspaceConfig) EffectivePrefix() string {
	if c.Runner.Prefix != "" {
		return c.Runner.Prefix
	}
	return DefaultRunnerPrefix
}

// EffectiveTrendFile returns the trend file path, falling back to the
// default when unset.
func (c *WorkspaceConfig) EffectiveTrendFile() string {
	if c.Trend.File != "" {
		return c.Trend.File
	}
	return DefaultTrendFile
}

// EffectiveLegalConfig returns the legal config path, falling back to
// the default when unset.
func (c *WorkspaceConfig) EffectiveLegalConfig() string {
	if c.Legal.ConfigPath != "" {
		return c.Legal.ConfigPath
	}
	return DefaultLegalConfig
}

// EffectiveMaxLintErrors returns the lint error budget (default 0).
func (c *WorkspaceConfig) EffectiveMaxLintErrors() int {
	if c.Gate.MaxLintErrors != nil {
		return *c.Gate.MaxLintErrors
	}
	return 0
}

// EffectiveMaxTypeErrors returns the type error budget (default 0).
func (c *WorkspaceConfig) EffectiveMaxTypeErrors() int {
	if c.Gate.MaxTypeErrors != nil {
		return *c.Gate.MaxTypeErrors
	}
	return 0
}

// EffectiveRequireTests reports whether test failures fail the gate
// (default true).
func (c *WorkspaceConfig) EffectiveRequireTests() bool {
	if c.Gate.RequireTests != nil {
		return *c.Gate.RequireTests
	}
	return true
}

// DefaultConfig returns a new config with the conventional backend and
// frontend service blocks used by agentctl init.
//
// Parameters:
//   - projectName: The project name to record
//
// Returns:
//   - *WorkspaceConfig: A populated default configuration
func DefaultConfig(projectName string) *WorkspaceConfig {
	return &WorkspaceConfig{
		Project: Project{Name: projectName},
		Runner: RunnerConfig{
			Prefix: DefaultRunnerPrefix,
			Local:  []string{"npm run build", "python manage.py startapp"},
		},
		Services: map[string]*ServiceConfig{
			"backend": {
				Service:    "django",
				Lint:       "ruff check .",
				LintFix:    "ruff check --fix .",
				Format:     "ruff format --check .",
				FormatFix:  "ruff format .",
				Test:       "pytest",
				SourceDirs: []string{"backend"},
			},
			"frontend": {
				Service:    "frontend",
				Lint:       "npm run lint",
				LintFix:    "npm run lint -- --fix",
				Format:     "npx prettier --check src/",
				FormatFix:  "npx prettier --write src/",
				TypeCheck:  "npm run type-check",
				Test:       "npm run test:unit",
				SourceDirs: []string{"frontend/src"},
			},
		},
		Legal: LegalConfig{
			ConfigPath: DefaultLegalConfig,
			OutputDir:  "docs/legal",
		},
		Trend: TrendConfig{File: DefaultTrendFile},
	}
}

// Load reads a workspace configuration from a file.
//
// Parameters:
//   - path: Path to the config.yaml file
//
// Returns:
//   - *WorkspaceConfig: The parsed configuration
//   - error: Any error that occurred during reading or parsing
func Load(path string) (*WorkspaceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Guarantee maps are never nil so callers don't need defensive checks
	if cfg.Services == nil {
		cfg.Services = make(map[string]*ServiceConfig)
	}

	return &cfg, nil
}

// Write writes a workspace configuration to a file, creating the
// parent directory if needed.
//
// Parameters:
//   - path: Path to write the config.yaml file
//   - cfg: The configuration to write
//
// Returns:
//   - error: Any error that occurred during writing
func Write(path string, cfg *WorkspaceConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	header := "# agentctl workspace configuration\n# Generated by: agentctl init\n\n"
	content := header + string(data)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Find walks up from startDir looking for .agentctl/config.yaml.
//
// Parameters:
//   - startDir: The directory to start searching from
//
// Returns:
//   - string: The path to the found config file
//   - error: os.ErrNotExist-wrapped error if no config was found
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, DirName, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s/%s found in %s or any parent: %w", DirName, FileName, startDir, os.ErrNotExist)
		}
		dir = parent
	}
}

// LoadNearest finds and loads the nearest workspace config, returning
// the workspace root directory alongside the config.
//
// Parameters:
//   - startDir: The directory to start searching from
//
// Returns:
//   - *WorkspaceConfig: The parsed configuration
//   - string: The workspace root (directory containing .agentctl/)
//   - error: Any error from Find or Load
func LoadNearest(startDir string) (*WorkspaceConfig, string, error) {
	path, err := Find(startDir)
	if err != nil {
		return nil, "", err
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, "", err
	}

	root := filepath.Dir(filepath.Dir(path))
	return cfg, root, nil
}
