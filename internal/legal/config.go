// Package legal provides legal document generation from a JSON
// configuration file.
//
// A legal-config.json file describes the company, the application, what
// data it collects and why, which rights users get, and which
// compliance regimes apply. From that single config the package renders
// two deterministic Markdown documents: a privacy policy and terms of
// service. Rendering is pure text templating; identical config bytes
// always produce byte-identical output.
package legal

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config mirrors the legal-config.json schema.
type Config struct {
	// Company identifies the legal entity.
	Company Company `json:"company"`

	// Application identifies the product the documents cover.
	Application Application `json:"application"`

	// DataCollection flags which categories of data are collected.
	DataCollection DataCollection `json:"data_collection"`

	// DataUsage describes why data is collected and how long it is kept.
	DataUsage DataUsage `json:"data_usage"`

	// UserRights flags which rights are offered to users.
	UserRights UserRights `json:"user_rights"`

	// Compliance flags which regulatory regimes apply.
	Compliance Compliance `json:"compliance"`
}

// Company identifies the legal entity.
type Company struct {
	Name         string `json:"name"`
	LegalName    string `json:"legal_name,omitempty"`
	Address      string `json:"address,omitempty"`
	Email        string `json:"email"`
	Jurisdiction string `json:"jurisdiction,omitempty"`
}

// Application identifies the product.
type Application struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`

	// Platforms lists distribution targets (e.g. "web", "ios").
	Platforms []string `json:"platforms,omitempty"`

	// EffectiveDate is the date stamped on generated documents,
	// in YYYY-MM-DD form. Taken from config rather than the clock so
	// output is reproducible.
	EffectiveDate string `json:"effective_date"`
}

// DataCollection flags which categories of data are collected.
type DataCollection struct {
	Email          bool `json:"email"`
	Name           bool `json:"name"`
	UsageAnalytics bool `json:"usage_analytics"`
	CrashReports   bool `json:"crash_reports"`
	Cookies        bool `json:"cookies"`
	PaymentInfo    bool `json:"payment_info"`
	Location       bool `json:"location"`
}

// Any reports whether at least one collection flag is set.
func (d DataCollection) Any() bool {
	return d.Email || d.Name || d.UsageAnalytics || d.CrashReports ||
		d.Cookies || d.PaymentInfo || d.Location
}

// DataUsage describes why data is collected and how long it is kept.
type DataUsage struct {
	// Purposes lists plain-language reasons for collection.
	Purposes []string `json:"purposes,omitempty"`

	// ThirdPartySharing indicates data is shared with third parties.
	ThirdPartySharing bool `json:"third_party_sharing"`

	// ThirdParties names the recipients when sharing is enabled.
	ThirdParties []string `json:"third_parties,omitempty"`

	// RetentionMonths is how long data is retained (0 = unspecified).
	RetentionMonths int `json:"retention_months,omitempty"`
}

// UserRights flags which rights are offered to users.
type UserRights struct {
	Access      bool `json:"access"`
	Deletion    bool `json:"deletion"`
	Portability bool `json:"portability"`
	OptOut      bool `json:"opt_out"`
}

// Compliance flags which regulatory regimes apply.
type Compliance struct {
	GDPR  bool `json:"gdpr"`
	CCPA  bool `json:"ccpa"`
	COPPA bool `json:"coppa"`
	HIPAA bool `json:"hipaa"`
}

// Load reads and parses a legal config file. A missing file or
// malformed JSON is a hard error; callers surface it and exit nonzero.
// Unknown fields are tolerated so dotted-path edits via SetField never
// make the config unloadable.
//
// Parameters:
//   - path: Path to legal-config.json
//
// Returns:
//   - *Config: The parsed configuration
//   - error: Any read or parse error, wrapped with the path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read legal config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse legal config %s: %w", path, err)
	}

	return &cfg, nil
}

// ValidationIssue is a single problem found in a legal config.
type ValidationIssue struct {
	// Field is the dotted config path (e.g. "company.email").
	Field string

	// Message describes the problem.
	Message string

	// Severity is "error" or "warning". Errors block generation.
	Severity string
}

// Validate checks a config for required fields and structural problems.
// It returns all issues rather than stopping at the first.
//
// Parameters:
//   - cfg: The configuration to validate
//
// Returns:
//   - []ValidationIssue: All issues found, empty when the config is clean
func Validate(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	require := func(field, value, msg string) {
		if strings.TrimSpace(value) == "" {
			issues = append(issues, ValidationIssue{Field: field, Message: msg, Severity: "error"})
		}
	}

	require("company.name", cfg.Company.Name, "company name is required")
	require("company.email", cfg.Company.Email, "contact email is required")
	require("application.name", cfg.Application.Name, "application name is required")
	require("application.effective_date", cfg.Application.EffectiveDate, "effective date is required for reproducible output")

	if cfg.Application.EffectiveDate != "" {
		if _, err := time.Parse("2006-01-02", cfg.Application.EffectiveDate); err != nil {
			issues = append(issues, ValidationIssue{
				Field:    "application.effective_date",
				Message:  fmt.Sprintf("must be YYYY-MM-DD, got %q", cfg.Application.EffectiveDate),
				Severity: "error",
			})
		}
	}

	if cfg.DataUsage.ThirdPartySharing && len(cfg.DataUsage.ThirdParties) == 0 {
		issues = append(issues, ValidationIssue{
			Field:    "data_usage.third_parties",
			Message:  "third-party sharing is enabled but no recipients are named",
			Severity: "warning",
		})
	}

	if cfg.Compliance.GDPR && !cfg.UserRights.Access {
		issues = append(issues, ValidationIssue{
			Field:    "user_rights.access",
			Message:  "GDPR requires a right of access; enable user_rights.access",
			Severity: "warning",
		})
	}

	if cfg.Compliance.GDPR && !cfg.UserRights.Deletion {
		issues = append(issues, ValidationIssue{
			Field:    "user_rights.deletion",
			Message:  "GDPR requires a right to erasure; enable user_rights.deletion",
			Severity: "warning",
		})
	}

	if cfg.Compliance.CCPA && !cfg.UserRights.OptOut {
		issues = append(issues, ValidationIssue{
			Field:    "user_rights.opt_out",
			Message:  "CCPA requires an opt-out of sale; enable user_rights.opt_out",
			Severity: "warning",
		})
	}

	if cfg.DataCollection.PaymentInfo && cfg.Compliance.COPPA {
		issues = append(issues, ValidationIssue{
			Field:    "data_collection.payment_info",
			Message:  "collecting payment info in a COPPA-scoped app needs verified parental consent",
			Severity: "warning",
		})
	}

	return issues
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []ValidationIssue) bool {
	for _, issue := range issues {
		if issue.Severity == "error" {
			return true
		}
	}
	return false
}

// DisplayName returns the legal name when set, otherwise the company
// name.
func (c Company) DisplayName() string {
	if c.LegalName != "" {
		return c.LegalName
	}
	return c.Name
}
