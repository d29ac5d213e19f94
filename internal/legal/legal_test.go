package legal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleConfig() *Config {
	return &Config{
		Company: Company{
			Name:         "Acme",
			LegalName:    "Acme Inc.",
			Address:      "1 Main St, Springfield",
			Email:        "privacy@acme.test",
			Jurisdiction: "the State of Delaware, USA",
		},
		Application: Application{
			Name:          "Acme App",
			URL:           "https://app.acme.test",
			Platforms:     []string{"web", "ios"},
			EffectiveDate: "2026-01-15",
		},
		DataCollection: DataCollection{
			Email:          true,
			UsageAnalytics: true,
			Cookies:        true,
		},
		DataUsage: DataUsage{
			Purposes:          []string{"Provide and maintain the service", "Improve product quality"},
			ThirdPartySharing: true,
			ThirdParties:      []string{"Plausible Analytics (usage metrics)"},
			RetentionMonths:   24,
		},
		UserRights: UserRights{
			Access:   true,
			Deletion: true,
			OptOut:   true,
		},
		Compliance: Compliance{
			GDPR: true,
			CCPA: true,
		},
	}
}

func TestRenderDeterministic(t *testing.T) {
	cfg := sampleConfig()

	first, err := Render(cfg, DocPrivacy)
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := Render(cfg, DocPrivacy)
		if err != nil {
			t.Fatalf("Render() run %d: %v", i, err)
		}
		if again != first {
			t.Fatal("identical config produced different output")
		}
	}
}

func TestRenderConditionalSections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		doc     string
		section string
		want    bool
	}{
		{"gdpr on", func(c *Config) { c.Compliance.GDPR = true }, DocPrivacy, "## GDPR", true},
		{"gdpr off", func(c *Config) { c.Compliance.GDPR = false }, DocPrivacy, "## GDPR", false},
		{"ccpa on", func(c *Config) { c.Compliance.CCPA = true }, DocPrivacy, "## CCPA", true},
		{"ccpa off", func(c *Config) { c.Compliance.CCPA = false }, DocPrivacy, "## CCPA", false},
		{"coppa on", func(c *Config) { c.Compliance.COPPA = true }, DocPrivacy, "## Children's Privacy", true},
		{"coppa off", func(c *Config) { c.Compliance.COPPA = false }, DocPrivacy, "## Children's Privacy", false},
		{"hipaa on", func(c *Config) { c.Compliance.HIPAA = true }, DocPrivacy, "## Health Information", true},
		{"analytics on", func(c *Config) { c.DataCollection.UsageAnalytics = true }, DocPrivacy, "Usage analytics", true},
		{"analytics off", func(c *Config) { c.DataCollection.UsageAnalytics = false }, DocPrivacy, "Usage analytics", false},
		{"sharing off", func(c *Config) { c.DataUsage.ThirdPartySharing = false }, DocPrivacy, "## Third-Party Sharing", false},
		{"retention off", func(c *Config) { c.DataUsage.RetentionMonths = 0 }, DocPrivacy, "## Data Retention", false},
		{"payments on", func(c *Config) { c.DataCollection.PaymentInfo = true }, DocTerms, "## Payments", true},
		{"payments off", func(c *Config) { c.DataCollection.PaymentInfo = false }, DocTerms, "## Payments", false},
		{"eligibility with coppa", func(c *Config) { c.Compliance.COPPA = true }, DocTerms, "## Eligibility", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := sampleConfig()
			tt.mutate(cfg)

			out, err := Render(cfg, tt.doc)
			if err != nil {
				t.Fatalf("Render(): %v", err)
			}
			if got := strings.Contains(out, tt.section); got != tt.want {
				t.Errorf("output contains %q = %v, want %v", tt.section, got, tt.want)
			}
		})
	}
}

func TestRenderNoCollection(t *testing.T) {
	cfg := sampleConfig()
	cfg.DataCollection = DataCollection{}

	out, err := Render(cfg, DocPrivacy)
	if err != nil {
		t.Fatalf("Render(): %v", err)
	}
	if !strings.Contains(out, "We do not collect personal information.") {
		t.Error("empty collection config should state that nothing is collected")
	}
}

func TestRenderUnknownDoc(t *testing.T) {
	if _, err := Render(sampleConfig(), "eula"); err == nil {
		t.Fatal("Render() with unknown doc should fail")
	}
}

func TestRenderNoTripleBlankLines(t *testing.T) {
	for _, doc := range []string{DocPrivacy, DocTerms} {
		out, err := Render(sampleConfig(), doc)
		if err != nil {
			t.Fatalf("Render(%s): %v", doc, err)
		}
		if strings.Contains(out, "\n\n\n") {
			t.Errorf("%s output contains a run of blank lines", doc)
		}
		if !strings.HasSuffix(out, "\n") {
			t.Errorf("%s output should end with a newline", doc)
		}
	}
}

func TestWriteDocs(t *testing.T) {
	tmp := t.TempDir()

	written, err := WriteDocs(sampleConfig(), filepath.Join(tmp, "docs", "legal"), "")
	if err != nil {
		t.Fatalf("WriteDocs(): %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("WriteDocs() wrote %d files, want 2", len(written))
	}
	for _, path := range written {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output file %s: %v", path, err)
		}
	}
}

func TestWriteDocsOnly(t *testing.T) {
	tmp := t.TempDir()

	written, err := WriteDocs(sampleConfig(), tmp, DocTerms)
	if err != nil {
		t.Fatalf("WriteDocs(): %v", err)
	}
	if len(written) != 1 || filepath.Base(written[0]) != "terms-of-service.md" {
		t.Errorf("WriteDocs(only=terms) = %v, want just terms-of-service.md", written)
	}

	if _, err := WriteDocs(sampleConfig(), tmp, "eula"); err == nil {
		t.Error("WriteDocs() with unknown only-doc should fail")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load() on missing file should fail")
	}

	tmp := t.TempDir()
	bad := filepath.Join(tmp, "legal-config.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() on malformed JSON should fail")
	}
}

func TestValidate(t *testing.T) {
	cfg := sampleConfig()
	if issues := Validate(cfg); HasErrors(issues) {
		t.Fatalf("sample config should validate, got %+v", issues)
	}

	cfg.Company.Name = ""
	cfg.Application.EffectiveDate = "January 15"
	issues := Validate(cfg)
	if !HasErrors(issues) {
		t.Fatal("missing name and bad date should produce errors")
	}

	fields := make(map[string]bool)
	for _, issue := range issues {
		fields[issue.Field] = true
	}
	if !fields["company.name"] || !fields["application.effective_date"] {
		t.Errorf("expected issues for company.name and application.effective_date, got %+v", issues)
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := sampleConfig()
	cfg.DataUsage.ThirdParties = nil
	cfg.UserRights.OptOut = false

	issues := Validate(cfg)
	if HasErrors(issues) {
		t.Fatalf("warnings only expected, got %+v", issues)
	}
	if len(issues) < 2 {
		t.Errorf("expected third-party and CCPA opt-out warnings, got %+v", issues)
	}
}

func TestGetAndSetField(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "legal-config.json")
	content := `{"company":{"name":"Acme","email":"a@b.c"},"compliance":{"gdpr":false},"data_usage":{"retention_months":12}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	got, err := GetField(path, "company.name")
	if err != nil {
		t.Fatalf("GetField(): %v", err)
	}
	if got != `"Acme"` {
		t.Errorf("GetField(company.name) = %s, want %q", got, `"Acme"`)
	}

	if _, err := GetField(path, "compliance.hipaa"); err == nil {
		t.Error("GetField() on absent field should fail")
	}

	if err := SetField(path, "compliance.gdpr", "true"); err != nil {
		t.Fatalf("SetField(): %v", err)
	}
	if err := SetField(path, "data_usage.retention_months", "36"); err != nil {
		t.Fatalf("SetField(): %v", err)
	}

	if got, _ := GetField(path, "compliance.gdpr"); got != "true" {
		t.Errorf("after SetField, compliance.gdpr = %s, want true", got)
	}
	if got, _ := GetField(path, "data_usage.retention_months"); got != "36" {
		t.Errorf("after SetField, retention_months = %s, want 36", got)
	}
	// Unrelated fields survive the rewrite
	if got, _ := GetField(path, "company.email"); got != `"a@b.c"` {
		t.Errorf("company.email disturbed by SetField: %s", got)
	}
}

func TestSetFieldUnknownPathKeepsConfigLoadable(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "legal-config.json")
	content := `{"company":{"name":"Acme","email":"a@b.c"}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}

	// SetField accepts any dotted path; a field outside the schema must
	// not brick Load and the generate/validate commands built on it.
	if err := SetField(path, "company.phone", "555-0100"); err != nil {
		t.Fatalf("SetField(): %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() after out-of-schema SetField: %v", err)
	}
	if cfg.Company.Name != "Acme" {
		t.Errorf("Company.Name = %q, want Acme", cfg.Company.Name)
	}
}
