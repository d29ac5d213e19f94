package legal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

// Document names used for output files and --only selection.
const (
	DocPrivacy = "privacy"
	DocTerms   = "terms"
)

// OutputFileName maps a document name to its Markdown file name.
var OutputFileName = map[string]string{
	DocPrivacy: "privacy-policy.md",
	DocTerms:   "terms-of-service.md",
}

// templateContext wraps Config with derived fields the templates need.
type templateContext struct {
	*Config
}

// HasUserRights reports whether any user right flag is set.
func (c templateContext) HasUserRights() bool {
	return c.UserRights.Access || c.UserRights.Deletion ||
		c.UserRights.Portability || c.UserRights.OptOut
}

var (
	privacyTmpl = template.Must(template.New(DocPrivacy).Parse(privacyTemplate))
	termsTmpl   = template.Must(template.New(DocTerms).Parse(termsTemplate))
)

// Render renders one document from a config. Output depends only on
// the config, never on the clock or environment.
//
// Parameters:
//   - cfg: The legal configuration
//   - doc: DocPrivacy or DocTerms
//
// Returns:
//   - string: The rendered Markdown
//   - error: If doc is unknown or template execution fails
func Render(cfg *Config, doc string) (string, error) {
	var tmpl *template.Template
	switch doc {
	case DocPrivacy:
		tmpl = privacyTmpl
	case DocTerms:
		tmpl = termsTmpl
	default:
		return "", fmt.Errorf("unknown document %q (want %q or %q)", doc, DocPrivacy, DocTerms)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, templateContext{cfg}); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", doc, err)
	}

	return collapseBlankRuns(sb.String()), nil
}

// RenderAll renders every document.
//
// Parameters:
//   - cfg: The legal configuration
//
// Returns:
//   - map[string]string: Document name → rendered Markdown
//   - error: The first render error encountered
func RenderAll(cfg *Config) (map[string]string, error) {
	out := make(map[string]string, len(OutputFileName))
	for _, doc := range []string{DocPrivacy, DocTerms} {
		rendered, err := Render(cfg, doc)
		if err != nil {
			return nil, err
		}
		out[doc] = rendered
	}
	return out, nil
}

// WriteDocs renders the selected documents and writes them under
// outputDir, creating it if needed.
//
// Parameters:
//   - cfg: The legal configuration
//   - outputDir: Target directory for the Markdown files
//   - only: Document name to restrict to, or "" for all
//
// Returns:
//   - []string: Paths of the files written, in render order
//   - error: Any render or filesystem error
func WriteDocs(cfg *Config, outputDir, only string) ([]string, error) {
	docs := []string{DocPrivacy, DocTerms}
	if only != "" {
		if _, ok := OutputFileName[only]; !ok {
			return nil, fmt.Errorf("unknown document %q (want %q or %q)", only, DocPrivacy, DocTerms)
		}
		docs = []string{only}
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	var written []string
	for _, doc := range docs {
		rendered, err := Render(cfg, doc)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(outputDir, OutputFileName[doc])
		if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		written = append(written, path)
	}

	return written, nil
}

// collapseBlankRuns squeezes runs of three or more newlines down to
// two. Conditional template sections leave uneven blank lines behind;
// collapsing keeps the Markdown tidy without affecting determinism.
func collapseBlankRuns(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blanks := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blanks++
			if blanks > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blanks = 0
		out = append(out, line)
	}

	result := strings.Join(out, "\n")
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result
}
