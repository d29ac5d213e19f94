// Package catalog indexes the embedded agent, command, and skill
// markdown and installs it into AI-tool configuration directories.
package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/agentworks/agentctl/assets"
)

// Kind classifies an installable asset.
type Kind string

const (
	// KindAgent is a persona definition installed under agents/.
	KindAgent Kind = "agent"

	// KindCommand is a slash-command definition installed under commands/.
	KindCommand Kind = "command"

	// KindSkill is a skill directory containing SKILL.md.
	KindSkill Kind = "skill"
)

// Asset is one installable markdown document.
type Asset struct {
	// Name is the asset identifier from frontmatter (falls back to
	// the file name).
	Name string

	// Kind classifies the asset.
	Kind Kind

	// Description is the one-line summary from frontmatter.
	Description string

	// Content is the full markdown, frontmatter included.
	Content string
}

// frontmatter is the YAML header shared by all asset files.
type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// kindDirs maps embedded FS directories to asset kinds.
var kindDirs = map[string]Kind{
	"agents":   KindAgent,
	"commands": KindCommand,
	"skills":   KindSkill,
}

// All returns every embedded asset, sorted by kind then name.
//
// Returns:
//   - []Asset: The full catalog
//   - error: If an embedded file is unreadable or has bad frontmatter
func All() ([]Asset, error) {
	var out []Asset

	err := fs.WalkDir(assets.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		top := strings.SplitN(p, "/", 2)[0]
		kind, ok := kindDirs[top]
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(assets.FS, p)
		if err != nil {
			return fmt.Errorf("failed to read embedded asset %s: %w", p, err)
		}

		fm, err := parseFrontmatter(string(data))
		if err != nil {
			return fmt.Errorf("asset %s: %w", p, err)
		}

		name := fm.Name
		if name == "" {
			if kind == KindSkill {
				name = path.Base(path.Dir(p))
			} else {
				name = strings.TrimSuffix(path.Base(p), ".md")
			}
		}

		out = append(out, Asset{
			Name:        name,
			Kind:        kind,
			Description: fm.Description,
			Content:     string(data),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind < out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Get returns one asset by name.
//
// Parameters:
//   - name: The asset name
//
// Returns:
//   - Asset: The matching asset
//   - error: If no asset has that name
func Get(name string) (Asset, error) {
	all, err := All()
	if err != nil {
		return Asset{}, err
	}
	for _, a := range all {
		if a.Name == name {
			return a, nil
		}
	}
	return Asset{}, fmt.Errorf("no asset named %q; run 'agentctl assets list'", name)
}

// parseFrontmatter extracts the YAML header between --- markers.
func parseFrontmatter(content string) (frontmatter, error) {
	var fm frontmatter

	if !strings.HasPrefix(content, "---\n") {
		return fm, fmt.Errorf("missing frontmatter")
	}

	rest := content[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return fm, fmt.Errorf("unterminated frontmatter")
	}

	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return fm, fmt.Errorf("invalid frontmatter: %w", err)
	}
	return fm, nil
}
