package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllReturnsEveryAsset(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("All(): %v", err)
	}

	byName := make(map[string]Asset)
	for _, a := range all {
		byName[a.Name] = a
	}

	want := map[string]Kind{
		"backend-engineer":  KindAgent,
		"frontend-engineer": KindAgent,
		"code-reviewer":     KindAgent,
		"lint-and-format":   KindCommand,
		"generate-legal":    KindCommand,
		"agentctl":          KindSkill,
	}
	for name, kind := range want {
		a, ok := byName[name]
		if !ok {
			t.Errorf("catalog missing %s", name)
			continue
		}
		if a.Kind != kind {
			t.Errorf("%s kind = %s, want %s", name, a.Kind, kind)
		}
		if a.Description == "" {
			t.Errorf("%s has empty description", name)
		}
		if !strings.HasPrefix(a.Content, "---\n") {
			t.Errorf("%s content should retain frontmatter", name)
		}
	}
}

func TestAllSorted(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatalf("All(): %v", err)
	}
	for i := 1; i < len(all); i++ {
		prev, curr := all[i-1], all[i]
		if prev.Kind > curr.Kind || (prev.Kind == curr.Kind && prev.Name > curr.Name) {
			t.Errorf("catalog not sorted at %d: %s/%s before %s/%s", i, prev.Kind, prev.Name, curr.Kind, curr.Name)
		}
	}
}

func TestGet(t *testing.T) {
	a, err := Get("backend-engineer")
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}
	if a.Kind != KindAgent {
		t.Errorf("Kind = %s, want agent", a.Kind)
	}

	if _, err := Get("nonexistent"); err == nil {
		t.Error("Get() on unknown name should fail")
	}
}

func TestParseFrontmatter(t *testing.T) {
	fm, err := parseFrontmatter("---\nname: x\ndescription: y\n---\n\nbody\n")
	if err != nil {
		t.Fatalf("parseFrontmatter(): %v", err)
	}
	if fm.Name != "x" || fm.Description != "y" {
		t.Errorf("parseFrontmatter() = %+v", fm)
	}

	if _, err := parseFrontmatter("no frontmatter here"); err == nil {
		t.Error("content without frontmatter should fail")
	}
	if _, err := parseFrontmatter("---\nname: x\n"); err == nil {
		t.Error("unterminated frontmatter should fail")
	}
}

func TestInstallTarget(t *testing.T) {
	dir, err := InstallTarget("claude", KindAgent, "/work", false)
	if err != nil {
		t.Fatalf("InstallTarget(): %v", err)
	}
	if dir != filepath.Join("/work", ".claude", "agents") {
		t.Errorf("InstallTarget() = %s", dir)
	}

	if _, err := InstallTarget("emacs", KindAgent, "/work", false); err == nil {
		t.Error("unknown tool should fail")
	}
	if _, err := InstallTarget("codex", KindAgent, "/work", false); err == nil {
		t.Error("codex has no agents dir; should fail")
	}
}

func TestInstallAndForce(t *testing.T) {
	root := t.TempDir()
	asset, err := Get("lint-and-format")
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}

	dir, err := InstallTarget("claude", asset.Kind, root, false)
	if err != nil {
		t.Fatalf("InstallTarget(): %v", err)
	}

	path, err := Install(asset, dir, false)
	if err != nil {
		t.Fatalf("Install(): %v", err)
	}
	if filepath.Base(path) != "lint-and-format.md" {
		t.Errorf("installed as %s", path)
	}

	// Second install without force fails; with force succeeds
	if _, err := Install(asset, dir, false); err == nil {
		t.Error("reinstall without force should fail")
	}
	if _, err := Install(asset, dir, true); err != nil {
		t.Errorf("reinstall with force: %v", err)
	}

	if !Installed(asset, "claude", root) {
		t.Error("Installed() should report true after install")
	}
}

func TestInstallSkillLayout(t *testing.T) {
	root := t.TempDir()
	asset, err := Get("agentctl")
	if err != nil {
		t.Fatalf("Get(): %v", err)
	}

	dir, err := InstallTarget("claude", KindSkill, root, false)
	if err != nil {
		t.Fatalf("InstallTarget(): %v", err)
	}

	path, err := Install(asset, dir, false)
	if err != nil {
		t.Fatalf("Install(): %v", err)
	}
	want := filepath.Join(dir, "agentctl", "SKILL.md")
	if path != want {
		t.Errorf("skill installed at %s, want %s", path, want)
	}
}

func TestDetectTools(t *testing.T) {
	root := t.TempDir()
	if got := DetectTools(root); len(got) != 0 {
		// Tolerate user-level dirs on the machine running tests
		t.Logf("DetectTools on empty root = %v (user-level dirs present)", got)
	}

	if err := os.MkdirAll(filepath.Join(root, ".claude"), 0o755); err != nil {
		t.Fatalf("MkdirAll(): %v", err)
	}

	found := false
	for _, tool := range DetectTools(root) {
		if tool == "claude" {
			found = true
		}
	}
	if !found {
		t.Error("DetectTools should find claude after creating .claude/")
	}
}
