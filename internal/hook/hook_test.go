package hook

import (
	"strings"
	"testing"

	"github.com/agentworks/agentctl/internal/config"
)

func mustGuard(t *testing.T) *Guard {
	t.Helper()
	g, err := NewGuard(config.GuardConfig{}, nil)
	if err != nil {
		t.Fatalf("NewGuard(): %v", err)
	}
	return g
}

func TestGuardBlocksDevServers(t *testing.T) {
	g := mustGuard(t)

	blocked := []string{
		"npm run dev",
		"cd frontend && npm run serve",
		"yarn dev",
		"pnpm serve",
		"vite",
		"vite --port 3000",
		"python manage.py runserver",
		"./manage.py runserver 0.0.0.0:8000",
		"uvicorn app.main:app --reload",
		"gunicorn config.wsgi",
		"daphne -p 8001 config.asgi:application",
		"celery -A config worker -l info",
	}

	for _, cmd := range blocked {
		if d := g.Evaluate(cmd); !d.Block {
			t.Errorf("Evaluate(%q).Block = false, want true", cmd)
		} else if d.Reason == "" {
			t.Errorf("Evaluate(%q) blocked without guidance", cmd)
		}
	}
}

func TestGuardAllowsSafeCommands(t *testing.T) {
	g := mustGuard(t)

	allowed := []string{
		"",
		"ls -la",
		"git status",
		"npm run build",
		"npm run test",
		"vite build",
		"npm install axios",
		"pip install ruff",
		"python manage.py startapp billing",
		"./manage.py startapp billing",
		"docker compose run --rm django python manage.py migrate",
		"docker compose logs -f frontend",
		"docker-compose restart django",
		"uvicorn --help",
	}

	for _, cmd := range allowed {
		if d := g.Evaluate(cmd); d.Block {
			t.Errorf("Evaluate(%q).Block = true, want false (reason: %s)", cmd, d.Reason)
		}
	}
}

func TestGuardBlocksManagementCommands(t *testing.T) {
	g := mustGuard(t)

	// Everything except startapp needs the containerized database
	for _, cmd := range []string{
		"python manage.py migrate",
		"python manage.py makemigrations users",
		"python manage.py shell",
		"./manage.py createsuperuser",
	} {
		d := g.Evaluate(cmd)
		if !d.Block {
			t.Errorf("Evaluate(%q).Block = false, want true", cmd)
			continue
		}
		if !strings.Contains(d.Reason, "startapp") {
			t.Errorf("management guidance should mention the startapp exception, got %q", d.Reason)
		}
	}
}

func TestGuardDotSlashManage(t *testing.T) {
	g := mustGuard(t)

	// ./manage.py starts with a non-word character, so the patterns
	// anchor on start-of-string or whitespace rather than \b.
	for _, cmd := range []string{
		"./manage.py migrate",
		"cd backend && ./manage.py shell",
	} {
		d := g.Evaluate(cmd)
		if !d.Block {
			t.Errorf("Evaluate(%q).Block = false, want true", cmd)
			continue
		}
		if !strings.Contains(d.Reason, "docker compose run") {
			t.Errorf("guidance for %q should name the container form, got %q", cmd, d.Reason)
		}
	}

	if d := g.Evaluate("./manage.py startapp billing"); d.Block {
		t.Errorf("startapp must stay allowed in the ./manage.py form (reason: %s)", d.Reason)
	}
}

func TestGuardCaseInsensitive(t *testing.T) {
	g := mustGuard(t)
	if d := g.Evaluate("NPM RUN DEV"); !d.Block {
		t.Error("guard should match case-insensitively")
	}
}

func TestGuardWorkspaceExtensions(t *testing.T) {
	g, err := NewGuard(config.GuardConfig{
		Blocked: []string{`\bterraform\s+apply\b`},
		Allowed: []string{`\bterraform\s+apply\s+-target=sandbox\b`},
	}, nil)
	if err != nil {
		t.Fatalf("NewGuard(): %v", err)
	}

	if d := g.Evaluate("terraform apply"); !d.Block {
		t.Error("extension blocked pattern should block")
	}
	if d := g.Evaluate("terraform apply -target=sandbox.module"); d.Block {
		t.Error("extension allowed pattern should win over blocked")
	}
}

func TestGuardRunnerLocalAllows(t *testing.T) {
	g, err := NewGuard(config.GuardConfig{
		Blocked: []string{`\bmix\b`},
	}, []string{"mix deps.get"})
	if err != nil {
		t.Fatalf("NewGuard(): %v", err)
	}

	// runner.local entries are literal commands, treated as allow
	// carve-outs ahead of the block list.
	if d := g.Evaluate("mix deps.get"); d.Block {
		t.Errorf("runner.local command should be allowed (reason: %s)", d.Reason)
	}
	if d := g.Evaluate("cd api && mix deps.get"); d.Block {
		t.Errorf("runner.local command after a separator should be allowed (reason: %s)", d.Reason)
	}
	if d := g.Evaluate("mix phx.server"); !d.Block {
		t.Error("commands outside runner.local must still hit the block list")
	}
}

func TestGuardInvalidExtension(t *testing.T) {
	if _, err := NewGuard(config.GuardConfig{Blocked: []string{"("}}, nil); err == nil {
		t.Fatal("NewGuard() with invalid pattern should fail")
	}
}

func TestParseInput(t *testing.T) {
	payload := `{"tool_name":"Bash","tool_input":{"command":"npm run dev"}}`

	in, err := ParseInput(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ParseInput(): %v", err)
	}
	if in.ToolName != "Bash" || in.Command != "npm run dev" {
		t.Errorf("ParseInput() = %+v", in)
	}
}

func TestParseInputMissingFields(t *testing.T) {
	in, err := ParseInput(strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("ParseInput(): %v", err)
	}
	if in.ToolName != "" || in.Command != "" || in.FilePath != "" {
		t.Errorf("empty payload should yield zero fields, got %+v", in)
	}
}

func TestParseInputInvalidJSON(t *testing.T) {
	if _, err := ParseInput(strings.NewReader("not json")); err == nil {
		t.Fatal("ParseInput() on invalid JSON should fail")
	}
}

func TestQualityGuardTriggers(t *testing.T) {
	q := NewQualityGuard(nil, nil)

	tests := []struct {
		name     string
		tool     string
		path     string
		fragment string
	}{
		{"spec file", "Write", "frontend/src/components/Login.spec.ts", "test file"},
		{"test file", "Edit", "frontend/src/stores/user.test.ts", "test file"},
		{"vue component", "Write", "frontend/src/views/Home.vue", "component"},
		{"type defs", "Write", "frontend/src/types/api.types.ts", "type definitions"},
		{"types dir", "Edit", "frontend/src/types/models.ts", "type definitions"},
		{"composable", "Write", "frontend/src/composables/useAuth.ts", "composable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warning := q.Check(&Input{ToolName: tt.tool, FilePath: tt.path})
			if warning == "" {
				t.Fatalf("Check(%s) returned no warning", tt.path)
			}
			if !strings.Contains(strings.ToLower(warning), tt.fragment) {
				t.Errorf("warning for %s should mention %q:\n%s", tt.path, tt.fragment, warning)
			}
		})
	}
}

func TestQualityGuardSilentCases(t *testing.T) {
	q := NewQualityGuard(nil, nil)

	silent := []*Input{
		{ToolName: "Bash", Command: "ls"},
		{ToolName: "Write", FilePath: "backend/models.py"},
		{ToolName: "Write", FilePath: "frontend/src/utils/format.ts"},
		{ToolName: "Read", FilePath: "frontend/src/views/Home.vue"},
		{ToolName: "Write"},
	}

	for _, in := range silent {
		if warning := q.Check(in); warning != "" {
			t.Errorf("Check(%+v) = %q, want silence", in, warning)
		}
	}
}

func TestQualityGuardErrorCount(t *testing.T) {
	q := NewQualityGuard([]string{"frontend/src"}, func() (int, error) { return 42, nil })

	warning := q.Check(&Input{ToolName: "Write", FilePath: "frontend/src/views/Home.vue"})
	if !strings.Contains(warning, "42") {
		t.Errorf("warning should include the current error count:\n%s", warning)
	}
}

func TestQualityGuardCustomScope(t *testing.T) {
	q := NewQualityGuard([]string{"web/app"}, nil)

	if w := q.Check(&Input{ToolName: "Write", FilePath: "web/app/views/Home.vue"}); w == "" {
		t.Error("custom scope should trigger warnings")
	}
	if w := q.Check(&Input{ToolName: "Write", FilePath: "frontend/src/views/Home.vue"}); w != "" {
		t.Error("paths outside custom scope should be silent")
	}
}
