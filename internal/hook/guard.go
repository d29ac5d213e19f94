package hook

import (
	"fmt"
	"regexp"

	"github.com/agentworks/agentctl/internal/config"
)

// Built-in blocked patterns: commands that conflict with services
// already running in containers, or that need the containerized
// database. Matched case-insensitively against the whole command.
var builtinBlocked = []string{
	// Frontend dev servers
	`\bnpm\s+run\s+(dev|serve)\b`,
	`\byarn\s+(dev|serve)\b`,
	`\bpnpm\s+(dev|serve)\b`,
	// Bare vite is a dev server; "vite build" is carved out by the
	// allow list, which is checked first.
	`\bvite\b`,

	// Django dev server. A \b cannot precede the literal dot in
	// ./manage.py, so these anchor on start-of-string or whitespace.
	`\bpython\s+manage\.py\s+runserver\b`,
	`(?:^|\s)\./manage\.py\s+runserver\b`,

	// Django management commands need the containerized database;
	// startapp is carved out by the allow list below.
	`\bpython\s+manage\.py\s+\w+`,
	`(?:^|\s)\./manage\.py\s+\w+`,

	// ASGI/WSGI dev servers
	`\buvicorn\b`,
	`\bgunicorn\b`,
	`\bdaphne\b`,

	// Celery worker
	`\bcelery\s+-A\s+\w+\s+worker\b`,
}

// Built-in allowed patterns checked before the block list: build and
// test commands, the one Django command that must run locally for
// file ownership, container invocations themselves, and package
// management.
var builtinAllowed = []string{
	// Build commands
	`\bnpm\s+run\s+(build|test)\b`,
	`\byarn\s+build\b`,
	`\bvite\s+build\b`,

	// startapp creates files that must be owned by the developer
	`\bpython\s+manage\.py\s+startapp\b`,
	`(?:^|\s)\./manage\.py\s+startapp\b`,

	// Container commands are the sanctioned way to run everything else
	`\bdocker\s+compose\b`,
	`\bdocker-compose\b`,
	`\bdocker\s+`,

	// Package management
	`\bnpm\s+(install|ci|update)\b`,
	`\bpip\s+install\b`,

	// Asking a server binary for help is harmless
	`\b(uvicorn|gunicorn|daphne)\b.*--help`,
}

// guidance maps blocked command families to the help message shown to
// the agent. Checked in order; first match wins.
var guidance = []struct {
	pattern *regexp.Regexp
	message string
}{
	{
		regexp.MustCompile(`(?i)\bnpm\s+run\s+(dev|serve)\b|\byarn\s+(dev|serve)\b|\bpnpm\s+(dev|serve)\b`),
		`BLOCKED: frontend dev server

This service is already running in a container.

Instead use:
  - View logs: docker compose logs -f frontend
  - Restart:   docker compose restart frontend
  - Build:     docker compose run --rm frontend npm run build`,
	},
	{
		regexp.MustCompile(`(?i)(?:\bpython\s+manage\.py|(?:^|\s)\./manage\.py)\s+runserver\b`),
		`BLOCKED: python manage.py runserver

This service is already running in a container.

Instead use:
  - View logs: docker compose logs -f django
  - Restart:   docker compose restart django
  - Shell:     docker compose run --rm django python manage.py shell`,
	},
	{
		regexp.MustCompile(`(?i)(?:\bpython\s+manage\.py|(?:^|\s)\./manage\.py)\s+\w+`),
		`BLOCKED: python manage.py <command>

Django management commands need the containerized database.

Instead use:
  - Migrations: docker compose run --rm django python manage.py makemigrations
  - Migrate:    docker compose run --rm django python manage.py migrate
  - Shell:      docker compose run --rm django python manage.py shell
  - Anything:   docker compose run --rm django python manage.py <command>

EXCEPTION: only 'startapp' runs locally (for file ownership):
  python manage.py startapp <app_name>`,
	},
	{
		regexp.MustCompile(`(?i)\b(uvicorn|gunicorn|daphne)\b`),
		`BLOCKED: ASGI/WSGI dev server

This service is already running in a container.

Instead use:
  - View logs: docker compose logs -f backend
  - Restart:   docker compose restart backend
  - Run cmds:  docker compose run --rm backend <command>`,
	},
	{
		regexp.MustCompile(`(?i)\bcelery\s+-A\s+\w+\s+worker\b`),
		`BLOCKED: celery worker

The worker is already running in a container.

Instead use:
  - View logs: docker compose logs -f celery
  - Restart:   docker compose restart celery`,
	},
}

const defaultGuidance = "This command conflicts with services already running in containers."

// Decision is the guard's verdict on a command.
type Decision struct {
	// Block is true when the command must not run.
	Block bool

	// Reason is the guidance shown to the agent when blocked.
	Reason string
}

// Guard evaluates shell commands against allow/block pattern lists.
type Guard struct {
	allowed []*regexp.Regexp
	blocked []*regexp.Regexp
}

// NewGuard compiles the built-in pattern lists plus any workspace
// extensions. Entries from runner.local are literal command prefixes
// permitted to run outside containers; they join the allow list.
//
// Parameters:
//   - ext: Workspace guard extensions (zero value for defaults only)
//   - local: Literal commands from runner.local (may be nil)
//
// Returns:
//   - *Guard: A compiled guard
//   - error: If an extension pattern does not compile
func NewGuard(ext config.GuardConfig, local []string) (*Guard, error) {
	g := &Guard{}

	for _, p := range builtinAllowed {
		g.allowed = append(g.allowed, regexp.MustCompile(`(?i)`+p))
	}
	for _, cmd := range local {
		g.allowed = append(g.allowed, regexp.MustCompile(`(?i)(?:^|\s)`+regexp.QuoteMeta(cmd)+`(?:\s|$)`))
	}
	for _, p := range builtinBlocked {
		g.blocked = append(g.blocked, regexp.MustCompile(`(?i)`+p))
	}

	for _, p := range ext.Allowed {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("invalid guard.allowed pattern %q: %w", p, err)
		}
		g.allowed = append(g.allowed, re)
	}
	for _, p := range ext.Blocked {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return nil, fmt.Errorf("invalid guard.blocked pattern %q: %w", p, err)
		}
		g.blocked = append(g.blocked, re)
	}

	return g, nil
}

// Evaluate decides whether a command may run. The allow list is
// consulted first, then the block list; anything matching neither is
// allowed. An empty command always allows.
//
// Parameters:
//   - command: The shell command string
//
// Returns:
//   - Decision: The verdict with guidance when blocked
func (g *Guard) Evaluate(command string) Decision {
	if command == "" {
		return Decision{}
	}

	for _, re := range g.allowed {
		if re.MatchString(command) {
			return Decision{}
		}
	}

	for _, re := range g.blocked {
		if re.MatchString(command) {
			return Decision{Block: true, Reason: guidanceFor(command)}
		}
	}

	return Decision{}
}

// guidanceFor picks the help message for a blocked command.
func guidanceFor(command string) string {
	for _, entry := range guidance {
		if entry.pattern.MatchString(command) {
			return entry.message
		}
	}
	return defaultGuidance
}
