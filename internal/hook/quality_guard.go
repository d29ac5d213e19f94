package hook

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// patternWarning couples a file-path trigger with the reminder shown
// to the agent before it writes that kind of file.
type patternWarning struct {
	name    string
	trigger *regexp.Regexp
	warning string
}

// qualityWarnings are advisory reminders for file categories that
// historically produced type errors. Checked in order; first match
// wins.
var qualityWarnings = []patternWarning{
	{
		name:    "test file",
		trigger: regexp.MustCompile(`\.(spec|test)\.ts$`),
		warning: `TYPE-SAFETY REMINDER: writing a test file

Patterns that commonly fail type-check in tests:

1. Template refs — cast to the concrete element type:
   (wrapper.find('[data-test="input"]').element as HTMLInputElement).value

2. Component instance access — cast the vm in tests:
   await (wrapper.vm as any).methodName()

3. Mock composables — match the real return types:
   use computed(() => value) for computed refs, not ref(value)

4. Complete mocks — include every required property of the mocked type.`,
	},
	{
		name:    "component",
		trigger: regexp.MustCompile(`\.vue$`),
		warning: `TYPE-SAFETY REMINDER: writing a component

Before writing component code:

1. Make sure the codebase type-checks cleanly first:
   agentctl quality check frontend

2. When adding union types or enums, include ALL possible values now,
   not later.

3. Give API calls explicit generic types:
   api.get<User>('/users/me/') not api.get('/users/me/')`,
	},
	{
		name:    "type definitions",
		trigger: regexp.MustCompile(`\.types\.ts$|(?:^|/)types/[^/]+\.ts$`),
		warning: `TYPE-SAFETY REMINDER: writing type definitions

1. Union types — include all possible values up front.
2. Interfaces — mark optional fields with '?'.
3. null vs undefined — pick one and stay consistent (prefer null).

Common failure: adding union values only after code already uses them.
Update the type FIRST, then use the new values.`,
	},
	{
		name:    "composable",
		trigger: regexp.MustCompile(`(?:^|/)composables/[^/]+\.ts$`),
		warning: `TYPE-SAFETY REMINDER: writing a composable

1. Computed values return ComputedRef<T>, not Ref<T>.
2. Mutable state uses Ref<T>.
3. Explicitly type the returned object.

If the logic computes a value, use computed(), not ref().`,
	},
}

// QualityGuard produces advisory warnings before Write/Edit tool
// calls. It never blocks; its exit status is always ExitAllow.
type QualityGuard struct {
	// scopes limits warnings to files under these path prefixes.
	scopes []string

	// errorCount optionally probes the current type error count.
	// Nil skips the probe. Failures are swallowed; the probe is
	// best-effort by design of the hook protocol.
	errorCount func() (int, error)
}

// NewQualityGuard creates a quality guard scoped to the given path
// prefixes (typically the frontend source dirs). Empty scopes default
// to "frontend/src".
//
// Parameters:
//   - scopes: Path prefixes that receive warnings
//   - errorCount: Optional current-error-count probe (may be nil)
//
// Returns:
//   - *QualityGuard: A new guard
func NewQualityGuard(scopes []string, errorCount func() (int, error)) *QualityGuard {
	if len(scopes) == 0 {
		scopes = []string{"frontend/src"}
	}
	return &QualityGuard{scopes: scopes, errorCount: errorCount}
}

// Check returns the warning for a Write/Edit tool call, or "" when no
// reminder applies.
//
// Parameters:
//   - in: The parsed hook input
//
// Returns:
//   - string: The advisory text, empty when the call is out of scope
func (q *QualityGuard) Check(in *Input) string {
	if in.ToolName != "Write" && in.ToolName != "Edit" {
		return ""
	}
	if in.FilePath == "" || !q.inScope(in.FilePath) {
		return ""
	}

	path := filepath.ToSlash(in.FilePath)
	for _, pw := range qualityWarnings {
		if !pw.trigger.MatchString(path) {
			continue
		}

		warning := pw.warning
		if q.errorCount != nil {
			if count, err := q.errorCount(); err == nil && count > 0 {
				warning += fmt.Sprintf("\n\nCURRENT TYPE ERRORS: %d\n", count)
				warning += "Consider fixing existing errors before adding new code:\n"
				warning += "  agentctl quality check frontend"
			}
		}
		return warning
	}

	return ""
}

// inScope reports whether a path falls under any configured scope.
func (q *QualityGuard) inScope(path string) bool {
	normalized := filepath.ToSlash(path)
	for _, scope := range q.scopes {
		if strings.Contains(normalized, filepath.ToSlash(scope)) {
			return true
		}
	}
	return false
}
