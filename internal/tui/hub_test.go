package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/trend"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestShouldRunTUI_FlagsGate(t *testing.T) {
	if ShouldRunTUI(true, false) {
		t.Fatal("expected --json to suppress the TUI")
	}
	if ShouldRunTUI(false, true) {
		t.Fatal("expected --quiet to suppress the TUI")
	}
}

func TestHandleKey_QuitQuits(t *testing.T) {
	m := newHubModel("dev")

	_, cmd := m.handleKey(keyRune('q'))
	if cmd == nil {
		t.Fatal("expected quit command on q")
	}
}

func TestHandleKey_CursorMoves(t *testing.T) {
	m := newHubModel("dev")

	next, _ := m.handleKey(keyRune('j'))
	if got := next.(hubModel).actionCursor; got != 1 {
		t.Fatalf("expected cursor 1 after j, got %d", got)
	}

	m.actionCursor = len(quickActions) - 1
	next, _ = m.handleKey(keyRune('j'))
	if got := next.(hubModel).actionCursor; got != len(quickActions)-1 {
		t.Fatalf("expected cursor clamped at %d, got %d", len(quickActions)-1, got)
	}

	m.actionCursor = 0
	next, _ = m.handleKey(keyRune('k'))
	if got := next.(hubModel).actionCursor; got != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", got)
	}
}

func TestHandleKey_RefreshReloads(t *testing.T) {
	m := newHubModel("dev")
	m.loading = false
	m.entries = []trend.Entry{{ID: "run-1"}}

	next, cmd := m.handleKey(keyRune('r'))
	if cmd == nil {
		t.Fatal("expected reload command on r")
	}
	nm := next.(hubModel)
	if !nm.loading {
		t.Fatal("expected loading=true while refresh runs")
	}
	if nm.entries != nil {
		t.Fatal("expected trend entries to be cleared on refresh")
	}
}

func TestExecuteQuickAction_NoWorkspaceIsNoop(t *testing.T) {
	m := newHubModel("dev")

	_, cmd := m.executeQuickAction()
	if cmd != nil {
		t.Fatal("expected no action command without a loaded workspace")
	}
}

func TestExecuteQuickAction_RunsSubprocess(t *testing.T) {
	m := newHubModel("dev")
	m.cfg = config.DefaultConfig("demo")
	m.root = t.TempDir()

	_, cmd := m.executeQuickAction()
	if cmd == nil {
		t.Fatal("expected a subprocess command for the check action")
	}
}

func TestUpdate_WorkspaceErrorRendered(t *testing.T) {
	m := newHubModel("dev")

	next, _ := m.Update(WorkspaceMsg{Err: errNoWorkspace()})
	nm := next.(hubModel)
	if nm.err == nil {
		t.Fatal("expected workspace error to be stored")
	}

	out := nm.View()
	if !strings.Contains(out, "agentctl init") {
		t.Fatalf("expected error view to mention init, got:\n%s", out)
	}
}

func TestView_ShowsRecentRuns(t *testing.T) {
	m := newHubModel("dev")
	m.loading = false
	m.cfg = config.DefaultConfig("demo")
	m.root = "/tmp/demo"
	m.width = 100
	m.entries = []trend.Entry{
		{
			ID:         "run-1",
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			LintErrors: 3,
			TypeErrors: 1,
			GatePassed: false,
		},
	}

	out := m.View()
	if !strings.Contains(out, "3 lint, 1 type") {
		t.Fatalf("expected run counts in view, got:\n%s", out)
	}
	if !strings.Contains(out, "RECENT QUALITY RUNS") {
		t.Fatalf("expected runs section header, got:\n%s", out)
	}
}

func TestView_EmptyTrend(t *testing.T) {
	m := newHubModel("dev")
	m.loading = false
	m.cfg = config.DefaultConfig("demo")
	m.root = "/tmp/demo"

	out := m.View()
	if !strings.Contains(out, "No quality runs recorded yet") {
		t.Fatalf("expected empty-trend placeholder, got:\n%s", out)
	}
}

// errNoWorkspace mirrors the message loadWorkspaceCmd produces.
func errNoWorkspace() error {
	return &workspaceError{}
}

type workspaceError struct{}

func (*workspaceError) Error() string { return "no workspace found — run 'agentctl init' first" }
