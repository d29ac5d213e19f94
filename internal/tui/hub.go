// Package tui provides the hub model -- the workspace dashboard with quick actions.
package tui

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentworks/agentctl/internal/catalog"
	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/trend"
)

// quickAction defines an item in the Quick Actions menu.
type quickAction struct {
	Label string
	Key   string
}

// quickActions is the ordered list of actions on the dashboard.
var quickActions = []quickAction{
	{Label: "Run quality checks", Key: "check"},
	{Label: "Run quality checks with auto-fix", Key: "fix"},
	{Label: "Generate legal documents", Key: "legal"},
	{Label: "Install assets", Key: "assets"},
	{Label: "Run doctor", Key: "doctor"},
}

// hubModel is the top-level Bubble Tea model for the TUI hub.
type hubModel struct {
	version string

	// Workspace data
	cfg     *config.WorkspaceConfig
	root    string
	entries []trend.Entry
	assets  []AssetItem

	// Quick actions
	actionCursor int

	// Shared state
	loading bool
	spinner spinner.Model
	err     error
	width   int
	height  int
}

// newHubModel creates the initial hub model.
func newHubModel(version string) hubModel {
	return hubModel{
		version: version,
		loading: true,
		spinner: newSpinner(),
	}
}

// --- Tea commands for async operations ---

// loadWorkspaceCmd finds and loads the nearest workspace configuration.
func loadWorkspaceCmd() tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		cfg, root, err := config.LoadNearest(wd)
		if err != nil {
			return WorkspaceMsg{Err: fmt.Errorf("no workspace found — run 'agentctl init' first")}
		}
		return WorkspaceMsg{Config: cfg, Root: root}
	}
}

// loadTrendCmd reads the most recent quality runs from the trend file.
func loadTrendCmd(cfg *config.WorkspaceConfig, root string) tea.Cmd {
	return func() tea.Msg {
		store := trend.NewStore(filepath.Join(root, cfg.EffectiveTrendFile()), cfg.Trend.MaxEntries)
		entries, err := store.Last(5)
		if err != nil {
			// A corrupt trend file degrades to an empty history.
			return TrendMsg{}
		}
		return TrendMsg{Entries: entries}
	}
}

// loadAssetsCmd reads the embedded catalog and probes install state.
func loadAssetsCmd(root string) tea.Cmd {
	return func() tea.Msg {
		all, err := catalog.All()
		if err != nil {
			return AssetsMsg{Err: err}
		}
		items := make([]AssetItem, len(all))
		for i, a := range all {
			items[i] = AssetItem{
				Name:      a.Name,
				Kind:      string(a.Kind),
				Installed: catalog.Installed(a, "claude", root),
			}
		}
		return AssetsMsg{Assets: items}
	}
}

// --- Bubble Tea interface ---

// Init starts the spinner and kicks off the workspace load.
func (m hubModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadWorkspaceCmd())
}

// Update handles all incoming messages and key events.
func (m hubModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case WorkspaceMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.cfg = msg.Config
		m.root = msg.Root
		return m, tea.Batch(
			loadTrendCmd(m.cfg, m.root),
			loadAssetsCmd(m.root),
		)

	case TrendMsg:
		if msg.Err == nil {
			m.entries = msg.Entries
		}
		return m, nil

	case AssetsMsg:
		if msg.Err == nil {
			m.assets = msg.Assets
		}
		return m, nil

	case actionDoneMsg:
		// Refresh after a subprocess action so the trend reflects it.
		if m.cfg != nil {
			return m, loadTrendCmd(m.cfg, m.root)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes key events on the dashboard.
func (m hubModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "k":
		if m.actionCursor > 0 {
			m.actionCursor--
		}

	case "down", "j":
		if m.actionCursor < len(quickActions)-1 {
			m.actionCursor++
		}

	case "enter":
		return m.executeQuickAction()

	case "1":
		m.actionCursor = 0
		return m.executeQuickAction()
	case "2":
		m.actionCursor = 1
		return m.executeQuickAction()
	case "3":
		m.actionCursor = 2
		return m.executeQuickAction()
	case "4":
		m.actionCursor = 3
		return m.executeQuickAction()
	case "5":
		m.actionCursor = 4
		return m.executeQuickAction()

	case "r", "R":
		m.loading = true
		m.err = nil
		m.entries = nil
		m.assets = nil
		return m, tea.Batch(m.spinner.Tick, loadWorkspaceCmd())
	}

	return m, nil
}

// actionDoneMsg signals that a quick-action subprocess completed.
type actionDoneMsg struct{ err error }

// executeQuickAction dispatches the currently selected quick action.
// Actions shell out to the CLI itself so the TUI and the commands never
// drift apart.
func (m hubModel) executeQuickAction() (tea.Model, tea.Cmd) {
	if m.actionCursor >= len(quickActions) || m.cfg == nil {
		return m, nil
	}

	action := quickActions[m.actionCursor]
	var args []string
	switch action.Key {
	case "check":
		args = []string{"quality", "check"}
	case "fix":
		args = []string{"quality", "check", "--fix"}
	case "legal":
		args = []string{"legal", "generate"}
	case "assets":
		args = []string{"assets", "install", "--all"}
	case "doctor":
		args = []string{"doctor"}
	default:
		return m, nil
	}

	return m, tea.ExecProcess(selfCmd(args...), func(err error) tea.Msg {
		return actionDoneMsg{err: err}
	})
}

// selfCmd returns an exec.Cmd invoking this binary with the given args.
func selfCmd(args ...string) *exec.Cmd {
	exe, err := os.Executable()
	if err != nil {
		exe = "agentctl"
	}
	return exec.Command(exe, args...)
}

// --- Helpers ---

// relativeTime formats a timestamp as a human-readable relative time string.
func relativeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	}
}

// runIcon returns a styled icon for a trend entry.
func runIcon(e trend.Entry) string {
	switch {
	case e.GatePassed && e.Total() == 0 && !e.TestsFailed:
		return successStyle.Render("✓")
	case !e.GatePassed:
		return errorStyle.Render("✗")
	default:
		return warningStyle.Render("⚠")
	}
}

// --- View rendering ---

// View renders the dashboard.
func (m hubModel) View() string {
	var b strings.Builder
	w := m.width
	if w == 0 {
		w = 80
	}
	sepW := min(w, 60)

	b.WriteString(titleStyle.Render(" AGENTCTL") + "  " + versionStyle.Render("v"+m.version) + "\n")
	b.WriteString(separator(sepW) + "\n")

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("  ✗ "+m.err.Error()) + "\n\n")
		b.WriteString(helpStyle.Render("  r refresh  q quit") + "\n")
		return b.String()
	}

	if m.loading {
		b.WriteString("\n  " + m.spinner.View() + " Loading...\n")
		return b.String()
	}

	// Workspace
	b.WriteString(sectionStyle.Render("  WORKSPACE") + "\n")
	b.WriteString("  " + separator(min(w-4, 56)) + "\n")
	b.WriteString(m.renderWorkspace())

	// Recent quality runs
	b.WriteString(sectionStyle.Render("  RECENT QUALITY RUNS") + "\n")
	b.WriteString("  " + separator(min(w-4, 56)) + "\n")
	b.WriteString(m.renderRecentRuns())

	// Assets
	b.WriteString(sectionStyle.Render("  ASSETS") + "\n")
	b.WriteString("  " + separator(min(w-4, 56)) + "\n")
	b.WriteString(m.renderAssets())

	// Quick actions
	b.WriteString(sectionStyle.Render("  QUICK ACTIONS") + "\n")
	b.WriteString("  " + separator(min(w-4, 56)) + "\n")
	for i, a := range quickActions {
		cur := "  "
		style := normalStyle
		if i == m.actionCursor {
			cur = selectedStyle.Render("▸ ")
			style = selectedStyle
		}
		num := dimStyle.Render(fmt.Sprintf("[%d] ", i+1))
		b.WriteString("  " + cur + num + style.Render(a.Label) + "\n")
	}

	b.WriteString("\n  " + separator(min(w-4, 56)) + "\n")
	keys := []string{
		helpKeyRender("enter", "select"),
		helpKeyRender("1-5", "jump"),
		helpKeyRender("r", "refresh"),
		helpKeyRender("q", "quit"),
	}
	b.WriteString("  " + strings.Join(keys, "  ") + "\n")
	return b.String()
}

// renderWorkspace renders the workspace summary row.
func (m hubModel) renderWorkspace() string {
	if m.cfg == nil {
		return "  " + dimStyle.Render("Loading workspace...") + "\n"
	}
	parts := []string{
		metricRender("Project", m.cfg.Project.Name),
		metricRender("Targets", fmt.Sprintf("%d", len(m.cfg.Services))),
		metricRender("Root", m.root),
	}
	return "  " + strings.Join(parts, "    ") + "\n"
}

// metricRender formats a metric label/value pair.
func metricRender(label, value string) string {
	return dimStyle.Render(label+" ") + normalStyle.Bold(true).Render(value)
}

// renderRecentRuns renders the trend history section, newest last.
func (m hubModel) renderRecentRuns() string {
	if len(m.entries) == 0 {
		return "  " + dimStyle.Render("No quality runs recorded yet") + "\n"
	}
	var b strings.Builder
	for _, e := range m.entries {
		icon := runIcon(e)
		counts := fmt.Sprintf("%d lint, %d type", e.LintErrors, e.TypeErrors)
		if e.TestsFailed {
			counts += ", tests failed"
		}
		ts, _ := time.Parse(time.RFC3339, e.Timestamp)
		ago := dimStyle.Render(relativeTime(ts))
		b.WriteString(fmt.Sprintf("  %s  %-28s  %s\n", icon, normalStyle.Render(counts), ago))
	}
	return b.String()
}

// renderAssets renders the asset catalog rows.
func (m hubModel) renderAssets() string {
	if len(m.assets) == 0 {
		return "  " + dimStyle.Render("Loading assets...") + "\n"
	}
	var b strings.Builder
	for _, a := range m.assets {
		state := dimStyle.Render("not installed")
		if a.Installed {
			state = successStyle.Render("installed")
		}
		kind := dimStyle.Render(fmt.Sprintf("%-8s", a.Kind))
		b.WriteString(fmt.Sprintf("  %s %-24s %s\n", kind, normalStyle.Render(a.Name), state))
	}
	return b.String()
}

// --- Tea program runner ---

// RunHub launches the TUI hub. This is the main entry point called from
// cmd/agentctl/main.go.
//
// Parameters:
//   - version: the CLI version string for display
//
// Returns:
//   - error: any error from the Bubble Tea runtime
func RunHub(version string) error {
	p := tea.NewProgram(
		newHubModel(version),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
