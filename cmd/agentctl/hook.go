// Package main provides the AI-assistant hook commands.
//
// Hooks read a JSON event on stdin and communicate with the calling
// assistant through exit codes: 0 lets the tool call proceed, 2 blocks
// it with the stderr message shown to the agent. Internal errors always
// exit 0 so a broken hook can never lock an agent out of its tools.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/agentworks/agentctl/internal/config"
	"github.com/agentworks/agentctl/internal/hook"
	"github.com/agentworks/agentctl/internal/quality"
)

var hookQualityScopes []string

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "AI-assistant hook entry points",
	Long: `Hook entry points for AI coding assistants.

Wire these into your assistant's PreToolUse hooks:

  guard    Blocks long-running dev server commands that would hang an
           agent's shell (npm run dev, manage.py runserver, uvicorn, ...)
           and explains the containerized alternative.
  quality  Warns when frontend TypeScript files are edited, reminding
           the agent of test, typing, and composable conventions.

Both read the hook event JSON on stdin. Exit code 2 blocks the tool
call; anything else allows it.`,
}

var hookGuardCmd = &cobra.Command{
	Use:   "guard",
	Short: "Block dev-server commands (PreToolUse Bash hook)",
	Run:   runHookGuard,
}

var hookQualityCmd = &cobra.Command{
	Use:   "quality",
	Short: "Warn on frontend file edits (PreToolUse Write/Edit hook)",
	Run:   runHookQuality,
}

func init() {
	hookQualityCmd.Flags().StringSliceVar(&hookQualityScopes, "scope", nil, "Path fragments that trigger warnings (default frontend/src)")

	hookCmd.AddCommand(hookGuardCmd)
	hookCmd.AddCommand(hookQualityCmd)
}

// runHookGuard evaluates a Bash command against the guard patterns.
// Never returns an error: a hook that fails must not block the agent.
func runHookGuard(cmd *cobra.Command, args []string) {
	in, err := hook.ParseInput(os.Stdin)
	if err != nil {
		log.Debug("hook guard: unreadable input", "err", err)
		os.Exit(hook.ExitAllow)
	}

	guardCfg := config.GuardConfig{}
	var local []string
	if cfg, _, err := requireWorkspace(); err == nil {
		guardCfg = cfg.Guard
		local = cfg.Runner.Local
	}

	guard, err := hook.NewGuard(guardCfg, local)
	if err != nil {
		log.Debug("hook guard: bad pattern config", "err", err)
		os.Exit(hook.ExitAllow)
	}

	decision := guard.Evaluate(in.Command)
	if decision.Block {
		fmt.Fprintln(os.Stderr, decision.Reason)
		os.Exit(hook.ExitBlock)
	}
	os.Exit(hook.ExitAllow)
}

// runHookQuality warns about frontend file edits. Always exits 0; the
// warning text on stderr is informational, never blocking.
func runHookQuality(cmd *cobra.Command, args []string) {
	in, err := hook.ParseInput(os.Stdin)
	if err != nil {
		log.Debug("hook quality: unreadable input", "err", err)
		os.Exit(hook.ExitAllow)
	}

	guard := hook.NewQualityGuard(hookQualityScopes, typeErrorProbe())
	if warning := guard.Check(in); warning != "" {
		fmt.Fprintln(os.Stderr, warning)
	}
	os.Exit(hook.ExitAllow)
}

// typeErrorProbe returns a function that counts current frontend type
// errors, or nil when no workspace with a type-check command exists.
func typeErrorProbe() func() (int, error) {
	cfg, root, err := requireWorkspace()
	if err != nil {
		return nil
	}

	svc, ok := cfg.Services["frontend"]
	if !ok || svc.TypeCheck == "" {
		return nil
	}

	return func() (int, error) {
		runner := quality.NewRunner(root, cfg.EffectivePrefix())
		lines, _, err := runner.Run(context.Background(), svc.Service, svc.TypeCheck, nil)
		if err != nil {
			return 0, err
		}

		count := 0
		for _, line := range lines {
			if strings.Contains(line, "error TS") {
				count++
			}
		}
		return count, nil
	}
}
