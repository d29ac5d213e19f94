// Package quality implements the lint-and-format quality gate.
//
// A quality run executes the configured lint, format, type-check, and
// test commands for each target service, captures their output,
// extracts error codes by frequency, and evaluates the results against
// the workspace gate thresholds. Tools run inside containerized
// services via the configured runner prefix; a nonzero exit from any
// tool is reported as a failed check with its captured output shown
// verbatim. There are no retries.
package quality

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Runner executes tool commands in a working directory, optionally
// wrapped in a container prefix.
type Runner struct {
	// workDir is the working directory for commands.
	workDir string

	// prefix is prepended before the service name and command
	// (e.g. "docker compose run --rm"). Empty prefix runs on the host.
	prefix string
}

// NewRunner creates a new tool runner.
//
// Parameters:
//   - workDir: The working directory for commands
//   - prefix: The container command prefix, or "" for host execution
//
// Returns:
//   - *Runner: A new Runner instance
func NewRunner(workDir, prefix string) *Runner {
	return &Runner{workDir: workDir, prefix: prefix}
}

// ComposeCommand builds the full shell command for a tool: the runner
// prefix, the service name, then the tool command. With no prefix the
// tool command is returned unchanged.
//
// Parameters:
//   - service: The compose service name
//   - command: The tool command
//
// Returns:
//   - string: The full shell command line
func (r *Runner) ComposeCommand(service, command string) string {
	if r.prefix == "" {
		return command
	}
	return fmt.Sprintf("%s %s %s", r.prefix, service, command)
}

// Run executes a tool command and streams combined output to the
// callback while capturing it. A nonzero exit is not a Go error; it is
// reported through the returned exit code so the caller can treat it
// as a failed check.
//
// Parameters:
//   - ctx: Context for cancellation
//   - service: The compose service name ("" for host commands)
//   - command: The tool command to execute (may include shell operators)
//   - onOutput: Callback invoked per output line (may be nil)
//
// Returns:
//   - []string: All captured output lines, stdout then stderr interleaved
//   - int: The command exit code (0 on success)
//   - error: Only for failures to start or infrastructure errors
//
// The command is executed via /bin/sh -c to support pipes and redirects.
func (r *Runner) Run(ctx context.Context, service, command string, onOutput func(line string)) ([]string, int, error) {
	full := r.ComposeCommand(service, command)

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", full)
	cmd.Dir = r.workDir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, 0, fmt.Errorf("failed to start %q: %w", full, err)
	}

	var (
		mu    sync.Mutex
		lines []string
	)
	collect := func(line string) {
		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
		if onOutput != nil {
			onOutput(line)
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			collect(scanner.Text())
		}
	}()
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stderr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			collect(scanner.Text())
		}
	}()

	// Both pipes must be fully drained before Wait closes them, or
	// trailing output is lost.
	wg.Wait()
	cmdErr := cmd.Wait()

	if cmdErr != nil {
		var exitErr *exec.ExitError
		if errors.As(cmdErr, &exitErr) {
			if ctx.Err() != nil {
				return lines, exitErr.ExitCode(), fmt.Errorf("command cancelled: %w", ctx.Err())
			}
			return lines, exitErr.ExitCode(), nil
		}
		return lines, 0, fmt.Errorf("command failed: %w", cmdErr)
	}

	return lines, 0, nil
}

// CommandMissing reports whether captured output looks like the tool
// binary itself was absent, as opposed to the tool finding problems.
func CommandMissing(lines []string) bool {
	for _, line := range lines {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "command not found") ||
			strings.Contains(lower, "executable file not found") ||
			strings.Contains(lower, "no such service") {
			return true
		}
	}
	return false
}
