// Package hook implements the host-tool hook protocol.
//
// The host AI-assistant tool invokes hooks with a JSON payload on
// stdin describing the tool call about to happen. Hooks respond
// through their exit status: 0 allows the action, 2 blocks it and
// surfaces stderr to the agent. Hooks must never block on their own
// failures, so any internal error is reported and treated as allow.
package hook

import (
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// Exit codes understood by the host tool.
const (
	// ExitAllow permits the action.
	ExitAllow = 0

	// ExitBlock denies the action and shows stderr to the agent.
	ExitBlock = 2
)

// Input is the subset of the hook payload the guards act on.
type Input struct {
	// ToolName is the host tool being invoked ("Bash", "Write", "Edit").
	ToolName string

	// Command is the shell command for Bash tool calls.
	Command string

	// FilePath is the target path for Write/Edit tool calls.
	FilePath string
}

// ParseInput reads and extracts the hook payload from r. Unknown or
// missing fields are empty strings, never errors; only unreadable or
// invalid JSON fails.
//
// Parameters:
//   - r: The payload source (stdin in production)
//
// Returns:
//   - *Input: The extracted fields
//   - error: If the payload cannot be read or is not JSON
func ParseInput(r io.Reader) (*Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read hook input: %w", err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("hook input is not valid JSON")
	}

	return &Input{
		ToolName: gjson.GetBytes(data, "tool_name").String(),
		Command:  gjson.GetBytes(data, "tool_input.command").String(),
		FilePath: gjson.GetBytes(data, "tool_input.file_path").String(),
	}, nil
}
