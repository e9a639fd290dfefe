package invoker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/philjestin/agentmux/internal/coordinator"
)

// Command activates agents by running an external program once per
// activation. The agent id is appended to the argument list, the merged
// input is written to stdin as JSON, and stdout is parsed as the agent's
// JSON output. Each activation is a single attempt.
type Command struct {
	// Command is the program to run (e.g. "fiber-agent").
	Command string

	// Args are passed to the program before the agent id.
	Args []string

	// WorkDir is the working directory for the program.
	WorkDir string

	// Env is additional environment variables to set.
	Env map[string]string

	// Timeout bounds a single activation (0 = no timeout).
	Timeout time.Duration
}

// NewCommand creates a Command invoker for the given program.
func NewCommand(command string, args ...string) *Command {
	return &Command{
		Command: command,
		Args:    args,
		Env:     make(map[string]string),
	}
}

// Invoke runs the program for one agent. A non-zero exit or a start
// failure is an invocation error; stderr is folded into the error message.
func (c *Command) Invoke(ctx context.Context, agentID string, input coordinator.Payload) (coordinator.Outcome, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	stdin, err := json.Marshal(input)
	if err != nil {
		return coordinator.Outcome{}, fmt.Errorf("failed to encode input for agent %s: %w", agentID, err)
	}

	args := append(append([]string{}, c.Args...), agentID)
	cmd := exec.CommandContext(ctx, c.Command, args...)
	cmd.Dir = c.WorkDir
	cmd.Env = os.Environ()
	for k, v := range c.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Stdin = bytes.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return coordinator.Outcome{}, fmt.Errorf("agent %s command failed: %w: %s", agentID, err, msg)
		}
		return coordinator.Outcome{}, fmt.Errorf("agent %s command failed: %w", agentID, err)
	}

	return coordinator.Outcome{
		Status: coordinator.StatusCompleted,
		Output: parseOutput(stdout.String()),
	}, nil
}

// parseOutput decodes the program's stdout as a JSON object, wrapping
// non-JSON output so plain-text agents still produce a payload.
func parseOutput(raw string) coordinator.Payload {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	var payload coordinator.Payload
	if err := json.Unmarshal([]byte(trimmed), &payload); err == nil {
		return payload
	}
	return coordinator.Payload{"output": trimmed}
}
