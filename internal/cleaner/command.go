package cleaner

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

type commandCleaner struct {
	exec    executor.Executor
	command string
	args    []string
}

// NewCommand returns a Cleaner that pipes each chunk into an external command
// (for instance an agent CLI) and takes its stdout as the cleaned output.
func NewCommand(exec executor.Executor, command string, args ...string) Cleaner {
	return &commandCleaner{exec: exec, command: command, args: args}
}

func (c *commandCleaner) Clean(ctx context.Context, chunk string) (string, error) {
	out, err := c.exec.ExecuteWithInput(ctx, chunk, c.command, c.args...)
	if err != nil {
		return "", fmt.Errorf("clean via %s: %w", c.command, err)
	}
	return out, nil
}

func (c *commandCleaner) Name() string { return "command:" + c.command }
