package executor

import "context"

// Executor defines the interface for executing external commands
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithInput feeds input to the command's stdin and returns its stdout.
	ExecuteWithInput(ctx context.Context, input string, name string, args ...string) (string, error)
}
