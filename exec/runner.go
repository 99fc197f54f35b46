// Package exec defines types and functions for running commands.
package exec

import (
	"context"
	"errors"
	"fmt"

	"github.com/aikaryashala/kitup/protocol"
)

// ErrInvalidCommand is returned when a command is somehow invalid.
var ErrInvalidCommand = errors.New("invalid command")

// DecorateFunc is a function that takes a command string and returns a
// decorated command string.
type DecorateFunc func(string) string

// Formatter is an interface that can format commands.
type Formatter interface {
	Command(cmd string) string
}

// SimpleRunner is a command runner that can run commands without a context.
type SimpleRunner interface {
	fmt.Stringer
	protocol.WindowsChecker
	Exec(command string, opts ...Option) error
	ExecOutput(command string, opts ...Option) (string, error)
}

// ContextRunner is a command runner that can run commands with a context.
type ContextRunner interface {
	fmt.Stringer
	protocol.WindowsChecker
	ExecContext(ctx context.Context, command string, opts ...Option) error
	ExecOutputContext(ctx context.Context, command string, opts ...Option) (string, error)
	Start(ctx context.Context, command string, opts ...Option) (protocol.Waiter, error)
}

// Runner is a full featured command runner.
type Runner interface {
	Formatter
	SimpleRunner
	ContextRunner
	// ProcessStarter is included to allow runners to accept another runner
	// as their connection for chaining.
	protocol.ProcessStarter
}
