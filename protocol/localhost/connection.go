// Package localhost provides a connection to the local host using the os/exec
// package.
package localhost

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/aikaryashala/kitup/protocol"
)

// Connection is a direct localhost connection.
type Connection struct{}

// NewConnection creates a new localhost connection. Error is currently always nil.
func NewConnection() (*Connection, error) {
	return &Connection{}, nil
}

// String returns the connection's printable name.
func (c *Connection) String() string {
	return "localhost"
}

// IsWindows is true when running on a windows host.
func (c *Connection) IsWindows() bool {
	return runtime.GOOS == "windows"
}

// StartProcess starts a command on the host and uses the passed in streams for
// stdin, stdout and stderr. It returns a Waiter whose Wait blocks until the
// command finishes and returns an error if the exit code is not zero.
func (c *Connection) StartProcess(ctx context.Context, cmd string, stdin io.Reader, stdout, stderr io.Writer) (protocol.Waiter, error) {
	command := c.command(ctx, cmd)

	command.Stdin = stdin
	command.Stdout = stdout
	command.Stderr = stderr

	if err := command.Start(); err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}

	return command, nil
}

func (c *Connection) command(ctx context.Context, cmd string) *exec.Cmd {
	if c.IsWindows() {
		return exec.CommandContext(ctx, "cmd.exe", "/c", cmd)
	}

	return exec.CommandContext(ctx, "sh", "-c", "--", cmd)
}
