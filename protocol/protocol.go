// Package protocol contains the interfaces for connections that can start
// processes.
package protocol

import (
	"context"
	"fmt"
	"io"
)

// Waiter is a process that can be waited to finish.
type Waiter interface {
	Wait() error
}

// ProcessStarter can start processes.
type ProcessStarter interface {
	StartProcess(ctx context.Context, cmd string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (Waiter, error)
}

// WindowsChecker is a type that can check if the underlying system is Windows.
type WindowsChecker interface {
	IsWindows() bool
}

// Connection is the minimum interface for connection implementations.
type Connection interface {
	fmt.Stringer
	ProcessStarter
	WindowsChecker
}
