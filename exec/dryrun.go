package exec

import (
	"context"
	"io"

	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/protocol"
)

var _ protocol.Connection = (*DryRunConnection)(nil)

// DryRunConnection wraps a connection and logs the commands that would have
// been started instead of starting them. Every command succeeds with no
// output.
type DryRunConnection struct {
	log.LoggerInjectable
	conn protocol.Connection
}

// NewDryRunConnection returns a connection that only logs commands.
func NewDryRunConnection(conn protocol.Connection) *DryRunConnection {
	return &DryRunConnection{conn: conn}
}

// String returns the connection's printable name.
func (c *DryRunConnection) String() string {
	return "dry-run " + c.conn.String()
}

// IsWindows is delegated to the wrapped connection.
func (c *DryRunConnection) IsWindows() bool {
	return c.conn.IsWindows()
}

// StartProcess logs the command and returns a waiter that reports success.
func (c *DryRunConnection) StartProcess(_ context.Context, cmd string, _ io.Reader, _ io.Writer, _ io.Writer) (protocol.Waiter, error) {
	c.Log().Info("dry-run", log.KeyCommand, cmd)
	return nopWaiter{}, nil
}

type nopWaiter struct{}

func (nopWaiter) Wait() error { return nil }
