package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/protocol"
)

// validate interfaces.
var (
	_ Runner        = (*Executor)(nil)
	_ SimpleRunner  = (*Executor)(nil)
	_ ContextRunner = (*Executor)(nil)
	_ Formatter     = (*Executor)(nil)
	_ fmt.Stringer  = (*Executor)(nil)

	errInternal = errors.New("internal error")
)

// Executor is a Runner that runs commands over a connection.
type Executor struct {
	log.LoggerInjectable
	connection protocol.ProcessStarter
	decorators []DecorateFunc
	isWin      func() bool
}

func isWinFunc(conn protocol.ProcessStarter) func() bool {
	return func() bool {
		if wc, ok := conn.(protocol.WindowsChecker); ok {
			return wc.IsWindows()
		}
		cmd, err := conn.StartProcess(context.Background(), "ver.exe", nil, nil, nil)
		if err != nil || cmd.Wait() != nil {
			return false
		}
		return true
	}
}

// NewExecutor returns a new Executor running commands over the given connection.
func NewExecutor(conn protocol.ProcessStarter, decorators ...DecorateFunc) *Executor {
	return &Executor{
		connection: conn,
		decorators: decorators,
		isWin:      sync.OnceValue(isWinFunc(conn)),
	}
}

// Command returns the command string decorated with the runner's decorators.
func (r *Executor) Command(cmd string) string {
	for _, decorator := range r.decorators {
		cmd = decorator(cmd)
	}
	return cmd
}

// IsWindows returns true when the connection runs commands on a windows host.
func (r *Executor) IsWindows() bool {
	return r.isWin()
}

// String returns the executor's string representation.
func (r *Executor) String() string {
	if s, ok := r.connection.(fmt.Stringer); ok {
		return s.String()
	}
	return "executor"
}

// Start starts the command and returns a Waiter.
func (r *Executor) Start(ctx context.Context, command string, opts ...Option) (protocol.Waiter, error) {
	return r.start(ctx, command, Build(opts...))
}

func (r *Executor) start(ctx context.Context, command string, execOpts *Options) (protocol.Waiter, error) {
	if ctx.Err() != nil {
		return nil, fmt.Errorf("runner context error: %w", ctx.Err())
	}

	r.InjectLoggerTo(execOpts)

	cmd := r.Command(execOpts.Command(command))
	log.Trace(ctx, "starting command", log.KeyCommand, cmd)
	if execOpts.LogCommand() {
		r.Log().Debug("executing command", log.KeyCommand, cmd)
	}
	waiter, err := r.connection.StartProcess(ctx, cmd, execOpts.Stdin(), execOpts.Stdout(), execOpts.Stderr())
	if err != nil {
		return nil, fmt.Errorf("runner start command: %w", err)
	}
	if waiter == nil {
		return nil, fmt.Errorf("%w: connection returned no error but a nil waiter", errInternal)
	}
	return waiter, nil
}

// ExecContext executes the command and returns an error if unsuccessful. The
// tail of the command's stderr is attached to the error so diagnostics of a
// failed command survive into the error chain.
func (r *Executor) ExecContext(ctx context.Context, command string, opts ...Option) error {
	execOpts := Build(opts...)
	proc, err := r.start(ctx, command, execOpts)
	if err != nil {
		return fmt.Errorf("start command: %w", err)
	}
	if err := proc.Wait(); err != nil {
		log.Trace(ctx, "command failed", log.KeyCommand, command, log.KeyError, err)
		if tail := execOpts.ErrorOutput(); tail != "" {
			return fmt.Errorf("command result: %w (%s)", err, tail)
		}
		return fmt.Errorf("command result: %w", err)
	}

	return nil
}

// Exec executes the command and returns an error if unsuccessful.
func (r *Executor) Exec(command string, opts ...Option) error {
	return r.ExecContext(context.Background(), command, opts...)
}

// ExecOutputContext executes the command and returns the stdout output or an error.
func (r *Executor) ExecOutputContext(ctx context.Context, command string, opts ...Option) (string, error) {
	out := &bytes.Buffer{}
	defer out.Reset()

	opts = append(opts, Stdout(out))
	execOpts := Build(opts...)

	proc, err := r.start(ctx, command, execOpts)
	if err != nil {
		return "", fmt.Errorf("start command: %w", err)
	}
	if err := proc.Wait(); err != nil {
		if tail := execOpts.ErrorOutput(); tail != "" {
			return "", fmt.Errorf("command result: %w (%s)", err, tail)
		}
		return "", fmt.Errorf("command result: %w", err)
	}

	return execOpts.FormatOutput(out.String()), nil
}

// ExecOutput executes the command and returns the stdout output or an error.
func (r *Executor) ExecOutput(command string, opts ...Option) (string, error) {
	return r.ExecOutputContext(context.Background(), command, opts...)
}

// StartProcess calls the connection's StartProcess method with the decorated
// command. This satisfies the connection interface and allows chaining of
// runners.
func (r *Executor) StartProcess(ctx context.Context, command string, stdin io.Reader, stdout io.Writer, stderr io.Writer) (protocol.Waiter, error) {
	waiter, err := r.connection.StartProcess(ctx, r.Command(command), stdin, stdout, stderr)
	if err != nil {
		return nil, fmt.Errorf("runner start process: %w", err)
	}
	return waiter, nil
}
