package exec

import (
	"context"
	"io"

	"github.com/aikaryashala/kitup/protocol"
)

// ErrorExecutor is a Runner that returns the same error on every operation.
// It is used in place of a real runner when initialization has failed.
type ErrorExecutor struct {
	Err error
}

// NewErrorExecutor returns a new ErrorExecutor carrying the given error.
func NewErrorExecutor(err error) *ErrorExecutor {
	return &ErrorExecutor{Err: err}
}

func (r *ErrorExecutor) Command(cmd string) string { return cmd }
func (r *ErrorExecutor) IsWindows() bool           { return false }
func (r *ErrorExecutor) String() string            { return "error-executor" }

func (r *ErrorExecutor) Start(_ context.Context, _ string, _ ...Option) (protocol.Waiter, error) {
	return nil, r.Err
}

func (r *ErrorExecutor) ExecContext(_ context.Context, _ string, _ ...Option) error {
	return r.Err
}

func (r *ErrorExecutor) Exec(_ string, _ ...Option) error { return r.Err }

func (r *ErrorExecutor) ExecOutputContext(_ context.Context, _ string, _ ...Option) (string, error) {
	return "", r.Err
}

func (r *ErrorExecutor) ExecOutput(_ string, _ ...Option) (string, error) {
	return "", r.Err
}

func (r *ErrorExecutor) StartProcess(_ context.Context, _ string, _ io.Reader, _ io.Writer, _ io.Writer) (protocol.Waiter, error) {
	return nil, r.Err
}
