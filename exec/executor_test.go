package exec_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/kituptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec(t *testing.T) {
	runner := kituptest.NewMockRunner()
	require.NoError(t, runner.Exec("true"))
	kituptest.ReceivedEqual(t, runner.MockConnection, "true")
}

func TestExecOutput(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommandOutput(kituptest.Equal("echo hello"), "hello\n")

	out, err := runner.ExecOutput("echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out, "output should be trimmed by default")

	out, err = runner.ExecOutput("echo hello", exec.TrimOutput(false))
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestExecError(t *testing.T) {
	runner := kituptest.NewMockRunner()
	testErr := errors.New("command failed")
	runner.AddCommandFailure(kituptest.Equal("false"), testErr)

	err := runner.Exec("false")
	require.ErrorIs(t, err, testErr)
}

func TestExecErrorIncludesStderr(t *testing.T) {
	runner := kituptest.NewMockRunner()
	testErr := errors.New("exit status 100")
	runner.AddCommand(kituptest.HasPrefix("apt-get install"), func(a *kituptest.A) error {
		fmt.Fprintln(a.Stderr, "E: Unable to locate package lldb-99")
		return testErr
	})

	err := runner.Exec("apt-get install -y lldb-99")
	require.ErrorIs(t, err, testErr)
	assert.ErrorContains(t, err, "Unable to locate package lldb-99", "stderr of a failed command should end up in the error")
}

func TestExecOutputErrorIncludesStderr(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.Equal("pip show check50"), func(a *kituptest.A) error {
		fmt.Fprintln(a.Stderr, "WARNING: Package(s) not found: check50")
		return assert.AnError
	})

	_, err := runner.ExecOutput("pip show check50")
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found: check50")
}

func TestExecContextCanceled(t *testing.T) {
	runner := kituptest.NewMockRunner()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.ExecContext(ctx, "true")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, runner.Len(), "no command should have been started")
}

func TestExecStdin(t *testing.T) {
	runner := kituptest.NewMockRunner()
	var received string
	runner.AddCommand(kituptest.Equal("cat"), func(a *kituptest.A) error {
		buf := make([]byte, 64)
		n, _ := a.Stdin.Read(buf)
		received = string(buf[:n])
		return nil
	})

	require.NoError(t, runner.Exec("cat", exec.StdinString("test input")))
	assert.Equal(t, "test input", received)
}

func TestDecorators(t *testing.T) {
	connection := kituptest.NewMockConnection()
	runner := exec.NewExecutor(connection, func(cmd string) string { return "wrapped " + cmd })

	require.NoError(t, runner.Exec("true"))
	assert.Equal(t, "wrapped true", connection.LastCommand())
	assert.Equal(t, "wrapped ls", runner.Command("ls"))
}

func TestChainedRunners(t *testing.T) {
	connection := kituptest.NewMockConnection()
	inner := exec.NewExecutor(connection, func(cmd string) string { return "inner " + cmd })
	outer := exec.NewExecutor(inner, func(cmd string) string { return "outer " + cmd })

	require.NoError(t, outer.Exec("true"))
	assert.Equal(t, "inner outer true", connection.LastCommand())
}

func TestErrorExecutor(t *testing.T) {
	testErr := errors.New("init failed")
	runner := exec.NewErrorExecutor(testErr)

	require.ErrorIs(t, runner.Exec("true"), testErr)
	_, err := runner.ExecOutput("true")
	require.ErrorIs(t, err, testErr)
	require.ErrorIs(t, runner.ExecContext(context.Background(), "true"), testErr)
}

func TestExitCode(t *testing.T) {
	assert.Zero(t, exec.ExitCode(nil, 1))
	assert.Equal(t, 1, exec.ExitCode(errors.New("plain"), 1))
}
