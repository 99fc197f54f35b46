//go:build !windows

package localhost_test

import (
	"testing"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/protocol/localhost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecOutput(t *testing.T) {
	conn, err := localhost.NewConnection()
	require.NoError(t, err)

	runner := exec.NewExecutor(conn)
	out, err := runner.ExecOutput("echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExecFailure(t *testing.T) {
	conn, err := localhost.NewConnection()
	require.NoError(t, err)

	runner := exec.NewExecutor(conn)
	err = runner.Exec("exit 41")
	require.Error(t, err)
	assert.Equal(t, 41, exec.ExitCode(err, -1))
}

func TestIsWindows(t *testing.T) {
	conn, err := localhost.NewConnection()
	require.NoError(t, err)
	assert.False(t, conn.IsWindows())
}
