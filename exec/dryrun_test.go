package exec_test

import (
	"testing"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/kituptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDryRunConnection(t *testing.T) {
	connection := kituptest.NewMockConnection()
	runner := exec.NewExecutor(exec.NewDryRunConnection(connection))

	require.NoError(t, runner.Exec("rm -rf /tmp/everything"))
	assert.Zero(t, connection.Len(), "nothing should reach the real connection in dry-run mode")
}

func TestDryRunConnectionIsWindows(t *testing.T) {
	connection := kituptest.NewMockConnection()
	connection.Windows = true
	dry := exec.NewDryRunConnection(connection)
	assert.True(t, dry.IsWindows(), "dry-run should report the underlying platform")
}
