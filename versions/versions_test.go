package versions_test

import (
	"context"
	"testing"

	"github.com/aikaryashala/kitup/kituptest"
	"github.com/aikaryashala/kitup/versions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAvailableTool(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.Equal("command -v clang"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandOutput(kituptest.HasPrefix("clang --version"), "Ubuntu clang version 15.0.7\nTarget: x86_64-pc-linux-gnu\n")

	result := versions.Run(context.Background(), runner, versions.Check{Name: "clang", Command: "clang --version"})
	assert.Equal(t, "clang", result.Name)
	assert.Equal(t, "Ubuntu clang version 15.0.7", result.Output, "only the first line should be reported")
	require.NotNil(t, result.Version)
	assert.Equal(t, "15.0.7", result.Version.String())
}

func TestRunMissingTool(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommandFailure(kituptest.Equal("command -v asciinema"), assert.AnError)

	result := versions.Run(context.Background(), runner, versions.Check{Name: "asciinema", Command: "asciinema --version"})
	assert.Equal(t, versions.NotAvailable, result.Output)
	assert.Nil(t, result.Version)
}

func TestRunProbeFailure(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.Equal("command -v lldb"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandFailure(kituptest.HasPrefix("lldb --version"), assert.AnError)

	result := versions.Run(context.Background(), runner, versions.Check{Name: "lldb", Command: "lldb --version"})
	assert.Equal(t, versions.Unknown, result.Output)
}

func TestRunStripsANSI(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.Equal("command -v micro"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandOutput(kituptest.HasPrefix("micro --version"), "\x1b[32mVersion: 2.0.13\x1b[0m\n")

	result := versions.Run(context.Background(), runner, versions.Check{Name: "micro", Command: "micro --version"})
	assert.Equal(t, "Version: 2.0.13", result.Output)
}

func TestRunOnWindows(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.Windows = true
	runner.AddCommand(kituptest.Equal("where.exe python"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandOutput(kituptest.HasPrefix("python --version"), "Python 3.12.1\n")

	result := versions.Run(context.Background(), runner, versions.Check{Name: "python", Command: "python --version"})
	assert.Equal(t, "Python 3.12.1", result.Output)
}

func TestReport(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.AddCommand(kituptest.Equal("command -v curl"), func(_ *kituptest.A) error { return nil })
	runner.AddCommandOutput(kituptest.HasPrefix("curl --version"), "curl 8.5.0 (x86_64-pc-linux-gnu)\n")
	runner.AddCommandFailure(kituptest.Equal("command -v zip"), assert.AnError)

	results := versions.Report(context.Background(), runner, []versions.Check{
		{Name: "curl", Command: "curl --version"},
		{Name: "zip", Command: "zip -v"},
	})
	require.Len(t, results, 2)
	assert.Equal(t, "curl 8.5.0 (x86_64-pc-linux-gnu)", results[0].Output)
	assert.Equal(t, versions.NotAvailable, results[1].Output)
}
