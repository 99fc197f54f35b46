package venv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aikaryashala/kitup/kituptest"
	"github.com/aikaryashala/kitup/venv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCreatesWhenAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "course-venv")
	runner := kituptest.NewMockRunner()
	env := venv.New(runner, path)

	require.NoError(t, env.Ensure(context.Background()))
	kituptest.ReceivedEqual(t, runner, "python3 -m venv "+path)
}

func TestEnsureReusesExisting(t *testing.T) {
	path := t.TempDir()
	runner := kituptest.NewMockRunner()
	env := venv.New(runner, path)

	require.NoError(t, env.Ensure(context.Background()))
	assert.Zero(t, runner.Len(), "an existing environment should not be recreated")
}

func TestUpgradeAndInstall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venv")
	runner := kituptest.NewMockRunner()
	env := venv.New(runner, path)
	python := filepath.Join(path, "bin", "python")

	ctx := context.Background()
	require.NoError(t, env.Upgrade(ctx))
	kituptest.ReceivedEqual(t, runner, python+" -m pip install -U pip setuptools wheel")

	require.NoError(t, env.Install(ctx, "qrcode[pil]", "check50"))
	kituptest.ReceivedEqual(t, runner, python+" -m pip install -U 'qrcode[pil]' check50")

	runner.Reset()
	require.NoError(t, env.Install(ctx), "installing nothing should be a no-op")
	assert.Zero(t, runner.Len())
}

func TestPackageVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "venv")
	runner := kituptest.NewMockRunner()
	runner.AddCommandOutput(kituptest.Contains("importlib.metadata"), "7.4.2\n")
	env := venv.New(runner, path)

	version, err := env.PackageVersion(context.Background(), "qrcode")
	require.NoError(t, err)
	assert.Equal(t, "7.4.2", version)
}

func TestPathsOnWindows(t *testing.T) {
	runner := kituptest.NewMockRunner()
	runner.Windows = true
	env := venv.New(runner, `C:\venv`)

	assert.Equal(t, filepath.Join(`C:\venv`, "Scripts", "python.exe"), env.Python())
	assert.Equal(t, filepath.Join(`C:\venv`, "Scripts", "check50.exe"), env.Bin("check50"))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	runner := kituptest.NewMockRunner()

	assert.True(t, venv.New(runner, dir).Exists())
	assert.False(t, venv.New(runner, filepath.Join(dir, "nope")).Exists())

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.False(t, venv.New(runner, file).Exists(), "a plain file is not an environment")
}
