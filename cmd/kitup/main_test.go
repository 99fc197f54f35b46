package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdHasSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "debugger")
	assert.Contains(t, names, "tools")
}

func TestSetupMissingEnvFile(t *testing.T) {
	err := setup(&rootFlags{envFile: filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, err)
}

func TestSetupLoadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.env")
	require.NoError(t, os.WriteFile(path, []byte("KITUP_TEST_MARKER=set\n"), 0o644))
	t.Setenv("KITUP_TEST_MARKER", "")
	os.Unsetenv("KITUP_TEST_MARKER")

	require.NoError(t, setup(&rootFlags{envFile: path}))
	assert.Equal(t, "set", os.Getenv("KITUP_TEST_MARKER"))
}

func TestLoadManifestMissingExplicitConfig(t *testing.T) {
	_, err := loadManifest(&rootFlags{manifest: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err, "an explicitly given manifest path must exist")
}

func TestLoadManifestDefaults(t *testing.T) {
	m, err := loadManifest(&rootFlags{})
	require.NoError(t, err)
	assert.NotEmpty(t, m.Debugger.Packages)
	assert.NotEmpty(t, m.Tools.Pip)
}
