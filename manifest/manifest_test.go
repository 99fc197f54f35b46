package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aikaryashala/kitup/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	m, err := manifest.Load("")
	require.NoError(t, err)

	assert.Equal(t, []string{"lldb-15", "python3-lldb-15", "curl"}, m.Debugger.Packages)
	assert.Contains(t, m.Debugger.ScriptURL, "aik_bt.py")
	assert.Contains(t, m.Debugger.RendererURL, "aik_renderer.py")
	assert.Equal(t, "/usr/lib/llvm-15/lib/python3.10/dist-packages", m.Debugger.PythonPath)
	assert.Equal(t, 100, m.Debugger.AlternativesPriority)

	assert.Contains(t, m.Tools.Apt, "python3-venv")
	assert.Contains(t, m.Tools.Pip, "qrcode[pil]")
	assert.Equal(t, "/opt/course-venv", m.Tools.SharedVenvPath)
	assert.NotEmpty(t, m.Tools.Checks, "the default version checks should be filled in")

	assert.False(t, strings.HasPrefix(m.Debugger.ScriptDir, "~"), "home paths should be expanded")
	assert.False(t, strings.HasPrefix(m.Tools.UserVenvPath, "~"), "home paths should be expanded")
}

func TestLoadYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
debugger:
  packages: [lldb-17, python3-lldb-17]
  pythonPath: /usr/lib/llvm-17/lib/python3.12/dist-packages
tools:
  pip: [check50]
`), 0o644))

	m, err := manifest.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"lldb-17", "python3-lldb-17"}, m.Debugger.Packages)
	assert.Equal(t, "/usr/lib/llvm-17/lib/python3.12/dist-packages", m.Debugger.PythonPath)
	assert.Equal(t, []string{"check50"}, m.Tools.Pip)
	assert.Equal(t, "/opt/course-venv", m.Tools.SharedVenvPath, "untouched fields keep their defaults")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m, err := manifest.Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"lldb-15", "python3-lldb-15", "curl"}, m.Debugger.Packages)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("KITUP_AIK_BT_URL", "https://example.com/custom_bt.py")
	t.Setenv("KITUP_VENV_PATH", "/tmp/custom-venv")

	m, err := manifest.Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/custom_bt.py", m.Debugger.ScriptURL)
	assert.Equal(t, "/tmp/custom-venv", m.Tools.VenvPath)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debugger: [not a map"), 0o644))

	_, err := manifest.Load(path)
	require.Error(t, err)
}

func TestDefaultChecks(t *testing.T) {
	checks := manifest.DefaultChecks()
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "python3")
	assert.Contains(t, names, "lldb")
	assert.Contains(t, names, "asciinema")
}
