// Package manifest holds the tool set configuration for the provisioning
// commands. The built-in defaults match the course environment; a YAML file
// and KITUP_* environment variables can override them.
package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	homedir "github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Debugger is the configuration for the debugger extension installer.
type Debugger struct {
	// Packages are the OS packages that provide the debugger and its
	// python bindings.
	Packages []string `yaml:"packages" default:"[\"lldb-15\", \"python3-lldb-15\", \"curl\"]"`
	// ScriptURL is the location of the backtrace extension script.
	ScriptURL string `yaml:"scriptURL" env:"KITUP_AIK_BT_URL" default:"https://raw.githubusercontent.com/aikaryashala/practice/refs/heads/main/lldb/aik_bt.py"`
	// RendererURL is the location of the renderer helper script.
	RendererURL string `yaml:"rendererURL" env:"KITUP_AIK_RENDERER_URL" default:"https://raw.githubusercontent.com/aikaryashala/practice/refs/heads/main/lldb/aik_renderer.py"`
	// ScriptDir is where the extension scripts are downloaded.
	ScriptDir string `yaml:"scriptDir" env:"KITUP_LLDB_DIR" default:"~/.lldb"`
	// InitFile is the debugger's startup configuration file.
	InitFile string `yaml:"initFile" env:"KITUP_LLDBINIT" default:"~/.lldbinit"`
	// Profile is the shell profile that receives the PYTHONPATH export.
	Profile string `yaml:"profile" env:"KITUP_PROFILE" default:"~/.bashrc"`
	// PythonPath is the directory with the debugger's python bindings.
	PythonPath string `yaml:"pythonPath" default:"/usr/lib/llvm-15/lib/python3.10/dist-packages"`
	// AlternativesBinary is the versioned debugger binary registered as
	// the default alternative.
	AlternativesBinary string `yaml:"alternativesBinary" default:"/usr/bin/lldb-15"`
	// AlternativesPriority is the priority used when registering.
	AlternativesPriority int `yaml:"alternativesPriority" default:"100"`
}

// VersionCheck is a single entry of the version report.
type VersionCheck struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// Tools is the configuration for the course tools installer.
type Tools struct {
	// Apt is the package set for debian-like linux distributions and the
	// fallback set for other linux package managers.
	Apt []string `yaml:"apt" default:"[\"sudo\", \"python3\", \"python3-venv\", \"python3-pip\", \"clang\", \"lldb\", \"micro\", \"asciinema\", \"zip\", \"unzip\", \"curl\"]"`
	// Brew is the package set for macOS.
	Brew []string `yaml:"brew" default:"[\"micro\", \"asciinema\", \"llvm\", \"zip\", \"unzip\", \"curl\"]"`
	// Winget is the package id set for windows.
	Winget []string `yaml:"winget" default:"[\"zyedidia.micro\", \"LLVM.LLVM\", \"cURL.cURL\"]"`
	// Pip is the package set installed into the virtual environment.
	Pip []string `yaml:"pip" default:"[\"qrcode[pil]\", \"check50\", \"style50\", \"submit50\"]"`
	// VenvPath overrides the virtual environment location. When empty, a
	// shared path is used for root on linux and a per-user path otherwise.
	VenvPath string `yaml:"venvPath" env:"KITUP_VENV_PATH"`
	// SharedVenvPath is the shared linux environment location.
	SharedVenvPath string `yaml:"sharedVenvPath" default:"/opt/course-venv"`
	// UserVenvPath is the per-user environment location.
	UserVenvPath string `yaml:"userVenvPath" default:"~/course-venv"`
	// BinDir is where the course tools are linked on linux when the
	// shared environment is used.
	BinDir string `yaml:"binDir" env:"KITUP_BIN_DIR" default:"/usr/local/bin"`
	// LinkTools are the venv tools linked into BinDir.
	LinkTools []string `yaml:"linkTools" default:"[\"check50\", \"style50\", \"submit50\"]"`
	// Checks are the version report probes. An empty list uses the
	// built-in defaults.
	Checks []VersionCheck `yaml:"checks"`
	// PipDists are the distributions reported from inside the virtual
	// environment. Note that qrcode[pil] is distributed as "qrcode".
	PipDists []string `yaml:"pipDists" default:"[\"qrcode\", \"check50\", \"style50\", \"submit50\"]"`
}

// Manifest is the full tool set configuration.
type Manifest struct {
	Debugger Debugger `yaml:"debugger"`
	Tools    Tools    `yaml:"tools"`
}

// DefaultChecks are the version probes of the original course setup.
func DefaultChecks() []VersionCheck {
	return []VersionCheck{
		{Name: "python3", Command: "python3 --version"},
		{Name: "pip3", Command: "pip3 --version"},
		{Name: "clang", Command: "clang --version"},
		{Name: "lldb", Command: "lldb --version"},
		{Name: "micro", Command: "micro --version"},
		{Name: "asciinema", Command: "asciinema --version"},
		{Name: "curl", Command: "curl --version"},
		{Name: "zip", Command: "zip -v"},
		{Name: "unzip", Command: "unzip -v"},
		{Name: "sudo", Command: "sudo --version"},
	}
}

// Load builds a Manifest from the built-in defaults, then overlays the given
// YAML file when path is not empty, then applies KITUP_* environment
// overrides. Path fields are homedir-expanded.
func Load(path string) (*Manifest, error) {
	m := &Manifest{}
	if err := defaults.Set(m); err != nil {
		return nil, fmt.Errorf("apply manifest defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read manifest %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	}

	if err := env.Parse(m); err != nil {
		return nil, fmt.Errorf("apply manifest environment overrides: %w", err)
	}

	if len(m.Tools.Checks) == 0 {
		m.Tools.Checks = DefaultChecks()
	}

	if err := m.expandPaths(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manifest) expandPaths() error {
	for _, p := range []*string{
		&m.Debugger.ScriptDir,
		&m.Debugger.InitFile,
		&m.Debugger.Profile,
		&m.Tools.VenvPath,
		&m.Tools.UserVenvPath,
	} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand path %s: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}
