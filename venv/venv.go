// Package venv manages isolated Python virtual environments.
package venv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/sh"
)

// Venv is a Python virtual environment rooted at a directory. The environment
// is created on first use and reused afterwards.
type Venv struct {
	log.LoggerInjectable
	runner exec.ContextRunner
	path   string
}

// New returns a Venv bound to the given path, running python through the
// given runner.
func New(runner exec.ContextRunner, path string) *Venv {
	return &Venv{runner: runner, path: path}
}

// Path returns the virtual environment's root directory.
func (v *Venv) Path() string {
	return v.path
}

// Python returns the path to the environment's python interpreter.
func (v *Venv) Python() string {
	if v.runner.IsWindows() {
		return filepath.Join(v.path, "Scripts", "python.exe")
	}
	return filepath.Join(v.path, "bin", "python")
}

// Pip returns the path to the environment's pip executable.
func (v *Venv) Pip() string {
	if v.runner.IsWindows() {
		return filepath.Join(v.path, "Scripts", "pip.exe")
	}
	return filepath.Join(v.path, "bin", "pip")
}

// Bin returns the path of a tool installed into the environment.
func (v *Venv) Bin(tool string) string {
	if v.runner.IsWindows() {
		return filepath.Join(v.path, "Scripts", tool+".exe")
	}
	return filepath.Join(v.path, "bin", tool)
}

// Exists reports whether the environment directory is present.
func (v *Venv) Exists() bool {
	stat, err := os.Stat(v.path)
	return err == nil && stat.IsDir()
}

func (v *Venv) hostPython() string {
	if v.runner.IsWindows() {
		return "python"
	}
	return "python3"
}

// Ensure creates the virtual environment when the directory is absent. An
// existing environment is reused untouched.
func (v *Venv) Ensure(ctx context.Context) error {
	if v.Exists() {
		v.Log().Debug("virtual environment already exists", log.KeyPath, v.path)
		return nil
	}
	v.Log().Info("creating virtual environment", log.KeyPath, v.path)
	if err := v.runner.ExecContext(ctx, sh.Command(v.hostPython(), "-m", "venv", v.path), exec.StreamOutput()); err != nil {
		return fmt.Errorf("create virtual environment %s: %w", v.path, err)
	}
	return nil
}

// Upgrade brings the environment's packaging tooling up to date.
func (v *Venv) Upgrade(ctx context.Context) error {
	if err := v.runner.ExecContext(ctx, sh.Command(v.Python(), "-m", "pip", "install", "-U", "pip", "setuptools", "wheel"), exec.StreamOutput()); err != nil {
		return fmt.Errorf("upgrade pip tooling in %s: %w", v.path, err)
	}
	return nil
}

// Install installs or upgrades the given packages inside the environment.
func (v *Venv) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"-m", "pip", "install", "-U"}, packages...)
	if err := v.runner.ExecContext(ctx, sh.Command(v.Python(), args...), exec.StreamOutput()); err != nil {
		return fmt.Errorf("install packages into %s: %w", v.path, err)
	}
	return nil
}

// PackageVersion returns the installed version of the given distribution
// inside the environment.
func (v *Venv) PackageVersion(ctx context.Context, dist string) (string, error) {
	code := fmt.Sprintf("from importlib.metadata import version\nprint(version(%q))", dist)
	out, err := v.runner.ExecOutputContext(ctx, sh.Command(v.Python(), "-c", code))
	if err != nil {
		return "", fmt.Errorf("query version of %s: %w", dist, err)
	}
	return out, nil
}
