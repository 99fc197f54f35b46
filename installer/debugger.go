// Package installer contains the provisioning sequences behind the kitup
// commands.
package installer

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"path/filepath"

	"github.com/aikaryashala/kitup/download"
	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/lineinfile"
	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/manifest"
	"github.com/aikaryashala/kitup/osrelease"
	"github.com/aikaryashala/kitup/packagemanager"
	"github.com/aikaryashala/kitup/sudo"
)

// Debugger installs the lldb backtrace extension: the debugger packages, the
// extension scripts, the debugger init file entry and the PYTHONPATH profile
// entry. Every step is idempotent so the installer can be re-run freely.
type Debugger struct {
	log.LoggerInjectable
	runner       exec.Runner
	sudo         *sudo.Service
	config       manifest.Debugger
	downloadOpts []download.Option

	// DryRun plans the installation instead of performing it. Detection
	// probes still run against the host, mutating commands, downloads and
	// file edits are logged.
	DryRun bool
}

// NewDebugger returns a debugger extension installer running through the
// given runner.
func NewDebugger(runner exec.Runner, config manifest.Debugger, downloadOpts ...download.Option) *Debugger {
	return &Debugger{
		runner:       runner,
		sudo:         sudo.NewService(sudo.DefaultProvider(), runner),
		config:       config,
		downloadOpts: downloadOpts,
	}
}

// Run performs the installation sequence.
func (d *Debugger) Run(ctx context.Context) error {
	osr, err := osrelease.Get(d.runner)
	if err != nil {
		return fmt.Errorf("detect operating system: %w", err)
	}
	if !osr.IsLike("linux") {
		return fmt.Errorf("%w: the debugger extension installer supports linux only, detected %s", ErrUnsupportedOS, osr)
	}
	d.Log().Info("detected operating system", "os", osr.String())

	sudoRunner, err := d.sudo.GetRunner()
	if err != nil {
		return fmt.Errorf("escalate privileges: %w", err)
	}

	if err := d.installPackages(ctx, sudoRunner); err != nil {
		return err
	}

	if err := d.downloadScripts(ctx); err != nil {
		return err
	}

	importLine := "command script import " + d.scriptPath(d.config.ScriptURL)
	if err := d.ensureLine(d.config.InitFile, importLine, "configuring debugger init file"); err != nil {
		return err
	}

	// best effort, the versioned binary works without it
	d.registerAlternative(ctx, d.execRunner(sudoRunner))

	profileLine := "export PYTHONPATH=" + d.config.PythonPath + ":$PYTHONPATH"
	if err := d.ensureLine(d.config.Profile, profileLine, "configuring shell profile"); err != nil {
		return err
	}

	if d.DryRun {
		d.Log().Info("dry-run complete, no changes were made")
		return nil
	}
	d.Log().Info("debugger extension installed", "hint", "source the profile and start lldb")
	return nil
}

// execRunner returns the runner mutating commands go through. In dry-run mode
// the commands are logged instead of started.
func (d *Debugger) execRunner(runner exec.Runner) exec.Runner {
	if !d.DryRun {
		return runner
	}
	return exec.NewExecutor(exec.NewDryRunConnection(runner))
}

// ensureLine adds the line to the file unless it is already there. In dry-run
// mode the edit is logged instead.
func (d *Debugger) ensureLine(file, line, msg string) error {
	if d.DryRun {
		d.Log().Info("dry-run: would add line to file", log.KeyFile, file, "line", line)
		return nil
	}
	d.Log().Info(msg, log.KeyFile, file)
	if err := lineinfile.Ensure(file, line); err != nil {
		return fmt.Errorf("configure %s: %w", file, err)
	}
	return nil
}

func (d *Debugger) installPackages(ctx context.Context, sudoRunner exec.Runner) error {
	pms := packagemanager.NewService(packagemanager.DefaultProvider(), sudoRunner)
	pm, err := pms.GetPackageManager()
	if err != nil {
		return fmt.Errorf("find package manager: %w", err)
	}
	if d.DryRun {
		d.Log().Info("dry-run: would install debugger packages", "manager", pm.Name(), "packages", d.config.Packages)
		return nil
	}
	d.Log().Info("installing debugger packages", "manager", pm.Name(), "packages", d.config.Packages)
	if err := pm.Update(ctx); err != nil {
		return fmt.Errorf("update package index: %w", err)
	}
	if err := pm.Install(ctx, d.config.Packages...); err != nil {
		return fmt.Errorf("install debugger packages: %w", err)
	}
	return nil
}

func (d *Debugger) downloadScripts(ctx context.Context) error {
	for _, u := range []string{d.config.ScriptURL, d.config.RendererURL} {
		dest := d.scriptPath(u)
		if d.DryRun {
			d.Log().Info("dry-run: would download extension script", log.KeyURL, u, log.KeyFile, dest)
			continue
		}
		d.Log().Info("downloading extension script", log.KeyURL, u, log.KeyFile, dest)
		if err := download.File(ctx, u, dest, d.downloadOpts...); err != nil {
			return err
		}
	}
	return nil
}

// scriptPath returns the local destination of a script URL inside the script
// directory.
func (d *Debugger) scriptPath(rawURL string) string {
	name := path.Base(rawURL)
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		name = path.Base(u.Path)
	}
	return filepath.Join(d.config.ScriptDir, name)
}
