package installer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/manifest"
	"github.com/aikaryashala/kitup/osrelease"
	"github.com/aikaryashala/kitup/packagemanager"
	"github.com/aikaryashala/kitup/sudo"
	"github.com/aikaryashala/kitup/venv"
)

// Tools installs the course command line tools on linux, macOS and windows,
// provisions the Python virtual environment and prints a version report.
type Tools struct {
	log.LoggerInjectable
	runner exec.Runner
	sudo   *sudo.Service
	config manifest.Tools

	// Out receives the version report. Defaults to stdout.
	Out io.Writer

	// DryRun plans the installation instead of performing it. Detection
	// probes still run against the host, mutating commands are logged.
	DryRun bool
}

// NewTools returns a course tools installer running through the given runner.
func NewTools(runner exec.Runner, config manifest.Tools) *Tools {
	return &Tools{
		runner: runner,
		sudo:   sudo.NewService(sudo.DefaultProvider(), runner),
		config: config,
		Out:    os.Stdout,
	}
}

// Run performs the installation sequence.
func (t *Tools) Run(ctx context.Context) error {
	osr, err := osrelease.Get(t.runner)
	if err != nil {
		return fmt.Errorf("detect operating system: %w", err)
	}
	t.Log().Info("detected operating system", "os", osr.String())

	if err := t.installSystemPackages(ctx, osr); err != nil {
		return err
	}

	env := venv.New(t.execRunner(t.runner), t.venvPath(osr))
	t.Log().Info("using virtual environment", log.KeyPath, env.Path())
	if err := env.Ensure(ctx); err != nil {
		return err
	}
	if err := env.Upgrade(ctx); err != nil {
		return err
	}
	if err := env.Install(ctx, t.config.Pip...); err != nil {
		return err
	}

	if err := t.linkSharedTools(ctx, osr, env); err != nil {
		return err
	}

	if t.DryRun {
		t.Log().Info("dry-run: skipping the version report, nothing was installed")
		return nil
	}
	t.printReport(ctx, env)
	return nil
}

// execRunner returns the runner mutating commands go through. In dry-run mode
// the commands are logged instead of started.
func (t *Tools) execRunner(runner exec.Runner) exec.Runner {
	if !t.DryRun {
		return runner
	}
	return exec.NewExecutor(exec.NewDryRunConnection(runner))
}

// installSystemPackages installs the OS tool set through the platform's
// package manager. Missing brew on macOS and missing winget on windows are
// reported with installation instructions but do not abort the run, so the
// Python environment can still be provisioned.
func (t *Tools) installSystemPackages(ctx context.Context, osr *osrelease.OSRelease) error {
	switch {
	case osr.IsLike("darwin"):
		// the Brew list names homebrew formulas, another package manager
		// being present on the machine is not a substitute
		brewOnly := packagemanager.NewProvider()
		packagemanager.RegisterHomebrew(brewOnly)
		pm, err := packagemanager.NewService(brewOnly, t.runner).GetPackageManager()
		if err != nil {
			t.Log().Error("homebrew not found, install it first and re-run", "instructions", `/bin/bash -c "$(curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh)"`)
			return nil
		}
		return t.installWith(ctx, pm, t.config.Brew)
	case osr.ID == "windows":
		pms := packagemanager.NewService(packagemanager.DefaultProvider(), t.runner)
		pm, err := pms.GetPackageManager()
		if err != nil {
			t.Log().Error("winget not found, install 'App Installer' from the Microsoft Store and re-run")
			return nil
		}
		// best effort, package id availability varies by machine
		if err := t.installWith(ctx, pm, t.config.Winget); err != nil {
			t.Log().Warn("some windows packages could not be installed", log.KeyError, err)
		}
		t.Log().Info("asciinema has no native windows build, use WSL to record sessions")
		return nil
	default:
		sudoRunner, err := t.sudo.GetRunner()
		if err != nil {
			return fmt.Errorf("escalate privileges: %w", err)
		}
		pms := packagemanager.NewService(packagemanager.DefaultProvider(), sudoRunner)
		pm, err := pms.GetPackageManager()
		if err != nil {
			return fmt.Errorf("find package manager: %w", err)
		}
		return t.installWith(ctx, pm, t.config.Apt)
	}
}

func (t *Tools) installWith(ctx context.Context, pm packagemanager.PackageManager, packages []string) error {
	if t.DryRun {
		t.Log().Info("dry-run: would install system packages", "manager", pm.Name(), "packages", packages)
		return nil
	}
	t.Log().Info("installing system packages", "manager", pm.Name(), "packages", packages)
	if err := pm.Update(ctx); err != nil {
		return fmt.Errorf("update package index: %w", err)
	}
	if err := pm.Install(ctx, packages...); err != nil {
		return fmt.Errorf("install system packages: %w", err)
	}
	return nil
}

// venvPath picks the virtual environment location: an explicit override wins,
// root on linux uses the shared path so all users get the tools, everything
// else uses the per-user path.
func (t *Tools) venvPath(osr *osrelease.OSRelease) string {
	if t.config.VenvPath != "" {
		return t.config.VenvPath
	}
	if osr.IsLike("linux") && osr.ID != "darwin" && t.isRoot() {
		return t.config.SharedVenvPath
	}
	return t.config.UserVenvPath
}

func (t *Tools) isRoot() bool {
	if t.runner.IsWindows() {
		return false
	}
	return t.runner.Exec(`[ "$(id -u)" = 0 ]`) == nil
}
