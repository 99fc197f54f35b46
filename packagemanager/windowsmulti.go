package packagemanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/aikaryashala/kitup/exec"
)

// WindowsMultiManager combines all found windows package managers and tries to
// manage packages through each of them in turn. This is done because there is
// no single package manager to rule them all on windows.
type WindowsMultiManager struct {
	exec.ContextRunner
	managers []PackageManager
}

// ErrNoWindowsPackageManager is returned when no windows package manager is found.
var ErrNoWindowsPackageManager = errors.New("no windows package manager found")

// Name returns the package manager's name.
func (w *WindowsMultiManager) Name() string {
	return "winget"
}

// Install the given packages. Each package is tried against the available
// managers until one succeeds.
func (w *WindowsMultiManager) Install(ctx context.Context, packageNames ...string) error {
	if len(w.managers) == 0 {
		return ErrNoWindowsPackageManager
	}

	for _, pkg := range packageNames {
		var lastErr error
		for _, manager := range w.managers {
			lastErr = manager.Install(ctx, pkg)
			if lastErr == nil {
				break
			}
		}
		if lastErr != nil {
			return fmt.Errorf("failed to install package %s: %w", pkg, lastErr)
		}
	}
	return nil
}

// Remove the given packages.
func (w *WindowsMultiManager) Remove(ctx context.Context, packageNames ...string) error {
	if len(w.managers) == 0 {
		return ErrNoWindowsPackageManager
	}

	for _, pkg := range packageNames {
		var lastErr error
		for _, manager := range w.managers {
			lastErr = manager.Remove(ctx, pkg)
			if lastErr == nil {
				break
			}
		}
		if lastErr != nil {
			return fmt.Errorf("failed to remove package %s: %w", pkg, lastErr)
		}
	}
	return nil
}

// Update the package lists of all the found package managers.
func (w *WindowsMultiManager) Update(ctx context.Context) error {
	if len(w.managers) == 0 {
		return ErrNoWindowsPackageManager
	}

	var lastErr error
	for _, manager := range w.managers {
		if err := manager.Update(ctx); err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return fmt.Errorf("failed to update some package managers, final error: %w", lastErr)
	}
	return nil
}

// RegisterWindowsMultiManager registers the windows multi-manager to a provider.
func RegisterWindowsMultiManager(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if !c.IsWindows() {
			return nil, false
		}
		winProvider := NewProvider()
		RegisterWinget(winProvider)
		RegisterChocolatey(winProvider)
		RegisterScoop(winProvider)

		managers, err := winProvider.GetAll(c)
		if err != nil {
			return nil, false
		}
		return &WindowsMultiManager{ContextRunner: c, managers: managers}, true
	})
}
