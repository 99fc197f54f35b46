package packagemanager

import (
	"context"
	"fmt"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/sh"
)

// Winget is the winget package manager, preinstalled on windows 10 and later.
// Packages are installed one by one by their exact id, accepting package and
// source agreements so no interactive prompts appear.
type Winget struct {
	exec.ContextRunner
}

// Name returns the package manager's name.
func (w *Winget) Name() string {
	return "winget"
}

// Install the given packages by id.
func (w *Winget) Install(ctx context.Context, packageNames ...string) error {
	for _, pkg := range packageNames {
		cmd := fmt.Sprintf("winget install --id %s -e --accept-package-agreements --accept-source-agreements", sh.Quote(pkg))
		if err := w.ExecContext(ctx, cmd, exec.StreamOutput()); err != nil {
			return fmt.Errorf("failed to install winget package %s: %w", pkg, err)
		}
	}
	return nil
}

// Remove the given packages.
func (w *Winget) Remove(ctx context.Context, packageNames ...string) error {
	for _, pkg := range packageNames {
		if err := w.ExecContext(ctx, fmt.Sprintf("winget uninstall --id %s -e", sh.Quote(pkg)), exec.StreamOutput()); err != nil {
			return fmt.Errorf("failed to remove winget package %s: %w", pkg, err)
		}
	}
	return nil
}

// Update the winget sources.
func (w *Winget) Update(ctx context.Context) error {
	if err := w.ExecContext(ctx, "winget source update", exec.StreamOutput()); err != nil {
		return fmt.Errorf("failed to update winget sources: %w", err)
	}
	return nil
}

// NewWinget creates a new winget package manager.
func NewWinget(c exec.ContextRunner) PackageManager {
	return &Winget{c}
}

// RegisterWinget registers the winget package manager to a provider.
func RegisterWinget(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if !c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(context.Background(), "where.exe winget") != nil {
			return nil, false
		}
		return NewWinget(c), true
	})
}
