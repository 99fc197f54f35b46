package packagemanager

import (
	"context"
	"fmt"

	"github.com/aikaryashala/kitup/exec"
)

// Apt is the package manager for debian-like linux distributions.
type Apt struct {
	exec.ContextRunner
}

// Name returns the package manager's name.
func (a *Apt) Name() string {
	return "apt"
}

// Install the given packages without any interactive prompts.
func (a *Apt) Install(ctx context.Context, packageNames ...string) error {
	if err := a.ExecContext(ctx, "DEBIAN_FRONTEND=noninteractive APT_LISTCHANGES_FRONTEND=none "+buildCommand("apt-get", "install -y", packageNames...), exec.StreamOutput()); err != nil {
		return fmt.Errorf("failed to install apt packages: %w", err)
	}
	return nil
}

// Remove the given packages.
func (a *Apt) Remove(ctx context.Context, packageNames ...string) error {
	if err := a.ExecContext(ctx, "DEBIAN_FRONTEND=noninteractive "+buildCommand("apt-get", "remove -y", packageNames...), exec.StreamOutput()); err != nil {
		return fmt.Errorf("failed to remove apt packages: %w", err)
	}
	return nil
}

// Update the apt package index.
func (a *Apt) Update(ctx context.Context) error {
	if err := a.ExecContext(ctx, "DEBIAN_FRONTEND=noninteractive apt-get update -y", exec.StreamOutput()); err != nil {
		return fmt.Errorf("failed to update apt: %w", err)
	}
	return nil
}

// RegisterApt registers the apt package manager to a provider.
func RegisterApt(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(context.Background(), "command -v apt-get") != nil {
			return nil, false
		}
		return &Apt{c}, true
	})
}
