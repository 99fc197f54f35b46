package packagemanager

import (
	"context"

	"github.com/aikaryashala/kitup/exec"
)

// NewPacman creates a new pacman package manager.
func NewPacman(c exec.ContextRunner) PackageManager {
	return newUniversalPackageManager(c, "pacman", "pacman", "-S --noconfirm", "-R --noconfirm", "-Sy")
}

// RegisterPacman registers the pacman package manager to a provider.
func RegisterPacman(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(context.Background(), "command -v pacman") != nil {
			return nil, false
		}
		return NewPacman(c), true
	})
}
