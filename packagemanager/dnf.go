package packagemanager

import (
	"context"

	"github.com/aikaryashala/kitup/exec"
)

// NewDnf creates a new dnf package manager.
func NewDnf(c exec.ContextRunner) PackageManager {
	return newUniversalPackageManager(c, "dnf", "dnf", "install -y", "remove -y", "makecache")
}

// RegisterDnf registers the dnf package manager to a provider.
func RegisterDnf(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(context.Background(), "command -v dnf") != nil {
			return nil, false
		}
		return NewDnf(c), true
	})
}
