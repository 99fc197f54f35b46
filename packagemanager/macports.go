package packagemanager

import (
	"context"

	"github.com/aikaryashala/kitup/exec"
)

// NewMacports creates a new macports package manager.
func NewMacports(c exec.ContextRunner) PackageManager {
	return newUniversalPackageManager(c, "macports", "port", "install", "uninstall", "selfupdate")
}

// RegisterMacports registers the macports package manager to a provider.
func RegisterMacports(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(context.Background(), "command -v port") != nil {
			return nil, false
		}
		return NewMacports(c), true
	})
}
