package packagemanager

import (
	"context"

	"github.com/aikaryashala/kitup/exec"
)

// NewYum creates a new yum package manager.
func NewYum(c exec.ContextRunner) PackageManager {
	return newUniversalPackageManager(c, "yum", "yum", "install -y", "remove -y", "makecache")
}

// RegisterYum registers the yum package manager to a provider.
func RegisterYum(provider *Provider) {
	provider.Register(func(c exec.ContextRunner) (PackageManager, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.ExecContext(context.Background(), "command -v yum") != nil {
			return nil, false
		}
		return NewYum(c), true
	})
}
