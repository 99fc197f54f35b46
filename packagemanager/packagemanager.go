// Package packagemanager provides a generic interface for OS package managers.
package packagemanager

import (
	"context"
	"errors"
	"sync"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/plumbing"
)

// PackageManager is a generic interface for package managers.
type PackageManager interface {
	// Name returns the package manager's short name, like "apt" or "brew".
	Name() string
	// Install the given packages.
	Install(ctx context.Context, packageNames ...string) error
	// Remove the given packages.
	Remove(ctx context.Context, packageNames ...string) error
	// Update the package index.
	Update(ctx context.Context) error
}

// ErrNoPackageManager is returned when no supported package manager is found.
var ErrNoPackageManager = errors.New("no supported package manager found")

// Factory is an alias for plumbing.Factory specialized for PackageManager.
type Factory = plumbing.Factory[exec.ContextRunner, PackageManager]

// Provider is an alias for plumbing.Provider specialized for PackageManager.
type Provider = plumbing.Provider[exec.ContextRunner, PackageManager]

// NewProvider creates a new instance of the specialized Provider.
func NewProvider() *Provider {
	return plumbing.NewProvider[exec.ContextRunner, PackageManager](ErrNoPackageManager)
}

// DefaultProvider is the default provider of package managers.
var DefaultProvider = sync.OnceValue(func() *Provider {
	provider := NewProvider()
	RegisterApt(provider)
	RegisterApk(provider)
	RegisterDnf(provider)
	RegisterYum(provider)
	RegisterPacman(provider)
	RegisterZypper(provider)
	RegisterWindowsMultiManager(provider)
	RegisterHomebrew(provider)
	RegisterMacports(provider)
	return provider
})
