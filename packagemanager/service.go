package packagemanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/plumbing"
)

// Service provides a unified interface to interact with different package
// managers. It ensures that a suitable package manager is lazily initialized
// and made available for package operations.
type Service struct {
	lazy *plumbing.LazyService[exec.ContextRunner, PackageManager]
}

// NewService creates a new instance of Service with the provided provider and
// runner.
func NewService(provider *Provider, runner exec.ContextRunner) *Service {
	return &Service{plumbing.NewLazyService[exec.ContextRunner, PackageManager](provider, runner)}
}

// GetPackageManager returns a PackageManager or an error if no package manager
// could be initialized.
func (p *Service) GetPackageManager() (PackageManager, error) {
	pm, err := p.lazy.Get()
	if err != nil {
		return nil, fmt.Errorf("get package manager: %w", err)
	}
	return pm, nil
}

// PackageManager provides easy access to the underlying package manager
// instance. If the initialization fails, a NullPackageManager instance is
// returned which will return the initialization error on every operation
// attempted on it.
func (p *Service) PackageManager() PackageManager {
	pm, err := p.lazy.Get()
	if err != nil {
		return &NullPackageManager{Err: err}
	}
	return pm
}

// NullPackageManager is a package manager that always returns an error on
// every operation.
type NullPackageManager struct {
	Err error
}

func (n *NullPackageManager) err(ctx context.Context) error {
	if ctx.Err() != nil {
		return fmt.Errorf("context error: %w", ctx.Err())
	}
	return n.Err
}

// Name returns a placeholder name.
func (n *NullPackageManager) Name() string { return "none" }

// Install returns an error on every call.
func (n *NullPackageManager) Install(ctx context.Context, packageNames ...string) error {
	return fmt.Errorf("install packages (%s): %w", strings.Join(packageNames, ","), n.err(ctx))
}

// Remove returns an error on every call.
func (n *NullPackageManager) Remove(ctx context.Context, packageNames ...string) error {
	return fmt.Errorf("remove packages (%s): %w", strings.Join(packageNames, ","), n.err(ctx))
}

// Update returns an error on every call.
func (n *NullPackageManager) Update(ctx context.Context) error {
	return fmt.Errorf("update package list: %w", n.err(ctx))
}
