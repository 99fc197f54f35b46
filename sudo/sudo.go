// Package sudo provides support for running commands with elevated privileges.
package sudo

import (
	"errors"
	"sync"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/plumbing"
	"github.com/aikaryashala/kitup/sh"
)

// ErrNoSudo is returned when no supported way to run commands with elevated
// privileges is found. Re-running as root is the usual fix.
var ErrNoSudo = errors.New("no supported sudo method found, re-run as root or install sudo")

// Factory is an alias for plumbing.Factory specialized for sudo runners.
type Factory = plumbing.Factory[exec.Runner, exec.Runner]

// Provider is an alias for plumbing.Provider specialized for sudo runners.
type Provider = plumbing.Provider[exec.Runner, exec.Runner]

// NewProvider creates a new instance of the specialized Provider.
func NewProvider() *Provider {
	return plumbing.NewProvider[exec.Runner, exec.Runner](ErrNoSudo)
}

// DefaultProvider is the default provider of sudo methods.
var DefaultProvider = sync.OnceValue(func() *Provider {
	provider := NewProvider()
	RegisterWindowsNoop(provider)
	RegisterUID0Noop(provider)
	RegisterSudo(provider)
	RegisterDoas(provider)
	return provider
})

// Sudo is a DecorateFunc that will wrap the given command in a sudo call.
func Sudo(cmd string) string {
	return `sudo -n -- "${SHELL-sh}" -c ` + sh.Quote(cmd)
}

// RegisterSudo registers a sudo DecorateFunc with the given provider.
func RegisterSudo(provider *Provider) {
	provider.Register(func(c exec.Runner) (exec.Runner, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.Exec(Sudo("true")) != nil {
			return nil, false
		}
		return exec.NewExecutor(c, Sudo), true
	})
}
