package sudo

import (
	"github.com/aikaryashala/kitup/exec"
)

// RegisterUID0Noop registers a pass-through runner with the given provider
// which is used when the current user is already root.
func RegisterUID0Noop(provider *Provider) {
	provider.Register(func(c exec.Runner) (exec.Runner, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.Exec(`[ "$(id -u)" = 0 ]`) != nil {
			return nil, false
		}
		return c, true
	})
}
