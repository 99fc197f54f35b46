package sudo

import (
	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/sh"
)

// Doas is a DecorateFunc that will wrap the given command in a doas call.
func Doas(cmd string) string {
	return `doas -n -- "${SHELL-sh}" -c ` + sh.Quote(cmd)
}

// RegisterDoas registers a doas DecorateFunc with the given provider.
func RegisterDoas(provider *Provider) {
	provider.Register(func(c exec.Runner) (exec.Runner, bool) {
		if c.IsWindows() {
			return nil, false
		}
		if c.Exec(Doas("true")) != nil {
			return nil, false
		}
		return exec.NewExecutor(c, Doas), true
	})
}
