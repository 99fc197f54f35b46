package installer

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/sh"
)

// registerAlternative makes the versioned debugger binary the default through
// update-alternatives. Skipped when the tooling or the binary is missing, and
// failures are logged instead of aborting the installation since the
// versioned binary remains usable either way.
func (d *Debugger) registerAlternative(ctx context.Context, sudoRunner exec.Runner) {
	binary := d.config.AlternativesBinary
	if binary == "" {
		return
	}

	if err := d.runner.ExecContext(ctx, "command -v update-alternatives"); err != nil {
		d.Log().Debug("update-alternatives not found, skipping")
		return
	}
	if err := d.runner.ExecContext(ctx, "test -x "+sh.Quote(binary)); err != nil {
		d.Log().Debug("versioned binary not found, skipping alternatives registration", log.KeyFile, binary)
		return
	}

	// /usr/bin/lldb-15 registers as the "lldb" alternative at /usr/bin/lldb
	name := strings.TrimRightFunc(filepath.Base(binary), func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	link := filepath.Join(filepath.Dir(binary), name)

	cmd := sh.Command("update-alternatives", "--install", link, name, binary, strconv.Itoa(d.config.AlternativesPriority))
	if err := sudoRunner.ExecContext(ctx, cmd); err != nil {
		d.Log().Warn("failed to register alternative", log.KeyCommand, cmd, log.KeyError, err)
		return
	}
	d.Log().Info("registered default alternative", "name", name, log.KeyFile, binary)
}
