package installer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/osrelease"
	"github.com/aikaryashala/kitup/sh"
	"github.com/aikaryashala/kitup/venv"
)

// linkSharedTools symlinks the course tools from the shared virtual
// environment into the shared bin directory so all users can run them without
// activating the environment. Only done on linux when the shared environment
// is in use. Tools missing from the environment are logged and skipped.
func (t *Tools) linkSharedTools(ctx context.Context, osr *osrelease.OSRelease, env *venv.Venv) error {
	if !osr.IsLike("linux") || osr.ID == "darwin" {
		return nil
	}
	if env.Path() != t.config.SharedVenvPath {
		return nil
	}

	if t.DryRun {
		for _, tool := range t.config.LinkTools {
			t.Log().Info("dry-run: would link shared tool", log.KeyTool, tool, log.KeyPath, filepath.Join(t.config.BinDir, tool))
		}
		return nil
	}

	sudoRunner, err := t.sudo.GetRunner()
	if err != nil {
		return fmt.Errorf("escalate privileges: %w", err)
	}

	for _, tool := range t.config.LinkTools {
		src := env.Bin(tool)
		dst := filepath.Join(t.config.BinDir, tool)
		if t.runner.ExecContext(ctx, "test -e "+sh.Quote(src)) != nil {
			t.Log().Warn("tool not found in virtual environment, skipping link", log.KeyTool, tool, log.KeyPath, src)
			continue
		}
		if err := sudoRunner.ExecContext(ctx, sh.Command("ln", "-sf", src, dst)); err != nil {
			return fmt.Errorf("link %s into %s: %w", tool, t.config.BinDir, err)
		}
		t.Log().Info("linked shared tool", log.KeyTool, tool, log.KeyPath, dst)
	}
	return nil
}
