package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aikaryashala/kitup/installer"
)

// newDebuggerCmd creates the debugger subcommand
func newDebuggerCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "debugger",
		Short: "Install the lldb debugging extension",
		Long: `Install the lldb debugging extension on a Debian-like Linux host.

The command installs the lldb packages, downloads the extension scripts into
~/.lldb, registers the extension in ~/.lldbinit and exports the lldb Python
bindings path in the shell profile. Running it again is safe, existing
configuration lines are left untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := newRunner()
			if err != nil {
				return err
			}
			m, err := loadManifest(flags)
			if err != nil {
				return err
			}
			inst := installer.NewDebugger(runner, m.Debugger)
			inst.DryRun = flags.dryRun
			if err := inst.Run(cmd.Context()); err != nil {
				return fmt.Errorf("install debugger extension: %w", err)
			}
			return nil
		},
	}
}
