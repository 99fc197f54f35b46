package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aikaryashala/kitup/installer"
)

// newToolsCmd creates the tools subcommand
func newToolsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Install the course command line tools",
		Long: `Install the course command line tools on Linux, macOS or Windows.

The command installs the system tool set through the platform's package
manager, provisions a Python virtual environment with the course pip packages
and prints a version report of everything it set up. On Linux, running as root
provisions a shared environment under /opt and links the course tools into
/usr/local/bin.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := newRunner()
			if err != nil {
				return err
			}
			m, err := loadManifest(flags)
			if err != nil {
				return err
			}
			inst := installer.NewTools(runner, m.Tools)
			inst.DryRun = flags.dryRun
			if err := inst.Run(cmd.Context()); err != nil {
				return fmt.Errorf("install course tools: %w", err)
			}
			return nil
		},
	}
}
