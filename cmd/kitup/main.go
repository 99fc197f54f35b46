// Package main provides the kitup CLI for installing the course debugging
// extension and the course command line tools.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/log"
	"github.com/aikaryashala/kitup/manifest"
	"github.com/aikaryashala/kitup/protocol/localhost"
)

// version is set via -ldflags during build
var version = "dev"

type rootFlags struct {
	debug    bool
	trace    bool
	dryRun   bool
	manifest string
	envFile  string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	rootCmd.SilenceUsage = true

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(exec.ExitCode(err, 1))
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "kitup",
		Short: "Course environment installer",
		Long: `kitup installs the course development environment.

It supports:
  - Installing the lldb debugging extension with its rendering scripts
  - Installing the course command line tools through the platform's
    package manager
  - Provisioning a Python virtual environment with the course pip packages`,
		Version: version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setup(flags)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flags.trace, "trace", false, "Enable command trace logging")
	pf.BoolVarP(&flags.dryRun, "dry-run", "n", false, "Inspect the host and log what would be done without changing anything")
	pf.StringVarP(&flags.manifest, "config", "c", "", "Path to a manifest YAML file")
	pf.StringVar(&flags.envFile, "env-file", "", "Load environment overrides from a dotenv file")

	rootCmd.AddCommand(
		newDebuggerCmd(flags),
		newToolsCmd(flags),
	)

	return rootCmd
}

// setup configures logging and loads the optional dotenv file. It runs before
// any subcommand.
func setup(flags *rootFlags) error {
	level := slog.LevelInfo
	if flags.debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	log.SetDefault(logger)
	if flags.trace {
		log.SetTraceLogger(logger)
	}

	if flags.envFile != "" {
		if err := godotenv.Load(flags.envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", flags.envFile, err)
		}
	}
	return nil
}

// newRunner opens a connection to the local host and wraps it in a command
// runner. Installers run their detection probes through it even in dry-run
// mode, so the logged plan reflects the actual host.
func newRunner() (exec.Runner, error) {
	conn, err := localhost.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("connect to local host: %w", err)
	}
	return exec.NewExecutor(conn), nil
}

func loadManifest(flags *rootFlags) (*manifest.Manifest, error) {
	if flags.manifest != "" {
		if _, err := os.Stat(flags.manifest); err != nil {
			return nil, fmt.Errorf("manifest %s: %w", flags.manifest, err)
		}
	}
	return manifest.Load(flags.manifest)
}
