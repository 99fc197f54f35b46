package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/aikaryashala/kitup/venv"
	"github.com/aikaryashala/kitup/versions"
)

// printReport writes the version report of the system tools and the virtual
// environment packages. Probe failures show up as "not available" or
// "unknown" entries instead of aborting, the report is informational.
func (t *Tools) printReport(ctx context.Context, env *venv.Venv) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(t.Out, divider)
	fmt.Fprintln(t.Out, "Version check")
	fmt.Fprintln(t.Out, divider)

	checks := make([]versions.Check, 0, len(t.config.Checks))
	for _, c := range t.config.Checks {
		checks = append(checks, versions.Check(c))
	}
	for _, result := range versions.Report(ctx, t.runner, checks) {
		fmt.Fprintf(t.Out, "%s: %s\n", result.Name, result.Output)
	}

	fmt.Fprintln(t.Out)
	fmt.Fprintln(t.Out, "Packages inside the virtual environment:")
	for _, dist := range t.config.PipDists {
		version, err := env.PackageVersion(ctx, dist)
		if err != nil {
			fmt.Fprintf(t.Out, "%s=not installed\n", dist)
			continue
		}
		fmt.Fprintf(t.Out, "%s=%s\n", dist, version)
	}
}
