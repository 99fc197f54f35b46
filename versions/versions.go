// Package versions probes installed tools and reports their versions.
package versions

import (
	"context"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/acarl005/stripansi"
	"github.com/google/shlex"

	"github.com/aikaryashala/kitup/exec"
	"github.com/aikaryashala/kitup/sh"
)

// Placeholder outputs for tools that are missing or whose version can not be
// determined.
const (
	NotAvailable = "not available"
	Unknown      = "unknown"
)

// Check describes a single tool version probe. Command is the full command
// line that prints the tool's version, like "clang --version".
type Check struct {
	Name    string
	Command string
}

// Result is the outcome of a version probe.
type Result struct {
	Name string
	// Output is the first line of the tool's version output, NotAvailable
	// when the tool is missing or Unknown when the probe failed.
	Output string
	// Version is the parsed semantic version when one could be extracted
	// from the output, nil otherwise.
	Version *semver.Version
}

var versionPattern = regexp.MustCompile(`\d+\.\d+(?:\.\d+)?`)

// Run performs a single version probe through the given runner.
func Run(ctx context.Context, runner exec.ContextRunner, check Check) Result {
	result := Result{Name: check.Name, Output: Unknown}

	parts, err := shlex.Split(check.Command)
	if err != nil || len(parts) == 0 {
		return result
	}

	if !available(ctx, runner, parts[0]) {
		result.Output = NotAvailable
		return result
	}

	out, err := runner.ExecOutputContext(ctx, sh.CommandBuilder(sh.Command(parts[0], parts[1:]...)).ErrToOut().String())
	if err != nil {
		return result
	}

	line := firstLine(stripansi.Strip(out))
	if line == "" {
		return result
	}
	result.Output = line

	if match := versionPattern.FindString(line); match != "" {
		if v, err := semver.NewVersion(match); err == nil {
			result.Version = v
		}
	}

	return result
}

// Report performs all the given version probes in order.
func Report(ctx context.Context, runner exec.ContextRunner, checks []Check) []Result {
	results := make([]Result, 0, len(checks))
	for _, check := range checks {
		results = append(results, Run(ctx, runner, check))
	}
	return results
}

func available(ctx context.Context, runner exec.ContextRunner, tool string) bool {
	if runner.IsWindows() {
		return runner.ExecContext(ctx, "where.exe "+sh.Quote(tool)) == nil
	}
	return runner.ExecContext(ctx, "command -v "+sh.Quote(tool)) == nil
}

func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
