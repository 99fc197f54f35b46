package exec

import (
	"errors"
	osexec "os/exec"
)

// ExitCode returns the exit code carried by the error chain, or fallback when
// the error did not originate from a process exit. A nil error returns 0.
func ExitCode(err error, fallback int) int {
	if err == nil {
		return 0
	}
	var exitErr *osexec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return fallback
}
